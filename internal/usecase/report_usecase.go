package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"time"

	"splitledger/internal/domain/repository"
)

type ReportUseCase struct {
	messageRepo repository.MessageRepository
}

func NewReportUseCase(messageRepo repository.MessageRepository) *ReportUseCase {
	return &ReportUseCase{
		messageRepo: messageRepo,
	}
}

// TopUsers returns at most ten "<phone> - <count>" lines for the senders with
// the most messages since the given time, busiest first.
func (uc *ReportUseCase) TopUsers(ctx context.Context, since time.Time) ([]string, error) {
	messages, err := uc.messageRepo.ListSince(ctx, since)
	if err != nil {
		log.Printf("TopUsers Error: Failed to list messages since %v: %v", since, err)
		return nil, err
	}

	counts := map[string]int{}
	order := []string{}
	for _, msg := range messages {
		if _, seen := counts[msg.From]; !seen {
			order = append(order, msg.From)
		}
		counts[msg.From]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}

	result := make([]string, 0, len(order))
	for _, from := range order {
		result = append(result, fmt.Sprintf("%s - %d", from, counts[from]))
	}

	return result, nil
}

// MessageCount returns the number of messages created since the given time.
func (uc *ReportUseCase) MessageCount(ctx context.Context, since time.Time) (int64, error) {
	count, err := uc.messageRepo.CountSince(ctx, since)
	if err != nil {
		log.Printf("MessageCount Error: Failed to count messages since %v: %v", since, err)
		return 0, err
	}
	return count, nil
}

// MonthwiseAmount sums the parsed amount of every message since the given
// time. Unparseable amounts poison the sum with NaN, same as the ledger fold.
func (uc *ReportUseCase) MonthwiseAmount(ctx context.Context, since time.Time) (float64, error) {
	messages, err := uc.messageRepo.ListSince(ctx, since)
	if err != nil {
		log.Printf("MonthwiseAmount Error: Failed to list messages since %v: %v", since, err)
		return 0, err
	}

	var amount float64
	for _, msg := range messages {
		v, err := strconv.ParseFloat(msg.Amount, 64)
		if err != nil {
			v = math.NaN()
		}
		amount += v
	}

	return amount, nil
}
