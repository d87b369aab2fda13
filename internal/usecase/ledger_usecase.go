package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"splitledger/internal/domain/entity"
	"splitledger/internal/domain/repository"
)

type LedgerUseCase struct {
	roomRepo repository.RoomRepository
}

func NewLedgerUseCase(roomRepo repository.RoomRepository) *LedgerUseCase {
	return &LedgerUseCase{
		roomRepo: roomRepo,
	}
}

// PrepareLedger loads every room the user participates in, messages included,
// and reduces them into the user's settlement view.
func (uc *LedgerUseCase) PrepareLedger(ctx context.Context, userPhone string) (*entity.Ledger, error) {
	rooms, err := uc.roomRepo.ListByParticipant(ctx, userPhone)
	if err != nil {
		log.Printf("PrepareLedger Error: Failed to list rooms for %s: %v", userPhone, err)
		return nil, err
	}

	return ReduceLedger(rooms, userPhone), nil
}

// PrepareTopNLedger loads the user's ledger and summarizes the n largest
// balances per settle status.
func (uc *LedgerUseCase) PrepareTopNLedger(ctx context.Context, userPhone string, n int) (map[string][]*entity.LedgerEntry, error) {
	ledger, err := uc.PrepareLedger(ctx, userPhone)
	if err != nil {
		return nil, err
	}

	return TopNLedger(ledger.UngroupedLedger, n), nil
}

// EmptyLedger is the canonical result for a user with no rooms.
func EmptyLedger() *entity.Ledger {
	return &entity.Ledger{
		Ledger:              map[string][]*entity.LedgerEntry{},
		UngroupedLedger:     []*entity.LedgerEntry{},
		Groups:              []*entity.LedgerEntry{},
		Journal:             []*entity.Message{},
		TotalAmountGiven:    "0.00",
		TotalAmountReceived: "0.00",
		NetAmount:           "0.00",
	}
}

// ReduceLedger folds a user's rooms into their settlement summary. It only
// reads its inputs; rooms and messages are never mutated.
//
// Per room, every non-deleted message moves the room's unsettled amount by
// its parsed amount: money flowing to the user (the user ACCEPTs, or the
// counterparty GIVEs) raises it, money flowing from the user lowers it.
// GROUP rooms keep their own running totals but are excluded from the global
// totals, since group transactions are re-expressed as pairwise LEDGER
// messages at ingestion and would otherwise be counted twice.
func ReduceLedger(rooms []*entity.Room, userPhone string) *entity.Ledger {
	if len(rooms) == 0 {
		return EmptyLedger()
	}

	var (
		entries             []*entity.LedgerEntry
		journal             []*entity.Message
		totalAmountGiven    float64
		totalAmountReceived float64
	)

	for _, room := range rooms {
		var (
			unsettledAmount float64
			totalGiven      float64
			totalAccepted   float64
		)

		journal = append(journal, room.Messages...)

		roomName := room.RoomName
		if room.RoomType == entity.RoomTypeLedger {
			for _, member := range room.Members {
				if member.Contact != userPhone {
					roomName = member.Name
					break
				}
			}
		}

		for _, msg := range room.Messages {
			if msg.Deleted {
				continue
			}

			amount := parseAmount(msg.Amount)
			fromUser := msg.From == userPhone

			switch {
			case fromUser && msg.TransactionType == entity.TransactionTypeAccept:
				unsettledAmount += amount
				totalAccepted += amount
				if room.RoomType != entity.RoomTypeGroup {
					totalAmountReceived += amount
				}
			case fromUser && msg.TransactionType == entity.TransactionTypeGive:
				unsettledAmount -= amount
				totalGiven += amount
				if room.RoomType != entity.RoomTypeGroup {
					totalAmountGiven += amount
				}
			case !fromUser && msg.TransactionType == entity.TransactionTypeAccept:
				unsettledAmount -= amount
				totalGiven += amount
				if room.RoomType != entity.RoomTypeGroup {
					totalAmountGiven += amount
				}
			case !fromUser && msg.TransactionType == entity.TransactionTypeGive:
				unsettledAmount += amount
				totalAccepted += amount
				if room.RoomType != entity.RoomTypeGroup {
					totalAmountReceived += amount
				}
			}
		}

		settleStatus := entity.SettleStatusSettled
		if unsettledAmount > 0 {
			settleStatus = entity.SettleStatusToGive
		} else if unsettledAmount < 0 {
			settleStatus = entity.SettleStatusToReceive
		}

		entries = append(entries, &entity.LedgerEntry{
			ID:        room.ID,
			CreatedAt: room.CreatedAt,
			Owes: entity.Owes{
				UnsettledAmount: formatAmount(math.Abs(unsettledAmount)),
				SettleStatus:    settleStatus,
			},
			TotalGiven:    formatAmount(totalGiven),
			TotalAccepted: formatAmount(totalAccepted),
			Entry:         room.Messages,
			RoomDetails: entity.RoomDetails{
				Members:  room.Members,
				RoomType: room.RoomType,
				RoomName: roomName,
			},
		})
	}

	netAmount := totalAmountReceived - totalAmountGiven

	if journal == nil {
		journal = []*entity.Message{}
	}

	return &entity.Ledger{
		Ledger:              groupLedger(entries),
		UngroupedLedger:     entries,
		Groups:              []*entity.LedgerEntry{},
		Journal:             journal,
		TotalAmountGiven:    formatAmount(math.Abs(totalAmountGiven)),
		TotalAmountReceived: formatAmount(math.Abs(totalAmountReceived)),
		NetAmount:           formatAmount(netAmount),
	}
}

// TopNLedger groups entries by settle status and keeps, per status, the n
// entries with the largest unsettled amount, descending. Amounts are ranked
// by their integer part only; fractional cents do not affect the order.
func TopNLedger(entries []*entity.LedgerEntry, n int) map[string][]*entity.LedgerEntry {
	grouped := map[string][]*entity.LedgerEntry{}
	for _, e := range entries {
		grouped[e.Owes.SettleStatus] = append(grouped[e.Owes.SettleStatus], e)
	}

	for status, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return truncatedAmount(group[i].Owes.UnsettledAmount) < truncatedAmount(group[j].Owes.UnsettledAmount)
		})

		if n < len(group) {
			group = group[len(group)-n:]
		}

		reversed := make([]*entity.LedgerEntry, len(group))
		for i, e := range group {
			reversed[len(group)-1-i] = e
		}
		grouped[status] = reversed
	}

	return grouped
}

func groupLedger(entries []*entity.LedgerEntry) map[string][]*entity.LedgerEntry {
	grouped := map[string][]*entity.LedgerEntry{}
	for _, e := range entries {
		grouped[e.RoomDetails.RoomType] = append(grouped[e.RoomDetails.RoomType], e)
	}
	return grouped
}

// parseAmount mirrors the stored-text-to-float conversion of the ingestion
// clients: unparseable text becomes NaN and flows into the totals unguarded.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func truncatedAmount(s string) int {
	intPart, _, _ := strings.Cut(s, ".")
	v, err := strconv.Atoi(intPart)
	if err != nil {
		return 0
	}
	return v
}
