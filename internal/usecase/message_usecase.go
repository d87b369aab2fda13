package usecase

import (
	"context"
	"log"

	"splitledger/internal/domain/entity"
	"splitledger/internal/domain/repository"
	"splitledger/pkg/errors"
	"splitledger/pkg/utils"
)

type MessageUseCase struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(roomRepo repository.RoomRepository, messageRepo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
	}
}

type SplitMessageInput struct {
	Amount          string
	Currency        string
	Note            string
	From            string
	To              string
	SenderName      string
	ReceiverName    string
	TransactionType string // "ACCEPT", "GIVE"
	Category        string
	PaymentMode     string
}

// FindRoom resolves the LEDGER room between two participants by pair hash.
func (uc *MessageUseCase) FindRoom(ctx context.Context, from, to string) (*entity.Room, error) {
	roomHash := utils.RoomPairHash(from, to)
	return uc.roomRepo.GetByHash(ctx, roomHash)
}

// SaveSplitMessages persists a batch of pairwise messages produced by
// splitting a group transaction. Each message lands in the LEDGER room of its
// participant pair, creating the room first when none exists. Self-transfers
// are dropped.
//
// Lookups and creates are not serialized per pair: two concurrent batches
// for the same new pair can both miss the hash lookup and create duplicate
// rooms. Firestore carries no unique index on roomHash to catch this.
func (uc *MessageUseCase) SaveSplitMessages(ctx context.Context, inputs []SplitMessageInput) ([]*entity.Message, error) {
	var saved []*entity.Message

	for _, input := range inputs {
		if input.From == input.To {
			continue
		}

		room, err := uc.resolveRoom(ctx, input)
		if err != nil {
			return nil, err
		}

		message := &entity.Message{
			RoomID:          room.ID,
			Amount:          input.Amount,
			Currency:        input.Currency,
			Note:            input.Note,
			From:            input.From,
			To:              input.To,
			SenderName:      input.SenderName,
			ReceiverName:    input.ReceiverName,
			TransactionType: input.TransactionType,
			Category:        input.Category,
			PaymentMode:     input.PaymentMode,
		}

		if err := uc.messageRepo.Create(ctx, message); err != nil {
			log.Printf("SaveSplitMessages Error: Failed to create message for room %s: %v", room.ID, err)
			return nil, err
		}

		if _, err := uc.roomRepo.AppendMessage(ctx, room.ID, message.ID); err != nil {
			log.Printf("SaveSplitMessages Error: Failed to append message %s to room %s: %v", message.ID, room.ID, err)
			return nil, err
		}

		saved = append(saved, message)
	}

	return saved, nil
}

func (uc *MessageUseCase) resolveRoom(ctx context.Context, input SplitMessageInput) (*entity.Room, error) {
	roomHash := utils.RoomPairHash(input.From, input.To)

	room, err := uc.roomRepo.GetByHash(ctx, roomHash)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		log.Printf("resolveRoom Error: Failed to look up room for pair %s/%s: %v", input.From, input.To, err)
		return nil, err
	}

	newRoom := &entity.Room{
		RoomName: input.ReceiverName,
		RoomType: entity.RoomTypeLedger,
		RoomHash: roomHash,
		Members: []entity.Member{
			{Name: input.SenderName, Contact: input.From, Admin: true},
			{Name: input.ReceiverName, Contact: input.To},
		},
	}

	if err := uc.roomRepo.Create(ctx, newRoom); err != nil {
		log.Printf("resolveRoom Error: Failed to create room for pair %s/%s: %v", input.From, input.To, err)
		return nil, err
	}

	return newRoom, nil
}
