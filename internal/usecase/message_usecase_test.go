package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"splitledger/internal/domain/entity"
	"splitledger/pkg/errors"
	"splitledger/pkg/utils"
)

type memoryRoomRepository struct {
	rooms   map[string]*entity.Room
	byHash  map[string]string
	appends []string
}

func newMemoryRoomRepository() *memoryRoomRepository {
	return &memoryRoomRepository{
		rooms:  map[string]*entity.Room{},
		byHash: map[string]string{},
	}
}

func (r *memoryRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	room.CreatedAt = time.Now()
	r.rooms[room.ID] = room
	if room.RoomHash != "" {
		r.byHash[room.RoomHash] = room.ID
	}
	return nil
}

func (r *memoryRoomRepository) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.NotFound("Room", nil)
	}
	return room, nil
}

func (r *memoryRoomRepository) GetByHash(ctx context.Context, roomHash string) (*entity.Room, error) {
	id, ok := r.byHash[roomHash]
	if !ok {
		return nil, errors.NotFound("Room", nil)
	}
	return r.rooms[id], nil
}

func (r *memoryRoomRepository) ListByParticipant(ctx context.Context, contact string) ([]*entity.Room, error) {
	var result []*entity.Room
	for _, room := range r.rooms {
		if room.HasMember(contact) {
			result = append(result, room)
		}
	}
	return result, nil
}

func (r *memoryRoomRepository) AppendMessage(ctx context.Context, roomID, messageID string) (*entity.Room, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.NotFound("Room", nil)
	}
	room.MessageIDs = append(room.MessageIDs, messageID)
	r.appends = append(r.appends, messageID)
	return room, nil
}

type memoryMessageRepository struct {
	messages []*entity.Message
}

func (r *memoryMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Currency == "" {
		message.Currency = "INR"
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *memoryMessageRepository) ListByRoomID(ctx context.Context, roomID string) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, m := range r.messages {
		if m.RoomID == roomID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memoryMessageRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, m := range r.messages {
		if !m.CreatedAt.Before(since) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memoryMessageRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	msgs, _ := r.ListSince(ctx, since)
	return int64(len(msgs)), nil
}

func splitInput(from, to, amount string) SplitMessageInput {
	return SplitMessageInput{
		Amount:          amount,
		From:            from,
		To:              to,
		SenderName:      "Sender " + from,
		ReceiverName:    "Receiver " + to,
		TransactionType: entity.TransactionTypeGive,
	}
}

func TestSaveSplitMessagesCreatesRoomOnFirstMessage(t *testing.T) {
	roomRepo := newMemoryRoomRepository()
	messageRepo := &memoryMessageRepository{}
	uc := NewMessageUseCase(roomRepo, messageRepo)

	saved, err := uc.SaveSplitMessages(context.Background(), []SplitMessageInput{
		splitInput("A", "B", "40"),
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Len(t, roomRepo.rooms, 1)

	room, err := roomRepo.GetByHash(context.Background(), utils.RoomPairHash("A", "B"))
	assert.NoError(t, err)
	assert.Equal(t, entity.RoomTypeLedger, room.RoomType)
	assert.Len(t, room.Members, 2)
	assert.True(t, room.HasMember("A"))
	assert.True(t, room.HasMember("B"))

	assert.Equal(t, room.ID, saved[0].RoomID)
	assert.Equal(t, []string{saved[0].ID}, room.MessageIDs)
}

func TestSaveSplitMessagesReusesExistingRoom(t *testing.T) {
	roomRepo := newMemoryRoomRepository()
	messageRepo := &memoryMessageRepository{}
	uc := NewMessageUseCase(roomRepo, messageRepo)

	first, err := uc.SaveSplitMessages(context.Background(), []SplitMessageInput{
		splitInput("A", "B", "40"),
	})
	assert.NoError(t, err)

	// Same pair reversed still resolves to the same room.
	second, err := uc.SaveSplitMessages(context.Background(), []SplitMessageInput{
		splitInput("B", "A", "15"),
	})
	assert.NoError(t, err)

	assert.Len(t, roomRepo.rooms, 1)
	assert.Equal(t, first[0].RoomID, second[0].RoomID)

	room, _ := roomRepo.GetByID(context.Background(), first[0].RoomID)
	assert.Len(t, room.MessageIDs, 2)
}

func TestSaveSplitMessagesDropsSelfTransfers(t *testing.T) {
	roomRepo := newMemoryRoomRepository()
	messageRepo := &memoryMessageRepository{}
	uc := NewMessageUseCase(roomRepo, messageRepo)

	saved, err := uc.SaveSplitMessages(context.Background(), []SplitMessageInput{
		splitInput("A", "A", "40"),
		splitInput("A", "C", "10"),
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, "C", saved[0].To)
	assert.Len(t, roomRepo.rooms, 1)
	assert.Len(t, messageRepo.messages, 1)
}

func TestFindRoomResolvesByPairHash(t *testing.T) {
	roomRepo := newMemoryRoomRepository()
	messageRepo := &memoryMessageRepository{}
	uc := NewMessageUseCase(roomRepo, messageRepo)

	_, err := uc.FindRoom(context.Background(), "A", "B")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.SaveSplitMessages(context.Background(), []SplitMessageInput{
		splitInput("A", "B", "40"),
	})
	assert.NoError(t, err)

	room, err := uc.FindRoom(context.Background(), "B", "A")
	assert.NoError(t, err)
	assert.NotNil(t, room)
}
