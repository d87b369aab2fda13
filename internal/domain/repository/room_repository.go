package repository

import (
	"context"

	"splitledger/internal/domain/entity"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	GetByHash(ctx context.Context, roomHash string) (*entity.Room, error)

	// ListByParticipant returns every room the contact is a member of,
	// with each room's Messages populated.
	ListByParticipant(ctx context.Context, contact string) ([]*entity.Room, error)

	AppendMessage(ctx context.Context, roomID, messageID string) (*entity.Room, error)
}
