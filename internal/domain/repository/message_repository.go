package repository

import (
	"context"
	"time"

	"splitledger/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByRoomID(ctx context.Context, roomID string) ([]*entity.Message, error)

	// Time-windowed queries backing the aggregate report endpoints.
	ListSince(ctx context.Context, since time.Time) ([]*entity.Message, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
