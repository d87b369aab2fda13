package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"splitledger/internal/domain/entity"
	"splitledger/internal/domain/repository"
	"splitledger/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Currency == "" {
		message.Currency = "INR"
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByRoomID(ctx context.Context, roomID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").Where("roomId", "==", roomID).OrderBy("createdAt", firestore.Asc)
	return r.collect(ctx, query, "room "+roomID)
}

func (r *firestoreMessageRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.Message, error) {
	query := r.client.Collection("messages").Where("createdAt", ">=", since)
	return r.collect(ctx, query, "window query")
}

func (r *firestoreMessageRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	docs, err := r.client.Collection("messages").Where("createdAt", ">=", since).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while counting messages since %v: %v", since, err)
		return 0, errors.Internal("Failed to count messages", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreMessageRepository) collect(ctx context.Context, query firestore.Query, scope string) ([]*entity.Message, error) {
	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages (%s): %v", scope, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data (%s): %v", scope, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}
