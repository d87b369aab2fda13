package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"splitledger/internal/domain/entity"
	"splitledger/internal/domain/repository"
	"splitledger/pkg/errors"
)

type firestoreRoomRepository struct {
	client *firestore.Client
}

func NewFirestoreRoomRepository(client *firestore.Client) repository.RoomRepository {
	return &firestoreRoomRepository{
		client: client,
	}
}

func (r *firestoreRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if room.MessageIDs == nil {
		room.MessageIDs = []string{}
	}

	// Keep the flat contacts list in sync with members so participant
	// queries can use array-contains.
	room.Contacts = make([]string, 0, len(room.Members))
	for _, m := range room.Members {
		room.Contacts = append(room.Contacts, m.Contact)
	}

	_, err := r.client.Collection("rooms").Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to create room", err)
	}

	return nil
}

func (r *firestoreRoomRepository) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	doc, err := r.client.Collection("rooms").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Room", err)
		}
		return nil, errors.Internal("Failed to get room", err)
	}

	var room entity.Room
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse room data", err)
	}

	return &room, nil
}

func (r *firestoreRoomRepository) GetByHash(ctx context.Context, roomHash string) (*entity.Room, error) {
	query := r.client.Collection("rooms").Where("roomHash", "==", roomHash).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Room", nil)
		}
		return nil, errors.Internal("Failed to query room by hash", err)
	}

	var room entity.Room
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse room data", err)
	}

	return &room, nil
}

func (r *firestoreRoomRepository) ListByParticipant(ctx context.Context, contact string) ([]*entity.Room, error) {
	query := r.client.Collection("rooms").Where("contacts", "array-contains", contact)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while fetching rooms for contact %s: %v", contact, err)
		return nil, errors.Internal("Failed to fetch rooms", err)
	}

	var rooms []*entity.Room
	for _, doc := range docs {
		var room entity.Room
		if err := doc.DataTo(&room); err != nil {
			log.Printf("Error parsing room data for contact %s: %v", contact, err)
			continue // Skip bad data instead of failing
		}

		messages, err := r.listRoomMessages(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		room.Messages = messages

		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *firestoreRoomRepository) listRoomMessages(ctx context.Context, roomID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").Where("roomId", "==", roomID).OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages for room %s: %v", roomID, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data for room %s: %v", roomID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreRoomRepository) AppendMessage(ctx context.Context, roomID, messageID string) (*entity.Room, error) {
	docRef := r.client.Collection("rooms").Doc(roomID)

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "messages", Value: firestore.ArrayUnion(messageID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Room", err)
		}
		return nil, errors.Internal("Failed to append message to room", err)
	}

	return r.GetByID(ctx, roomID)
}
