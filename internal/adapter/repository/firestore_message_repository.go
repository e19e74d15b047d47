package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"finderskeeper/internal/domain/entity"
	"finderskeeper/internal/domain/repository"
	"finderskeeper/pkg/errors"
	"finderskeeper/pkg/logger"
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
	if message.CreatedAt == "" {
		message.CreatedAt = entity.MessageTimestamp(time.Now())
	}

	// Unconditional insert: duplicate concurrent replies both land as
	// separate records, the store stays append-only.
	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.StoreUnavailable("message create", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByRecipient(ctx context.Context, userID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("recipientUserId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query.Documents(ctx), "list by recipient")
}

func (r *firestoreMessageRepository) ListBySender(ctx context.Context, userID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("senderUserId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query.Documents(ctx), "list by sender")
}

func (r *firestoreMessageRepository) ScanConversation(ctx context.Context, itemID, userA, userB string, limit int) ([]*entity.Message, error) {
	// Narrow by itemId in the store, match the participant pair in memory.
	// The limit bounds the read; on very large items the true match can fall
	// outside the window and the caller's fallback chain moves on.
	query := r.client.Collection("messages").Where("itemId", "==", itemID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	candidates, err := r.collect(ctx, query.Documents(ctx), "conversation scan")
	if err != nil {
		return nil, err
	}

	var matches []*entity.Message
	for _, msg := range candidates {
		if (msg.SenderUserID == userA && msg.RecipientUserID == userB) ||
			(msg.SenderUserID == userB && msg.RecipientUserID == userA) {
			matches = append(matches, msg)
		}
	}

	return matches, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, messageID string) error {
	_, err := r.client.Collection("messages").Doc(messageID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.StoreUnavailable("message mark read", err)
	}

	return nil
}

func (r *firestoreMessageRepository) collect(ctx context.Context, iter *firestore.DocumentIterator, op string) ([]*entity.Message, error) {
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error during %s: %v", op, err)
			return nil, errors.StoreUnavailable(op, err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Error("Error parsing message data during %s: %v", op, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
