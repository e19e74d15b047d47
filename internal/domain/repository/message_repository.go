package repository

import (
	"context"

	"finderskeeper/internal/domain/entity"
)

// MessageRepository is the append-only message store. Create is an
// unconditional insert; nothing here updates message content. ListByRecipient
// is backed by a secondary index that may lag a very recent write, which is
// why callers fall back to ScanConversation.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByRecipient returns every message addressed to userID, newest first.
	ListByRecipient(ctx context.Context, userID string) ([]*entity.Message, error)

	// ListBySender returns every message authored by userID.
	ListBySender(ctx context.Context, userID string) ([]*entity.Message, error)

	// ScanConversation reads at most limit messages for itemID and returns
	// those exchanged between userA and userB in either direction. Unindexed
	// and therefore cost-bounded; last-resort lookup only.
	ScanConversation(ctx context.Context, itemID, userA, userB string, limit int) ([]*entity.Message, error)

	// MarkRead flips the read flag on a single message.
	MarkRead(ctx context.Context, messageID string) error
}
