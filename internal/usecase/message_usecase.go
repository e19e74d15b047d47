package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"finderskeeper/internal/domain/entity"
	"finderskeeper/internal/domain/repository"
	"finderskeeper/internal/infrastructure/ratelimit"
	"finderskeeper/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	itemRepo    repository.ItemRepository
	rateLimiter *ratelimit.RateLimiter

	maxMessageLength int
	scanLimit        int
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	itemRepo repository.ItemRepository,
	maxMessageLength int,
	scanLimit int,
) *MessageUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &MessageUseCase{
		messageRepo:      messageRepo,
		itemRepo:         itemRepo,
		rateLimiter:      rateLimiter,
		maxMessageLength: maxMessageLength,
		scanLimit:        scanLimit,
	}
}

type SendContactInput struct {
	ItemID  string
	Message string
}

type SendReplyInput struct {
	ItemID          string
	RecipientUserID string
	Message         string
}

type SendResult struct {
	MessageID string `json:"messageId"`
	ThreadID  string `json:"threadId"`
	SentAt    string `json:"sentAt"`
}

// conversationContext is the denormalized state a new reply needs: the item
// snapshot plus enough of the counterpart's identity to address the record.
type conversationContext struct {
	itemTitle      string
	itemStatus     string
	recipientName  string
	recipientEmail string
}

// GetUserThreads returns every conversation the user takes part in, grouped
// into threads. Pure read; a user with no messages gets an empty list.
func (uc *MessageUseCase) GetUserThreads(ctx context.Context, userID string) (*ThreadList, error) {
	received, err := uc.messageRepo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	sent, err := uc.messageRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages := append(received, sent...)
	result := buildThreads(messages, userID)

	log.Printf("Found %d conversation threads with %d total messages (%d unread) for user %s",
		result.TotalThreads, result.TotalMessages, result.UnreadCount, userID)

	return result, nil
}

// SendContact starts a conversation about an item: the item's owner becomes
// the recipient and the item snapshot is taken from the listing itself.
func (uc *MessageUseCase) SendContact(ctx context.Context, sender Identity, input SendContactInput) (*SendResult, error) {
	if err := uc.validateText(input.Message); err != nil {
		return nil, err
	}

	if allowed, waitTime := uc.rateLimiter.Allow(sender.UserID, "send_contact"); !allowed {
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", waitTime)
	}

	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if item.UserID == sender.UserID {
		return nil, errors.SelfMessageRejected("You cannot contact yourself")
	}

	message := &entity.Message{
		ID:              uuid.New().String(),
		ItemID:          item.ID,
		ItemTitle:       item.Title,
		ItemStatus:      item.Status,
		SenderUserID:    sender.UserID,
		SenderEmail:     sender.Email,
		SenderName:      sender.Name,
		RecipientUserID: item.UserID,
		RecipientEmail:  item.UserEmail,
		RecipientName:   item.UserName,
		Message:         input.Message,
		CreatedAt:       entity.MessageTimestamp(time.Now()),
		Read:            false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	log.Printf("Contact message stored (ID: %s), from %s to %s about item %s",
		message.ID, sender.Email, item.UserEmail, item.ID)

	return &SendResult{
		MessageID: message.ID,
		ThreadID:  entity.ThreadKey(message.ItemID, message.SenderUserID, message.RecipientUserID),
		SentAt:    message.CreatedAt,
	}, nil
}

// SendReply adds a message to an existing conversation. The conversation
// context is recovered through a bounded fallback chain because the recipient
// index may not yet reflect a very recent first contact.
func (uc *MessageUseCase) SendReply(ctx context.Context, sender Identity, input SendReplyInput) (*SendResult, error) {
	if err := uc.validateText(input.Message); err != nil {
		return nil, err
	}

	if input.RecipientUserID == sender.UserID {
		return nil, errors.SelfMessageRejected("You cannot send a message to yourself")
	}

	if allowed, waitTime := uc.rateLimiter.Allow(sender.UserID, "send_reply"); !allowed {
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", waitTime)
	}

	convCtx, err := uc.resolveConversation(ctx, input.ItemID, sender.UserID, input.RecipientUserID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:              uuid.New().String(),
		ItemID:          input.ItemID,
		ItemTitle:       convCtx.itemTitle,
		ItemStatus:      convCtx.itemStatus,
		SenderUserID:    sender.UserID,
		SenderEmail:     sender.Email,
		SenderName:      sender.Name,
		RecipientUserID: input.RecipientUserID,
		RecipientEmail:  convCtx.recipientEmail,
		RecipientName:   convCtx.recipientName,
		Message:         input.Message,
		CreatedAt:       entity.MessageTimestamp(time.Now()),
		Read:            false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	log.Printf("Reply sent (ID: %s), from %s to %s about item %s",
		message.ID, sender.Email, convCtx.recipientEmail, input.ItemID)

	return &SendResult{
		MessageID: message.ID,
		ThreadID:  entity.ThreadKey(message.ItemID, message.SenderUserID, message.RecipientUserID),
		SentAt:    message.CreatedAt,
	}, nil
}

// resolveConversation recovers the denormalized context for a reply. The
// chain runs once, in order, stopping at the first hit:
//
//  1. messages addressed to the current user where the counterpart wrote
//     about this item,
//  2. messages addressed to the counterpart where the current user wrote
//     about this item,
//  3. a cost-bounded scan of the item's messages for the unordered pair,
//  4. the item record itself, with the counterpart left as an explicit
//     placeholder.
//
// Steps 1-3 ride out recipient-index lag; there is no retry loop here, the
// caller retries the whole operation if every step misses.
func (uc *MessageUseCase) resolveConversation(ctx context.Context, itemID, userID, recipientID string) (*conversationContext, error) {
	inbound, err := uc.messageRepo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, msg := range inbound {
		if msg.ItemID == itemID && msg.SenderUserID == recipientID {
			return contextFromMessage(msg, recipientID), nil
		}
	}

	outbound, err := uc.messageRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	for _, msg := range outbound {
		if msg.ItemID == itemID && msg.SenderUserID == userID {
			return contextFromMessage(msg, recipientID), nil
		}
	}

	scanned, err := uc.messageRepo.ScanConversation(ctx, itemID, userID, recipientID, uc.scanLimit)
	if err != nil {
		return nil, err
	}
	if len(scanned) > 0 {
		return contextFromMessage(scanned[0], recipientID), nil
	}

	// Last resort: recover the item snapshot directly. The counterpart's
	// name and email are unknown at this point and stay placeholders rather
	// than being fabricated.
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		log.Printf("No conversation found between %s and %s for item %s, item lookup failed: %v",
			userID, recipientID, itemID, err)
		return nil, errors.ConversationNotFound(err)
	}

	return &conversationContext{
		itemTitle:      item.Title,
		itemStatus:     item.Status,
		recipientName:  "User",
		recipientEmail: "",
	}, nil
}

// contextFromMessage lifts the reply context off a prior message of the same
// conversation, picking whichever side of it the counterpart occupies.
func contextFromMessage(msg *entity.Message, recipientID string) *conversationContext {
	convCtx := &conversationContext{
		itemTitle:  msg.ItemTitle,
		itemStatus: msg.ItemStatus,
	}

	switch recipientID {
	case msg.SenderUserID:
		convCtx.recipientName = msg.SenderName
		convCtx.recipientEmail = msg.SenderEmail
	case msg.RecipientUserID:
		convCtx.recipientName = msg.RecipientName
		convCtx.recipientEmail = msg.RecipientEmail
	default:
		convCtx.recipientName = "User"
		convCtx.recipientEmail = ""
	}

	return convCtx
}

// MarkThreadRead flips the read flag on every unread message of one thread
// addressed to the caller. Messages the caller sent are untouched.
func (uc *MessageUseCase) MarkThreadRead(ctx context.Context, userID, itemID, otherUserID string) (int, error) {
	key := entity.ThreadKey(itemID, userID, otherUserID)

	inbound, err := uc.messageRepo.ListByRecipient(ctx, userID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, msg := range inbound {
		if msg.Read {
			continue
		}
		if entity.ThreadKey(msg.ItemID, msg.SenderUserID, msg.RecipientUserID) != key {
			continue
		}
		if err := uc.messageRepo.MarkRead(ctx, msg.ID); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

func (uc *MessageUseCase) validateText(text string) error {
	if len(text) > uc.maxMessageLength {
		return errors.BadRequest(fmt.Sprintf("Message must be less than %d characters", uc.maxMessageLength), nil)
	}
	return nil
}
