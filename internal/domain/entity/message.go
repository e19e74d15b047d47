package entity

import "time"

// MessageTimeLayout is the createdAt wire format: UTC with fixed-width
// milliseconds, so lexicographic order of the stored strings matches
// chronological order. Thread sorting relies on this.
const MessageTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Message is an append-only record of one user-to-user message about an item.
// Item and participant details are denormalized onto the record at write time
// and never re-synced; this keeps thread aggregation a pure read.
type Message struct {
	ID              string `json:"id" firestore:"id"`
	ItemID          string `json:"itemId" firestore:"itemId"`
	ItemTitle       string `json:"itemTitle" firestore:"itemTitle"`
	ItemStatus      string `json:"itemStatus" firestore:"itemStatus"`
	SenderUserID    string `json:"senderUserId" firestore:"senderUserId"`
	SenderEmail     string `json:"senderEmail" firestore:"senderEmail"`
	SenderName      string `json:"senderName" firestore:"senderName"`
	RecipientUserID string `json:"recipientUserId" firestore:"recipientUserId"`
	RecipientEmail  string `json:"recipientEmail" firestore:"recipientEmail"`
	RecipientName   string `json:"recipientName" firestore:"recipientName"`
	Message         string `json:"message" firestore:"message"`
	CreatedAt       string `json:"createdAt" firestore:"createdAt"`
	Read            bool   `json:"read" firestore:"read"`
}

// MessageTimestamp formats t for the CreatedAt field.
func MessageTimestamp(t time.Time) string {
	return t.UTC().Format(MessageTimeLayout)
}
