package usecase

import (
	"sort"

	"finderskeeper/internal/domain/entity"
)

// ThreadList is the aggregate view over every conversation a user takes part
// in. Threads are ordered newest-activity first.
type ThreadList struct {
	Threads       []*entity.Thread `json:"threads"`
	TotalThreads  int              `json:"totalThreads"`
	TotalMessages int              `json:"totalMessages"`
	UnreadCount   int              `json:"unreadCount"`
}

// buildThreads groups a flat set of messages into conversation threads for
// the given viewer. Input order is irrelevant except that the first message
// encountered for a thread fixes the other-user identity fields, which keeps
// them stable even when later messages have swapped sender/recipient roles.
func buildThreads(messages []*entity.Message, userID string) *ThreadList {
	threads := make(map[string]*entity.Thread)
	var order []string

	for _, msg := range messages {
		key := entity.ThreadKey(msg.ItemID, msg.SenderUserID, msg.RecipientUserID)

		thread, ok := threads[key]
		if !ok {
			otherID := msg.SenderUserID
			otherName := msg.SenderName
			otherEmail := msg.SenderEmail
			if msg.SenderUserID == userID {
				otherID = msg.RecipientUserID
				otherName = msg.RecipientName
				otherEmail = msg.RecipientEmail
			}

			thread = &entity.Thread{
				ThreadID:        key,
				ItemID:          msg.ItemID,
				ItemTitle:       msg.ItemTitle,
				ItemStatus:      msg.ItemStatus,
				OtherUserID:     otherID,
				OtherUserName:   otherName,
				OtherUserEmail:  otherEmail,
				LastMessageTime: msg.CreatedAt,
			}
			threads[key] = thread
			order = append(order, key)
		}

		thread.Messages = append(thread.Messages, msg)

		// CreatedAt strings are fixed-width UTC, so string comparison is
		// chronological comparison.
		if msg.CreatedAt > thread.LastMessageTime {
			thread.LastMessageTime = msg.CreatedAt
		}

		if msg.RecipientUserID == userID && !msg.Read {
			thread.UnreadCount++
		}
	}

	result := &ThreadList{
		Threads:       make([]*entity.Thread, 0, len(order)),
		TotalMessages: len(messages),
	}

	for _, key := range order {
		thread := threads[key]

		// Oldest first within a thread, for chat display. Stable: equal
		// timestamps keep their original relative order.
		sort.SliceStable(thread.Messages, func(i, j int) bool {
			return thread.Messages[i].CreatedAt < thread.Messages[j].CreatedAt
		})

		result.Threads = append(result.Threads, thread)
		result.UnreadCount += thread.UnreadCount
	}

	// Newest activity first across threads.
	sort.SliceStable(result.Threads, func(i, j int) bool {
		return result.Threads[i].LastMessageTime > result.Threads[j].LastMessageTime
	})

	result.TotalThreads = len(result.Threads)
	return result
}
