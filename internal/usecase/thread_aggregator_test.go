package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finderskeeper/internal/domain/entity"
)

func testMessage(id, itemID, senderID, recipientID, createdAt string, read bool) *entity.Message {
	return &entity.Message{
		ID:              id,
		ItemID:          itemID,
		ItemTitle:       "Black Wallet",
		ItemStatus:      "lost",
		SenderUserID:    senderID,
		SenderEmail:     senderID + "@example.com",
		SenderName:      "Name of " + senderID,
		RecipientUserID: recipientID,
		RecipientEmail:  recipientID + "@example.com",
		RecipientName:   "Name of " + recipientID,
		Message:         "hello",
		CreatedAt:       createdAt,
		Read:            read,
	}
}

func TestBuildThreadsEmpty(t *testing.T) {
	result := buildThreads(nil, "user-a")

	assert.Empty(t, result.Threads)
	assert.Equal(t, 0, result.TotalThreads)
	assert.Equal(t, 0, result.TotalMessages)
	assert.Equal(t, 0, result.UnreadCount)
}

func TestBuildThreadsGroupsBothDirections(t *testing.T) {
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T10:00:00.000Z", true),
		testMessage("m2", "item-1", "user-b", "user-a", "2026-08-28T10:05:00.000Z", false),
		testMessage("m3", "item-1", "user-a", "user-b", "2026-08-28T10:10:00.000Z", false),
	}

	result := buildThreads(messages, "user-a")

	require.Len(t, result.Threads, 1)
	thread := result.Threads[0]

	assert.Equal(t, entity.ThreadKey("item-1", "user-a", "user-b"), thread.ThreadID)
	assert.Len(t, thread.Messages, 3)
	assert.Equal(t, 3, result.TotalMessages)
	assert.Equal(t, "2026-08-28T10:10:00.000Z", thread.LastMessageTime)
}

func TestBuildThreadsMessagesAscending(t *testing.T) {
	// Deliberately out of order.
	messages := []*entity.Message{
		testMessage("m3", "item-1", "user-a", "user-b", "2026-08-28T10:10:00.000Z", false),
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T10:00:00.000Z", true),
		testMessage("m2", "item-1", "user-b", "user-a", "2026-08-28T10:05:00.000Z", false),
	}

	result := buildThreads(messages, "user-a")

	require.Len(t, result.Threads, 1)
	got := result.Threads[0].Messages
	require.Len(t, got, 3)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m2", got[1].ID)
	assert.Equal(t, "m3", got[2].ID)
}

func TestBuildThreadsUnreadCountsViewerRelative(t *testing.T) {
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T10:00:00.000Z", false),
		testMessage("m2", "item-1", "user-b", "user-a", "2026-08-28T10:05:00.000Z", false),
		testMessage("m3", "item-1", "user-b", "user-a", "2026-08-28T10:10:00.000Z", true),
	}

	forA := buildThreads(messages, "user-a")
	forB := buildThreads(messages, "user-b")

	require.Len(t, forA.Threads, 1)
	require.Len(t, forB.Threads, 1)

	// m2 is unread and addressed to A; m1 is unread and addressed to B.
	assert.Equal(t, 1, forA.Threads[0].UnreadCount)
	assert.Equal(t, 1, forB.Threads[0].UnreadCount)
	assert.Equal(t, 1, forA.UnreadCount)
	assert.Equal(t, 1, forB.UnreadCount)
}

func TestBuildThreadsSymmetricBetweenParticipants(t *testing.T) {
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T10:00:00.000Z", false),
		testMessage("m2", "item-1", "user-b", "user-a", "2026-08-28T10:05:00.000Z", false),
	}

	forA := buildThreads(messages, "user-a")
	forB := buildThreads(messages, "user-b")

	require.Len(t, forA.Threads, 1)
	require.Len(t, forB.Threads, 1)

	assert.Equal(t, forA.Threads[0].ThreadID, forB.Threads[0].ThreadID)
	assert.Equal(t, forA.Threads[0].LastMessageTime, forB.Threads[0].LastMessageTime)
	assert.Equal(t, "user-b", forA.Threads[0].OtherUserID)
	assert.Equal(t, "user-a", forB.Threads[0].OtherUserID)
}

func TestBuildThreadsOtherUserStableAcrossSwappedRoles(t *testing.T) {
	// The first message encountered for a thread fixes the other-user fields,
	// later messages with swapped sender/recipient roles must not change them.
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-b", "user-a", "2026-08-28T10:00:00.000Z", false),
		testMessage("m2", "item-1", "user-a", "user-b", "2026-08-28T10:05:00.000Z", false),
	}

	result := buildThreads(messages, "user-a")

	require.Len(t, result.Threads, 1)
	thread := result.Threads[0]
	assert.Equal(t, "user-b", thread.OtherUserID)
	assert.Equal(t, "Name of user-b", thread.OtherUserName)
	assert.Equal(t, "user-b@example.com", thread.OtherUserEmail)
}

func TestBuildThreadsSortedByLastActivityDescending(t *testing.T) {
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T09:00:00.000Z", false),
		testMessage("m2", "item-2", "user-a", "user-c", "2026-08-28T11:00:00.000Z", false),
		testMessage("m3", "item-3", "user-d", "user-a", "2026-08-28T10:00:00.000Z", false),
	}

	result := buildThreads(messages, "user-a")

	require.Len(t, result.Threads, 3)
	for i := 1; i < len(result.Threads); i++ {
		assert.GreaterOrEqual(t, result.Threads[i-1].LastMessageTime, result.Threads[i].LastMessageTime)
	}
	assert.Equal(t, "item-2", result.Threads[0].ItemID)
	assert.Equal(t, "item-3", result.Threads[1].ItemID)
	assert.Equal(t, "item-1", result.Threads[2].ItemID)
}

func TestBuildThreadsSeparateThreadsPerItem(t *testing.T) {
	// Same pair of users, two different items: two threads.
	messages := []*entity.Message{
		testMessage("m1", "item-1", "user-a", "user-b", "2026-08-28T10:00:00.000Z", false),
		testMessage("m2", "item-2", "user-b", "user-a", "2026-08-28T10:05:00.000Z", false),
	}

	result := buildThreads(messages, "user-a")

	assert.Len(t, result.Threads, 2)
	assert.Equal(t, 2, result.TotalThreads)
	assert.Equal(t, 2, result.TotalMessages)
}
