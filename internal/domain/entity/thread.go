package entity

import "strings"

// threadKeySeparator never appears in Firebase UIDs or item UUIDs, so keys
// cannot collide across id boundaries.
const threadKeySeparator = "#"

// ThreadKey derives the canonical conversation key for an item and a pair of
// participants. The participant ids are sorted, so the key is identical no
// matter which of the two appears as sender on any given message.
func ThreadKey(itemID, userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return strings.Join([]string{itemID, userA, userB}, threadKeySeparator)
}

// Thread is a conversation derived at read time from the messages sharing a
// thread key. It is never persisted; it exists exactly as long as matching
// messages do. The OtherUser fields are relative to the requesting user.
type Thread struct {
	ThreadID        string     `json:"threadId"`
	ItemID          string     `json:"itemId"`
	ItemTitle       string     `json:"itemTitle"`
	ItemStatus      string     `json:"itemStatus"`
	OtherUserID     string     `json:"otherUserId"`
	OtherUserName   string     `json:"otherUserName"`
	OtherUserEmail  string     `json:"otherUserEmail"`
	Messages        []*Message `json:"messages"`
	LastMessageTime string     `json:"lastMessageTime"`
	UnreadCount     int        `json:"unreadCount"`
}
