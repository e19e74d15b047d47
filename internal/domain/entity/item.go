package entity

import "time"

const (
	ItemStatusLost  = "lost"
	ItemStatusFound = "found"
)

// Item is a lost-or-found listing. Owner identity is denormalized onto the
// listing so the contact flow can address the first message without a join.
type Item struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Status      string `json:"status" firestore:"status"`
	Category    string `json:"category" firestore:"category"`
	Location    string `json:"location" firestore:"location"`
	Date        string `json:"date" firestore:"date"`
	Description string `json:"description" firestore:"description"`
	Color       string `json:"color,omitempty" firestore:"color,omitempty"`
	ImageURL    string `json:"img,omitempty" firestore:"img,omitempty"`

	UserID    string `json:"userId" firestore:"userId"`
	UserEmail string `json:"userEmail" firestore:"userEmail"`
	UserName  string `json:"userName" firestore:"userName"`

	Resolved   bool       `json:"resolved" firestore:"resolved"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty" firestore:"resolvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
