package domain

import "time"

// MarketingMessage is a logged marketing notification in the
// marketingMessages collection. Only the message text is stored; the
// recipient list is logged, not persisted.
type MarketingMessage struct {
	Message   string    `firestore:"message" json:"message"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`

	ID string `firestore:"-" json:"id"`
}
