package models

import "time"

// MaxCommentLength caps the trimmed comment body.
const MaxCommentLength = 280

// Comment is attached to a pin and always carries its author. Email is the
// author's email joined in for display; it is not stored on the comment row.
type Comment struct {
	ID        int64     `json:"id"`
	PinID     int64     `json:"pinID"`
	AccountID int64     `json:"accountID"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email,omitempty"`
}
