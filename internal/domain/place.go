package domain

import "time"

// Place represents a favorite place saved by a user
type Place struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Lat       float64   `db:"lat"`
	Lon       float64   `db:"lon"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MessageRef points to a message that may be edited later
type MessageRef struct {
	ChatID    int64
	MessageID int
	Caption   string
}

// IsZero reports whether the reference points to no message
func (m MessageRef) IsZero() bool {
	return m.ChatID == 0 && m.MessageID == 0
}
