package domain

import "time"

// User represents a registered bot user
type User struct {
	ID        int64     `db:"id"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
