package models

import (
	"time"
)

// User model. The password hash never leaves the server.
type User struct {
	ID             uint          `gorm:"primaryKey" json:"_id"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"-"`
	Email          string        `gorm:"size:255;not null;unique" json:"email"`
	HashedPassword []byte        `gorm:"not null" json:"-"`
	Transactions   []Transaction `json:"-"`
}
