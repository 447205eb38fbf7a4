package models

import "time"

// Transaction type values. Sign convention lives in Type, not in Amount.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents a single income or expense record belonging to a user.
// The owner reference is set at creation and never changes; there is no update
// operation, only create/read/delete.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
	UserID      uint      `gorm:"index;not null" json:"user"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Type        string    `gorm:"size:16;not null;check:type IN ('income','expense')" json:"type"`
	Category    string    `gorm:"size:128;not null;default:'Other'" json:"category"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
