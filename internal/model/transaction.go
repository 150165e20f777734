package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

// Transaction is a single ledger entry. The ledger is append-only: entries
// are never updated or deleted once recorded.
type Transaction struct {
	BaseModel
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=income expense"`
	Amount      float64         `gorm:"not null" json:"amount" validate:"required,gt=0"` // Always stored positive; Type carries direction
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	// Historical link to the product this sale depleted. Nil for plain
	// income/expense entries. Non-owning: deleting the product leaves the
	// ledger entry intact with a dangling reference.
	ProductID *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	Product   *Product   `gorm:"constraint:OnDelete:SET NULL" json:"product,omitempty" validate:"-"`
	Quantity  *int       `json:"quantity,omitempty"`
}
