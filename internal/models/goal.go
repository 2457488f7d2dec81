package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal targets a single category per user. Uniqueness is enforced by the
// service's upsert, not by the schema: two concurrent creates for the same
// category can still race into duplicate rows.
type Goal struct {
	gorm.Model

	UserID   uint            `gorm:"index;not null"`
	Value    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type     string          `gorm:"not null"` // "Receita" or "Despesa"
	Category string          `gorm:"index;not null"`
}
