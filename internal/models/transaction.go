package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model

	UserID      uint            `gorm:"index;not null"`
	Date        time.Time       `gorm:"type:date;index;not null"`
	Value       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type        string          `gorm:"index;not null"` // "Receita" or "Despesa"
	Category    string          `gorm:"index;not null"`
	Description string
}
