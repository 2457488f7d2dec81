// Package store is the persistence gateway. Lookups report absence as a
// nil result, never as a domain error; translating absence into NotFound
// is the service layer's job.
package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/models"
)

// TransactionFilter narrows ByUser listings. Zero-valued fields are
// ignored; Start and End are inclusive on both ends.
type TransactionFilter struct {
	Type     string
	Category string
	Start    *time.Time
	End      *time.Time
}

type TypeCategorySum struct {
	Type     string
	Category string
	Total    decimal.Decimal
}

type UserStore interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	Delete(id uint) error
}

type TransactionStore interface {
	Create(transaction *models.Transaction) error
	ByID(id uint) (*models.Transaction, error)
	ByUser(userID uint, filter TransactionFilter) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uint) error

	// SumByType always returns both type keys, defaulting to zero.
	SumByType(userID uint, start, end *time.Time) (map[string]decimal.Decimal, error)
	// SumByCategory returns only the categories that actually appear.
	SumByCategory(userID uint, transactionType string, start, end *time.Time) (map[string]decimal.Decimal, error)
	SumByTypeAndCategory(userID uint, start, end *time.Time) ([]TypeCategorySum, error)
}

type GoalStore interface {
	Create(goal *models.Goal) error
	ByID(id uint) (*models.Goal, error)
	ByUser(userID uint) ([]models.Goal, error)
	ByUserAndCategory(userID uint, category string) (*models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uint) error

	// SumValueByType always returns both type keys, defaulting to zero.
	SumValueByType(userID uint) (map[string]decimal.Decimal, error)
}

type Stores struct {
	Users        UserStore
	Transactions TransactionStore
	Goals        GoalStore
}
