// Package storetest provides in-memory store implementations for tests.
// They honor the same contracts as the gorm stores: absence is a nil
// result, type-sum maps always carry both keys, category sums only carry
// categories that appear, and date bounds are inclusive.
package storetest

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/types"
)

func New() store.Stores {
	return store.Stores{
		Users:        &UserStore{users: make(map[uint]models.User)},
		Transactions: &TransactionStore{transactions: make(map[uint]models.Transaction)},
		Goals:        &GoalStore{goals: make(map[uint]models.Goal)},
	}
}

type UserStore struct {
	nextID uint
	users  map[uint]models.User
}

func (s *UserStore) Create(user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) ByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *UserStore) ByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *UserStore) Delete(id uint) error {
	delete(s.users, id)
	return nil
}

type TransactionStore struct {
	nextID       uint
	transactions map[uint]models.Transaction
}

func (s *TransactionStore) Create(transaction *models.Transaction) error {
	s.nextID++
	transaction.ID = s.nextID
	s.transactions[transaction.ID] = *transaction
	return nil
}

func (s *TransactionStore) ByID(id uint) (*models.Transaction, error) {
	transaction, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (s *TransactionStore) ByUser(userID uint, filter store.TransactionFilter) ([]models.Transaction, error) {
	var matched []models.Transaction
	for _, transaction := range s.transactions {
		if transaction.UserID != userID {
			continue
		}
		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		if !withinBounds(transaction.Date, filter.Start, filter.End) {
			continue
		}
		matched = append(matched, transaction)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (s *TransactionStore) Update(transaction *models.Transaction) error {
	s.transactions[transaction.ID] = *transaction
	return nil
}

func (s *TransactionStore) Delete(id uint) error {
	delete(s.transactions, id)
	return nil
}

func (s *TransactionStore) SumByType(userID uint, start, end *time.Time) (map[string]decimal.Decimal, error) {
	totals := map[string]decimal.Decimal{
		types.TypeIncome:  decimal.Zero,
		types.TypeExpense: decimal.Zero,
	}
	for _, transaction := range s.transactions {
		if transaction.UserID != userID || !withinBounds(transaction.Date, start, end) {
			continue
		}
		totals[transaction.Type] = totals[transaction.Type].Add(transaction.Value)
	}
	return totals, nil
}

func (s *TransactionStore) SumByCategory(userID uint, transactionType string, start, end *time.Time) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, transaction := range s.transactions {
		if transaction.UserID != userID || transaction.Type != transactionType {
			continue
		}
		if !withinBounds(transaction.Date, start, end) {
			continue
		}
		totals[transaction.Category] = totals[transaction.Category].Add(transaction.Value)
	}
	return totals, nil
}

func (s *TransactionStore) SumByTypeAndCategory(userID uint, start, end *time.Time) ([]store.TypeCategorySum, error) {
	grouped := make(map[string]store.TypeCategorySum)
	for _, transaction := range s.transactions {
		if transaction.UserID != userID || !withinBounds(transaction.Date, start, end) {
			continue
		}
		key := transaction.Type + "\x00" + transaction.Category
		entry, ok := grouped[key]
		if !ok {
			entry = store.TypeCategorySum{Type: transaction.Type, Category: transaction.Category, Total: decimal.Zero}
		}
		entry.Total = entry.Total.Add(transaction.Value)
		grouped[key] = entry
	}

	sums := make([]store.TypeCategorySum, 0, len(grouped))
	for _, entry := range grouped {
		sums = append(sums, entry)
	}
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Type != sums[j].Type {
			return strings.Compare(sums[i].Type, sums[j].Type) < 0
		}
		return strings.Compare(sums[i].Category, sums[j].Category) < 0
	})
	return sums, nil
}

type GoalStore struct {
	nextID uint
	goals  map[uint]models.Goal
}

func (s *GoalStore) Create(goal *models.Goal) error {
	s.nextID++
	goal.ID = s.nextID
	s.goals[goal.ID] = *goal
	return nil
}

func (s *GoalStore) ByID(id uint) (*models.Goal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, nil
	}
	return &goal, nil
}

func (s *GoalStore) ByUser(userID uint) ([]models.Goal, error) {
	var matched []models.Goal
	for _, goal := range s.goals {
		if goal.UserID == userID {
			matched = append(matched, goal)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *GoalStore) ByUserAndCategory(userID uint, category string) (*models.Goal, error) {
	goals, _ := s.ByUser(userID)
	for i := range goals {
		if goals[i].Category == category {
			return &goals[i], nil
		}
	}
	return nil, nil
}

func (s *GoalStore) Update(goal *models.Goal) error {
	s.goals[goal.ID] = *goal
	return nil
}

func (s *GoalStore) Delete(id uint) error {
	delete(s.goals, id)
	return nil
}

func (s *GoalStore) SumValueByType(userID uint) (map[string]decimal.Decimal, error) {
	totals := map[string]decimal.Decimal{
		types.TypeIncome:  decimal.Zero,
		types.TypeExpense: decimal.Zero,
	}
	for _, goal := range s.goals {
		if goal.UserID == userID {
			totals[goal.Type] = totals[goal.Type].Add(goal.Value)
		}
	}
	return totals, nil
}

func withinBounds(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}
