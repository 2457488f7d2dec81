package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/types"
)

func New(db *gorm.DB) Stores {
	return Stores{
		Users:        &gormUserStore{db: db},
		Transactions: &gormTransactionStore{db: db},
		Goals:        &gormGoalStore{db: db},
	}
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormUserStore) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) Delete(id uint) error {
	user := models.User{Model: gorm.Model{ID: id}}
	return s.db.Select(clause.Associations).Delete(&user).Error
}

type gormTransactionStore struct {
	db *gorm.DB
}

func (s *gormTransactionStore) Create(transaction *models.Transaction) error {
	return s.db.Create(transaction).Error
}

func (s *gormTransactionStore) ByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (s *gormTransactionStore) ByUser(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	query = dateBounds(query, filter.Start, filter.End)

	var transactions []models.Transaction
	if err := query.Order("date, id").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *gormTransactionStore) Update(transaction *models.Transaction) error {
	return s.db.Save(transaction).Error
}

func (s *gormTransactionStore) Delete(id uint) error {
	return s.db.Delete(&models.Transaction{}, id).Error
}

func (s *gormTransactionStore) SumByType(userID uint, start, end *time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	query := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(value), 0) AS total").
		Where("user_id = ?", userID)
	query = dateBounds(query, start, end)
	if err := query.Group("type").Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{
		types.TypeIncome:  decimal.Zero,
		types.TypeExpense: decimal.Zero,
	}
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}

func (s *gormTransactionStore) SumByCategory(userID uint, transactionType string, start, end *time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
	}
	query := s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(value), 0) AS total").
		Where("user_id = ? AND type = ?", userID, transactionType)
	query = dateBounds(query, start, end)
	if err := query.Group("category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}
	return totals, nil
}

func (s *gormTransactionStore) SumByTypeAndCategory(userID uint, start, end *time.Time) ([]TypeCategorySum, error) {
	var rows []struct {
		Type     string
		Category string
		Total    decimal.Decimal
	}
	query := s.db.Model(&models.Transaction{}).
		Select("type, category, COALESCE(SUM(value), 0) AS total").
		Where("user_id = ?", userID)
	query = dateBounds(query, start, end)
	if err := query.Group("type, category").Order("type, category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make([]TypeCategorySum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, TypeCategorySum{Type: row.Type, Category: row.Category, Total: row.Total})
	}
	return sums, nil
}

type gormGoalStore struct {
	db *gorm.DB
}

func (s *gormGoalStore) Create(goal *models.Goal) error {
	return s.db.Create(goal).Error
}

func (s *gormGoalStore) ByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (s *gormGoalStore) ByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *gormGoalStore) ByUserAndCategory(userID uint, category string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (s *gormGoalStore) Update(goal *models.Goal) error {
	return s.db.Save(goal).Error
}

func (s *gormGoalStore) Delete(id uint) error {
	return s.db.Delete(&models.Goal{}, id).Error
}

func (s *gormGoalStore) SumValueByType(userID uint) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	if err := s.db.Model(&models.Goal{}).
		Select("type, COALESCE(SUM(value), 0) AS total").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{
		types.TypeIncome:  decimal.Zero,
		types.TypeExpense: decimal.Zero,
	}
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}

func dateBounds(query *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}
	return query
}
