// Package services orchestrates validation, ownership checks, persistence
// and response shaping. All domain errors leave here as apperr values.
package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/centavo-dev/centavo/internal/adapters"
	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/types"
	"github.com/centavo-dev/centavo/internal/validation"
)

type UserService struct {
	users        store.UserStore
	transactions store.TransactionStore
	goals        store.GoalStore
}

func NewUserService(users store.UserStore, transactions store.TransactionStore, goals store.GoalStore) *UserService {
	return &UserService{users: users, transactions: transactions, goals: goals}
}

type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *UserService) Register(in RegisterUserInput) (*types.UserRegisterResponse, error) {
	if err := validation.Name(in.Name); err != nil {
		return nil, err
	}
	if err := validation.EmailFormat(in.Email); err != nil {
		return nil, err
	}

	existing, err := s.users.ByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BadRequest("Este email já está cadastrado.")
	}

	if err := validation.PasswordStrength(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return &types.UserRegisterResponse{
		Message: "Success",
		User:    adapters.UserResponse(&user),
	}, nil
}

// Login verifies the credentials and returns the matching user. A missing
// account and a wrong password are reported distinctly (404 vs 401).
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Incorrect password")
	}
	return user, nil
}

func (s *UserService) Get(userID uint) (*types.UserResponse, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	response := adapters.UserResponse(user)
	return &response, nil
}

func (s *UserService) Delete(userID uint) error {
	user, err := s.users.ByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound(fmt.Sprintf("Usuário com ID %d não encontrado.", userID))
	}
	return s.users.Delete(userID)
}

// Info builds the aggregated financial summary: overall totals and
// balance over the optional window, goal targets per type, and the
// per-category income and expense breakdowns.
func (s *UserService) Info(userID uint, start, end *time.Time) (*types.UserInfoResponse, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	totals, err := s.transactions.SumByType(userID, start, end)
	if err != nil {
		return nil, err
	}
	financial := types.FinancialData{
		TotalIncome:    totals[types.TypeIncome],
		TotalExpense:   totals[types.TypeExpense],
		CurrentBalance: totals[types.TypeIncome].Sub(totals[types.TypeExpense]),
	}

	goalTotals, err := s.goals.SumValueByType(userID)
	if err != nil {
		return nil, err
	}
	generalGoals := []types.GoalByType{
		{GoalType: types.TypeIncome, GoalValue: goalTotals[types.TypeIncome]},
		{GoalType: types.TypeExpense, GoalValue: goalTotals[types.TypeExpense]},
	}

	categorySums, err := s.transactions.SumByTypeAndCategory(userID, start, end)
	if err != nil {
		return nil, err
	}
	incomeSums := make(map[string]decimal.Decimal)
	expenseSums := make(map[string]decimal.Decimal)
	for _, sum := range categorySums {
		if sum.Type == types.TypeIncome {
			incomeSums[sum.Category] = sum.Total
		} else {
			expenseSums[sum.Category] = sum.Total
		}
	}

	return &types.UserInfoResponse{
		FinancialData: financial,
		GeneralGoals:  generalGoals,
		IncomeList:    adapters.CategoryList(incomeSums, types.IncomeCategories),
		ExpenseList:   adapters.CategoryList(expenseSums, types.ExpenseCategories),
	}, nil
}
