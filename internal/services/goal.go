package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/adapters"
	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/types"
	"github.com/centavo-dev/centavo/internal/validation"
)

type GoalService struct {
	users        store.UserStore
	goals        store.GoalStore
	transactions store.TransactionStore
}

func NewGoalService(users store.UserStore, goals store.GoalStore, transactions store.TransactionStore) *GoalService {
	return &GoalService{users: users, goals: goals, transactions: transactions}
}

type GoalInput struct {
	Value    decimal.Decimal `json:"value"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
}

func (s *GoalService) validate(in GoalInput) error {
	if err := validation.TransactionType(in.Type); err != nil {
		return err
	}
	if err := validation.TransactionCategory(in.Type, in.Category); err != nil {
		return err
	}
	return validation.Value(in.Value)
}

// Create upserts by (user, category): when the category is already
// targeted the call becomes an update of the existing goal, regardless of
// the existing goal's type. The find-then-insert sequence is not locked,
// so two concurrent creates for the same category can race.
func (s *GoalService) Create(userID uint, in GoalInput) (*types.GoalResponse, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Forbidden("Usuário não cadastrado.")
	}

	existing, err := s.goals.ByUserAndCategory(userID, in.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.Update(userID, existing.ID, in)
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	goal := models.Goal{
		UserID:   userID,
		Value:    in.Value,
		Type:     in.Type,
		Category: in.Category,
	}
	if err := s.goals.Create(&goal); err != nil {
		return nil, err
	}

	response := adapters.GoalResponse(&goal)
	return &response, nil
}

func (s *GoalService) List(userID uint) ([]types.GoalWithProgress, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Usuário com ID %d não encontrado.", userID))
	}

	goals, err := s.goals.ByUser(userID)
	if err != nil {
		return nil, err
	}

	list := make([]types.GoalWithProgress, 0, len(goals))
	for i := range goals {
		progress, err := s.currentValue(userID, &goals[i])
		if err != nil {
			return nil, err
		}
		list = append(list, types.GoalWithProgress{
			GoalID:       goals[i].ID,
			GoalValue:    goals[i].Value,
			GoalProgress: progress,
			GoalType:     goals[i].Type,
			GoalCategory: goals[i].Category,
		})
	}
	return list, nil
}

// currentValue is derived, never stored: the all-time sum of the
// transactions matching the goal's type and category.
func (s *GoalService) currentValue(userID uint, goal *models.Goal) (decimal.Decimal, error) {
	sums, err := s.transactions.SumByCategory(userID, goal.Type, nil, nil)
	if err != nil {
		return decimal.Zero, err
	}
	total, ok := sums[goal.Category]
	if !ok {
		return decimal.Zero, nil
	}
	return total, nil
}

func (s *GoalService) owned(userID, goalID uint) (*models.Goal, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	goal, err := s.goals.ByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, apperr.NotFound("Goal not found")
	}

	if goal.UserID != userID {
		return nil, apperr.Forbidden("Not authorized to access this goal")
	}
	return goal, nil
}

func (s *GoalService) Get(userID, goalID uint) (*types.GoalResponse, error) {
	goal, err := s.owned(userID, goalID)
	if err != nil {
		return nil, err
	}
	response := adapters.GoalResponse(goal)
	return &response, nil
}

func (s *GoalService) Update(userID, goalID uint, in GoalInput) (*types.GoalResponse, error) {
	goal, err := s.owned(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	goal.Value = in.Value
	goal.Type = in.Type
	goal.Category = in.Category
	if err := s.goals.Update(goal); err != nil {
		return nil, err
	}

	response := adapters.GoalResponse(goal)
	return &response, nil
}

func (s *GoalService) Delete(userID, goalID uint) error {
	goal, err := s.owned(userID, goalID)
	if err != nil {
		return err
	}
	return s.goals.Delete(goal.ID)
}
