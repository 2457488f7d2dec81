// Package adapters converts stored records into the transport-facing
// shapes. Records are converted exactly once, at this boundary.
package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/types"
)

const dateLayout = "2006-01-02"

func UserResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

func TransactionResponse(transaction *models.Transaction) types.TransactionResponse {
	return types.TransactionResponse{
		TransactionID:          transaction.ID,
		TransactionDate:        transaction.Date.Format(dateLayout),
		TransactionValue:       transaction.Value,
		TransactionType:        transaction.Type,
		TransactionCategory:    transaction.Category,
		TransactionDescription: transaction.Description,
	}
}

func TransactionList(transactions []models.Transaction) []types.TransactionResponse {
	responses := make([]types.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, TransactionResponse(&transactions[i]))
	}
	return responses
}

func GoalResponse(goal *models.Goal) types.GoalResponse {
	return types.GoalResponse{
		GoalID:       goal.ID,
		GoalValue:    goal.Value,
		GoalType:     goal.Type,
		GoalCategory: goal.Category,
	}
}

// CategoryList orders per-category sums by the category whitelist so
// responses are deterministic. Categories without transactions are
// omitted, never emitted as zero entries.
func CategoryList(sums map[string]decimal.Decimal, order []string) []types.TransactionByCategory {
	list := make([]types.TransactionByCategory, 0, len(sums))
	for _, category := range order {
		if total, ok := sums[category]; ok {
			list = append(list, types.TransactionByCategory{
				TransactionCategory: category,
				TransactionValue:    total,
			})
		}
	}
	return list
}

func CategoryReport(sums map[string]decimal.Decimal, order []string) []types.CategoryReportEntry {
	entries := make([]types.CategoryReportEntry, 0, len(sums))
	for _, category := range order {
		if total, ok := sums[category]; ok {
			entries = append(entries, types.CategoryReportEntry{Name: category, Value: total})
		}
	}
	return entries
}
