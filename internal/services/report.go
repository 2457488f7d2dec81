package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/adapters"
	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/types"
)

type ReportService struct {
	users        store.UserStore
	transactions store.TransactionStore
}

func NewReportService(users store.UserStore, transactions store.TransactionStore) *ReportService {
	return &ReportService{users: users, transactions: transactions}
}

func (s *ReportService) requireUser(userID uint) error {
	user, err := s.users.ByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	return nil
}

// TransactionsInfo returns the trailing-12-months series plus category
// breakdowns. The series is anchored at the end date (today when absent):
// it starts on the first day of the month 11 months earlier and holds
// exactly 12 buckets, oldest first. Any start argument only narrows the
// category breakdowns, never the series.
func (s *ReportService) TransactionsInfo(userID uint, start, end *time.Time) (*types.TransactionInfoResponse, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	anchor := time.Now()
	if end != nil {
		anchor = *end
	}
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, -11, 0)

	months := make([]types.TransactionByMonth, 0, 12)
	for i := 0; i < 12; i++ {
		monthStart := first.AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)
		totals, err := s.transactions.SumByType(userID, &monthStart, &monthEnd)
		if err != nil {
			return nil, err
		}
		months = append(months, types.TransactionByMonth{
			TransactionMonth: types.MonthAbbr[monthStart.Month()-1],
			MonthIncome:      totals[types.TypeIncome],
			MonthExpense:     totals[types.TypeExpense],
		})
	}

	incomeSums, err := s.transactions.SumByCategory(userID, types.TypeIncome, start, end)
	if err != nil {
		return nil, err
	}
	expenseSums, err := s.transactions.SumByCategory(userID, types.TypeExpense, start, end)
	if err != nil {
		return nil, err
	}

	return &types.TransactionInfoResponse{
		LastYearTransactions: months,
		IncomeList:           adapters.CategoryList(incomeSums, types.IncomeCategories),
		ExpenseList:          adapters.CategoryList(expenseSums, types.ExpenseCategories),
	}, nil
}

func (s *ReportService) DashboardTotals(userID uint) (*types.DashboardTotals, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	totals, err := s.transactions.SumByType(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &types.DashboardTotals{
		TotalReceitas: totals[types.TypeIncome],
		TotalDespesas: totals[types.TypeExpense],
		Saldo:         totals[types.TypeIncome].Sub(totals[types.TypeExpense]),
	}, nil
}

// MonthlySummary buckets the whole ledger by month of year, folding every
// year together, and always emits the 12 buckets January through December.
func (s *ReportService) MonthlySummary(userID uint) ([]types.MonthlyReportEntry, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.ByUser(userID, store.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	var income, expense [12]decimal.Decimal
	for i := range transactions {
		month := int(transactions[i].Date.Month()) - 1
		if transactions[i].Type == types.TypeIncome {
			income[month] = income[month].Add(transactions[i].Value)
		} else {
			expense[month] = expense[month].Add(transactions[i].Value)
		}
	}

	entries := make([]types.MonthlyReportEntry, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, types.MonthlyReportEntry{
			Mes:     types.MonthAbbr[i],
			Receita: income[i],
			Despesa: expense[i],
		})
	}
	return entries, nil
}

func (s *ReportService) IncomeByCategory(userID uint) ([]types.CategoryReportEntry, error) {
	return s.categoryReport(userID, types.TypeIncome, types.IncomeCategories)
}

func (s *ReportService) ExpensesByCategory(userID uint) ([]types.CategoryReportEntry, error) {
	return s.categoryReport(userID, types.TypeExpense, types.ExpenseCategories)
}

func (s *ReportService) categoryReport(userID uint, transactionType string, order []string) ([]types.CategoryReportEntry, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	sums, err := s.transactions.SumByCategory(userID, transactionType, nil, nil)
	if err != nil {
		return nil, err
	}
	return adapters.CategoryReport(sums, order), nil
}
