package types

import "github.com/shopspring/decimal"

// Response shapes mirror the field names the existing clients consume.

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type UserRegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UserLoginResponse struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

type TransactionResponse struct {
	TransactionID          uint            `json:"transaction_id"`
	TransactionDate        string          `json:"transaction_date"`
	TransactionValue       decimal.Decimal `json:"transaction_value"`
	TransactionType        string          `json:"transaction_type"`
	TransactionCategory    string          `json:"transaction_category"`
	TransactionDescription string          `json:"transaction_description"`
}

type GoalResponse struct {
	GoalID       uint            `json:"goal_id"`
	GoalValue    decimal.Decimal `json:"goal_value"`
	GoalType     string          `json:"goal_type"`
	GoalCategory string          `json:"goal_category"`
}

// GoalWithProgress is the listing shape; progress is the all-time sum of
// the transactions matching the goal's type and category, recomputed on
// every read.
type GoalWithProgress struct {
	GoalID       uint            `json:"goal_id"`
	GoalValue    decimal.Decimal `json:"goal_value"`
	GoalProgress decimal.Decimal `json:"goal_progress"`
	GoalType     string          `json:"goal_type"`
	GoalCategory string          `json:"goal_category"`
}

type FinancialData struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

type GoalByType struct {
	GoalType  string          `json:"goal_type"`
	GoalValue decimal.Decimal `json:"goal_value"`
}

type TransactionByCategory struct {
	TransactionCategory string          `json:"transaction_category"`
	TransactionValue    decimal.Decimal `json:"transaction_value"`
}

type UserInfoResponse struct {
	FinancialData FinancialData           `json:"financialData"`
	GeneralGoals  []GoalByType            `json:"generalGoals"`
	IncomeList    []TransactionByCategory `json:"incomeList"`
	ExpenseList   []TransactionByCategory `json:"expenseList"`
}

type TransactionByMonth struct {
	TransactionMonth string          `json:"transaction_month"`
	MonthIncome      decimal.Decimal `json:"month_income"`
	MonthExpense     decimal.Decimal `json:"month_expense"`
}

type TransactionInfoResponse struct {
	LastYearTransactions []TransactionByMonth    `json:"lastYearTransactions"`
	IncomeList           []TransactionByCategory `json:"incomeList"`
	ExpenseList          []TransactionByCategory `json:"expenseList"`
}

type MonthlyReportEntry struct {
	Mes     string          `json:"mes"`
	Receita decimal.Decimal `json:"receita"`
	Despesa decimal.Decimal `json:"despesa"`
}

type CategoryReportEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type DashboardTotals struct {
	TotalReceitas decimal.Decimal `json:"total_receitas"`
	TotalDespesas decimal.Decimal `json:"total_despesas"`
	Saldo         decimal.Decimal `json:"saldo"`
}
