package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/models"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/store/storetest"
)

type testEnv struct {
	stores       store.Stores
	users        *UserService
	transactions *TransactionService
	goals        *GoalService
	reports      *ReportService
}

func newTestEnv() *testEnv {
	stores := storetest.New()
	return &testEnv{
		stores:       stores,
		users:        NewUserService(stores.Users, stores.Transactions, stores.Goals),
		transactions: NewTransactionService(stores.Users, stores.Transactions),
		goals:        NewGoalService(stores.Users, stores.Goals, stores.Transactions),
		reports:      NewReportService(stores.Users, stores.Transactions),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Fulano Testador", Email: email, PasswordHash: "x"}
	require.NoError(t, e.stores.Users.Create(&user))
	return &user
}

func (e *testEnv) seedTransaction(t *testing.T, userID uint, date time.Time, value, transactionType, category string) *models.Transaction {
	t.Helper()
	transaction := models.Transaction{
		UserID:   userID,
		Date:     date,
		Value:    dec(value),
		Type:     transactionType,
		Category: category,
	}
	require.NoError(t, e.stores.Transactions.Create(&transaction))
	return &transaction
}

func dec(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func requireAppErr(t *testing.T, err error, status int, message string) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
