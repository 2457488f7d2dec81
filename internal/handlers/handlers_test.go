package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/auth"
	"github.com/centavo-dev/centavo/internal/handlers"
	"github.com/centavo-dev/centavo/internal/logger"
	"github.com/centavo-dev/centavo/internal/middleware"
	"github.com/centavo-dev/centavo/internal/router"
	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/store/storetest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	stores := storetest.New()
	tokens := auth.NewManager("test-secret")

	users := services.NewUserService(stores.Users, stores.Transactions, stores.Goals)
	transactions := services.NewTransactionService(stores.Users, stores.Transactions)
	goals := services.NewGoalService(stores.Users, stores.Goals, stores.Transactions)
	reports := services.NewReportService(stores.Users, stores.Transactions)

	return router.New(router.Deps{
		Users:          handlers.NewUserHandler(users, tokens),
		Transactions:   handlers.NewTransactionHandler(transactions),
		Goals:          handlers.NewGoalHandler(goals),
		Reports:        handlers.NewReportHandler(reports),
		Auth:           middleware.Auth(tokens, stores.Users),
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

func registerUser(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	recorder := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"name":     "Ana",
		"email":    email,
		"password": "Ab1!cdef",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	user := body["user"].(map[string]any)
	return uint(user["id"].(float64))
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()
	recorder := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter()

	recorder := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "Ab1!cdef",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	assert.Equal(t, "Success", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "ana@x.com", user["email"])

	recorder = doJSON(t, r, http.MethodPost, "/users", gin.H{
		"name":     "Outra Ana",
		"email":    "ana@x.com",
		"password": "Ab1!cdef",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Este email já está cadastrado.", decodeBody(t, recorder)["detail"])
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")

	recorder := doJSON(t, r, http.MethodPost, "/users/login", gin.H{
		"email":    "ana@x.com",
		"password": "Ab1!cdef",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	assert.Equal(t, float64(userID), body["user_id"])
	token := body["token"].(string)
	require.NotEmpty(t, token)

	// The token opens the authenticated surface.
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meRecorder := httptest.NewRecorder()
	r.ServeHTTP(meRecorder, req)
	require.Equal(t, http.StatusOK, meRecorder.Code, meRecorder.Body.String())

	recorder = doJSON(t, r, http.MethodPost, "/users/login", gin.H{
		"email":    "ana@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Incorrect password", decodeBody(t, recorder)["detail"])
}

func TestMeRequiresToken(t *testing.T) {
	r := newTestRouter()
	recorder := doJSON(t, r, http.MethodGet, "/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTransactionEndpoints(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")

	listPath := fmt.Sprintf("/%d/transactions", userID)

	recorder := doJSON(t, r, http.MethodGet, listPath, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())

	recorder = doJSON(t, r, http.MethodPost, listPath, gin.H{
		"date":        "2025-04-20",
		"value":       201,
		"type":        "Despesa",
		"category":    "Alimentação",
		"description": "Almoço",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	assert.Equal(t, "2025-04-20", body["transaction_date"])
	assert.Equal(t, float64(201), body["transaction_value"])
	assert.Equal(t, "Despesa", body["transaction_type"])
	assert.Equal(t, "Alimentação", body["transaction_category"])
	assert.Equal(t, "Almoço", body["transaction_description"])
	assert.NotZero(t, body["transaction_id"])

	recorder = doJSON(t, r, http.MethodPost, listPath, gin.H{
		"date":     "2025-04-20",
		"value":    0,
		"type":     "Despesa",
		"category": "Alimentação",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Valor informado é inválido. Informe um valor maior ou igual a zero.", decodeBody(t, recorder)["detail"])

	recorder = doJSON(t, r, http.MethodPost, "/999/transactions", gin.H{
		"date":     "2025-04-20",
		"value":    10,
		"type":     "Despesa",
		"category": "Alimentação",
	})
	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Usuário não cadastrado.", decodeBody(t, recorder)["detail"])
}

func TestTransactionOwnershipOverHTTP(t *testing.T) {
	r := newTestRouter()
	ana := registerUser(t, r, "ana@x.com")
	bia := registerUser(t, r, "bia@x.com")

	recorder := doJSON(t, r, http.MethodPost, fmt.Sprintf("/%d/transactions", ana), gin.H{
		"date":     "2025-04-20",
		"value":    100,
		"type":     "Receita",
		"category": "Salário",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	transactionID := uint(decodeBody(t, recorder)["transaction_id"].(float64))

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/transactions/%d", bia, transactionID), nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Not authorized to access this transaction", decodeBody(t, recorder)["detail"])

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/transactions/%d", ana, transactionID+999), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Transaction not found", decodeBody(t, recorder)["detail"])

	recorder = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/%d/transactions/%d", ana, transactionID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Transaction successfully deleted", decodeBody(t, recorder)["detail"])
}

func TestTransactionsInfoEndpoint(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")

	recorder := doJSON(t, r, http.MethodPost, fmt.Sprintf("/%d/transactions", userID), gin.H{
		"date":     "2025-06-10",
		"value":    300,
		"type":     "Receita",
		"category": "Freelance",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/transactions/info?end_date=2025-06-15", userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	months := body["lastYearTransactions"].([]any)
	require.Len(t, months, 12)
	first := months[0].(map[string]any)
	last := months[11].(map[string]any)
	assert.Equal(t, "Jul", first["transaction_month"])
	assert.Equal(t, "Jun", last["transaction_month"])
	assert.Equal(t, float64(300), last["month_income"])
}

func TestGoalEndpoints(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")
	goalsPath := fmt.Sprintf("/%d/goals", userID)

	recorder := doJSON(t, r, http.MethodPost, goalsPath, gin.H{
		"value":    500,
		"type":     "Despesa",
		"category": "Alimentação",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	goalID := uint(decodeBody(t, recorder)["goal_id"].(float64))

	// Same category again updates in place.
	recorder = doJSON(t, r, http.MethodPost, goalsPath, gin.H{
		"value":    800,
		"type":     "Despesa",
		"category": "Alimentação",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, float64(goalID), decodeBody(t, recorder)["goal_id"])

	recorder = doJSON(t, r, http.MethodGet, goalsPath, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var goals []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &goals))
	require.Len(t, goals, 1)
	assert.Equal(t, float64(800), goals[0]["goal_value"])
	assert.Equal(t, float64(0), goals[0]["goal_progress"])

	recorder = doJSON(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", goalsPath, goalID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Goal successfully deleted", decodeBody(t, recorder)["detail"])
}

func TestReportEndpoints(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")

	recorder := doJSON(t, r, http.MethodPost, fmt.Sprintf("/%d/transactions", userID), gin.H{
		"date":     "2025-03-10",
		"value":    1000,
		"type":     "Receita",
		"category": "Salário",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	recorder = doJSON(t, r, http.MethodPost, fmt.Sprintf("/%d/transactions", userID), gin.H{
		"date":     "2025-03-12",
		"value":    250,
		"type":     "Despesa",
		"category": "Moradia",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/reports/monthly", userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var monthly []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &monthly))
	require.Len(t, monthly, 12)
	assert.Equal(t, "Mar", monthly[2]["mes"])
	assert.Equal(t, float64(1000), monthly[2]["receita"])
	assert.Equal(t, float64(250), monthly[2]["despesa"])

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/reports/income", userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var income []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &income))
	require.Len(t, income, 1)
	assert.Equal(t, "Salário", income[0]["name"])
	assert.Equal(t, float64(1000), income[0]["value"])

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/%d/dashboard/totals", userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	totals := decodeBody(t, recorder)
	assert.Equal(t, float64(1000), totals["total_receitas"])
	assert.Equal(t, float64(250), totals["total_despesas"])
	assert.Equal(t, float64(750), totals["saldo"])

	recorder = doJSON(t, r, http.MethodGet, "/999/dashboard/totals", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "User not found", decodeBody(t, recorder)["detail"])
}

func TestUserInfoEndpoint(t *testing.T) {
	r := newTestRouter()
	userID := registerUser(t, r, "ana@x.com")

	recorder := doJSON(t, r, http.MethodPost, fmt.Sprintf("/%d/transactions", userID), gin.H{
		"date":     "2025-03-10",
		"value":    1000,
		"type":     "Receita",
		"category": "Salário",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%d/info", userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	financial := body["financialData"].(map[string]any)
	assert.Equal(t, float64(1000), financial["totalIncome"])
	assert.Equal(t, float64(0), financial["totalExpense"])
	assert.Equal(t, float64(1000), financial["currentBalance"])

	generalGoals := body["generalGoals"].([]any)
	require.Len(t, generalGoals, 2)

	incomeList := body["incomeList"].([]any)
	require.Len(t, incomeList, 1)
	entry := incomeList[0].(map[string]any)
	assert.Equal(t, "Salário", entry["transaction_category"])
	assert.Equal(t, float64(1000), entry["transaction_value"])
}
