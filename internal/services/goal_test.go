package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/types"
)

func TestCreateGoal(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	response, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	assert.NotZero(t, response.GoalID)
	assertDecimal(t, "500", response.GoalValue)
	assert.Equal(t, types.TypeExpense, response.GoalType)
	assert.Equal(t, "Alimentação", response.GoalCategory)
}

func TestCreateGoalUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.goals.Create(42, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	requireAppErr(t, err, http.StatusForbidden, "Usuário não cadastrado.")
}

func TestCreateGoalValidation(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	_, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     "Meta",
		Category: "Alimentação",
	})
	requireAppErr(t, err, http.StatusBadRequest, "Tipo informado é inválido. Informe um entre [Receita, Despesa].")

	_, err = env.goals.Create(user.ID, GoalInput{
		Value:    dec("0"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	requireAppErr(t, err, http.StatusBadRequest, "Valor informado é inválido. Informe um valor maior ou igual a zero.")
}

func TestCreateGoalUpsertsByCategory(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	first, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	second, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("800"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	// Same row updated in place, not a second goal.
	assert.Equal(t, first.GoalID, second.GoalID)
	assertDecimal(t, "800", second.GoalValue)

	list, err := env.goals.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assertDecimal(t, "800", list[0].GoalValue)
}

func TestCreateGoalUpsertCrossesTypes(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	// "Outros" exists in both category sets. The upsert key is the
	// category alone, so an income goal on it absorbs the expense one.
	first, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("100"),
		Type:     types.TypeIncome,
		Category: "Outros",
	})
	require.NoError(t, err)

	second, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("250"),
		Type:     types.TypeExpense,
		Category: "Outros",
	})
	require.NoError(t, err)

	assert.Equal(t, first.GoalID, second.GoalID)
	assert.Equal(t, types.TypeExpense, second.GoalType)
	assertDecimal(t, "250", second.GoalValue)
}

func TestListGoalsProgress(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	_, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	env.seedTransaction(t, user.ID, day(2025, time.March, 1), "120", types.TypeExpense, "Alimentação")
	env.seedTransaction(t, user.ID, day(2025, time.April, 2), "80", types.TypeExpense, "Alimentação")
	// Unrelated category and type never count toward the goal.
	env.seedTransaction(t, user.ID, day(2025, time.April, 3), "999", types.TypeExpense, "Transporte")
	env.seedTransaction(t, user.ID, day(2025, time.April, 4), "999", types.TypeIncome, "Salário")

	list, err := env.goals.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assertDecimal(t, "500", list[0].GoalValue)
	assertDecimal(t, "200", list[0].GoalProgress)
}

func TestListGoalsUnknownUser(t *testing.T) {
	env := newTestEnv()
	_, err := env.goals.List(7)
	requireAppErr(t, err, http.StatusNotFound, "Usuário com ID 7 não encontrado.")
}

func TestGetGoalOwnership(t *testing.T) {
	env := newTestEnv()
	ana := env.seedUser(t, "ana@x.com")
	bia := env.seedUser(t, "bia@x.com")

	goal, err := env.goals.Create(ana.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	got, err := env.goals.Get(ana.ID, goal.GoalID)
	require.NoError(t, err)
	assert.Equal(t, goal.GoalID, got.GoalID)

	_, err = env.goals.Get(bia.ID, goal.GoalID)
	requireAppErr(t, err, http.StatusForbidden, "Not authorized to access this goal")

	_, err = env.goals.Get(ana.ID, goal.GoalID+999)
	requireAppErr(t, err, http.StatusNotFound, "Goal not found")

	_, err = env.goals.Get(999, goal.GoalID)
	requireAppErr(t, err, http.StatusNotFound, "User not found")
}

func TestUpdateGoal(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	goal, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	updated, err := env.goals.Update(user.ID, goal.GoalID, GoalInput{
		Value:    dec("1200"),
		Type:     types.TypeIncome,
		Category: "Freelance",
	})
	require.NoError(t, err)

	assert.Equal(t, goal.GoalID, updated.GoalID)
	assertDecimal(t, "1200", updated.GoalValue)
	assert.Equal(t, types.TypeIncome, updated.GoalType)
	assert.Equal(t, "Freelance", updated.GoalCategory)

	_, err = env.goals.Update(user.ID, goal.GoalID, GoalInput{
		Value:    dec("1200"),
		Type:     types.TypeIncome,
		Category: "Moradia",
	})
	requireAppErr(t, err, http.StatusBadRequest, "Categoria informada é inválida. Informe uma entre [Salário, Freelance, Investimentos, Outros].")
}

func TestDeleteGoal(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "ana@x.com")

	goal, err := env.goals.Create(user.ID, GoalInput{
		Value:    dec("500"),
		Type:     types.TypeExpense,
		Category: "Alimentação",
	})
	require.NoError(t, err)

	require.NoError(t, env.goals.Delete(user.ID, goal.GoalID))

	_, err = env.goals.Get(user.ID, goal.GoalID)
	requireAppErr(t, err, http.StatusNotFound, "Goal not found")
}
