// Package validation holds the stateless field checks applied by the
// service layer. Every check reports only the first violated rule.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.BadRequest("Insira um nome.")
	}
	return nil
}

func EmailFormat(email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.BadRequest("O formato do email é inválido.")
	}
	return nil
}

// PasswordStrength checks the rules in a fixed order (length, upper case,
// lower case, digit, special character) and stops at the first failure.
func PasswordStrength(password string) error {
	if len(password) < 8 {
		return apperr.BadRequest("A senha deve conter ao menos 8 caracteres.")
	}
	if !upperPattern.MatchString(password) {
		return apperr.BadRequest("A senha deve conter ao menos uma letra maiúscula.")
	}
	if !lowerPattern.MatchString(password) {
		return apperr.BadRequest("A senha deve conter ao menos uma letra minúscula.")
	}
	if !digitPattern.MatchString(password) {
		return apperr.BadRequest("A senha deve conter ao menos um dígito.")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return apperr.BadRequest("A senha deve conter pelo menos um caractere especial.")
	}
	return nil
}

func TransactionType(transactionType string) error {
	if transactionType != types.TypeIncome && transactionType != types.TypeExpense {
		return apperr.BadRequest("Tipo informado é inválido. Informe um entre [Receita, Despesa].")
	}
	return nil
}

func TransactionCategory(transactionType, category string) error {
	for _, valid := range types.CategoriesFor(transactionType) {
		if category == valid {
			return nil
		}
	}
	if transactionType == types.TypeIncome {
		return apperr.BadRequest(fmt.Sprintf("Categoria informada é inválida. Informe uma entre [%s].", strings.Join(types.IncomeCategories, ", ")))
	}
	return apperr.BadRequest(fmt.Sprintf("Categoria informada é inválida. Informe uma entre [%s].", strings.Join(types.ExpenseCategories, ", ")))
}

func Value(value decimal.Decimal) error {
	if value.Cmp(decimal.Zero) <= 0 {
		return apperr.BadRequest("Valor informado é inválido. Informe um valor maior ou igual a zero.")
	}
	return nil
}

// Layouts without a UTC offset are interpreted in local time and compared
// against local now; offset-aware values compare on the absolute timeline.
var naiveLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// DateISO parses an ISO-8601 date or date-time and rejects values strictly
// in the future. The returned time is truncated to midnight: transactions
// are stored in a date column, so the time of day never survives anyway,
// and truncating here keeps in-process date comparisons aligned with it.
func DateISO(date string) (time.Time, error) {
	parsed, err := parseISO(date)
	if err != nil {
		return time.Time{}, apperr.BadRequest("O formato da data informada é inválido. O formato esperado é YYYY-MM-DD (ou outro no formato ISO)")
	}
	if parsed.After(time.Now()) {
		return time.Time{}, apperr.BadRequest("A data informada é no futuro. Informe uma data até o dia atual.")
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, parsed.Location()), nil
}

func parseISO(date string) (time.Time, error) {
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, date, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Parse(time.RFC3339Nano, date)
}
