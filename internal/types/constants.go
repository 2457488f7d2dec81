package types

const ContextUserKey = "user"

// Transaction and goal types, with the labels the clients already use.
const (
	TypeIncome  = "Receita"
	TypeExpense = "Despesa"
)

var (
	IncomeCategories = []string{"Salário", "Freelance", "Investimentos", "Outros"}

	ExpenseCategories = []string{"Moradia", "Alimentação", "Transporte", "Entretenimento", "Utilidades", "Saúde", "Educação", "Outros"}

	// MonthAbbr holds the three-letter month labels used by the
	// reporting endpoints, January first.
	MonthAbbr = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
)

// CategoriesFor returns the category whitelist for a transaction type,
// or nil when the type itself is unknown.
func CategoriesFor(transactionType string) []string {
	switch transactionType {
	case TypeIncome:
		return IncomeCategories
	case TypeExpense:
		return ExpenseCategories
	}
	return nil
}
