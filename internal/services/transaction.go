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

type TransactionService struct {
	users        store.UserStore
	transactions store.TransactionStore
}

func NewTransactionService(users store.UserStore, transactions store.TransactionStore) *TransactionService {
	return &TransactionService{users: users, transactions: transactions}
}

type TransactionInput struct {
	Date        string          `json:"date"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

func (s *TransactionService) validate(in TransactionInput) error {
	if err := validation.TransactionType(in.Type); err != nil {
		return err
	}
	if err := validation.TransactionCategory(in.Type, in.Category); err != nil {
		return err
	}
	return validation.Value(in.Value)
}

func (s *TransactionService) Create(userID uint, in TransactionInput) (*types.TransactionResponse, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Creating under an unknown user is "not authorized to act",
		// unlike the read paths which report the resource as absent.
		return nil, apperr.Forbidden("Usuário não cadastrado.")
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}
	date, err := validation.DateISO(in.Date)
	if err != nil {
		return nil, err
	}

	transaction := models.Transaction{
		UserID:      userID,
		Date:        date,
		Value:       in.Value,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := s.transactions.Create(&transaction); err != nil {
		return nil, err
	}

	response := adapters.TransactionResponse(&transaction)
	return &response, nil
}

func (s *TransactionService) List(userID uint, filter store.TransactionFilter) ([]types.TransactionResponse, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Usuário com ID %d não encontrado.", userID))
	}

	transactions, err := s.transactions.ByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	return adapters.TransactionList(transactions), nil
}

// owned walks the ownership ladder: missing user and missing transaction
// are 404, a transaction held by another user is 403 even though it exists.
func (s *TransactionService) owned(userID, transactionID uint) (*models.Transaction, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	transaction, err := s.transactions.ByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperr.NotFound("Transaction not found")
	}

	if transaction.UserID != userID {
		return nil, apperr.Forbidden("Not authorized to access this transaction")
	}
	return transaction, nil
}

func (s *TransactionService) Get(userID, transactionID uint) (*types.TransactionResponse, error) {
	transaction, err := s.owned(userID, transactionID)
	if err != nil {
		return nil, err
	}
	response := adapters.TransactionResponse(transaction)
	return &response, nil
}

// Update replaces every mutable field.
func (s *TransactionService) Update(userID, transactionID uint, in TransactionInput) (*types.TransactionResponse, error) {
	transaction, err := s.owned(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}
	date, err := validation.DateISO(in.Date)
	if err != nil {
		return nil, err
	}

	transaction.Date = date
	transaction.Value = in.Value
	transaction.Type = in.Type
	transaction.Category = in.Category
	transaction.Description = in.Description
	if err := s.transactions.Update(transaction); err != nil {
		return nil, err
	}

	response := adapters.TransactionResponse(transaction)
	return &response, nil
}

func (s *TransactionService) Delete(userID, transactionID uint) error {
	transaction, err := s.owned(userID, transactionID)
	if err != nil {
		return err
	}
	return s.transactions.Delete(transaction.ID)
}
