package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/store"
	"github.com/centavo-dev/centavo/internal/utils"
)

type TransactionHandler struct {
	transactions *services.TransactionService
}

func NewTransactionHandler(transactions *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) Create(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	var body services.TransactionInput
	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	response, err := h.transactions.Create(userID, body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func (h *TransactionHandler) List(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	start, end, err := utils.DateRangeQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	filter := store.TransactionFilter{
		Type:     ctx.Query("transaction_type"),
		Category: ctx.Query("transaction_category"),
		Start:    start,
		End:      end,
	}

	response, err := h.transactions.List(userID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TransactionHandler) Get(ctx *gin.Context) {
	userID, transactionID, ok := h.ids(ctx)
	if !ok {
		return
	}

	response, err := h.transactions.Get(userID, transactionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TransactionHandler) Update(ctx *gin.Context) {
	userID, transactionID, ok := h.ids(ctx)
	if !ok {
		return
	}

	var body services.TransactionInput
	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	response, err := h.transactions.Update(userID, transactionID, body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TransactionHandler) Delete(ctx *gin.Context) {
	userID, transactionID, ok := h.ids(ctx)
	if !ok {
		return
	}

	if err := h.transactions.Delete(userID, transactionID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"detail": "Transaction successfully deleted"})
}

func (h *TransactionHandler) ids(ctx *gin.Context) (userID, transactionID uint, ok bool) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return 0, 0, false
	}
	transactionID, err = utils.IDParam(ctx, "transaction_id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return 0, 0, false
	}
	return userID, transactionID, true
}
