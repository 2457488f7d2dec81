package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/utils"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) TransactionsInfo(ctx *gin.Context) {
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

	response, err := h.reports.TransactionsInfo(userID, start, end)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReportHandler) DashboardTotals(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.reports.DashboardTotals(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReportHandler) Monthly(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.reports.MonthlySummary(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReportHandler) Income(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.reports.IncomeByCategory(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReportHandler) Expenses(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.reports.ExpensesByCategory(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
