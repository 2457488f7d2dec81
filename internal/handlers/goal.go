package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/utils"
)

type GoalHandler struct {
	goals *services.GoalService
}

func NewGoalHandler(goals *services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) Create(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	var body services.GoalInput
	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	response, err := h.goals.Create(userID, body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func (h *GoalHandler) List(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.goals.List(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *GoalHandler) Get(ctx *gin.Context) {
	userID, goalID, ok := h.ids(ctx)
	if !ok {
		return
	}

	response, err := h.goals.Get(userID, goalID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *GoalHandler) Update(ctx *gin.Context) {
	userID, goalID, ok := h.ids(ctx)
	if !ok {
		return
	}

	var body services.GoalInput
	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	response, err := h.goals.Update(userID, goalID, body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *GoalHandler) Delete(ctx *gin.Context) {
	userID, goalID, ok := h.ids(ctx)
	if !ok {
		return
	}

	if err := h.goals.Delete(userID, goalID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"detail": "Goal successfully deleted"})
}

func (h *GoalHandler) ids(ctx *gin.Context) (userID, goalID uint, ok bool) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return 0, 0, false
	}
	goalID, err = utils.IDParam(ctx, "goal_id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return 0, 0, false
	}
	return userID, goalID, true
}
