package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/auth"
	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/types"
	"github.com/centavo-dev/centavo/internal/utils"
)

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserHandler struct {
	users  *services.UserService
	tokens *auth.Manager
}

func NewUserHandler(users *services.UserService, tokens *auth.Manager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var body services.RegisterUserInput

	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	response, err := h.users.Register(body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func (h *UserHandler) Login(ctx *gin.Context) {
	var body LoginUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	user, err := h.users.Login(body.Email, body.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.UserLoginResponse{UserID: user.ID, Token: token})
}

func (h *UserHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": currentUser})
}

func (h *UserHandler) Get(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	response, err := h.users.Get(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UserHandler) Info(ctx *gin.Context) {
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

	response, err := h.users.Info(userID, start, end)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	userID, err := utils.UserIDParam(ctx)
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	if err := h.users.Delete(userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"detail": "User successfully deleted"})
}
