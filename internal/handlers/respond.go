package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/centavo-dev/centavo/internal/apperr"
	"github.com/centavo-dev/centavo/internal/logger"
)

// respondError maps domain errors to their status; anything unanticipated
// is logged and reported generically without leaking internals.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Status, gin.H{"detail": appErr.Message})
		return
	}

	logger.Log.Error("unexpected error", zap.String("path", ctx.FullPath()), zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "An unexpected error occurred"})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"detail": message})
}
