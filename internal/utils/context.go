package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/middleware"
	"github.com/centavo-dev/centavo/internal/types"
)

func CurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}
