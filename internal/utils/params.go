package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func IDParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(value), nil
}

func UserIDParam(ctx *gin.Context) (uint, error) {
	return IDParam(ctx, "user_id")
}

// DateRangeQuery reads the optional start_date and end_date query
// parameters as calendar dates.
func DateRangeQuery(ctx *gin.Context) (start, end *time.Time, err error) {
	start, err = dateQuery(ctx, "start_date")
	if err != nil {
		return nil, nil, err
	}
	end, err = dateQuery(ctx, "end_date")
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func dateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, expected YYYY-MM-DD", name)
	}
	return &parsed, nil
}
