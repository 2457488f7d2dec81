package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/centavo-dev/centavo/internal/handlers"
)

type Deps struct {
	Users        *handlers.UserHandler
	Transactions *handlers.TransactionHandler
	Goals        *handlers.GoalHandler
	Reports      *handlers.ReportHandler
	Auth         gin.HandlerFunc

	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	users := r.Group("/users")
	{
		users.POST("", deps.Users.Create)
		users.POST("/login", deps.Users.Login)
		users.GET("/me", deps.Auth, deps.Users.Me)
		users.GET("/:user_id", deps.Users.Get)
		users.GET("/:user_id/info", deps.Users.Info)
		users.DELETE("/:user_id", deps.Users.Delete)
	}

	scoped := r.Group("/:user_id")
	{
		scoped.POST("/transactions", deps.Transactions.Create)
		scoped.GET("/transactions", deps.Transactions.List)
		scoped.GET("/transactions/info", deps.Reports.TransactionsInfo)
		scoped.GET("/transactions/:transaction_id", deps.Transactions.Get)
		scoped.PUT("/transactions/:transaction_id", deps.Transactions.Update)
		scoped.DELETE("/transactions/:transaction_id", deps.Transactions.Delete)

		scoped.POST("/goals", deps.Goals.Create)
		scoped.GET("/goals", deps.Goals.List)
		scoped.GET("/goals/:goal_id", deps.Goals.Get)
		scoped.PUT("/goals/:goal_id", deps.Goals.Update)
		scoped.DELETE("/goals/:goal_id", deps.Goals.Delete)

		reports := scoped.Group("/reports")
		{
			reports.GET("/monthly", deps.Reports.Monthly)
			reports.GET("/income", deps.Reports.Income)
			reports.GET("/expenses", deps.Reports.Expenses)
		}

		scoped.GET("/dashboard/totals", deps.Reports.DashboardTotals)
	}

	return r
}
