package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathExpenses = "/expenses"
)

func addExpenseRoutes(rg *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.GET("/:id", expenseHandler.GetExpense)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}
