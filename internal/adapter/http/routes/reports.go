package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports = "/reports"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/dashboard", reportHandler.GetDashboard)
		reports.GET("/clients", reportHandler.GetClientReport)
		reports.GET("/orders/:id", reportHandler.GetOrderCover)
	}
}
