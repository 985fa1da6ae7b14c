package routes

import (
	"github.com/labstack/echo/v4"

	"fleet-system/internal/controllers"
)

func runReportRouter(api *echo.Group, controller *controllers.ReportController) {
	group := api.Group("/reports")

	group.POST("/upload", controller.UploadWorkbook)
	group.GET("/summary", controller.GetSummaries)
	group.GET("/export/consolidated", controller.ExportConsolidated)
	group.GET("/export/summaries", controller.ExportSummaries)
	group.GET("/history", controller.GetHistory)
}
