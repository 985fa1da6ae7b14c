package routes

import (
	"github.com/labstack/echo/v4"

	"fleet-system/internal/controllers"
)

func runWorkshopRouter(api *echo.Group, controller *controllers.WorkshopController) {
	group := api.Group("/workshop")

	group.GET("/board", controller.GetBoard)
	group.POST("/tickets", controller.CreateTicket)
	group.PUT("/tickets", controller.ApplyEdits)
	group.GET("/export", controller.ExportLog)
}
