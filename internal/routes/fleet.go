package routes

import (
	"github.com/labstack/echo/v4"

	"fleet-system/internal/controllers"
)

func runFleetRouter(api *echo.Group, controller *controllers.FleetController) {
	group := api.Group("/fleet")

	group.POST("/upload", controller.UploadRoster)
	group.GET("/summary", controller.GetSummary)
	group.GET("/units", controller.GetUnits)
	group.GET("/units/:unit/vehicles", controller.GetUnitVehicles)
}
