package routes

import (
	"github.com/labstack/echo/v4"

	"fleet-system/internal/controllers"
)

func runPageRouter(api *echo.Group, controller *controllers.PageController) {
	group := api.Group("/pages")

	group.GET("", controller.ListPages)
	group.GET("/:page", controller.GetPage)
}
