package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/pages"
	"fleet-system/pkg/utils"
)

type PageController struct {
	registry *pages.Registry
	logger   *zap.Logger
}

func NewPageController(registry *pages.Registry, logger *zap.Logger) *PageController {
	return &PageController{registry: registry, logger: logger}
}

func (c *PageController) ListPages(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.registry.Pages(), "Páginas disponibles", http.StatusOK)
}

func (c *PageController) GetPage(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	page := pages.Page(ctx.Param("page"))

	payload, err := c.registry.Render(reqCtx, page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, payload, "Página generada", http.StatusOK)
}
