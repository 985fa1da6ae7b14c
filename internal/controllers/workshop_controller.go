package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type WorkshopController struct {
	workshopService services.WorkshopServiceInterface
	exportService   services.ExportServiceInterface
	logger          *zap.Logger
}

func NewWorkshopController(
	workshopService services.WorkshopServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *WorkshopController {
	return &WorkshopController{
		workshopService: workshopService,
		exportService:   exportService,
		logger:          logger,
	}
}

func (c *WorkshopController) GetBoard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	board, err := c.workshopService.GetBoard(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, board, "Tablero del taller obtenido", http.StatusOK)
}

func (c *WorkshopController) CreateTicket(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "JSON inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ticket, err := c.workshopService.CreateTicket(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, ticket, "Móvil ingresado al taller", http.StatusCreated)
}

func (c *WorkshopController) ApplyEdits(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.ApplyTicketEditsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "JSON inválido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	applied, skipped, err := c.workshopService.ApplyEdits(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	body := map[string]int{"applied": applied, "skipped": skipped}
	return utils.SuccessResponse(ctx, body, "Cambios del taller guardados", http.StatusOK)
}

func (c *WorkshopController) ExportLog(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	payload, fileName, err := c.exportService.WorkshopLogWorkbook(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return respondWithAttachment(ctx, payload, fileName)
}
