package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/services"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type FleetController struct {
	fleetService services.FleetServiceInterface
	logger       *zap.Logger
}

func NewFleetController(fleetService services.FleetServiceInterface, logger *zap.Logger) *FleetController {
	return &FleetController{fleetService: fleetService, logger: logger}
}

// UploadRoster reemplaza la planilla del parque automotor por la subida.
func (c *FleetController) UploadRoster(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Falta el archivo 'file'", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo abrir el archivo subido", err, nil),
			c.logger,
		)
	}
	defer src.Close()

	result, err := c.fleetService.ReplaceRoster(reqCtx, src, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("Planilla de móviles subida",
		zap.String("file", fileHeader.Filename),
		zap.Int("rows", result.Rows),
	)
	return utils.SuccessResponse(ctx, result, "Archivo cargado y reemplazado correctamente", http.StatusOK)
}

func (c *FleetController) GetUnits(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	units, err := c.fleetService.GetUnits(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, units, "Unidades obtenidas", http.StatusOK)
}

func (c *FleetController) GetUnitVehicles(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	unit := ctx.Param("unit")

	vehicles, err := c.fleetService.GetUnitVehicles(reqCtx, unit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, vehicles, "Móviles de la unidad obtenidos", http.StatusOK)
}

func (c *FleetController) GetSummary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	destination := ctx.QueryParam("destino")
	direction := ctx.QueryParam("direccion")

	summary, err := c.fleetService.GetSummary(reqCtx, destination, direction)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, summary, "Resumen de flota obtenido", http.StatusOK)
}
