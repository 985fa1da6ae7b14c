package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/services"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewReportController(
	reportService services.ReportServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{
		reportService: reportService,
		exportService: exportService,
		logger:        logger,
	}
}

// UploadWorkbook recibe la planilla de operativos (allanamientos y/o armas).
func (c *ReportController) UploadWorkbook(ctx echo.Context) error {
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

	result, err := c.reportService.ReplaceWorkbook(reqCtx, src, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, result, "Planilla de operativos cargada", http.StatusOK)
}

func (c *ReportController) GetSummaries(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	summaries, err := c.reportService.GetSummaries(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, summaries, "Resúmenes calculados", http.StatusOK)
}

// ExportConsolidated descarga el consolidado con las hojas limpias.
func (c *ReportController) ExportConsolidated(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	payload, fileName, err := c.exportService.ConsolidatedWorkbook(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return respondWithAttachment(ctx, payload, fileName)
}

// ExportSummaries descarga el xlsx sólo con resúmenes.
func (c *ReportController) ExportSummaries(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	payload, fileName, err := c.exportService.SummaryWorkbook(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return respondWithAttachment(ctx, payload, fileName)
}

func (c *ReportController) GetHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	entries, err := c.exportService.History(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	list := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		list = append(list, historyToDTO(e))
	}

	return utils.SuccessResponse(ctx, list, "Histórico obtenido", http.StatusOK)
}

func historyToDTO(e entities.HistoryEntry) dto.HistoryEntryDTO {
	return dto.HistoryEntryDTO{
		FileName:   e.FileName,
		SizeBytes:  e.SizeBytes,
		ArchivedAt: e.ArchivedAt.Format(constants.TicketTimeLayout),
	}
}
