package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// respondWithAttachment manda un workbook generado como descarga directa.
func respondWithAttachment(ctx echo.Context, payload []byte, fileName string) error {
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, xlsxContentType, payload)
}
