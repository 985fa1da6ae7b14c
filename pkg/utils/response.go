package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "fleet-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// domainErrorCodes mapea los errores centinela del dominio a códigos HTTP.
// Cualquier error fuera de esta tabla y sin HttpError envuelto es un 500.
var domainErrorCodes = map[error]int{
	apperrors.ErrUnknownVehicle:           http.StatusUnprocessableEntity,
	apperrors.ErrVehicleAlreadyInWorkshop: http.StatusConflict,
	apperrors.ErrInvalidTransition:        http.StatusUnprocessableEntity,
	apperrors.ErrStoreUnreadable:          http.StatusInternalServerError,
	apperrors.ErrRosterUnreadable:         http.StatusInternalServerError,
	apperrors.ErrNoUsableSheets:           http.StatusUnprocessableEntity,
	apperrors.ErrNotFound:                 http.StatusNotFound,
	apperrors.ErrBadRequest:               http.StatusBadRequest,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("El campo '%s' no pasó la regla '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Error de validación: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, code := range domainErrorCodes {
		if errors.Is(err, sentinel) {
			logger.Warn("Error de dominio", zap.Error(err))
			return c.JSON(code, map[string]interface{}{
				"status":  false,
				"message": err.Error(),
			})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Error interno del servidor",
	})
}
