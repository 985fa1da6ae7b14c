// Archivo: app/main.go

package main

import (
	"log"
	"net/http"
	"os"

	"fleet-system/internal/routes"
	"fleet-system/pkg/config"
	"fleet-system/pkg/customvalidator"
	apperrors "fleet-system/pkg/errors"
	applogger "fleet-system/pkg/logger"
	"fleet-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: archivo .env no encontrado o no se pudo cargar.")
	}

	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		logger.Fatal("no se pudo crear el directorio de datos", zap.Error(err))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! PÁNICO DETECTADO !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Error registrando reglas de validación", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	routes.InitRouter(e, logger, cfg)

	logger.Info("🚀 Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Error al iniciar el servidor", zap.Error(err))
	}
}
