package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fleet-system/internal/controllers"
	"fleet-system/internal/pages"
	"fleet-system/internal/repositories"
	"fleet-system/internal/services"
	"fleet-system/pkg/config"
)

func InitRouter(e *echo.Echo, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: armando rutas")

	api := e.Group("/api")

	// --- 1. REPOSITORIOS ---
	ticketStore := repositories.NewTicketStore(cfg.Storage.WorkshopFile, logger)
	rosterRepo := repositories.NewRosterRepository(cfg.Storage.RosterFile, logger)
	reportRepo := repositories.NewReportRepository(cfg.Storage.ReportFile, logger)
	historyRepo := repositories.NewHistoryRepository(cfg.Storage.HistoryDir, logger)

	// --- 2. SERVICIOS ---
	workshopService := services.NewWorkshopService(ticketStore, rosterRepo, logger)
	fleetService := services.NewFleetService(rosterRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)
	exportService := services.NewExportService(reportService, workshopService, historyRepo, logger)

	// --- 3. PÁGINAS ---
	registry := pages.NewRegistry()
	registry.Register(pages.PageDashboard, pages.NewDashboardPage(workshopService, fleetService))
	registry.Register(pages.PageWorkshop, pages.NewWorkshopPage(workshopService))
	registry.Register(pages.PageFleet, pages.NewFleetPage(fleetService))
	registry.Register(pages.PageSettings, pages.NewSettingsPage(cfg))

	// --- 4. CONTROLADORES ---
	workshopController := controllers.NewWorkshopController(workshopService, exportService, logger)
	fleetController := controllers.NewFleetController(fleetService, logger)
	reportController := controllers.NewReportController(reportService, exportService, logger)
	pageController := controllers.NewPageController(registry, logger)

	// --- 5. RUTAS ---
	runWorkshopRouter(api, workshopController)
	runFleetRouter(api, fleetController)
	runReportRouter(api, reportController)
	runPageRouter(api, pageController)

	logger.Info("InitRouter: rutas creadas")
}
