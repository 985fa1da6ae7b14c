package pages

import (
	"context"

	"fleet-system/internal/services"
	"fleet-system/pkg/config"
)

// WorkshopPage muestra el tablero del taller completo.
type WorkshopPage struct {
	workshop services.WorkshopServiceInterface
}

func NewWorkshopPage(workshop services.WorkshopServiceInterface) *WorkshopPage {
	return &WorkshopPage{workshop: workshop}
}

func (p *WorkshopPage) Render(ctx context.Context) (*Payload, error) {
	board, err := p.workshop.GetBoard(ctx)
	if err != nil {
		return nil, err
	}
	return &Payload{Page: PageWorkshop, Title: "Taller Mecánico - Parque Automotor", Body: board}, nil
}

// FleetPage muestra la disponibilidad de la flota sin filtros.
type FleetPage struct {
	fleet services.FleetServiceInterface
}

func NewFleetPage(fleet services.FleetServiceInterface) *FleetPage {
	return &FleetPage{fleet: fleet}
}

func (p *FleetPage) Render(ctx context.Context) (*Payload, error) {
	summary, err := p.fleet.GetSummary(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return &Payload{Page: PageFleet, Title: "Flota automotriz y motocicletas", Body: summary}, nil
}

// DashboardPage combina los indicadores del taller con los totales de flota.
type DashboardPage struct {
	workshop services.WorkshopServiceInterface
	fleet    services.FleetServiceInterface
}

func NewDashboardPage(workshop services.WorkshopServiceInterface, fleet services.FleetServiceInterface) *DashboardPage {
	return &DashboardPage{workshop: workshop, fleet: fleet}
}

func (p *DashboardPage) Render(ctx context.Context) (*Payload, error) {
	body := map[string]interface{}{}

	tickets, err := p.workshop.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	body["workshop_indicators"] = services.CountByStatus(tickets)
	body["reincidence_ranking"] = services.ReincidenceRanking(tickets)

	// La flota puede no estar cargada todavía; el tablero igual se muestra.
	if summary, err := p.fleet.GetSummary(ctx, "", ""); err == nil {
		body["fleet_totals"] = summary.Totals
	}

	return &Payload{Page: PageDashboard, Title: "Gestión operativa y mantenimiento", Body: body}, nil
}

// SettingsPage muestra las rutas efectivas de archivos, para diagnóstico.
type SettingsPage struct {
	cfg *config.Config
}

func NewSettingsPage(cfg *config.Config) *SettingsPage {
	return &SettingsPage{cfg: cfg}
}

func (p *SettingsPage) Render(ctx context.Context) (*Payload, error) {
	return &Payload{
		Page:  PageSettings,
		Title: "Configuración",
		Body: map[string]string{
			"data_dir":      p.cfg.Storage.DataDir,
			"roster_file":   p.cfg.Storage.RosterFile,
			"workshop_file": p.cfg.Storage.WorkshopFile,
			"report_file":   p.cfg.Storage.ReportFile,
			"history_dir":   p.cfg.Storage.HistoryDir,
		},
	}, nil
}
