package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
)

type FleetServiceInterface interface {
	ReplaceRoster(ctx context.Context, src io.Reader, fileName string) (*dto.UploadResultDTO, error)
	GetUnits(ctx context.Context) ([]string, error)
	GetUnitVehicles(ctx context.Context, unit string) (*dto.UnitVehiclesDTO, error)
	GetSummary(ctx context.Context, destination, direction string) (*dto.FleetSummaryDTO, error)
}

type fleetService struct {
	rosterRepo repositories.RosterRepositoryInterface
	logger     *zap.Logger
}

func NewFleetService(rosterRepo repositories.RosterRepositoryInterface, logger *zap.Logger) FleetServiceInterface {
	return &fleetService{rosterRepo: rosterRepo, logger: logger}
}

func (s *fleetService) ReplaceRoster(ctx context.Context, src io.Reader, fileName string) (*dto.UploadResultDTO, error) {
	if err := s.rosterRepo.Replace(src); err != nil {
		return nil, err
	}

	// Releemos lo recién guardado para confirmar que tiene filas usables
	// y devolverle al operador cuántos móviles quedaron cargados.
	roster, err := s.rosterRepo.LoadRoster()
	if err != nil {
		return nil, err
	}

	return &dto.UploadResultDTO{FileName: fileName, Rows: roster.Len()}, nil
}

func (s *fleetService) GetUnits(ctx context.Context) ([]string, error) {
	roster, err := s.rosterRepo.LoadRoster()
	if err != nil {
		return nil, err
	}
	return roster.Units(), nil
}

func (s *fleetService) GetUnitVehicles(ctx context.Context, unit string) (*dto.UnitVehiclesDTO, error) {
	roster, err := s.rosterRepo.LoadRoster()
	if err != nil {
		return nil, err
	}

	vehicles := roster.VehicleIDs(unit)
	if len(vehicles) == 0 {
		return nil, fmt.Errorf("%w: unidad %q", apperrors.ErrNotFound, unit)
	}

	return &dto.UnitVehiclesDTO{Unit: unit, Vehicles: vehicles}, nil
}

// GetSummary arma la disponibilidad por unidad a partir de las hojas de
// flota y motos, con filtros opcionales por destino y dirección.
func (s *fleetService) GetSummary(ctx context.Context, destination, direction string) (*dto.FleetSummaryDTO, error) {
	fleet, err := s.rosterRepo.LoadFleet()
	if err != nil {
		return nil, err
	}

	byUnit := make(map[string][]dto.FleetVehicleDTO)
	totals := map[string]int{
		constants.FleetInService:    0,
		constants.FleetOutOfService: 0,
		constants.FleetLimited:      0,
	}

	for _, v := range fleet {
		if destination != "" && v.Destination != destination && v.Unit != destination {
			continue
		}
		if direction != "" && v.Direction != direction {
			continue
		}

		byUnit[v.Unit] = append(byUnit[v.Unit], dto.FleetVehicleDTO{
			Unit:         v.Unit,
			VehicleID:    v.VehicleID,
			Category:     v.Category,
			Availability: v.Availability,
		})
		totals[v.Availability]++
	}

	units := make([]string, 0, len(byUnit))
	for u := range byUnit {
		units = append(units, u)
	}
	sort.Strings(units)

	summary := &dto.FleetSummaryDTO{Units: []dto.FleetUnitDTO{}, Totals: totals}
	for _, u := range units {
		summary.Units = append(summary.Units, dto.FleetUnitDTO{Unit: u, Vehicles: byUnit[u]})
	}

	return summary, nil
}
