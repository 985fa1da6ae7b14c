package repositories

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type RosterRepositoryInterface interface {
	LoadRoster() (*entities.Roster, error)
	LoadFleet() ([]entities.FleetVehicle, error)
	Replace(src io.Reader) error
	Exists() bool
}

// rosterRepository lee la planilla del parque automotor (MOVILES.xlsx).
// La planilla la suben los operadores; el sistema nunca la edita, sólo la
// reemplaza entera cuando llega una versión nueva.
type rosterRepository struct {
	path   string
	logger *zap.Logger
}

func NewRosterRepository(path string, logger *zap.Logger) RosterRepositoryInterface {
	return &rosterRepository{path: path, logger: logger}
}

func (r *rosterRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// LoadRoster junta los pares (unidad, móvil) de todas las hojas que tengan
// columnas UNIDAD y JP. El número de móvil se trata como texto opaco:
// recortado pero jamás convertido a número, así no pierde ceros iniciales.
func (r *rosterRepository) LoadRoster() (*entities.Roster, error) {
	if !r.Exists() {
		return nil, fmt.Errorf("%w: todavía no se subió la planilla de móviles", apperrors.ErrNotFound)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRosterUnreadable, r.path, err)
	}
	defer f.Close()

	var entries []entities.VehicleEntry

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		unitIdx, vehicleIdx := -1, -1
		for cIdx, colName := range rows[0] {
			switch utils.NormalizeCell(colName) {
			case constants.RosterUnitColumn:
				unitIdx = cIdx
			case constants.RosterVehicleColumn:
				vehicleIdx = cIdx
			}
		}
		if unitIdx == -1 || vehicleIdx == -1 {
			continue
		}

		for _, row := range rows[1:] {
			unit := utils.NormalizeCell(utils.SafeGet(row, unitIdx))
			vehicleID := utils.SafeGet(row, vehicleIdx)
			if unit == "" || vehicleID == "" {
				continue
			}
			entries = append(entries, entities.VehicleEntry{Unit: unit, VehicleID: vehicleID})
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoUsableSheets, r.path)
	}

	return entities.NewRoster(entries), nil
}

// LoadFleet lee las hojas de FLOTA y MOTOS y clasifica cada móvil según la
// columna "SITUACION ACTUAL". La unidad cae a DESTINO si falta, y a
// "SIN UNIDAD" si no hay ninguna de las dos.
func (r *rosterRepository) LoadFleet() ([]entities.FleetVehicle, error) {
	if !r.Exists() {
		return nil, fmt.Errorf("%w: todavía no se subió la planilla de móviles", apperrors.ErrNotFound)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRosterUnreadable, r.path, err)
	}
	defer f.Close()

	var fleet []entities.FleetVehicle

	for _, sheet := range f.GetSheetList() {
		sheetName := utils.NormalizeCell(sheet)
		var category string
		switch {
		case strings.Contains(sheetName, "FLOTA"):
			category = "FLOTA"
		case strings.Contains(sheetName, "MOTO"):
			category = "MOTOS"
		default:
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}

		idx := make(map[string]int)
		for cIdx, colName := range rows[0] {
			idx[utils.NormalizeCell(colName)] = cIdx
		}

		vehicleIdx, ok := idx[constants.RosterVehicleColumn]
		if !ok {
			continue
		}

		for _, row := range rows[1:] {
			vehicleID := utils.SafeGet(row, vehicleIdx)
			if vehicleID == "" {
				continue
			}

			unit := ""
			if uIdx, ok := idx[constants.RosterUnitColumn]; ok {
				unit = utils.NormalizeCell(utils.SafeGet(row, uIdx))
			}
			dest := ""
			if dIdx, ok := idx[constants.FleetDestColumn]; ok {
				dest = utils.NormalizeCell(utils.SafeGet(row, dIdx))
			}
			if unit == "" {
				unit = dest
			}
			if unit == "" {
				unit = constants.NoUnitLabel
			}

			dir := ""
			if dIdx, ok := idx[constants.FleetDirColumn]; ok {
				dir = utils.NormalizeCell(utils.SafeGet(row, dIdx))
			}

			situation := ""
			if sIdx, ok := idx[constants.FleetStatusColumn]; ok {
				situation = utils.NormalizeCell(utils.SafeGet(row, sIdx))
			}

			fleet = append(fleet, entities.FleetVehicle{
				Unit:         unit,
				VehicleID:    vehicleID,
				Category:     category,
				Destination:  dest,
				Direction:    dir,
				Availability: classifySituation(situation),
			})
		}
	}

	if len(fleet) == 0 {
		return nil, fmt.Errorf("%w: %s: se esperaban hojas FLOTA y/o MOTOS", apperrors.ErrNoUsableSheets, r.path)
	}

	return fleet, nil
}

func classifySituation(situation string) string {
	switch situation {
	case "EN SERVICIO":
		return constants.FleetInService
	case "FUERA DE SERVICIO":
		return constants.FleetOutOfService
	default:
		return constants.FleetLimited
	}
}

// Replace pisa la planilla vigente con la subida, pasando por un temporal
// verificado. Una subida corrupta nunca reemplaza la planilla actual.
func (r *rosterRepository) Replace(src io.Reader) error {
	if err := replaceWorkbook(r.path, src); err != nil {
		return err
	}
	r.logger.Info("Planilla de móviles reemplazada", zap.String("path", r.path))
	return nil
}
