package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/entities"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

// Los timestamps se escriben como texto plano (constants.TicketTimeLayout),
// nunca como celdas de fecha nativas, para que el parseo de vuelta sea exacto.
const storeTimeLayout = constants.TicketTimeLayout

const workshopSheet = "TALLER"

type TicketStoreInterface interface {
	Load() ([]entities.MaintenanceTicket, error)
	SaveAll(tickets []entities.MaintenanceTicket) error
	Path() string
}

// ticketStore persiste la colección completa de tickets en un único
// archivo xlsx. Cada mutación reescribe el snapshot entero; con cientos de
// filas el costo es irrelevante y la escritura temp+rename queda atómica.
type ticketStore struct {
	path   string
	logger *zap.Logger
}

func NewTicketStore(path string, logger *zap.Logger) TicketStoreInterface {
	return &ticketStore{path: path, logger: logger}
}

func (s *ticketStore) Path() string { return s.path }

func (s *ticketStore) Load() ([]entities.MaintenanceTicket, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []entities.MaintenanceTicket{}, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnreadable, s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: archivo sin hojas", apperrors.ErrStoreUnreadable, s.path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnreadable, s.path, err)
	}

	tickets := make([]entities.MaintenanceTicket, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		if len(row) == 0 || utils.SafeGet(row, 0) == "" {
			continue
		}

		ticket, err := parseTicketRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %s fila %d: %v", apperrors.ErrStoreUnreadable, s.path, i+1, err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func parseTicketRow(row []string) (entities.MaintenanceTicket, error) {
	var t entities.MaintenanceTicket

	entry, err := time.Parse(storeTimeLayout, utils.SafeGet(row, 0))
	if err != nil {
		return t, fmt.Errorf("entryTimestamp ilegible: %q", utils.SafeGet(row, 0))
	}
	t.EntryTimestamp = entry

	if raw := utils.SafeGet(row, 1); raw != "" {
		exit, err := time.Parse(storeTimeLayout, raw)
		if err != nil {
			return t, fmt.Errorf("exitTimestamp ilegible: %q", raw)
		}
		t.ExitTimestamp = null.TimeFrom(exit)
	}

	t.Unit = utils.SafeGet(row, 2)
	t.VehicleID = utils.SafeGet(row, 3)
	t.WorkType = utils.SafeGet(row, 4)
	t.Description = utils.SafeGet(row, 5)
	t.Facility = utils.SafeGet(row, 6)
	t.Responsible = utils.SafeGet(row, 7)
	t.Status = utils.SafeGet(row, 8)

	return t, nil
}

// SaveAll reemplaza el snapshot persistido. Escribe en un archivo temporal
// del mismo directorio y renombra encima del destino: tras un corte se
// observa el snapshot viejo o el nuevo, nunca uno a medias.
func (s *ticketStore) SaveAll(tickets []entities.MaintenanceTicket) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("no se pudo crear el directorio del taller: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", workshopSheet)

	headers := constants.WorkshopColumns
	f.SetSheetRow(workshopSheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(workshopSheet, "A1", "I1", style)

	for i, t := range tickets {
		exit := ""
		if t.ExitTimestamp.Valid {
			exit = t.ExitTimestamp.Time.Format(storeTimeLayout)
		}
		row := []interface{}{
			t.EntryTimestamp.Format(storeTimeLayout), exit,
			t.Unit, t.VehicleID, t.WorkType, t.Description,
			t.Facility, t.Responsible, t.Status,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(workshopSheet, cell, &row)
	}

	// Serializamos a memoria y escribimos el temporal a mano: SaveAs exige
	// extensión xlsx y el nombre del temporal no la tiene.
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("no se pudo generar el snapshot del taller: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%d", s.path, os.Getpid())
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("no se pudo escribir el snapshot del taller: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("no se pudo reemplazar el archivo del taller: %w", err)
	}

	s.logger.Debug("Snapshot del taller guardado",
		zap.String("path", s.path),
		zap.Int("tickets", len(tickets)),
	)
	return nil
}
