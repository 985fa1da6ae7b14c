package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
)

// Transiciones permitidas del ciclo de vida. IN_REPAIR puede volver a
// ENTERED (el taller reabre un trabajo); de COMPLETED no se sale.
var allowedTransitions = map[string]map[string]bool{
	constants.StatusEntered: {
		constants.StatusInRepair:  true,
		constants.StatusCompleted: true,
	},
	constants.StatusInRepair: {
		constants.StatusCompleted: true,
		constants.StatusEntered:   true,
	},
	constants.StatusCompleted: {},
}

// Quedarse en el mismo estado siempre vale: las tablas editables mandan la
// fila completa aunque el operador sólo haya tocado el responsable.
func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}

type WorkshopServiceInterface interface {
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*dto.TicketDTO, error)
	ApplyEdits(ctx context.Context, payload dto.ApplyTicketEditsDTO) (applied int, skipped int, err error)
	GetBoard(ctx context.Context) (*dto.WorkshopBoardDTO, error)
	Snapshot(ctx context.Context) ([]entities.MaintenanceTicket, error)
}

// workshopService es el motor del ciclo de vida de tickets. Modelo de un
// escritor a la vez: el mutex serializa toda secuencia cargar-validar-
// guardar, y cada mutación relee el archivo justo antes de validar para
// no operar sobre un snapshot viejo de la sesión.
type workshopService struct {
	store      repositories.TicketStoreInterface
	rosterRepo repositories.RosterRepositoryInterface
	logger     *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

func NewWorkshopService(
	store repositories.TicketStoreInterface,
	rosterRepo repositories.RosterRepositoryInterface,
	logger *zap.Logger,
) WorkshopServiceInterface {
	return &workshopService{
		store:      store,
		rosterRepo: rosterRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *workshopService) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*dto.TicketDTO, error) {
	roster, err := s.rosterRepo.LoadRoster()
	if err != nil {
		return nil, err
	}
	if !roster.Has(payload.Unit, payload.VehicleID) {
		return nil, fmt.Errorf("%w: unidad %q, móvil %q",
			apperrors.ErrUnknownVehicle, payload.Unit, payload.VehicleID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for _, t := range tickets {
		if t.Unit == payload.Unit && t.VehicleID == payload.VehicleID && t.Active() {
			return nil, fmt.Errorf("%w: unidad %q, móvil %q",
				apperrors.ErrVehicleAlreadyInWorkshop, payload.Unit, payload.VehicleID)
		}
	}

	entry := s.now().Truncate(time.Second)
	// La terna (unidad, móvil, ingreso) es única en el archivo; si el
	// mismo móvil reingresa dentro del mismo segundo, corremos el ingreso.
	for keyTaken(tickets, payload.Unit, payload.VehicleID, entry) {
		entry = entry.Add(time.Second)
	}

	ticket := entities.MaintenanceTicket{
		EntryTimestamp: entry,
		Unit:           payload.Unit,
		VehicleID:      payload.VehicleID,
		WorkType:       payload.WorkType,
		Description:    strings.ToUpper(strings.TrimSpace(payload.Description)),
		Facility:       payload.Facility,
		Responsible:    "",
		Status:         constants.StatusEntered,
	}

	tickets = append(tickets, ticket)
	if err := s.store.SaveAll(tickets); err != nil {
		return nil, err
	}

	s.logger.Info("Móvil ingresado al taller",
		zap.String("unit", ticket.Unit),
		zap.String("vehicle", ticket.VehicleID),
		zap.String("workType", ticket.WorkType),
	)

	result := ticketToDTO(ticket)
	return &result, nil
}

func keyTaken(tickets []entities.MaintenanceTicket, unit, vehicleID string, entry time.Time) bool {
	for _, t := range tickets {
		if t.Unit == unit && t.VehicleID == vehicleID && t.EntryTimestamp.Equal(entry) {
			return true
		}
	}
	return false
}

// ApplyEdits aplica un lote de ediciones todo-o-nada: se validan todas las
// transiciones contra un snapshot recién leído y sólo si ninguna es
// inválida se persiste una única vez. Las filas que ya no existen se
// saltean en silencio (la tabla mostrada puede estar desactualizada).
func (s *workshopService) ApplyEdits(ctx context.Context, payload dto.ApplyTicketEditsDTO) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.store.Load()
	if err != nil {
		return 0, 0, err
	}

	index := make(map[entities.TicketKey]int, len(tickets))
	for i, t := range tickets {
		index[t.Key()] = i
	}

	type resolved struct {
		idx  int
		edit dto.TicketEditDTO
	}

	var toApply []resolved
	skipped := 0
	seen := make(map[entities.TicketKey]bool, len(payload.Edits))

	for _, edit := range payload.Edits {
		entry, err := time.Parse(constants.TicketTimeLayout, edit.EntryTimestamp)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: fecha de ingreso ilegible: %q",
				apperrors.ErrBadRequest, edit.EntryTimestamp)
		}

		key := entities.TicketKey{Unit: edit.Unit, VehicleID: edit.VehicleID, EntryTimestamp: entry}
		// Dos ediciones sobre el mismo ticket en un lote encadenarían
		// transiciones validadas ambas contra el estado previo.
		if seen[key] {
			return 0, 0, fmt.Errorf("%w: el lote trae dos ediciones para unidad %q, móvil %q, ingreso %q",
				apperrors.ErrBadRequest, edit.Unit, edit.VehicleID, edit.EntryTimestamp)
		}
		seen[key] = true

		idx, ok := index[key]
		if !ok {
			skipped++
			continue
		}

		current := tickets[idx].Status
		if !transitionAllowed(current, edit.Status) {
			return 0, 0, fmt.Errorf("%w: unidad %q, móvil %q: %s → %s",
				apperrors.ErrInvalidTransition, edit.Unit, edit.VehicleID, current, edit.Status)
		}

		toApply = append(toApply, resolved{idx: idx, edit: edit})
	}

	if len(toApply) == 0 {
		return 0, skipped, nil
	}

	now := s.now().Truncate(time.Second)
	for _, r := range toApply {
		t := &tickets[r.idx]
		t.Status = r.edit.Status
		t.Responsible = strings.TrimSpace(r.edit.Responsible)
		// El egreso se fija una sola vez, al entrar a COMPLETED.
		if t.Status == constants.StatusCompleted && !t.ExitTimestamp.Valid {
			t.ExitTimestamp = null.TimeFrom(now)
		}
	}

	if err := s.store.SaveAll(tickets); err != nil {
		return 0, 0, err
	}

	s.logger.Info("Ediciones del taller aplicadas",
		zap.Int("applied", len(toApply)),
		zap.Int("skipped", skipped),
	)
	return len(toApply), skipped, nil
}

func (s *workshopService) Snapshot(ctx context.Context) ([]entities.MaintenanceTicket, error) {
	return s.store.Load()
}

func (s *workshopService) GetBoard(ctx context.Context) (*dto.WorkshopBoardDTO, error) {
	tickets, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	board := &dto.WorkshopBoardDTO{
		Entered:    []dto.TicketDTO{},
		InRepair:   []dto.TicketDTO{},
		Completed:  []dto.TicketDTO{},
		Indicators: CountByStatus(tickets),
		Ranking:    ReincidenceRanking(tickets),
	}

	for _, t := range tickets {
		item := ticketToDTO(t)
		switch t.Status {
		case constants.StatusEntered:
			board.Entered = append(board.Entered, item)
		case constants.StatusInRepair:
			board.InRepair = append(board.InRepair, item)
		case constants.StatusCompleted:
			board.Completed = append(board.Completed, item)
		}
	}

	return board, nil
}

func ticketToDTO(t entities.MaintenanceTicket) dto.TicketDTO {
	exit := ""
	if t.ExitTimestamp.Valid {
		exit = t.ExitTimestamp.Time.Format(constants.TicketTimeLayout)
	}
	return dto.TicketDTO{
		EntryTimestamp: t.EntryTimestamp.Format(constants.TicketTimeLayout),
		ExitTimestamp:  exit,
		Unit:           t.Unit,
		VehicleID:      t.VehicleID,
		WorkType:       t.WorkType,
		Description:    t.Description,
		Facility:       t.Facility,
		Responsible:    t.Responsible,
		Status:         t.Status,
	}
}
