package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
)

// fakeClock reemplaza time.Now en los tests para controlar los timestamps.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

type workshopFixture struct {
	svc   WorkshopServiceInterface
	store repositories.TicketStoreInterface
	clock *fakeClock
}

// newWorkshopFixture arma el servicio completo sobre un directorio temporal:
// una planilla de móviles real con las unidades U1 y U2, un store vacío y
// un reloj congelado.
func newWorkshopFixture(t *testing.T) *workshopFixture {
	t.Helper()
	dir := t.TempDir()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"UNIDAD", "JP"},
		{"U1", "007"},
		{"U1", "31"},
		{"U2", "55"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	rosterPath := filepath.Join(dir, "MOVILES.xlsx")
	require.NoError(t, f.SaveAs(rosterPath))
	require.NoError(t, f.Close())

	store := repositories.NewTicketStore(filepath.Join(dir, "TALLER_MOVILES.xlsx"), zap.NewNop())
	rosterRepo := repositories.NewRosterRepository(rosterPath, zap.NewNop())

	clock := &fakeClock{current: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)}
	svc := NewWorkshopService(store, rosterRepo, zap.NewNop())
	svc.(*workshopService).now = clock.Now

	return &workshopFixture{svc: svc, store: store, clock: clock}
}

func (fx *workshopFixture) edit(t *testing.T, ticket dto.TicketDTO, status, responsible string) (int, int, error) {
	t.Helper()
	return fx.svc.ApplyEdits(context.Background(), dto.ApplyTicketEditsDTO{
		Edits: []dto.TicketEditDTO{{
			Unit:           ticket.Unit,
			VehicleID:      ticket.VehicleID,
			EntryTimestamp: ticket.EntryTimestamp,
			Status:         status,
			Responsible:    responsible,
		}},
	})
}

func TestWorkshopService_Lifecycle(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	ticket, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:        "U1",
		VehicleID:   "007",
		WorkType:    constants.WorkTypeRepair,
		Description: "  cambio de embrague ",
		Facility:    constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusEntered, ticket.Status)
	assert.Equal(t, "CAMBIO DE EMBRAGUE", ticket.Description, "la descripción se guarda en mayúsculas")
	assert.Equal(t, "2025-03-10 09:30:00", ticket.EntryTimestamp)
	assert.Empty(t, ticket.ExitTimestamp)
	assert.Empty(t, ticket.Responsible)

	// Con un ticket abierto el mismo móvil no puede reingresar.
	_, err = fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeMaintenance,
		Facility:  constants.FacilityOfficialService,
	})
	assert.ErrorIs(t, err, apperrors.ErrVehicleAlreadyInWorkshop)

	applied, skipped, err := fx.edit(t, *ticket, constants.StatusInRepair, "SGTO. LOPEZ")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Zero(t, skipped)

	fx.clock.Advance(2 * time.Hour)
	applied, _, err = fx.edit(t, *ticket, constants.StatusCompleted, "SGTO. LOPEZ")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	tickets, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, constants.StatusCompleted, tickets[0].Status)
	assert.Equal(t, "SGTO. LOPEZ", tickets[0].Responsible)
	require.True(t, tickets[0].ExitTimestamp.Valid, "al completar se fija el egreso")
	assert.Equal(t, fx.clock.current, tickets[0].ExitTimestamp.Time)

	// De COMPLETED no se sale.
	_, _, err = fx.edit(t, *ticket, constants.StatusEntered, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	_, _, err = fx.edit(t, *ticket, constants.StatusInRepair, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestWorkshopService_UnknownVehicleRejected(t *testing.T) {
	fx := newWorkshopFixture(t)

	_, err := fx.svc.CreateTicket(context.Background(), dto.CreateTicketDTO{
		Unit:      "U9",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownVehicle)

	// La misma unidad con un móvil ajeno tampoco pasa.
	_, err = fx.svc.CreateTicket(context.Background(), dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "55",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownVehicle)
}

func TestWorkshopService_ReentryAfterCompleted(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	first, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	_, _, err = fx.edit(t, *first, constants.StatusCompleted, "")
	require.NoError(t, err)

	// Sin avanzar el reloj: el reingreso cae en el mismo segundo y el
	// ingreso se corre para mantener la terna única.
	second, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeMaintenance,
		Facility:  constants.FacilityOfficialService,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10 09:30:01", second.EntryTimestamp)

	tickets, err := fx.store.Load()
	require.NoError(t, err)
	assert.Len(t, tickets, 2, "el historial del móvil conserva ambos tickets")

	// Con el segundo ticket abierto, los anteriores completados no
	// habilitan otro ingreso.
	_, err = fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeIncident,
		Facility:  constants.FacilityOther,
	})
	assert.ErrorIs(t, err, apperrors.ErrVehicleAlreadyInWorkshop)
}

func TestWorkshopService_BatchAllOrNothing(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	a, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	fx.clock.Advance(time.Minute)
	b, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "31",
		WorkType:  constants.WorkTypeMaintenance,
		Facility:  constants.FacilityOfficialService,
	})
	require.NoError(t, err)

	_, _, err = fx.edit(t, *b, constants.StatusCompleted, "")
	require.NoError(t, err)

	before, err := fx.store.Load()
	require.NoError(t, err)

	// Una edición válida y una inválida en el mismo lote: no se aplica nada.
	_, _, err = fx.svc.ApplyEdits(ctx, dto.ApplyTicketEditsDTO{
		Edits: []dto.TicketEditDTO{
			{
				Unit:           a.Unit,
				VehicleID:      a.VehicleID,
				EntryTimestamp: a.EntryTimestamp,
				Status:         constants.StatusInRepair,
				Responsible:    "CABO PEREZ",
			},
			{
				Unit:           b.Unit,
				VehicleID:      b.VehicleID,
				EntryTimestamp: b.EntryTimestamp,
				Status:         constants.StatusEntered,
			},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	after, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after, "un lote rechazado deja el archivo intacto")
}

func TestWorkshopService_DuplicateKeyInBatchRejected(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	ticket, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	// Dos ediciones sobre el mismo ticket: la segunda saldría de COMPLETED
	// si se validaran ambas contra el estado previo del lote.
	_, _, err = fx.svc.ApplyEdits(ctx, dto.ApplyTicketEditsDTO{
		Edits: []dto.TicketEditDTO{
			{
				Unit:           ticket.Unit,
				VehicleID:      ticket.VehicleID,
				EntryTimestamp: ticket.EntryTimestamp,
				Status:         constants.StatusCompleted,
			},
			{
				Unit:           ticket.Unit,
				VehicleID:      ticket.VehicleID,
				EntryTimestamp: ticket.EntryTimestamp,
				Status:         constants.StatusEntered,
			},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	tickets, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, constants.StatusEntered, tickets[0].Status, "el lote rechazado no aplica ninguna edición")
	assert.False(t, tickets[0].ExitTimestamp.Valid, "sin COMPLETED no hay egreso")
}

func TestWorkshopService_MissingRowsSkippedSilently(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	ticket, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	applied, skipped, err := fx.svc.ApplyEdits(ctx, dto.ApplyTicketEditsDTO{
		Edits: []dto.TicketEditDTO{
			{
				Unit:           ticket.Unit,
				VehicleID:      ticket.VehicleID,
				EntryTimestamp: ticket.EntryTimestamp,
				Status:         constants.StatusInRepair,
			},
			{
				Unit:           "U2",
				VehicleID:      "55",
				EntryTimestamp: "2024-01-01 00:00:00",
				Status:         constants.StatusCompleted,
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, skipped, "la fila que ya no existe se saltea sin fallar el lote")
}

func TestWorkshopService_SelfEditKeepsStatusAndExit(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	ticket, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	_, _, err = fx.edit(t, *ticket, constants.StatusCompleted, "SGTO. LOPEZ")
	require.NoError(t, err)
	completedAt := fx.clock.current

	// Quedarse en COMPLETED vale como corrección del responsable, y el
	// egreso ya fijado no se vuelve a tocar.
	fx.clock.Advance(24 * time.Hour)
	applied, _, err := fx.edit(t, *ticket, constants.StatusCompleted, "CABO PEREZ")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	tickets, err := fx.store.Load()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "CABO PEREZ", tickets[0].Responsible)
	assert.Equal(t, completedAt, tickets[0].ExitTimestamp.Time)
}

func TestWorkshopService_GetBoardBucketsByStatus(t *testing.T) {
	fx := newWorkshopFixture(t)
	ctx := context.Background()

	for _, id := range []string{"007", "31"} {
		fx.clock.Advance(time.Minute)
		_, err := fx.svc.CreateTicket(ctx, dto.CreateTicketDTO{
			Unit:      "U1",
			VehicleID: id,
			WorkType:  constants.WorkTypeRepair,
			Facility:  constants.FacilityPoliceWorkshop,
		})
		require.NoError(t, err)
	}

	board, err := fx.svc.GetBoard(ctx)
	require.NoError(t, err)

	assert.Len(t, board.Entered, 2)
	assert.Empty(t, board.InRepair)
	assert.Empty(t, board.Completed)
	assert.Equal(t, 2, board.Indicators[constants.StatusEntered])
	assert.Equal(t, 0, board.Indicators[constants.StatusCompleted], "los indicadores vienen con los tres estados aunque estén en cero")
	require.Len(t, board.Ranking, 2)
}
