package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"fleet-system/pkg/constants"
)

// MaintenanceTicket es un paso de un móvil por el taller, desde el ingreso
// hasta el egreso. Tras la creación sólo cambian Status, Responsible y el
// ExitTimestamp derivado; el resto es inmutable.
type MaintenanceTicket struct {
	EntryTimestamp time.Time `json:"entry_timestamp"`
	ExitTimestamp  null.Time `json:"exit_timestamp"`
	Unit           string    `json:"unit"`
	VehicleID      string    `json:"vehicle_id"`
	WorkType       string    `json:"work_type"`
	Description    string    `json:"description"`
	Facility       string    `json:"facility"`
	Responsible    string    `json:"responsible"`
	Status         string    `json:"status"`
}

// TicketKey identifica un ticket. No hay clave sustituta: la terna
// (unidad, móvil, fecha de ingreso) es única en todo el archivo.
type TicketKey struct {
	Unit           string    `json:"unit"`
	VehicleID      string    `json:"vehicle_id"`
	EntryTimestamp time.Time `json:"entry_timestamp"`
}

func (t *MaintenanceTicket) Key() TicketKey {
	return TicketKey{
		Unit:           t.Unit,
		VehicleID:      t.VehicleID,
		EntryTimestamp: t.EntryTimestamp,
	}
}

// Active informa si el ticket sigue ocupando el taller.
func (t *MaintenanceTicket) Active() bool {
	return !constants.IsFinalStatus(t.Status)
}
