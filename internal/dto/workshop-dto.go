package dto

// CreateTicketDTO: lo que manda el cliente para ingresar un móvil al taller.
type CreateTicketDTO struct {
	Unit        string `json:"unit" validate:"required"`
	VehicleID   string `json:"vehicle_id" validate:"required"`
	WorkType    string `json:"work_type" validate:"required,work_type"`
	Description string `json:"description"`
	Facility    string `json:"facility" validate:"required,facility"`
}

// TicketEditDTO es una fila editada de las tablas del tablero. La terna
// identifica el ticket; sólo estado y responsable son editables.
type TicketEditDTO struct {
	Unit           string `json:"unit" validate:"required"`
	VehicleID      string `json:"vehicle_id" validate:"required"`
	EntryTimestamp string `json:"entry_timestamp" validate:"required"`
	Status         string `json:"status" validate:"required,ticket_status"`
	Responsible    string `json:"responsible"`
}

// ApplyTicketEditsDTO: lote completo de una tabla. Se aplica todo o nada.
type ApplyTicketEditsDTO struct {
	Edits []TicketEditDTO `json:"edits" validate:"required,min=1,dive"`
}

// TicketDTO: lo que el servidor devuelve por cada ticket.
type TicketDTO struct {
	EntryTimestamp string `json:"entry_timestamp"`
	ExitTimestamp  string `json:"exit_timestamp,omitempty"`
	Unit           string `json:"unit"`
	VehicleID      string `json:"vehicle_id"`
	WorkType       string `json:"work_type"`
	Description    string `json:"description"`
	Facility       string `json:"facility"`
	Responsible    string `json:"responsible"`
	Status         string `json:"status"`
}

// WorkshopBoardDTO agrupa los tickets por estado para las tres tablas del
// tablero, junto con los indicadores y el ranking.
type WorkshopBoardDTO struct {
	Entered    []TicketDTO       `json:"entered"`
	InRepair   []TicketDTO       `json:"in_repair"`
	Completed  []TicketDTO       `json:"completed"`
	Indicators map[string]int    `json:"indicators"`
	Ranking    []RankingEntryDTO `json:"ranking"`
}

type RankingEntryDTO struct {
	Unit      string `json:"unit"`
	VehicleID string `json:"vehicle_id"`
	Entries   int    `json:"entries"`
}
