package dto

// UnitVehiclesDTO: móviles válidos de una unidad para el formulario de ingreso.
type UnitVehiclesDTO struct {
	Unit     string   `json:"unit"`
	Vehicles []string `json:"vehicles"`
}

// FleetVehicleDTO es una fila del resumen de disponibilidad.
type FleetVehicleDTO struct {
	Unit         string `json:"unit"`
	VehicleID    string `json:"vehicle_id"`
	Category     string `json:"category"`
	Availability string `json:"availability"`
}

// FleetSummaryDTO: disponibilidad agrupada por unidad, con los totales.
type FleetSummaryDTO struct {
	Units  []FleetUnitDTO `json:"units"`
	Totals map[string]int `json:"totals"`
}

type FleetUnitDTO struct {
	Unit     string            `json:"unit"`
	Vehicles []FleetVehicleDTO `json:"vehicles"`
}

// UploadResultDTO: resultado de reemplazar una planilla subida.
type UploadResultDTO struct {
	FileName string   `json:"file_name"`
	Sheets   []string `json:"sheets,omitempty"`
	Rows     int      `json:"rows"`
}
