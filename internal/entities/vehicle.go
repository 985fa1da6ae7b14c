package entities

// VehicleEntry es una fila del parque automotor (MOVILES.xlsx).
// Se reconstruye entera en cada recarga de la planilla; nadie la muta.
type VehicleEntry struct {
	Unit      string `json:"unit"`
	VehicleID string `json:"vehicle_id"`
}

// FleetVehicle es una fila de las hojas FLOTA/MOTOS con su clasificación
// de disponibilidad derivada de "SITUACION ACTUAL".
type FleetVehicle struct {
	Unit         string `json:"unit"`
	VehicleID    string `json:"vehicle_id"`
	Category     string `json:"category"` // FLOTA | MOTOS
	Destination  string `json:"destination,omitempty"`
	Direction    string `json:"direction,omitempty"`
	Availability string `json:"availability"`
}
