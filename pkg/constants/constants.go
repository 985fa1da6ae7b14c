package constants

// --- ESTADOS DE TICKET (coinciden con la columna `status` del archivo) ---
const (
	StatusEntered   = "ENTERED"
	StatusInRepair  = "IN_REPAIR"
	StatusCompleted = "COMPLETED"
)

var AllStatuses = []string{
	StatusEntered,
	StatusInRepair,
	StatusCompleted,
}

// IsFinalStatus: COMPLETED es terminal, ninguna transición sale de él.
func IsFinalStatus(code string) bool {
	return code == StatusCompleted
}

// --- TIPOS DE TRABAJO ---
const (
	WorkTypeMaintenance    = "MAINTENANCE"
	WorkTypeRepair         = "REPAIR"
	WorkTypeIncident       = "INCIDENT"
	WorkTypeGeneralService = "GENERAL_SERVICE"
)

var AllWorkTypes = []string{
	WorkTypeMaintenance,
	WorkTypeRepair,
	WorkTypeIncident,
	WorkTypeGeneralService,
}

// --- TALLERES ---
const (
	FacilityPoliceWorkshop  = "POLICE_WORKSHOP"
	FacilityOfficialService = "OFFICIAL_SERVICE"
	FacilityTireShop        = "TIRE_SHOP"
	FacilityElectrician     = "ELECTRICIAN"
	FacilityBodyShop        = "BODY_SHOP"
	FacilityOther           = "OTHER"
)

var AllFacilities = []string{
	FacilityPoliceWorkshop,
	FacilityOfficialService,
	FacilityTireShop,
	FacilityElectrician,
	FacilityBodyShop,
	FacilityOther,
}

// Formato de los timestamps persistidos y expuestos por la API. Texto
// plano con precisión de segundos: la terna identidad de un ticket tiene
// que sobrevivir el viaje por el archivo byte a byte.
const TicketTimeLayout = "2006-01-02 15:04:05"

// --- COLUMNAS DE PLANILLAS ---

// Encabezados del archivo del taller, en este orden exacto.
var WorkshopColumns = []string{
	"entryTimestamp", "exitTimestamp", "unit", "vehicleId",
	"workType", "description", "facility", "responsible", "status",
}

const (
	RosterUnitColumn    = "UNIDAD"
	RosterVehicleColumn = "JP"
	FleetStatusColumn   = "SITUACION ACTUAL"
	FleetDestColumn     = "DESTINO"
	FleetDirColumn      = "DIRECCION"
	NoUnitLabel         = "SIN UNIDAD"
)

// --- DISPONIBILIDAD DE FLOTA ---
const (
	FleetInService    = "IN_SERVICE"
	FleetOutOfService = "OUT_OF_SERVICE"
	FleetLimited      = "LIMITED"
)
