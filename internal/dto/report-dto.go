package dto

// SummaryDTO: un resumen (por mes, por unidad, por resultado...) listo
// para mostrar en el tablero.
type SummaryDTO struct {
	Name string          `json:"name"`
	Rows []SummaryRowDTO `json:"rows"`
}

type SummaryRowDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ReportSummariesDTO: todos los resúmenes del último archivo subido.
type ReportSummariesDTO struct {
	Sheets    []string     `json:"sheets"`
	Summaries []SummaryDTO `json:"summaries"`
}

// HistoryEntryDTO: una copia archivada en el histórico.
type HistoryEntryDTO struct {
	FileName   string `json:"file_name"`
	SizeBytes  int64  `json:"size_bytes"`
	ArchivedAt string `json:"archived_at"`
}
