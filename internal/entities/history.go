package entities

import "time"

// HistoryEntry es una copia archivada en el directorio histórico.
type HistoryEntry struct {
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	ArchivedAt time.Time `json:"archived_at"`
}
