package utils

import (
	"strings"
	"time"
)

// Nombres de mes en mayúsculas, como los muestran los tableros.
var monthNames = map[int]string{
	1: "ENERO", 2: "FEBRERO", 3: "MARZO", 4: "ABRIL", 5: "MAYO", 6: "JUNIO",
	7: "JULIO", 8: "AGOSTO", 9: "SEPTIEMBRE", 10: "OCTUBRE", 11: "NOVIEMBRE", 12: "DICIEMBRE",
}

const NoDateLabel = "SIN FECHA"

func MonthName(n int) string {
	if name, ok := monthNames[n]; ok {
		return name
	}
	return NoDateLabel
}

// Formatos aceptados en las planillas, primero día/mes/año (convención local).
var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
	// excelize formatea las celdas de fecha nativas así
	"1/2/06 15:04",
	time.RFC3339,
}

// ParseCellDate intenta interpretar el texto de una celda como fecha.
// Devuelve false si la celda está vacía o ningún formato coincide.
func ParseCellDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
