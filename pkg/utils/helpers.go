package utils

import "strings"

// NormalizeCell limpia el texto de una celda: recorta espacios y pasa a
// mayúsculas. Los valores literales de pandas ("NAN", "NONE") quedan vacíos.
func NormalizeCell(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "NAN", "NONE", "NONETYPE", "NAT":
		return ""
	}
	return s
}

// SafeGet devuelve la celda idx de la fila, o "" si la fila es corta.
func SafeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
