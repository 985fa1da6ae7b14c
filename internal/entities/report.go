package entities

// ReportSheet es una hoja de la planilla de operativos ya normalizada:
// encabezados en mayúsculas, celdas limpias, fechas interpretadas.
type ReportSheet struct {
	Name    string
	Columns []string
	Rows    []ReportRow
}

// ReportRow conserva la fila original más el número de mes derivado de la
// primera columna de fecha (0 = sin fecha).
type ReportRow struct {
	Cells    map[string]string
	MonthNum int
}
