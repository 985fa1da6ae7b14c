package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/utils"
)

type ReportServiceInterface interface {
	ReplaceWorkbook(ctx context.Context, src io.Reader, fileName string) (*dto.UploadResultDTO, error)
	GetSummaries(ctx context.Context) (*dto.ReportSummariesDTO, error)
	CleanSheets(ctx context.Context) ([]entities.ReportSheet, error)
}

// reportService limpia la planilla de operativos (allanamientos / armas) y
// calcula los resúmenes del tablero. Todo es transformación determinista
// sobre el último archivo subido; no hay estado en memoria.
type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) ReplaceWorkbook(ctx context.Context, src io.Reader, fileName string) (*dto.UploadResultDTO, error) {
	if err := s.reportRepo.Replace(src); err != nil {
		return nil, err
	}

	sheets, err := s.CleanSheets(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.UploadResultDTO{FileName: fileName}
	for _, sheet := range sheets {
		result.Sheets = append(result.Sheets, sheet.Name)
		result.Rows += len(sheet.Rows)
	}
	return result, nil
}

// CleanSheets aplica la limpieza básica a cada hoja: encabezados y celdas
// en mayúsculas y sin espacios sobrantes, fechas interpretadas día-primero
// y número de mes derivado de la primera columna de fecha.
func (s *reportService) CleanSheets(ctx context.Context) ([]entities.ReportSheet, error) {
	raw, err := s.reportRepo.LoadSheets()
	if err != nil {
		return nil, err
	}

	var sheets []entities.ReportSheet
	for _, rawSheet := range raw {
		if len(rawSheet.Rows) < 2 {
			continue
		}

		columns := make([]string, len(rawSheet.Rows[0]))
		for i, col := range rawSheet.Rows[0] {
			columns[i] = utils.NormalizeCell(col)
		}

		dateCols := make([]int, 0, 2)
		for i, col := range columns {
			if strings.Contains(col, "FECHA") {
				dateCols = append(dateCols, i)
			}
		}

		sheet := entities.ReportSheet{Name: utils.NormalizeCell(rawSheet.Name), Columns: columns}
		for _, row := range rawSheet.Rows[1:] {
			cells := make(map[string]string, len(columns))
			empty := true
			for i, col := range columns {
				if col == "" {
					continue
				}
				v := utils.NormalizeCell(utils.SafeGet(row, i))
				cells[col] = v
				if v != "" {
					empty = false
				}
			}
			if empty {
				continue
			}

			monthNum := 0
			for _, dIdx := range dateCols {
				if t, ok := utils.ParseCellDate(utils.SafeGet(row, dIdx)); ok {
					monthNum = int(t.Month())
					cells[columns[dIdx]] = t.Format("02/01/2006")
					break
				}
			}

			sheet.Rows = append(sheet.Rows, entities.ReportRow{Cells: cells, MonthNum: monthNum})
		}

		if len(sheet.Rows) > 0 {
			sheets = append(sheets, sheet)
		}
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: la planilla no tiene filas usables", apperrors.ErrNoUsableSheets)
	}
	return sheets, nil
}

func (s *reportService) GetSummaries(ctx context.Context) (*dto.ReportSummariesDTO, error) {
	sheets, err := s.CleanSheets(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ReportSummariesDTO{}
	for _, sheet := range sheets {
		result.Sheets = append(result.Sheets, sheet.Name)
		result.Summaries = append(result.Summaries, ComputeSummaries(sheet)...)
	}
	return result, nil
}

// ComputeSummaries replica los resúmenes del tablero: filas por mes y
// totales por las columnas de agrupación que la hoja tenga (unidad,
// resultado, procedimiento/tipo).
func ComputeSummaries(sheet entities.ReportSheet) []dto.SummaryDTO {
	var summaries []dto.SummaryDTO

	summaries = append(summaries, monthlySummary(sheet))

	for _, needle := range []string{"UNIDAD", "RESULTADO", "PROCEDIMIENTO", "TIPO"} {
		col := findColumn(sheet.Columns, needle)
		if col == "" {
			continue
		}
		summaries = append(summaries, groupTotals(sheet, col))
	}

	return summaries
}

func findColumn(columns []string, needle string) string {
	for _, col := range columns {
		if strings.Contains(col, needle) {
			return col
		}
	}
	return ""
}

func monthlySummary(sheet entities.ReportSheet) dto.SummaryDTO {
	counts := make(map[int]int)
	for _, row := range sheet.Rows {
		counts[row.MonthNum]++
	}

	months := make([]int, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	// Meses en orden calendario; las filas sin fecha (mes 0) van al final.
	sort.Slice(months, func(i, j int) bool {
		if (months[i] == 0) != (months[j] == 0) {
			return months[j] == 0
		}
		return months[i] < months[j]
	})

	summary := dto.SummaryDTO{Name: sheet.Name + "_POR_MES"}
	for _, m := range months {
		label := utils.NoDateLabel
		if m != 0 {
			label = utils.MonthName(m)
		}
		summary.Rows = append(summary.Rows, dto.SummaryRowDTO{Label: label, Count: counts[m]})
	}
	return summary
}

func groupTotals(sheet entities.ReportSheet, column string) dto.SummaryDTO {
	counts := make(map[string]int)
	for _, row := range sheet.Rows {
		v := row.Cells[column]
		if v == "" {
			continue
		}
		counts[v]++
	}

	summary := dto.SummaryDTO{Name: sheet.Name + "_POR_" + strings.ReplaceAll(column, " ", "_")}
	for label, n := range counts {
		summary.Rows = append(summary.Rows, dto.SummaryRowDTO{Label: label, Count: n})
	}
	sort.Slice(summary.Rows, func(i, j int) bool {
		if summary.Rows[i].Count != summary.Rows[j].Count {
			return summary.Rows[i].Count > summary.Rows[j].Count
		}
		return summary.Rows[i].Label < summary.Rows[j].Label
	})
	return summary
}
