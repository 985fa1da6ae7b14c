package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
)

type ExportServiceInterface interface {
	ConsolidatedWorkbook(ctx context.Context) ([]byte, string, error)
	SummaryWorkbook(ctx context.Context) ([]byte, string, error)
	WorkshopLogWorkbook(ctx context.Context) ([]byte, string, error)
	History(ctx context.Context) ([]entities.HistoryEntry, error)
}

// exportService genera los archivos descargables y deja una copia con
// marca de fecha en el histórico por cada exportación.
type exportService struct {
	reportService   ReportServiceInterface
	workshopService WorkshopServiceInterface
	historyRepo     repositories.HistoryRepositoryInterface
	logger          *zap.Logger
}

func NewExportService(
	reportService ReportServiceInterface,
	workshopService WorkshopServiceInterface,
	historyRepo repositories.HistoryRepositoryInterface,
	logger *zap.Logger,
) ExportServiceInterface {
	return &exportService{
		reportService:   reportService,
		workshopService: workshopService,
		historyRepo:     historyRepo,
		logger:          logger,
	}
}

// ConsolidatedWorkbook arma un xlsx con las hojas limpias tal cual
// (allanamientos + armas), una hoja por hoja de origen.
func (s *exportService) ConsolidatedWorkbook(ctx context.Context) ([]byte, string, error) {
	sheets, err := s.reportService.CleanSheets(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			f.NewSheet(name)
		}

		headers := append([]string(nil), sheet.Columns...)
		f.SetSheetRow(name, "A1", &headers)
		boldHeader(f, name, len(headers))

		for rIdx, row := range sheet.Rows {
			values := make([]interface{}, len(sheet.Columns))
			for cIdx, col := range sheet.Columns {
				values[cIdx] = row.Cells[col]
			}
			cell, _ := excelize.CoordinatesToCellName(1, rIdx+2)
			f.SetSheetRow(name, cell, &values)
		}
	}

	return s.finish(f, "Resultados_Operativos.xlsx")
}

// SummaryWorkbook arma un xlsx sólo con los resúmenes, una hoja por resumen.
func (s *exportService) SummaryWorkbook(ctx context.Context) ([]byte, string, error) {
	summaries, err := s.reportService.GetSummaries(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, summary := range summaries.Summaries {
		name := sheetName(summary.Name)
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			f.NewSheet(name)
		}

		headers := []string{"GRUPO", "CANTIDAD"}
		f.SetSheetRow(name, "A1", &headers)
		boldHeader(f, name, len(headers))

		for rIdx, row := range summary.Rows {
			values := []interface{}{row.Label, row.Count}
			cell, _ := excelize.CoordinatesToCellName(1, rIdx+2)
			f.SetSheetRow(name, cell, &values)
		}
	}

	return s.finish(f, "Resumenes_Operativos.xlsx")
}

// WorkshopLogWorkbook exporta el registro completo del taller con las
// mismas columnas del archivo persistido.
func (s *exportService) WorkshopLogWorkbook(ctx context.Context) ([]byte, string, error) {
	tickets, err := s.workshopService.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const name = "TALLER"
	f.SetSheetName("Sheet1", name)

	headers := append([]string(nil), constants.WorkshopColumns...)
	f.SetSheetRow(name, "A1", &headers)
	boldHeader(f, name, len(headers))

	for i, t := range tickets {
		item := ticketToDTO(t)
		values := []interface{}{
			item.EntryTimestamp, item.ExitTimestamp, item.Unit, item.VehicleID,
			item.WorkType, item.Description, item.Facility, item.Responsible, item.Status,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(name, cell, &values)
	}

	return s.finish(f, "Registro_Taller.xlsx")
}

func (s *exportService) History(ctx context.Context) ([]entities.HistoryEntry, error) {
	return s.historyRepo.List()
}

// finish serializa el workbook, lo archiva en el histórico y devuelve los
// bytes listos para descargar.
func (s *exportService) finish(f *excelize.File, fileName string) ([]byte, string, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("no se pudo generar el archivo %s: %w", fileName, err)
	}

	archived, err := s.historyRepo.Archive(fileName, buf.Bytes())
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("Exportación generada",
		zap.String("file", fileName),
		zap.String("archived", archived),
	)

	return buf.Bytes(), fileName, nil
}

// Los nombres de hoja en Excel no pueden superar 31 caracteres.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

func boldHeader(f *excelize.File, sheet string, cols int) {
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	end, _ := excelize.CoordinatesToCellName(cols, 1)
	f.SetCellStyle(sheet, "A1", end, style)
}
