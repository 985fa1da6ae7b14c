package repositories

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	apperrors "fleet-system/pkg/errors"
)

// RawSheet es una hoja tal cual viene de la planilla, sin limpiar.
type RawSheet struct {
	Name string
	Rows [][]string
}

type ReportRepositoryInterface interface {
	LoadSheets() ([]RawSheet, error)
	Replace(src io.Reader) error
	Exists() bool
}

// reportRepository guarda la última planilla de operativos subida
// (allanamientos/armas) y la devuelve cruda; la limpieza y los resúmenes
// son del servicio. Mantenerla en disco y no en memoria hace que el
// tablero sobreviva reinicios sin perder el último archivo.
type reportRepository struct {
	path   string
	logger *zap.Logger
}

func NewReportRepository(path string, logger *zap.Logger) ReportRepositoryInterface {
	return &reportRepository{path: path, logger: logger}
}

func (r *reportRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

func (r *reportRepository) LoadSheets() ([]RawSheet, error) {
	if !r.Exists() {
		return nil, fmt.Errorf("%w: todavía no se subió ninguna planilla de operativos", apperrors.ErrNotFound)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRosterUnreadable, r.path, err)
	}
	defer f.Close()

	var sheets []RawSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, RawSheet{Name: name, Rows: rows})
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoUsableSheets, r.path)
	}
	return sheets, nil
}

func (r *reportRepository) Replace(src io.Reader) error {
	if err := replaceWorkbook(r.path, src); err != nil {
		return err
	}
	r.logger.Info("Planilla de operativos reemplazada", zap.String("path", r.path))
	return nil
}
