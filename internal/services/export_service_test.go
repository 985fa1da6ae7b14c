package services

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleet-system/internal/dto"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/constants"
	apperrors "fleet-system/pkg/errors"
)

func newExportFixture(t *testing.T) (ExportServiceInterface, repositories.HistoryRepositoryInterface) {
	t.Helper()
	dir := t.TempDir()

	reportPath := writeReportFile(t, dir)
	reportSvc := newReportService(t, reportPath)

	wfx := newWorkshopFixture(t)
	_, err := wfx.svc.CreateTicket(context.Background(), dto.CreateTicketDTO{
		Unit:      "U1",
		VehicleID: "007",
		WorkType:  constants.WorkTypeRepair,
		Facility:  constants.FacilityPoliceWorkshop,
	})
	require.NoError(t, err)

	historyRepo := repositories.NewHistoryRepository(filepath.Join(dir, "HISTORICO"), zap.NewNop())
	return NewExportService(reportSvc, wfx.svc, historyRepo, zap.NewNop()), historyRepo
}

func openWorkbook(t *testing.T, payload []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportService_ConsolidatedWorkbook(t *testing.T) {
	svc, _ := newExportFixture(t)

	payload, fileName, err := svc.ConsolidatedWorkbook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Resultados_Operativos.xlsx", fileName)

	f := openWorkbook(t, payload)
	assert.Equal(t, []string{"ALLANAMIENTOS"}, f.GetSheetList())

	rows, err := f.GetRows("ALLANAMIENTOS")
	require.NoError(t, err)
	assert.Equal(t, []string{"FECHA", "UNIDAD", "RESULTADO"}, rows[0])
	assert.Len(t, rows, 5, "encabezado más las cuatro filas limpias")
}

func TestExportService_SummaryWorkbook(t *testing.T) {
	svc, _ := newExportFixture(t)

	payload, fileName, err := svc.SummaryWorkbook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Resumenes_Operativos.xlsx", fileName)

	f := openWorkbook(t, payload)
	assert.Contains(t, f.GetSheetList(), "ALLANAMIENTOS_POR_MES")
	assert.Contains(t, f.GetSheetList(), "ALLANAMIENTOS_POR_UNIDAD")

	rows, err := f.GetRows("ALLANAMIENTOS_POR_MES")
	require.NoError(t, err)
	assert.Equal(t, []string{"GRUPO", "CANTIDAD"}, rows[0])
	assert.Equal(t, []string{"ENERO", "2"}, rows[1])
}

func TestExportService_WorkshopLogWorkbook(t *testing.T) {
	svc, _ := newExportFixture(t)

	payload, fileName, err := svc.WorkshopLogWorkbook(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Registro_Taller.xlsx", fileName)

	f := openWorkbook(t, payload)
	rows, err := f.GetRows("TALLER")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, constants.WorkshopColumns, rows[0])
	assert.Equal(t, "007", rows[1][3], "el número de móvil viaja como texto")
}

func TestExportService_EveryExportArchived(t *testing.T) {
	svc, historyRepo := newExportFixture(t)
	ctx := context.Background()

	_, _, err := svc.ConsolidatedWorkbook(ctx)
	require.NoError(t, err)
	_, _, err = svc.WorkshopLogWorkbook(ctx)
	require.NoError(t, err)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2, "cada exportación deja su copia histórica")

	direct, err := historyRepo.List()
	require.NoError(t, err)
	assert.Equal(t, history, direct)
}

func TestExportService_NoReportUploaded(t *testing.T) {
	dir := t.TempDir()
	reportSvc := newReportService(t, filepath.Join(dir, "OPERATIVOS.xlsx"))
	wfx := newWorkshopFixture(t)
	historyRepo := repositories.NewHistoryRepository(filepath.Join(dir, "HISTORICO"), zap.NewNop())
	svc := NewExportService(reportSvc, wfx.svc, historyRepo, zap.NewNop())

	_, _, err := svc.ConsolidatedWorkbook(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	history, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history, "una exportación fallida no deja copia histórica")
}
