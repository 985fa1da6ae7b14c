package repositories

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	apperrors "fleet-system/pkg/errors"
)

// replaceWorkbook guarda el contenido subido en un temporal, verifica que
// sea un xlsx abrible y recién entonces lo renombra encima del destino.
func replaceWorkbook(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("no se pudo crear el directorio de planillas: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "upload-"+uuid.NewString()+".xlsx")
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("no se pudo crear el archivo temporal: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("no se pudo guardar la planilla subida: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("no se pudo cerrar el archivo temporal: %w", err)
	}

	probe, err := excelize.OpenFile(tmp)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: el archivo subido no es un xlsx válido: %v", apperrors.ErrBadRequest, err)
	}
	probe.Close()

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("no se pudo reemplazar la planilla: %w", err)
	}
	return nil
}
