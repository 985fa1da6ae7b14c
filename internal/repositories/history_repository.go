package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"fleet-system/internal/entities"
)

type HistoryRepositoryInterface interface {
	Archive(baseName string, payload []byte) (string, error)
	List() ([]entities.HistoryEntry, error)
}

// historyRepository mantiene el histórico de exportaciones: cada archivo
// generado se copia con marca de fecha y nunca se borra.
type historyRepository struct {
	dir    string
	logger *zap.Logger
}

func NewHistoryRepository(dir string, logger *zap.Logger) HistoryRepositoryInterface {
	return &historyRepository{dir: dir, logger: logger}
}

func (r *historyRepository) Archive(baseName string, payload []byte) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio histórico: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	ext := filepath.Ext(baseName)
	name := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(baseName, ext), stamp, ext)
	path := filepath.Join(r.dir, name)

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("no se pudo guardar la copia histórica: %w", err)
	}

	r.logger.Info("Copia histórica creada", zap.String("file", name))
	return name, nil
}

func (r *historyRepository) List() ([]entities.HistoryEntry, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return []entities.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("no se pudo listar el histórico: %w", err)
	}

	var list []entities.HistoryEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		list = append(list, entities.HistoryEntry{
			FileName:   de.Name(),
			SizeBytes:  info.Size(),
			ArchivedAt: info.ModTime(),
		})
	}

	// Más reciente primero
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ArchivedAt.Equal(list[j].ArchivedAt) {
			return list[i].ArchivedAt.After(list[j].ArchivedAt)
		}
		return list[i].FileName < list[j].FileName
	})
	return list, nil
}
