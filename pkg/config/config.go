// Archivo: pkg/config/config.go
package config

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"os"
)

type ServerConfig struct {
	Port string
}

// StorageConfig agrupa todas las rutas de archivos que usa el sistema.
// Todo vive bajo DataDir salvo que se configure una ruta absoluta.
type StorageConfig struct {
	DataDir      string
	RosterFile   string
	WorkshopFile string
	ReportFile   string
	HistoryDir   string
}

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: archivo .env no encontrado, se usan valores por defecto.")
	}

	dataDir := getEnv("DATA_DIR", "uploads")

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir:      dataDir,
			RosterFile:   getEnv("ROSTER_FILE", filepath.Join(dataDir, "MOVILES.xlsx")),
			WorkshopFile: getEnv("WORKSHOP_FILE", filepath.Join(dataDir, "TALLER_MOVILES.xlsx")),
			ReportFile:   getEnv("REPORT_FILE", filepath.Join(dataDir, "OPERATIVOS.xlsx")),
			HistoryDir:   getEnv("HISTORY_DIR", filepath.Join(dataDir, "historico")),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
