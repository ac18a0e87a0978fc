package config

import (
	"fmt"
	"os"
	"time"
)

// Config agrupa la configuración del proceso, leída del entorno (un .env en
// desarrollo, variables del hosting en producción).
type Config struct {
	// AppHost es la dirección de escucha, p. ej. ":8080".
	AppHost string
	// SpreadsheetID identifica la hoja de cálculo compartida.
	SpreadsheetID string
	// WorksheetName es la pestaña donde viven las solicitudes.
	WorksheetName string
	// CredentialsJSON contiene las credenciales de la cuenta de servicio.
	// Si está vacío se usa CredentialsFile.
	CredentialsJSON string
	CredentialsFile string
	// CacheTTL es la ventana de validez de la lectura de la hoja.
	CacheTTL time.Duration
	// RequestTimeout acota cada llamada remota a Sheets.
	RequestTimeout time.Duration
}

const (
	defaultWorksheet      = "Solicitudes"
	defaultCacheTTL       = 60 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Load lee la configuración del entorno. Falla solo cuando falta algo sin lo
// que el proceso no puede operar (el ID de la hoja).
func Load() (*Config, error) {
	cfg := &Config{
		AppHost:         os.Getenv("APP_HOST"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		WorksheetName:   os.Getenv("WORKSHEET_NAME"),
		CredentialsJSON: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON"),
		CredentialsFile: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_FILE"),
		CacheTTL:        defaultCacheTTL,
		RequestTimeout:  defaultRequestTimeout,
	}

	if cfg.AppHost == "" {
		cfg.AppHost = ":8080"
	}
	if cfg.WorksheetName == "" {
		cfg.WorksheetName = defaultWorksheet
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "configs/google-credentials.json"
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID no está configurado")
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("CACHE_TTL inválido %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_TIMEOUT inválido %q: %w", raw, err)
		}
		cfg.RequestTimeout = timeout
	}

	return cfg, nil
}
