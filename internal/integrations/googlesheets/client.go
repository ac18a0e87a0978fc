package googlesheets

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService construye el cliente de Google Sheets con las
// credenciales de la cuenta de servicio. Primero busca el JSON en la
// variable de entorno; el archivo local es solo para desarrollo.
func NewSheetsService(ctx context.Context, credentialsJSON, credentialsFile string, log *zap.Logger) (*sheets.Service, error) {
	var raw []byte

	if credentialsJSON != "" {
		log.Info("Usando credenciales de Google desde la variable de entorno")
		raw = []byte(credentialsJSON)
	} else {
		log.Info("Usando credenciales de Google desde archivo local", zap.String("file", credentialsFile))
		b, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer el archivo de credenciales: %w", err)
		}
		raw = b
	}

	credentials, err := google.CredentialsFromJSON(ctx, raw, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("no se pudieron cargar las credenciales de Google: %w", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el cliente de Google Sheets: %w", err)
	}

	return sheetsService, nil
}
