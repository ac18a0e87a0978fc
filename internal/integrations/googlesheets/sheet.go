package googlesheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// RequestSheet es la pestaña de solicitudes dentro de la hoja compartida.
// Solo sabe leer todo y agregar filas; la semántica append-only de la hoja es
// lo que hace seguros los escritores concurrentes.
type RequestSheet struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
	log           *zap.Logger
}

func NewRequestSheet(service *sheets.Service, spreadsheetID, worksheet string, log *zap.Logger) *RequestSheet {
	return &RequestSheet{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		log:           log,
	}
}

// ReadAll trae todas las filas de la pestaña, encabezados incluidos.
func (s *RequestSheet) ReadAll(ctx context.Context) ([][]interface{}, error) {
	readRange := fmt.Sprintf("%s!A:J", s.worksheet)

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja: %w", err)
	}

	if len(resp.Values) == 0 {
		s.log.Info("No se encontraron datos en la hoja", zap.String("range", readRange))
		return nil, nil
	}

	return resp.Values, nil
}

// AppendRow agrega exactamente una fila al final de la pestaña.
func (s *RequestSheet) AppendRow(ctx context.Context, row []interface{}) error {
	writeRange := fmt.Sprintf("%s!A:J", s.worksheet)
	body := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, writeRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("no se pudo escribir en la hoja: %w", err)
	}

	return nil
}

// EnsureHeader escribe la fila de encabezados cuando la pestaña está vacía.
// Se usa desde el comando initsheet, no durante la operación normal.
func (s *RequestSheet) EnsureHeader(ctx context.Context) (bool, error) {
	readRange := fmt.Sprintf("%s!A1:J1", s.worksheet)

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("no se pudo verificar el encabezado: %w", err)
	}

	if len(resp.Values) > 0 {
		return false, nil
	}

	header := make([]interface{}, len(Header))
	for i, name := range Header {
		header[i] = name
	}

	if err := s.AppendRow(ctx, header); err != nil {
		return false, err
	}

	s.log.Info("Encabezado escrito en la pestaña", zap.String("worksheet", s.worksheet))
	return true, nil
}
