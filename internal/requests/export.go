package requests

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/integrations/googlesheets"
	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/xuri/excelize/v2"
)

// ExportFilename arma el nombre de descarga con la fecha actual embebida,
// p. ej. solicitudes_20260301.csv.
func ExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("solicitudes_%s.%s", now.Format("20060102"), extension)
}

// WriteCSV serializa las solicitudes como CSV UTF-8 con fila de encabezados,
// en el mismo orden de columnas que la hoja.
func WriteCSV(requests []models.SensorRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(googlesheets.Header); err != nil {
		return nil, fmt.Errorf("no se pudo escribir el encabezado CSV: %w", err)
	}

	for _, request := range requests {
		record := []string{
			request.Timestamp,
			request.Requester,
			request.EmployeeID,
			request.Line,
			request.Station,
			strconv.Itoa(request.Quantity),
			request.Shift,
			request.Reason,
			request.PartNumber,
			request.SensorName,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("no se pudo escribir la fila CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("no se pudo terminar el CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteXLSX produce el mismo reporte como libro de Excel con una pestaña
// "Solicitudes".
func WriteXLSX(requests []models.SensorRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Solicitudes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear la pestaña: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("no se pudo quitar la pestaña por defecto: %w", err)
	}

	for col, name := range googlesheets.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for i, request := range requests {
		row := googlesheets.RequestToRow(request)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("no se pudo generar el archivo Excel: %w", err)
	}

	return buf.Bytes(), nil
}
