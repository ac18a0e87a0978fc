package googlesheets

import (
	"fmt"
	"strconv"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"
)

// Header es la fila de encabezados de la pestaña Solicitudes, en el orden de
// columnas con el que se escribe cada fila nueva.
var Header = []string{
	"Timestamp",
	"Nombre",
	"Nómina",
	"Línea",
	"Estación/Máquina",
	"Cantidad",
	"Turno",
	"Motivo",
	"NumParte",
	"NombreSensor",
}

// MapHeaders traduce los encabezados de la hoja a nombres de campo. Permite
// que alguien reordene columnas en la hoja sin romper la lectura.
func MapHeaders(headers []interface{}) map[int]string {
	headerMap := make(map[int]string)

	for i, header := range headers {
		headerStr, ok := header.(string)
		if !ok {
			continue
		}

		switch headerStr {
		case "Timestamp":
			headerMap[i] = "timestamp"
		case "Nombre":
			headerMap[i] = "nombre"
		case "Nómina":
			headerMap[i] = "nomina"
		case "Línea":
			headerMap[i] = "linea"
		case "Estación/Máquina":
			headerMap[i] = "estacion"
		case "Cantidad":
			headerMap[i] = "cantidad"
		case "Turno":
			headerMap[i] = "turno"
		case "Motivo":
			headerMap[i] = "motivo"
		case "NumParte":
			headerMap[i] = "num_parte"
		case "NombreSensor":
			headerMap[i] = "nombre_sensor"
		}
	}

	return headerMap
}

// ParseRequests convierte las filas crudas de la hoja (encabezados incluidos)
// en solicitudes. Filas vacías se saltan; una cantidad ilegible queda en 0 en
// vez de tirar la carga completa.
func ParseRequests(values [][]interface{}) []models.SensorRequest {
	if len(values) < 2 {
		return []models.SensorRequest{}
	}

	headerMap := MapHeaders(values[0])

	requests := make([]models.SensorRequest, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := values[i]
		if len(row) == 0 {
			continue
		}

		var request models.SensorRequest
		for j, cell := range row {
			field, exists := headerMap[j]
			if !exists {
				continue
			}

			value := toString(cell)
			switch field {
			case "timestamp":
				request.Timestamp = value
			case "nombre":
				request.Requester = value
			case "nomina":
				request.EmployeeID = value
			case "linea":
				request.Line = value
			case "estacion":
				request.Station = value
			case "cantidad":
				if q, err := strconv.Atoi(value); err == nil {
					request.Quantity = q
				}
			case "turno":
				request.Shift = value
			case "motivo":
				request.Reason = value
			case "num_parte":
				request.PartNumber = value
			case "nombre_sensor":
				request.SensorName = value
			}
		}

		requests = append(requests, request)
	}

	return requests
}

// RequestToRow serializa una solicitud en el orden fijo de columnas.
func RequestToRow(request models.SensorRequest) []interface{} {
	return []interface{}{
		request.Timestamp,
		request.Requester,
		request.EmployeeID,
		request.Line,
		request.Station,
		request.Quantity,
		request.Shift,
		request.Reason,
		request.PartNumber,
		request.SensorName,
	}
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
