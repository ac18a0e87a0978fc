package googlesheets

import (
	"testing"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/stretchr/testify/assert"
)

func sheetValues() [][]interface{} {
	header := make([]interface{}, len(Header))
	for i, name := range Header {
		header[i] = name
	}

	return [][]interface{}{
		header,
		{"2026-03-01 08:15:00", "Ana Ruiz", "12345", "L3", "CNC-2", "2", "Matutino", "desgaste", "31 T19 013 009", "Sensor MARPOSS"},
		{"2026-03-02 14:30:00", "Luis Paz", "67890", "L1", "CNC-5", 1, "Vespertino", "rotura", "31 T89 79711", "Sensor Flat Amarillo"},
	}
}

func TestParseRequests(t *testing.T) {
	requests := ParseRequests(sheetValues())

	assert.Len(t, requests, 2)
	assert.Equal(t, "Ana Ruiz", requests[0].Requester)
	assert.Equal(t, 2, requests[0].Quantity)
	assert.Equal(t, "Sensor MARPOSS", requests[0].SensorName)
	// Cantidad puede llegar como número, no como string
	assert.Equal(t, 1, requests[1].Quantity)
	assert.Equal(t, models.ShiftEvening, requests[1].Shift)
}

func TestParseRequestsHandlesReorderedColumns(t *testing.T) {
	values := [][]interface{}{
		{"Nombre", "Timestamp", "Cantidad"},
		{"Ana Ruiz", "2026-03-01 08:15:00", "3"},
	}

	requests := ParseRequests(values)

	assert.Len(t, requests, 1)
	assert.Equal(t, "Ana Ruiz", requests[0].Requester)
	assert.Equal(t, "2026-03-01 08:15:00", requests[0].Timestamp)
	assert.Equal(t, 3, requests[0].Quantity)
}

func TestParseRequestsEmptySheet(t *testing.T) {
	assert.Empty(t, ParseRequests(nil))
	assert.Empty(t, ParseRequests(sheetValues()[:1]))
}

func TestRequestToRowKeepsColumnOrder(t *testing.T) {
	request := models.SensorRequest{
		Timestamp:  "2026-03-01 08:15:00",
		Requester:  "Ana Ruiz",
		EmployeeID: "12345",
		Line:       "L3",
		Station:    "CNC-2",
		Quantity:   2,
		Shift:      models.ShiftMorning,
		Reason:     "desgaste",
		PartNumber: "31 T19 013 009",
		SensorName: "Sensor MARPOSS",
	}

	row := RequestToRow(request)

	assert.Len(t, row, len(Header))
	assert.Equal(t, "2026-03-01 08:15:00", row[0])
	assert.Equal(t, 2, row[5])
	assert.Equal(t, "Sensor MARPOSS", row[9])
}

func TestParseRequestsRoundTrip(t *testing.T) {
	original := ParseRequests(sheetValues())

	values := sheetValues()[:1]
	for _, request := range original {
		values = append(values, RequestToRow(request))
	}

	assert.Equal(t, original, ParseRequests(values))
}
