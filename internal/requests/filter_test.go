package requests

import (
	"testing"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/stretchr/testify/assert"
)

func sampleHistory() []models.SensorRequest {
	return []models.SensorRequest{
		{Requester: "Ana", Line: "L1", Shift: models.ShiftMorning, SensorName: "Sensor MARPOSS"},
		{Requester: "Luis", Line: "L2", Shift: models.ShiftEvening, SensorName: "Sensor de Flujo"},
		{Requester: "Eva", Line: "L1", Shift: models.ShiftNight, SensorName: "Sensor de Flujo"},
		{Requester: "Juan", Line: "L3", Shift: models.ShiftMorning, SensorName: "Sensor MARPOSS"},
	}
}

func TestEmptyFilterKeepsEverything(t *testing.T) {
	all := sampleHistory()

	assert.Equal(t, all, Filter{}.Apply(all))
}

func TestFilterByLine(t *testing.T) {
	all := sampleHistory()

	filtered := Filter{Lines: []string{"L1"}}.Apply(all)

	assert.Len(t, filtered, 2)
	for _, request := range filtered {
		assert.Equal(t, "L1", request.Line)
	}
}

func TestFilterByLinePartitionsHistory(t *testing.T) {
	all := sampleHistory()

	var union []models.SensorRequest
	for _, line := range Options(all).Lines {
		union = append(union, Filter{Lines: []string{line}}.Apply(all)...)
	}

	// Cada solicitud aparece exactamente una vez en la unión de los cortes.
	assert.Len(t, union, len(all))
	assert.ElementsMatch(t, all, union)
}

func TestFacetsCombineWithAnd(t *testing.T) {
	all := sampleHistory()

	filtered := Filter{
		Lines:   []string{"L1", "L3"},
		Sensors: []string{"Sensor MARPOSS"},
	}.Apply(all)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "Ana", filtered[0].Requester)
	assert.Equal(t, "Juan", filtered[1].Requester)
}

func TestValuesWithinFacetCombineWithOr(t *testing.T) {
	all := sampleHistory()

	filtered := Filter{Shifts: []string{models.ShiftMorning, models.ShiftNight}}.Apply(all)

	assert.Len(t, filtered, 3)
}

func TestTwoLinesFilterToOneOfTwo(t *testing.T) {
	all := []models.SensorRequest{
		{Requester: "Ana", Line: "L1"},
		{Requester: "Luis", Line: "L2"},
	}

	filtered := Filter{Lines: []string{"L1"}}.Apply(all)

	assert.Len(t, filtered, 1)
	assert.Len(t, all, 2)
	assert.Equal(t, "Ana", filtered[0].Requester)
}

func TestOptionsAreDistinctAndOrdered(t *testing.T) {
	options := Options(sampleHistory())

	assert.Equal(t, []string{"L1", "L2", "L3"}, options.Lines)
	assert.Equal(t, []string{models.ShiftMorning, models.ShiftEvening, models.ShiftNight}, options.Shifts)
	assert.Equal(t, []string{"Sensor MARPOSS", "Sensor de Flujo"}, options.Sensors)
}
