package requests

import "github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

// Filter son los tres facetas independientes del historial. Dentro de una
// faceta los valores seleccionados se unen con OR; entre facetas aplica AND.
// Una faceta sin selección no restringe nada.
type Filter struct {
	Lines   []string
	Shifts  []string
	Sensors []string
}

// Apply devuelve las solicitudes que pasan las tres facetas, en el orden
// original.
func (f Filter) Apply(all []models.SensorRequest) []models.SensorRequest {
	filtered := make([]models.SensorRequest, 0, len(all))
	for _, request := range all {
		if !matches(f.Lines, request.Line) {
			continue
		}
		if !matches(f.Shifts, request.Shift) {
			continue
		}
		if !matches(f.Sensors, request.SensorName) {
			continue
		}
		filtered = append(filtered, request)
	}
	return filtered
}

func matches(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// FilterOptions son los valores distintos presentes en la lista actual, con
// los que se pueblan los multiselect.
type FilterOptions struct {
	Lines   []string `json:"lineas"`
	Shifts  []string `json:"turnos"`
	Sensors []string `json:"sensores"`
}

// Options recolecta los valores distintos en orden de primera aparición.
func Options(all []models.SensorRequest) FilterOptions {
	return FilterOptions{
		Lines:   distinct(all, func(r models.SensorRequest) string { return r.Line }),
		Shifts:  distinct(all, func(r models.SensorRequest) string { return r.Shift }),
		Sensors: distinct(all, func(r models.SensorRequest) string { return r.SensorName }),
	}
}

func distinct(all []models.SensorRequest, key func(models.SensorRequest) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, request := range all {
		v := key(request)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
