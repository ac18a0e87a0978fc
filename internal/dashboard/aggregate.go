package dashboard

import (
	"sort"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"
)

// Summary son las métricas escalares de la parte alta del dashboard.
type Summary struct {
	TotalRequests   int `json:"total_solicitudes"`
	DistinctSensors int `json:"sensores_unicos"`
	DistinctLines   int `json:"lineas_activas"`
	TotalQuantity   int `json:"cantidad_total"`
}

// Count es una barra/rebanada: etiqueta y cuántas solicitudes cayeron ahí.
type Count struct {
	Label string `json:"etiqueta"`
	Count int    `json:"solicitudes"`
}

// Summarize calcula las cuatro métricas sobre la lista en memoria.
func Summarize(requests []models.SensorRequest) Summary {
	sensors := make(map[string]bool)
	lines := make(map[string]bool)
	quantity := 0

	for _, request := range requests {
		sensors[request.SensorName] = true
		lines[request.Line] = true
		quantity += request.Quantity
	}

	return Summary{
		TotalRequests:   len(requests),
		DistinctSensors: len(sensors),
		DistinctLines:   len(lines),
		TotalQuantity:   quantity,
	}
}

// countBy agrupa y cuenta por la llave dada, con etiquetas ordenadas
// alfabéticamente para que el render sea estable.
func countBy(requests []models.SensorRequest, key func(models.SensorRequest) string) []Count {
	grouped := make(map[string]int)
	for _, request := range requests {
		grouped[key(request)]++
	}

	counts := make([]Count, 0, len(grouped))
	for label, count := range grouped {
		counts = append(counts, Count{Label: label, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })

	return counts
}

// CountByLine cuenta solicitudes por línea.
func CountByLine(requests []models.SensorRequest) []Count {
	return countBy(requests, func(r models.SensorRequest) string { return r.Line })
}

// CountByRequester cuenta solicitudes por persona.
func CountByRequester(requests []models.SensorRequest) []Count {
	return countBy(requests, func(r models.SensorRequest) string { return r.Requester })
}

// CountByStation cuenta solicitudes por estación/máquina.
func CountByStation(requests []models.SensorRequest) []Count {
	return countBy(requests, func(r models.SensorRequest) string { return r.Station })
}

// CountBySensor cuenta solicitudes por sensor (ranking de frecuencia).
func CountBySensor(requests []models.SensorRequest) []Count {
	return countBy(requests, func(r models.SensorRequest) string { return r.SensorName })
}

// CountByDate agrupa por la fecha del timestamp (solo el día) en orden
// cronológico. Timestamps ilegibles se ignoran.
func CountByDate(requests []models.SensorRequest) []Count {
	grouped := make(map[string]int)
	for _, request := range requests {
		ts, err := time.Parse(models.TimestampLayout, request.Timestamp)
		if err != nil {
			continue
		}
		grouped[ts.Format("2006-01-02")]++
	}

	counts := make([]Count, 0, len(grouped))
	for date, count := range grouped {
		counts = append(counts, Count{Label: date, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })

	return counts
}
