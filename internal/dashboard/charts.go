package dashboard

import (
	"io"

	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderPage arma la página HTML del dashboard con los cinco gráficos.
// El caso vacío lo resuelve el handler antes de llegar aquí.
func RenderPage(w io.Writer, requests []models.SensorRequest) error {
	page := components.NewPage()
	page.PageTitle = "Dashboard de Análisis"

	page.AddCharts(
		lineBar(requests),
		requesterPie(requests),
		stationBar(requests),
		sensorBar(requests),
		dateLine(requests),
	)

	return page.Render(w)
}

func lineBar(requests []models.SensorRequest) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Solicitudes por Línea"}))

	labels, data := barData(CountByLine(requests))
	bar.SetXAxis(labels).AddSeries("Solicitudes", data)
	return bar
}

func requesterPie(requests []models.SensorRequest) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Solicitudes por Persona"}))

	counts := CountByRequester(requests)
	data := make([]opts.PieData, 0, len(counts))
	for _, count := range counts {
		data = append(data, opts.PieData{Name: count.Label, Value: count.Count})
	}

	// Dona, no pastel: mismo hueco del 40% que usaba el tablero original.
	pie.AddSeries("Solicitudes", data).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}))
	return pie
}

func stationBar(requests []models.SensorRequest) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Solicitudes por Estación/Máquina"}))

	labels, data := barData(CountByStation(requests))
	bar.SetXAxis(labels).AddSeries("Solicitudes", data)
	return bar
}

func sensorBar(requests []models.SensorRequest) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Sensores Más Solicitados"}))

	labels, data := barData(CountBySensor(requests))
	bar.SetXAxis(labels).AddSeries("Frecuencia", data)
	// Barras horizontales para que quepan los nombres largos de sensor.
	bar.XYReversal()
	return bar
}

func dateLine(requests []models.SensorRequest) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Solicitudes por Día"}))

	counts := CountByDate(requests)
	labels := make([]string, 0, len(counts))
	data := make([]opts.LineData, 0, len(counts))
	for _, count := range counts {
		labels = append(labels, count.Label)
		data = append(data, opts.LineData{Value: count.Count})
	}

	line.SetXAxis(labels).AddSeries("Solicitudes", data)
	return line
}

func barData(counts []Count) ([]string, []opts.BarData) {
	labels := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, count := range counts {
		labels = append(labels, count.Label)
		data = append(data, opts.BarData{Value: count.Count})
	}
	return labels, data
}
