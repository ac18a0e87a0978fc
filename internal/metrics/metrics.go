package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores Prometheus del servicio.
type Metrics struct {
	SheetReads    *prometheus.CounterVec
	SheetAppends  *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
	Submissions   *prometheus.CounterVec
	ActiveSession prometheus.GaugeFunc
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

// New registra los colectores una sola vez; los contadores son globales al
// proceso aunque se pidan varias instancias.
func New(sessionCount func() int) *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			SheetReads: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sensores_sheet_reads_total",
					Help: "Lecturas de la hoja de solicitudes por resultado",
				},
				[]string{"status"},
			),
			SheetAppends: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sensores_sheet_appends_total",
					Help: "Filas agregadas a la hoja por resultado",
				},
				[]string{"status"},
			),
			CacheLookups: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sensores_cache_lookups_total",
					Help: "Consultas a la cache de lectura (hit o miss)",
				},
				[]string{"result"},
			),
			Submissions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sensores_submissions_total",
					Help: "Solicitudes enviadas por resultado de validación y guardado",
				},
				[]string{"outcome"},
			),
			ActiveSession: promauto.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "sensores_active_sessions",
					Help: "Sesiones de navegación vivas en el proceso",
				},
				func() float64 { return float64(sessionCount()) },
			),
		}
	})

	return metricsInst
}

// Handler expone /metrics en formato Prometheus.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
