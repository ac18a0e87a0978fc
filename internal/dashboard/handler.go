package dashboard

import (
	"bytes"
	"net/http"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/requests"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const emptyMessage = "No hay solicitudes registradas aún. Ve al catálogo y solicita algunos sensores."

type Handler struct {
	service *requests.Service
	log     *zap.Logger
}

func NewHandler(service *requests.Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.getDashboard)
}

// RegisterPageRoutes cuelga la versión HTML fuera del prefijo /api.
func (h *Handler) RegisterPageRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.getDashboardPage)
}

// getDashboard entrega las métricas y las series ya agrupadas, listas para
// graficar. Opera solo sobre la lista de la sesión.
func (h *Handler) getDashboard(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	var loadError string
	if err := h.service.EnsureLoaded(c.Request.Context(), sess); err != nil {
		loadError = "Error al cargar datos: " + err.Error()
	}

	all := sess.Requests()
	if len(all) == 0 {
		response := gin.H{"mensaje": emptyMessage, "total_solicitudes": 0}
		if loadError != "" {
			response["error"] = loadError
		}
		c.JSON(http.StatusOK, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resumen":      Summarize(all),
		"por_linea":    CountByLine(all),
		"por_persona":  CountByRequester(all),
		"por_estacion": CountByStation(all),
		"por_sensor":   CountBySensor(all),
		"por_fecha":    CountByDate(all),
	})
}

// getDashboardPage renderiza los gráficos como página HTML.
func (h *Handler) getDashboardPage(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	if err := h.service.EnsureLoaded(c.Request.Context(), sess); err != nil {
		h.log.Warn("Dashboard sin datos de la hoja", zap.Error(err))
	}

	all := sess.Requests()
	if len(all) == 0 {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<html><body><p>"+emptyMessage+"</p></body></html>"))
		return
	}

	// Se renderiza a un buffer para poder responder 500 si el render falla;
	// una vez escrito el status ya no hay vuelta atrás.
	var buf bytes.Buffer
	if err := RenderPage(&buf, all); err != nil {
		h.log.Error("No se pudo renderizar el dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo renderizar el dashboard"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
