package requests

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"
	"github.com/ErikArmenta/SistemaGestionSensores/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	solicitudes := router.Group("/solicitudes")
	{
		solicitudes.GET("", h.getHistory)
		solicitudes.POST("", h.submit)
		solicitudes.POST("/recargar", h.reload)
		solicitudes.POST("/cancelar", h.cancel)
		solicitudes.GET("/export", h.export)
	}
}

// getHistory es la vista de historial: lista filtrable con los tres
// multiselect y el conteo "mostrando n de m".
func (h *Handler) getHistory(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	var loadError string
	if err := h.service.EnsureLoaded(c.Request.Context(), sess); err != nil {
		loadError = "Error al cargar datos: " + err.Error()
	}

	all := sess.Requests()
	filter := filterFromQuery(c)
	filtered := filter.Apply(all)

	response := gin.H{
		"solicitudes": filtered,
		"mostrando":   len(filtered),
		"total":       len(all),
		"filtros":     Options(all),
	}
	if loadError != "" {
		response["error"] = loadError
	}

	c.JSON(http.StatusOK, response)
}

// submit es el envío del formulario modal.
func (h *Handler) submit(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	if err := h.service.EnsureLoaded(c.Request.Context(), sess); err != nil {
		h.log.Warn("La sesión arrancó sin datos de la hoja", zap.Error(err))
	}

	var form models.CreateSensorRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de datos inválido", "details": err.Error()})
		return
	}

	request, err := h.service.Submit(c.Request.Context(), sess, form)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Completa todos los campos obligatorios",
				"campos": validationErr.Fields,
			})
		case errors.Is(err, ErrNoSensorSelected):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Selecciona un sensor del catálogo antes de enviar"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensaje":   "Solicitud enviada correctamente",
		"solicitud": request,
	})
}

// reload es el botón de "recargar datos desde la hoja": invalida la cache y
// repuebla la sesión.
func (h *Handler) reload(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	if err := h.service.Reload(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar datos", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(sess.Requests())})
}

// cancel cierra el formulario sin validar ni persistir nada.
func (h *Handler) cancel(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	sess.CloseModal()
	c.JSON(http.StatusOK, gin.H{"modal": false})
}

// export descarga el conjunto filtrado como CSV (o Excel con ?formato=xlsx).
func (h *Handler) export(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	if err := h.service.EnsureLoaded(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar datos", "details": err.Error()})
		return
	}

	filtered := filterFromQuery(c).Apply(sess.Requests())

	switch c.DefaultQuery("formato", "csv") {
	case "xlsx":
		data, err := WriteXLSX(filtered)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el Excel", "details": err.Error()})
			return
		}
		filename := ExportFilename(time.Now(), "xlsx")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := WriteCSV(filtered)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el CSV", "details": err.Error()})
			return
		}
		filename := ExportFilename(time.Now(), "csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato no soportado; usa csv o xlsx"})
	}
}

func filterFromQuery(c *gin.Context) Filter {
	return Filter{
		Lines:   c.QueryArray("linea"),
		Shifts:  c.QueryArray("turno"),
		Sensors: c.QueryArray("sensor"),
	}
}
