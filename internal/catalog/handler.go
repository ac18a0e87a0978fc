package catalog

import (
	"net/http"
	"strconv"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"

	"github.com/gin-gonic/gin"
)

// colsPerRow es el ancho fijo del grid de tarjetas.
const colsPerRow = 3

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	catalogo := router.Group("/catalogo")
	{
		catalogo.GET("", h.getCatalog)
		catalogo.POST("/:id/solicitar", h.selectSensor)
	}
}

// getCatalog entrega el catálogo completo ya partido en filas de tres
// tarjetas, junto con el estado del modal para que el front sepa qué pintar.
func (h *Handler) getCatalog(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	response := gin.H{
		"sensores": List(),
		"grid":     Grid(colsPerRow),
		"modal":    sess.ModalVisible(),
	}
	if selected, ok := sess.Selected(); ok {
		response["seleccionado"] = selected
	}

	c.JSON(http.StatusOK, response)
}

// selectSensor es el botón "Solicitar" de una tarjeta: fija la selección en
// la sesión y abre el formulario modal. No valida ni persiste nada.
func (h *Handler) selectSensor(c *gin.Context) {
	sess := session.AbortIfMissing(c)
	if sess == nil {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de ID inválido"})
		return
	}

	record, ok := FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor no encontrado en el catálogo"})
		return
	}

	sess.Select(record)
	c.JSON(http.StatusOK, gin.H{
		"seleccionado": record,
		"modal":        true,
	})
}
