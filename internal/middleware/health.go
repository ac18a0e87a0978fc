package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus es la respuesta del chequeo de salud del proceso.
type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var (
	healthStatus = HealthStatus{
		Status:  "ok",
		Version: "1.0.0",
	}
	healthMutex sync.RWMutex
	startTime   = time.Now()
)

// HealthCheckHandler responde el estado del proceso. No toca la hoja: un
// backing store caído no debe marcar el servicio como muerto.
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.RLock()
		status := healthStatus
		healthMutex.RUnlock()

		status.Uptime = time.Since(startTime).String()
		status.LastChecked = time.Now()

		c.JSON(http.StatusOK, status)
	}
}

// UpdateHealthStatus cambia el estado reportado.
func UpdateHealthStatus(status string) {
	healthMutex.Lock()
	defer healthMutex.Unlock()
	healthStatus.Status = status
}

// SetVersion fija la versión reportada por el chequeo.
func SetVersion(version string) {
	healthMutex.Lock()
	defer healthMutex.Unlock()
	healthStatus.Version = version
}
