package container

import (
	"time"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/catalog"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/config"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/dashboard"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/integrations/googlesheets"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/metrics"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/requests"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/session"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// sessionIdleTTL es cuánto puede estar inactiva una sesión antes de que el
// manager la descarte.
const sessionIdleTTL = 30 * time.Minute

type Container struct {
	Sessions         *session.Manager
	Metrics          *metrics.Metrics
	Repository       *requests.SheetRepository
	RequestService   *requests.Service
	CatalogHandler   *catalog.Handler
	RequestHandler   *requests.Handler
	DashboardHandler *dashboard.Handler
}

func NewAppContainer(cfg *config.Config, sheetsService *sheets.Service, log *zap.Logger) *Container {
	sessions := session.NewManager(sessionIdleTTL)
	m := metrics.New(sessions.Count)

	sheet := googlesheets.NewRequestSheet(sheetsService, cfg.SpreadsheetID, cfg.WorksheetName, log)
	repository := requests.NewSheetRepository(sheet, cfg.CacheTTL, cfg.RequestTimeout, m, log)
	requestService := requests.NewService(repository, m, log)

	return &Container{
		Sessions:         sessions,
		Metrics:          m,
		Repository:       repository,
		RequestService:   requestService,
		CatalogHandler:   catalog.NewHandler(),
		RequestHandler:   requests.NewHandler(requestService, log),
		DashboardHandler: dashboard.NewHandler(requestService, log),
	}
}
