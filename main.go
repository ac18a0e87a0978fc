package main

import (
	"context"
	"log"

	"github.com/ErikArmenta/SistemaGestionSensores/cmd"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/config"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/core/container"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/core/logger"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/integrations/googlesheets"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/middleware"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Execute utility CMDs (initsheet)
	cmd.Execute(ctx)
}

func main() {
	ctx := context.Background()

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Configuración inválida", zap.Error(err))
	}

	sheetsService, err := googlesheets.NewSheetsService(ctx, cfg.CredentialsJSON, cfg.CredentialsFile, zapLogger)
	if err != nil {
		zapLogger.Fatal("No se pudo conectar con Google Sheets", zap.Error(err))
	}

	zapLogger.Info("Cliente de Google Sheets listo",
		zap.String("spreadsheet", cfg.SpreadsheetID),
		zap.String("worksheet", cfg.WorksheetName),
	)

	appContainer := container.NewAppContainer(cfg, sheetsService, zapLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))

	routes.RegisterAPIRoutes(router, appContainer)
	routes.RegisterPageRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	zapLogger.Info("Servidor escuchando", zap.String("host", cfg.AppHost))
	if err := router.Run(cfg.AppHost); err != nil {
		zapLogger.Fatal("El servidor terminó con error", zap.Error(err))
	}
}
