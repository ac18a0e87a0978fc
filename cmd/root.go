package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ErikArmenta/SistemaGestionSensores/internal/config"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/core/logger"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/integrations/googlesheets"

	"github.com/spf13/cobra"
)

// InitSheetCmd verifica el acceso a la hoja compartida y escribe la fila de
// encabezados si la pestaña está vacía. Es tooling de arranque, no parte de
// la operación normal.
var InitSheetCmd = &cobra.Command{
	Use:   "initsheet",
	Short: "Verifica la hoja de solicitudes y escribe el encabezado si falta.",
	Long:  `Comando manual para preparar la pestaña de solicitudes antes del primer despliegue.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := logger.NewLogger()
		defer log.Sync()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}

		sheetsService, err := googlesheets.NewSheetsService(ctx, cfg.CredentialsJSON, cfg.CredentialsFile, log)
		if err != nil {
			return fmt.Errorf("crear cliente de Sheets: %w", err)
		}

		sheet := googlesheets.NewRequestSheet(sheetsService, cfg.SpreadsheetID, cfg.WorksheetName, log)
		written, err := sheet.EnsureHeader(ctx)
		if err != nil {
			return fmt.Errorf("preparar la hoja: %w", err)
		}

		if written {
			fmt.Println("Encabezado escrito en la pestaña", cfg.WorksheetName)
		} else {
			fmt.Println("La pestaña ya tiene encabezado; nada que hacer")
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "sensores",
		Short: "Sistema de gestión de solicitudes de sensores",
	}
	rootCmd.AddCommand(InitSheetCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
