package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
)

var exportFlag bool

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Monta o relatório semanal comparando a janela com o período anterior",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := windowFromFlags()
		if err != nil {
			return err
		}

		app, cleanup, err := loadApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		tenant, err := app.Tenant(platformFlag)
		if err != nil {
			return err
		}

		if !exportFlag {
			report, err := tenant.Generator.BuildReport(cmd.Context(), window)
			if err != nil {
				return err
			}
			printJSON(cmd, report)
			return nil
		}

		result, err := tenant.Generator.Generate(cmd.Context(), window)

		var exportErr *reporting.ExportError
		if errors.As(err, &exportErr) {
			logrus.WithError(err).Warn("Relatório gerado com falhas de exportação")
			printJSON(cmd, result)
			return err
		}
		if err != nil {
			return err
		}

		printJSON(cmd, result)
		return nil
	},
}

func init() {
	weeklyCmd.Flags().BoolVar(&exportFlag, "export", false, "grava os artefatos nos formatos de EXPORT_FORMATS")
}
