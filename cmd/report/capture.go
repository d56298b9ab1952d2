package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/snapshot"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
)

var (
	captureDirFlag      string
	captureProgressFlag bool
)

// captureCmd sempre consulta o Stripe, mesmo com DATA_SOURCE=snapshot
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Grava um snapshot JSON dos recursos da janela e do período anterior para uso offline",
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

		cfg := app.Config
		if cfg.DataSource.Mode == config.DataSourceSnapshot {
			return fmt.Errorf("capture: defina DATA_SOURCE=%s para capturar do Stripe", config.DataSourceLive)
		}

		base := captureDirFlag
		if base == "" {
			base = cfg.DataSource.SnapshotDir
		}

		result, err := snapshot.Capture(cmd.Context(), tenant.Client, window, snapshot.CaptureOptions{
			Dir:                snapshot.PlatformDir(base, tenant.Platform),
			Location:           cfg.Location(),
			PreviousPeriodDays: cfg.Report.PreviousPeriodDays,
			ShowProgress:       captureProgressFlag,
		})
		if err != nil {
			return err
		}

		printJSON(cmd, result)
		return nil
	},
}

func init() {
	captureCmd.Flags().StringVar(&captureDirFlag, "dir", "", "diretório base; os arquivos ficam em <dir>/<plataforma>, vazio usa SNAPSHOT_DIR")
	captureCmd.Flags().BoolVar(&captureProgressFlag, "progress", true, "exibe barra de progresso por recurso")
}
