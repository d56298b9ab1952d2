package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/bootstrap"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/utils"
)

var (
	platformFlag  string
	startDateFlag string
	endDateFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "report",
	Short:         "Relatórios de atividade de cobrança do Stripe",
	Long:          `Consulta clientes e cobranças das contas do Stripe e gera os relatórios semanais comparativos`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "plataforma (kahunas ou studiobookings); vazio usa PLATFORM")
	rootCmd.PersistentFlags().StringVar(&startDateFlag, "start", "", "data inicial YYYYMMDD")
	rootCmd.PersistentFlags().StringVar(&endDateFlag, "end", "", "data final YYYYMMDD, exclusiva")

	rootCmd.AddCommand(weeklyCmd, ledgersCmd, revenueCmd, captureCmd, normalizeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadApplication carrega a configuração e monta as plataformas ativas
func loadApplication(ctx context.Context) (*bootstrap.Application, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Setup(cfg.App.LogLevel)

	logFile, err := log.ConfigureOutput(cfg.App.LoggingEnabled, cfg.App.LoggingDir)
	if err != nil {
		return nil, nil, err
	}

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		app.Close()
		if logFile != nil {
			logFile.Close()
		}
	}

	return app, cleanup, nil
}

func windowFromFlags() (domain.TimeWindow, error) {
	window, err := domain.ResolveWindow(startDateFlag, endDateFlag)
	if err != nil {
		return domain.TimeWindow{}, err
	}

	if err := window.Validate(); err != nil {
		return domain.TimeWindow{}, err
	}

	return window, nil
}

func printJSON(cmd *cobra.Command, v any) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
}
