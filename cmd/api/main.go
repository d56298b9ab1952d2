package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/bootstrap"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/scheduler"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	logFile, err := log.ConfigureOutput(cfg.App.LoggingEnabled, cfg.App.LoggingDir)
	if err != nil {
		logrus.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer app.Close()

	weeklyReportSyncService := scheduler.NewWeeklyReportSyncService(app.Registry(), cfg)

	// Inicia o agendador em background
	if err := weeklyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios semanais")
	} else {
		logrus.Info("Agendador de relatórios semanais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		app.HandlerTenants(),
		handler.CronJobServices{
			WeeklyReportSyncService: weeklyReportSyncService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
