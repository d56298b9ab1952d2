package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler/router"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/middleware"
)

// Relatórios em andamento podem levar mais tempo que requisições comuns
const shutdownTimeout = 30 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares global
func NewHandler(tenants handler.Tenants, cronServices handler.CronJobServices) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(tenants)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Reports(tenants)...),
		router.WithRoutes(handler.Customers(tenants)...),
		router.WithRoutes(handler.Charges(tenants)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	tenants handler.Tenants,
	cronServices handler.CronJobServices,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(tenants, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serve até receber SIGINT/SIGTERM ou o cancelamento de ctx. Falha ao abrir a porta é devolvida.
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-signalCtx.Done():
		logrus.Info("Sinal de interrupção recebido ou contexto cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	return s.Shutdown(shutdownCtx)
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
