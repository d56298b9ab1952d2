package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/database/postgres"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/csvexport"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/pdf"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/xlsx"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/snapshot"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/stripeclient"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/repository"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/customer"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reconciling"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
)

// Tenant reúne o cliente e os serviços de uma conta do Stripe
type Tenant struct {
	Platform   config.Platform
	Client     stripeclient.Client
	Integrator stripe.Integrator
	Customers  *customer.Service
	Reconciler *reconciling.Service
	Generator  *reporting.Generator
}

// Application é o grafo de dependências compartilhado pela API e pela CLI
type Application struct {
	Config  *config.Config
	Tenants map[string]Tenant
	conn    *postgres.Connection
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	app := &Application{
		Config:  cfg,
		Tenants: make(map[string]Tenant),
	}

	exporters, err := app.exporters(ctx)
	if err != nil {
		return nil, err
	}

	for _, platform := range cfg.ActivePlatforms() {
		app.Tenants[platform.Key] = newTenant(cfg, platform, exporters)

		logrus.WithFields(logrus.Fields{
			"platform":    platform.Name,
			"data_source": cfg.DataSource.Mode,
		}).Info("Plataforma configurada")
	}

	return app, nil
}

func newTenant(cfg *config.Config, platform config.Platform, exporters []reporting.Exporter) Tenant {
	var client stripeclient.Client
	if cfg.DataSource.Mode == config.DataSourceSnapshot {
		client = snapshot.NewClient(cfg, platform)
	} else {
		client = stripeclient.NewClient(cfg, platform)
	}

	integrator := stripe.New(cfg, platform, client)
	customers := customer.NewService(integrator)
	reconciler := reconciling.NewService(integrator, cfg.Location())

	return Tenant{
		Platform:   platform,
		Client:     client,
		Integrator: integrator,
		Customers:  customers,
		Reconciler: reconciler,
		Generator:  reporting.NewGenerator(platform.Name, customers, reconciler, reporting.OptionsFromConfig(cfg), exporters...),
	}
}

// exporters instancia os formatos configurados; o arquivo no banco só abre conexão quando habilitado
func (a *Application) exporters(ctx context.Context) ([]reporting.Exporter, error) {
	cfg := a.Config
	result := make([]reporting.Exporter, 0, len(cfg.Export.Formats)+1)

	for _, format := range cfg.Export.Formats {
		switch format {
		case "xlsx":
			result = append(result, xlsx.New(cfg.Export.Dir))
		case "csv":
			result = append(result, csvexport.New(cfg.Export.Dir))
		case "pdf":
			result = append(result, pdf.New(cfg.Export.Dir))
		case repository.FormatArchive:
			// tratado por ArchiveEnabled
		default:
			return nil, fmt.Errorf("bootstrap: formato de exportação desconhecido %q", format)
		}
	}

	if cfg.Export.ArchiveEnabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: erro ao conectar ao PostgreSQL: %w", err)
		}

		if err := conn.Ping(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("bootstrap: erro ao testar conexão com PostgreSQL: %w", err)
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		a.conn = conn
		result = append(result, repository.NewArchiveExporter(repository.NewReportArchiveRepository(conn)))
	}

	return result, nil
}

// Tenant resolve a plataforma pela chave; vazio usa a plataforma selecionada
func (a *Application) Tenant(key string) (Tenant, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		key = a.Config.App.SelectedPlatform
	}

	tenant, ok := a.Tenants[key]
	if !ok {
		return Tenant{}, &domain.NotFoundError{Resource: "platform", Key: key}
	}
	return tenant, nil
}

func (a *Application) Registry() *reporting.Registry {
	generators := make(map[string]reporting.ReportGenerator, len(a.Tenants))
	for key, tenant := range a.Tenants {
		generators[key] = tenant.Generator
	}
	return reporting.NewRegistry(a.Config.App.SelectedPlatform, generators)
}

func (a *Application) HandlerTenants() handler.Tenants {
	tenants := handler.Tenants{
		Default:  a.Config.App.SelectedPlatform,
		Services: make(map[string]handler.TenantServices, len(a.Tenants)),
	}

	for key, tenant := range a.Tenants {
		tenants.Services[key] = handler.TenantServices{
			Customers:  tenant.Customers,
			Reconciler: tenant.Reconciler,
			Generator:  tenant.Generator,
		}
	}

	return tenants
}

func (a *Application) Close() {
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}
