package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	PlatformKahunas        = "kahunas"
	PlatformStudioBookings = "studiobookings"

	DataSourceLive     = "live"
	DataSourceSnapshot = "snapshot"
)

type Config struct {
	App              App                 `mapstructure:",squash"`
	Server           Server              `mapstructure:",squash"`
	Database         Database            `mapstructure:",squash"`
	Stripe           Stripe              `mapstructure:",squash"`
	DataSource       DataSource          `mapstructure:",squash"`
	Export           Export              `mapstructure:",squash"`
	Report           Report              `mapstructure:",squash"`
	WeeklyReportSync WeeklyReportSync    `mapstructure:",squash"`
	Platforms        map[string]Platform `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	LoggingEnabled bool   `mapstructure:"logging_enabled"`
	LoggingDir     string `mapstructure:"logging_dir"`
	Timezone       string `mapstructure:"report_timezone"`
	// SelectedPlatform escolhe qual dos dois conjuntos de credenciais é usado
	SelectedPlatform    string `mapstructure:"platform"`
	BothBusinessReports bool   `mapstructure:"get_both_business_reports_enabled"`
}

type Stripe struct {
	BaseURL              string `mapstructure:"stripe_base_url"`
	APIVersion           string `mapstructure:"stripe_api_version"`
	KahunasSecretKey     string `mapstructure:"stripe_secret_api_key_kahunas"`
	StudioBookingsSecret string `mapstructure:"stripe_secret_api_key_studio_bookings"`
	PageLimit            int    `mapstructure:"stripe_page_limit"`
	TimeoutSeconds       int    `mapstructure:"stripe_timeout_seconds"`
}

type DataSource struct {
	Mode         string `mapstructure:"data_source"`
	SnapshotDir  string `mapstructure:"snapshot_dir"`
	SnapshotPage int    `mapstructure:"snapshot_page_size"`
}

type Export struct {
	Enabled        bool     `mapstructure:"export_any_all_files_enabled"`
	Dir            string   `mapstructure:"export_dir"`
	Formats        []string `mapstructure:"export_formats"`
	ArchiveEnabled bool     `mapstructure:"report_archive_enabled"`
}

type Report struct {
	PreviousPeriodDays int  `mapstructure:"report_previous_period_days"`
	ParallelFetch      bool `mapstructure:"report_parallel_fetch"`
}

type WeeklyReportSync struct {
	CronSchedule string `mapstructure:"weekly_report_sync_cron"`
	LookbackDays int    `mapstructure:"weekly_report_sync_lookback_days"`
	Enabled      bool   `mapstructure:"weekly_report_sync_enabled"`
}

// Platform agrupa as credenciais de um tenant do Stripe
type Platform struct {
	Key       string
	Name      string
	SecretKey string
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/billing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PLATFORM", PlatformKahunas)
	viper.SetDefault("GET_BOTH_BUSINESS_REPORTS_ENABLED", false)

	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("STRIPE_API_VERSION", "")
	viper.SetDefault("STRIPE_SECRET_API_KEY_KAHUNAS", "")
	viper.SetDefault("STRIPE_SECRET_API_KEY_STUDIO_BOOKINGS", "")
	viper.SetDefault("STRIPE_PAGE_LIMIT", 100) // máximo aceito pela busca do Stripe
	viper.SetDefault("STRIPE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("DATA_SOURCE", DataSourceLive)
	viper.SetDefault("SNAPSHOT_DIR", "snapshots")
	viper.SetDefault("SNAPSHOT_PAGE_SIZE", 100)

	viper.SetDefault("EXPORT_ANY_ALL_FILES_ENABLED", false)
	viper.SetDefault("EXPORT_DIR", ".")
	viper.SetDefault("EXPORT_FORMATS", "xlsx")
	viper.SetDefault("REPORT_ARCHIVE_ENABLED", false)

	viper.SetDefault("REPORT_PREVIOUS_PERIOD_DAYS", 14) // relatórios quinzenais
	viper.SetDefault("REPORT_PARALLEL_FETCH", false)
	viper.SetDefault("REPORT_TIMEZONE", "Local")

	viper.SetDefault("WEEKLY_REPORT_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("WEEKLY_REPORT_SYNC_LOOKBACK_DAYS", 14) // 14 dias por relatório
	viper.SetDefault("WEEKLY_REPORT_SYNC_ENABLED", false)    // Habilitar geração agendada

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOGGING_ENABLED", false)
	viper.SetDefault("LOGGING_DIR", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize deriva os campos calculados e valida as escolhas de plataforma e fonte de dados
func (c *Config) finalize() error {
	c.App.SelectedPlatform = strings.ToLower(strings.TrimSpace(c.App.SelectedPlatform))
	c.DataSource.Mode = strings.ToLower(strings.TrimSpace(c.DataSource.Mode))

	c.Platforms = map[string]Platform{
		PlatformKahunas: {
			Key:       PlatformKahunas,
			Name:      "KAHUNAS",
			SecretKey: c.Stripe.KahunasSecretKey,
		},
		PlatformStudioBookings: {
			Key:       PlatformStudioBookings,
			Name:      "STUDIO_BOOKINGS",
			SecretKey: c.Stripe.StudioBookingsSecret,
		},
	}

	if _, ok := c.Platforms[c.App.SelectedPlatform]; !ok {
		return fmt.Errorf("config: plataforma inválida %q, use %q ou %q", c.App.SelectedPlatform, PlatformKahunas, PlatformStudioBookings)
	}

	if c.DataSource.Mode != DataSourceLive && c.DataSource.Mode != DataSourceSnapshot {
		return fmt.Errorf("config: fonte de dados inválida %q, use %q ou %q", c.DataSource.Mode, DataSourceLive, DataSourceSnapshot)
	}

	if c.Report.PreviousPeriodDays <= 0 {
		c.Report.PreviousPeriodDays = 14
	}

	formats := make([]string, 0, len(c.Export.Formats))
	for _, f := range c.Export.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			formats = append(formats, f)
		}
	}
	c.Export.Formats = formats

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// ActivePlatforms retorna as plataformas para as quais os relatórios devem ser gerados
func (c *Config) ActivePlatforms() []Platform {
	if c.App.BothBusinessReports {
		return []Platform{c.Platforms[PlatformKahunas], c.Platforms[PlatformStudioBookings]}
	}

	return []Platform{c.Platforms[c.App.SelectedPlatform]}
}

// Location retorna o fuso horário usado para converter datas de calendário em timestamps
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" || strings.EqualFold(c.App.Timezone, "local") {
		return time.Local
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando horário local", c.App.Timezone)
		return time.Local
	}

	return loc
}

func (c *Config) StripeTimeout() time.Duration {
	if c.Stripe.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Stripe.TimeoutSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
