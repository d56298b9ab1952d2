package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
)

const driverName = "postgres"

// O arquivo de relatórios grava poucas linhas por execução; o pool fica pequeno
const (
	maxOpenConns    = 4
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
)

var ErrEmptyDSN = errors.New("postgres: DSN não configurado")

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool sem conectar; use Ping para validar o acesso
func NewConnection(
	_ context.Context,
	cfg config.Database,
) (*Connection, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return c.DB.PingContext(ctx)
}
