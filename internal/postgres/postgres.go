package postgres

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/config"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// IClient is the database handle repositories and services depend on.
// Querier returns the transaction bound to the context when one is
// active, so repository code is oblivious to transaction boundaries.
type IClient interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Querier(ctx context.Context) Querier
}

// Querier defines the database operations shared by *sqlx.DB and *sqlx.Tx.
// Named queries run through the package level sqlx.NamedQueryContext and
// sqlx.NamedExecContext helpers, which accept any ExtContext.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// DB wraps sqlx.DB to provide transaction management
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// NewDB creates a new DB instance from the postgres configuration
func NewDB(cfg *config.Configuration, logger *logger.Logger) (*DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	return &DB{DB: db, logger: logger}, nil
}

// Querier returns the context transaction if one is active, otherwise
// the underlying connection pool.
func (db *DB) Querier(ctx context.Context) Querier {
	if tx, ok := GetTx(ctx); ok {
		return tx
	}
	return db.DB
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
