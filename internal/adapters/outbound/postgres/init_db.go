package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsTable keeps the schema version apart from other apps sharing the database.
const migrationsTable = "mathsolver_schema_migrations"

// InitDB opens the instrumented Postgres pool holding settings, solve models
// and outbox events, applies the embedded migrations and registers the *sql.DB.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	DBUser             string      `config:"DB_USER"`
	DBPass             string      `config:"DB_PASS"`
	DBHost             string      `config:"DB_HOST"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME"`
	SSLMode            string      `config:"DB_SSL_MODE" default:"disable"`
	MaxConns           int         `config:"DB_MAX_CONNS" default:"0"`
}

// dsn builds the connection URL. Credentials are escaped so secrets read from
// Vault may contain any character.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": []string{di.SSLMode}}.Encode(),
	}
	return u.String()
}

// Initialize sets up the database connection, runs migrations and registers
// the *sql.DB in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("parse connection config: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = int32(di.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("create pgx pool: %w", err)
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbSystemAttributes)
	if err != nil {
		return ctx, fmt.Errorf("register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	return ctx, nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	di.Logger.Printf("InitDB: schema at version %d (dirty=%t)", version, dirty)
	return nil
}

// Close releases the pool and the db stats metric registration.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
		}
	}
}

// withQueryAttributes annotates query and exec spans with the statement's
// commands and tables, e.g. "SELECT system_settings".
func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		operations, tables := extractSQLOperation(logger, query)
		var attrs []attribute.KeyValue
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(strings.Join(operations, ",")+" "+strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

func extractSQLOperation(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to extract SQL operation from query: %v", err)
		return nil, nil
	}
	return meta.Commands, meta.Tables
}
