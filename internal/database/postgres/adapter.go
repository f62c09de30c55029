package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "pq"
)

type Adapter struct {
	db     *sql.DB
	qb     squirrel.StatementBuilderType
	driver string
	tracer pgx.QueryTracer
}

var typeMap = map[string]string{
	"varchar": "VARCHAR", "character varying": "VARCHAR", "char": "CHAR", "text": "TEXT",
	"integer": "INTEGER", "int": "INTEGER", "int4": "INTEGER", "bigint": "BIGINT", "int8": "BIGINT",
	"smallint": "SMALLINT", "boolean": "BOOLEAN", "bool": "BOOLEAN",
	"timestamp": "TIMESTAMP", "date": "DATE", "time": "TIME", "numeric": "NUMERIC", "decimal": "NUMERIC",
	"real": "REAL", "float4": "REAL", "float": "DOUBLE PRECISION", "double": "DOUBLE PRECISION",
	"double precision": "DOUBLE PRECISION", "float8": "DOUBLE PRECISION",
}

// New returns a PostgreSQL adapter. driver selects jackc/pgx ("pgx", the
// default) or lib/pq ("pq"); tracer is only honoured by pgx.
func New(driver string, tracer pgx.QueryTracer) *Adapter {
	if driver == "" {
		driver = DriverPgx
	}
	return &Adapter{
		qb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		driver: driver,
		tracer: tracer,
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	switch p.driver {
	case DriverPq:
		db, err := sql.Open("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
		}
		p.db = db
	case DriverPgx:
		config, err := pgx.ParseConfig(url)
		if err != nil {
			return fmt.Errorf("failed to parse connection URL: %w", err)
		}
		config.DefaultQueryExecMode = pgx.QueryExecModeExec
		if p.tracer != nil {
			config.Tracer = p.tracer
		}
		p.db = stdlib.OpenDB(*config)
	default:
		return fmt.Errorf("unsupported PostgreSQL driver: %s", p.driver)
	}

	p.db.SetMaxOpenConns(2)
	p.db.SetConnMaxLifetime(15 * time.Minute)
	p.db.SetConnMaxIdleTime(3 * time.Minute)
	return nil
}

func (p *Adapter) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Adapter) DB() *sql.DB { return p.db }

func (p *Adapter) Provider() string { return "postgresql" }

func (p *Adapter) StatementBuilder() squirrel.StatementBuilderType { return p.qb }

// ContainsFold matches rows whose column contains pattern, ignoring case.
func (p *Adapter) ContainsFold(column, pattern string) squirrel.Sqlizer {
	return squirrel.ILike{column: pattern}
}

func (p *Adapter) MapColumnType(dbType string) string {
	if mapped, exists := typeMap[strings.ToLower(dbType)]; exists {
		return mapped
	}
	return strings.ToUpper(dbType)
}
