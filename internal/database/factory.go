package database

import (
	"fmt"

	"github.com/Rana718/bookstock/internal/database/mysql"
	"github.com/Rana718/bookstock/internal/database/postgres"
	"github.com/Rana718/bookstock/internal/database/sqlite"
	"github.com/jackc/pgx/v5"
)

// Options tunes adapter construction. Both fields only apply to PostgreSQL.
type Options struct {
	Driver string
	Tracer pgx.QueryTracer
}

func NewAdapter(provider string, opts Options) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(opts.Driver, opts.Tracer), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
