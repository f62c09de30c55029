package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/bookstock/internal/types"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// DB exposes the pooled handle for transactions and squirrel statements.
	DB() *sql.DB
	Provider() string

	// Query building
	StatementBuilder() squirrel.StatementBuilderType
	ContainsFold(column, pattern string) squirrel.Sqlizer

	// Table operations
	CheckTableExists(ctx context.Context, tableName string) (bool, error)
	GetTableRowCount(ctx context.Context, tableName string) (int, error)
	DropTable(ctx context.Context, tableName string) error
	GetTableColumns(ctx context.Context, tableName string) ([]string, error)

	// SQL generation
	GenerateCreateTableSQL(table types.SchemaTable) string
	FormatColumnType(column types.SchemaColumn) string
	MapColumnType(dbType string) string
}
