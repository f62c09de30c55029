package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

// DriverName is go-sqlite3 with a Unicode-aware fold() SQL function on every
// connection. SQLite's own LOWER and LIKE only fold ASCII.
const DriverName = "sqlite3_bookstock"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var typeMap = map[string]string{
	"varchar": "TEXT", "text": "TEXT", "char": "TEXT",
	"int": "INTEGER", "integer": "INTEGER", "bigint": "INTEGER", "smallint": "INTEGER", "tinyint": "INTEGER",
	"real": "REAL", "double": "REAL", "float": "REAL", "double precision": "REAL",
	"blob": "BLOB", "numeric": "NUMERIC", "decimal": "NUMERIC",
	"boolean": "INTEGER", "bool": "INTEGER",
	"date": "DATE", "datetime": "DATETIME", "timestamp": "DATETIME",
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Connect opens sqlite://<path>. Foreign keys are switched on for every
// pooled connection since SQLite leaves them off by default.
func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) DB() *sql.DB { return s.db }

func (s *Adapter) Provider() string { return "sqlite" }

func (s *Adapter) StatementBuilder() squirrel.StatementBuilderType { return s.qb }

// ContainsFold matches rows whose column contains pattern, ignoring case.
// SQLite has no default LIKE escape character so it is spelled out.
func (s *Adapter) ContainsFold(column, pattern string) squirrel.Sqlizer {
	return squirrel.Expr(fmt.Sprintf(`fold(%s) LIKE fold(?) ESCAPE '\'`, column), pattern)
}

func (s *Adapter) MapColumnType(dbType string) string {
	if mapped, exists := typeMap[strings.ToLower(dbType)]; exists {
		return mapped
	}
	return strings.ToUpper(dbType)
}
