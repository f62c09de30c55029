package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bookstock/internal/database/common"
	"github.com/Rana718/bookstock/internal/types"
)

func quote(name string) string {
	return `"` + name + `"`
}

func (s *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", tableName).Scan(&count)
	return count > 0, err
}

func (s *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	query, args, err := s.qb.Select("COUNT(*)").From(quote(tableName)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quote(tableName)))
	return err
}

func (s *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	return common.CreateTableSQL(table, quote, s.FormatColumnType, "")
}

func (s *Adapter) FormatColumnType(column types.SchemaColumn) string {
	base, _ := common.SplitType(column.Type)
	mapped := s.MapColumnType(base)
	parts := []string{mapped}

	if column.IsPrimary {
		if mapped == "INTEGER" && column.IsAutoIncrement {
			parts = append(parts, "PRIMARY KEY AUTOINCREMENT")
		} else {
			parts = append(parts, "PRIMARY KEY")
		}
	}

	if column.IsUnique && !column.IsPrimary {
		parts = append(parts, "UNIQUE")
	}

	if !column.Nullable && !column.IsPrimary {
		parts = append(parts, "NOT NULL")
	}

	if column.Check != "" {
		parts = append(parts, fmt.Sprintf("CHECK (%s)", column.Check))
	}

	return strings.Join(parts, " ")
}
