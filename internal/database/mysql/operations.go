package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/bookstock/internal/database/common"
	"github.com/Rana718/bookstock/internal/types"
)

func quote(name string) string {
	return "`" + name + "`"
}

func (m *Adapter) tableExistsQuery(tableName string) squirrel.SelectBuilder {
	return m.qb.
		Select("COUNT(*)").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": m.currentDB, "table_name": tableName, "table_type": "BASE TABLE"})
}

func (m *Adapter) rowCountQuery(tableName string) squirrel.SelectBuilder {
	return m.qb.Select("COUNT(*)").From(quote(tableName))
}

func dropTableSQL(tableName string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", quote(tableName))
}

func (m *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := m.tableExistsQuery(tableName).ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", tableName, err)
	}
	return count > 0, nil
}

func (m *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	query, args, err := m.rowCountQuery(tableName).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (m *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := m.db.ExecContext(ctx, dropTableSQL(tableName))
	return err
}

func (m *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	return common.CreateTableSQL(table, quote, m.FormatColumnType, " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4")
}

func (m *Adapter) FormatColumnType(column types.SchemaColumn) string {
	base, length := common.SplitType(column.Type)

	mapped := m.MapColumnType(base)
	if mapped == "VARCHAR" || mapped == "CHAR" || mapped == "DECIMAL" {
		mapped += length
	}
	parts := []string{mapped}

	if column.IsAutoIncrement {
		parts = append(parts, "AUTO_INCREMENT")
	}

	if column.IsPrimary {
		parts = append(parts, "PRIMARY KEY")
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
