package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/bookstock/internal/database/common"
	"github.com/Rana718/bookstock/internal/types"
)

func quote(name string) string {
	return `"` + name + `"`
}

func (p *Adapter) tableExistsQuery(tableName string) squirrel.SelectBuilder {
	return p.qb.
		Select("COUNT(*)").
		From("information_schema.tables").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_name": tableName, "table_type": "BASE TABLE"})
}

func (p *Adapter) rowCountQuery(tableName string) squirrel.SelectBuilder {
	return p.qb.Select("COUNT(*)").From(quote(tableName))
}

func dropTableSQL(tableName string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", quote(tableName))
}

func (p *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := p.tableExistsQuery(tableName).ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", tableName, err)
	}
	return count > 0, nil
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	query, args, err := p.rowCountQuery(tableName).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (p *Adapter) DropTable(ctx context.Context, tableName string) error {
	_, err := p.db.ExecContext(ctx, dropTableSQL(tableName))
	return err
}

func (p *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	return common.CreateTableSQL(table, quote, p.FormatColumnType, "")
}

func (p *Adapter) FormatColumnType(column types.SchemaColumn) string {
	base, length := common.SplitType(column.Type)

	var parts []string
	switch {
	case column.IsPrimary && column.IsAutoIncrement && base == "bigint":
		parts = append(parts, "BIGSERIAL")
	case column.IsPrimary && column.IsAutoIncrement:
		parts = append(parts, "SERIAL")
	default:
		parts = append(parts, p.MapColumnType(base)+length)
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
