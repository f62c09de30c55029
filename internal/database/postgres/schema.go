package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// GetTableColumns lists the columns of a table in the current schema in
// ordinal order.
func (p *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]string, error) {
	query, args, err := p.columnsQuery(tableName).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

func (p *Adapter) columnsQuery(tableName string) squirrel.SelectBuilder {
	return p.qb.
		Select("column_name").
		From("information_schema.columns").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_name": tableName}).
		OrderBy("ordinal_position")
}
