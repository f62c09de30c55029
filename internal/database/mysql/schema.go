package mysql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
)

func (m *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]string, error) {
	query, args, err := m.columnsQuery(tableName).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
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

func (m *Adapter) columnsQuery(tableName string) squirrel.SelectBuilder {
	return m.qb.
		Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_schema": m.currentDB, "table_name": tableName}).
		OrderBy("ordinal_position")
}
