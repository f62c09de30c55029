// Package schema declares the bookstore tables and keeps them provisioned.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/bookstock/internal/database"
)

type SchemaManager struct {
	adapter database.DatabaseAdapter
}

func NewSchemaManager(adapter database.DatabaseAdapter) *SchemaManager {
	return &SchemaManager{adapter: adapter}
}

// EnsureTables creates whichever bookstore tables are missing and returns
// their names. Existing tables and their rows are left untouched.
func (sm *SchemaManager) EnsureTables(ctx context.Context) ([]string, error) {
	order, err := InsertionOrder()
	if err != nil {
		return nil, err
	}

	var created []string
	for _, name := range order {
		table, _ := Table(name)

		exists, err := sm.adapter.CheckTableExists(ctx, name)
		if err != nil {
			return created, fmt.Errorf("failed to check table %s: %w", name, err)
		}

		if exists {
			continue
		}

		if _, err := sm.adapter.DB().ExecContext(ctx, sm.adapter.GenerateCreateTableSQL(table)); err != nil {
			return created, fmt.Errorf("failed to create table %s: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}

// DropTables drops the bookstore tables, dependents first.
func (sm *SchemaManager) DropTables(ctx context.Context) ([]string, error) {
	order, err := InsertionOrder()
	if err != nil {
		return nil, err
	}

	var dropped []string
	for i := len(order) - 1; i >= 0; i-- {
		if err := sm.adapter.DropTable(ctx, order[i]); err != nil {
			return dropped, fmt.Errorf("failed to drop table %s: %w", order[i], err)
		}
		dropped = append(dropped, order[i])
	}
	return dropped, nil
}

// TableStatus describes one bookstore table as found in the database.
// MissingColumns lists declared columns the existing table lacks.
type TableStatus struct {
	Name           string
	Exists         bool
	Rows           int
	MissingColumns []string
}

// Status reports presence, row count and column drift of every bookstore
// table.
func (sm *SchemaManager) Status(ctx context.Context) ([]TableStatus, error) {
	order, err := InsertionOrder()
	if err != nil {
		return nil, err
	}

	statuses := make([]TableStatus, 0, len(order))
	for _, name := range order {
		st := TableStatus{Name: name}

		st.Exists, err = sm.adapter.CheckTableExists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", name, err)
		}
		if st.Exists {
			if st.Rows, err = sm.adapter.GetTableRowCount(ctx, name); err != nil {
				return nil, err
			}
			if st.MissingColumns, err = sm.missingColumns(ctx, name); err != nil {
				return nil, err
			}
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (sm *SchemaManager) missingColumns(ctx context.Context, name string) ([]string, error) {
	table, _ := Table(name)

	existing, err := sm.adapter.GetTableColumns(ctx, name)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, col := range existing {
		have[strings.ToLower(col)] = true
	}

	var missing []string
	for _, col := range table.ColumnNames() {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing, nil
}
