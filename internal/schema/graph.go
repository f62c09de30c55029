package schema

import (
	"fmt"
	"sort"

	"github.com/Rana718/bookstock/internal/types"
)

type DependencyGraph struct {
	tables map[string]types.SchemaTable
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]types.SchemaTable),
	}
}

func (g *DependencyGraph) AddTable(table types.SchemaTable) {
	g.tables[table.Name] = table
}

// BuildInsertionOrder sorts tables so every table comes after the tables it
// references. Ties are broken by name to keep the order stable.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		if table, ok := g.tables[tableName]; ok {
			deps := table.Dependencies()
			sort.Strings(deps)
			for _, dep := range deps {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	names := make([]string, 0, len(g.tables))
	for name := range g.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// InsertionOrder is the dependency order of the bookstore tables.
func InsertionOrder() ([]string, error) {
	g := NewDependencyGraph()
	for _, table := range Tables() {
		g.AddTable(table)
	}
	return g.BuildInsertionOrder()
}
