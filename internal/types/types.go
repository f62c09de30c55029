package types

type SchemaTable struct {
	Name        string
	Columns     []SchemaColumn
	Constraints []SchemaConstraint
}

type SchemaColumn struct {
	Name             string
	Type             string // dialect-neutral: INTEGER, VARCHAR(n), FLOAT, DATE
	Nullable         bool
	IsPrimary        bool
	IsUnique         bool
	IsAutoIncrement  bool
	Check            string // raw boolean expression, e.g. "count >= 0"
	ForeignKeyTable  string
	ForeignKeyColumn string
	OnDeleteAction   string
}

// SchemaConstraint is a table-level constraint rendered inside CREATE TABLE.
type SchemaConstraint struct {
	Name    string
	Columns []string
	Unique  bool
	Check   string
}

// Dependencies returns the tables referenced by foreign keys, self-references excluded.
func (t SchemaTable) Dependencies() []string {
	var deps []string
	for _, col := range t.Columns {
		if col.ForeignKeyTable != "" && col.ForeignKeyTable != t.Name {
			deps = append(deps, col.ForeignKeyTable)
		}
	}
	return deps
}

// ColumnNames returns the column names in declaration order.
func (t SchemaTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}
