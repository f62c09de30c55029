package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rana718/bookstock/internal/types"
)

var (
	validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	typeLength      = regexp.MustCompile(`^\s*([A-Za-z ]+?)\s*(\(\s*\d+(?:\s*,\s*\d+)?\s*\))?\s*$`)
	likeEscaper     = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// IsValidIdentifier checks if a string is a valid SQL identifier
func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// ContainsPattern builds a LIKE pattern matching s anywhere, with LIKE
// wildcards in s escaped by a backslash.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// SplitType splits "VARCHAR(100)" into "varchar" and "(100)".
func SplitType(dbType string) (string, string) {
	m := typeLength.FindStringSubmatch(dbType)
	if m == nil {
		return strings.ToLower(strings.TrimSpace(dbType)), ""
	}
	return strings.ToLower(m[1]), strings.ReplaceAll(m[2], " ", "")
}

// CreateTableSQL renders CREATE TABLE IF NOT EXISTS with column definitions
// followed by table-level UNIQUE/CHECK constraints and foreign keys.
func CreateTableSQL(table types.SchemaTable, quote func(string) string, formatColumn func(types.SchemaColumn) string, suffix string) string {
	var body []string

	for _, column := range table.Columns {
		body = append(body, fmt.Sprintf("  %s %s", quote(column.Name), formatColumn(column)))
	}

	for _, c := range table.Constraints {
		prefix := "  "
		if c.Name != "" {
			prefix += fmt.Sprintf("CONSTRAINT %s ", quote(c.Name))
		}
		switch {
		case c.Unique:
			cols := make([]string, len(c.Columns))
			for i, col := range c.Columns {
				cols[i] = quote(col)
			}
			body = append(body, fmt.Sprintf("%sUNIQUE (%s)", prefix, strings.Join(cols, ", ")))
		case c.Check != "":
			body = append(body, fmt.Sprintf("%sCHECK (%s)", prefix, c.Check))
		}
	}

	for _, column := range table.Columns {
		if column.ForeignKeyTable == "" || column.ForeignKeyColumn == "" {
			continue
		}
		fk := fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
			quote(column.Name), quote(column.ForeignKeyTable), quote(column.ForeignKeyColumn))
		if column.OnDeleteAction != "" {
			fk += fmt.Sprintf(" ON DELETE %s", column.OnDeleteAction)
		}
		body = append(body, fk)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quote(table.Name))
	b.WriteString(strings.Join(body, ",\n"))
	b.WriteString("\n)")
	b.WriteString(suffix)
	b.WriteString(";")
	return b.String()
}
