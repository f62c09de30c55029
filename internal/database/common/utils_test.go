package common

import (
	"strings"
	"testing"

	"github.com/Rana718/bookstock/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%nova%", ContainsPattern("nova"))
	assert.Equal(t, `%50\%%`, ContainsPattern("50%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%c:\\dir%`, ContainsPattern(`c:\dir`))
	assert.Equal(t, "%%", ContainsPattern(""))
}

func TestSplitType(t *testing.T) {
	tests := []struct {
		in, base, length string
	}{
		{"VARCHAR(100)", "varchar", "(100)"},
		{"DECIMAL( 10 , 2 )", "decimal", "(10,2)"},
		{"INTEGER", "integer", ""},
		{"double precision", "double precision", ""},
	}
	for _, tt := range tests {
		base, length := SplitType(tt.in)
		assert.Equal(t, tt.base, base, tt.in)
		assert.Equal(t, tt.length, length, tt.in)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("id_publisher"))
	assert.False(t, IsValidIdentifier("1book"))
	assert.False(t, IsValidIdentifier("shop; DROP"))
}

func TestCreateTableSQL(t *testing.T) {
	table := types.SchemaTable{
		Name: "stock",
		Columns: []types.SchemaColumn{
			{Name: "id", Type: "INTEGER"},
			{Name: "id_book", Type: "INTEGER", ForeignKeyTable: "book", ForeignKeyColumn: "id", OnDeleteAction: "CASCADE"},
			{Name: "count", Type: "INTEGER"},
		},
		Constraints: []types.SchemaConstraint{
			{Name: "book_uc", Columns: []string{"id_book"}, Unique: true},
			{Check: "count >= 0"},
		},
	}

	quote := func(s string) string { return "[" + s + "]" }
	format := func(c types.SchemaColumn) string { return strings.ToUpper(c.Type) }

	got := CreateTableSQL(table, quote, format, " STRICT")
	want := "CREATE TABLE IF NOT EXISTS [stock] (\n" +
		"  [id] INTEGER,\n" +
		"  [id_book] INTEGER,\n" +
		"  [count] INTEGER,\n" +
		"  CONSTRAINT [book_uc] UNIQUE ([id_book]),\n" +
		"  CHECK (count >= 0),\n" +
		"  FOREIGN KEY ([id_book]) REFERENCES [book]([id]) ON DELETE CASCADE\n" +
		") STRICT;"
	assert.Equal(t, want, got)
}
