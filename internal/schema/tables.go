package schema

import (
	"github.com/Rana718/bookstock/internal/models"
	"github.com/Rana718/bookstock/internal/types"
)

func idColumn() types.SchemaColumn {
	return types.SchemaColumn{Name: "id", Type: "INTEGER", IsPrimary: true, IsAutoIncrement: true}
}

func foreignKey(name, table string) types.SchemaColumn {
	return types.SchemaColumn{Name: name, Type: "INTEGER", ForeignKeyTable: table, ForeignKeyColumn: "id"}
}

// Tables declares the bookstore schema in creation order.
func Tables() []types.SchemaTable {
	return []types.SchemaTable{
		{
			Name: models.PublisherModel.Table(),
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "name", Type: "VARCHAR(100)", IsUnique: true},
			},
		},
		{
			Name: models.BookModel.Table(),
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "title", Type: "VARCHAR(100)"},
				foreignKey("id_publisher", models.PublisherModel.Table()),
			},
		},
		{
			Name: models.ShopModel.Table(),
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "name", Type: "VARCHAR(70)", IsUnique: true},
			},
		},
		{
			Name: models.StockModel.Table(),
			Columns: []types.SchemaColumn{
				idColumn(),
				foreignKey("id_book", models.BookModel.Table()),
				foreignKey("id_shop", models.ShopModel.Table()),
				{Name: "count", Type: "INTEGER", Check: "count >= 0"},
			},
			Constraints: []types.SchemaConstraint{
				{Name: "book_shop_uc", Columns: []string{"id_book", "id_shop"}, Unique: true},
			},
		},
		{
			Name: models.SaleModel.Table(),
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "price", Type: "FLOAT", Check: "price > 0"},
				{Name: "date_sale", Type: "DATE"},
				foreignKey("id_stock", models.StockModel.Table()),
				{Name: "count", Type: "INTEGER", Check: "count >= 0"},
			},
		},
	}
}

// Table looks up a declared table by name.
func Table(name string) (types.SchemaTable, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return types.SchemaTable{}, false
}
