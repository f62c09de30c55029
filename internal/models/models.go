// Package models holds the bookstore record types as they are stored in and
// loaded into the database.
package models

import (
	"fmt"
)

// Model is the type tag used by seed files and doubles as the table name.
type Model string

const (
	PublisherModel Model = "publisher"
	BookModel      Model = "book"
	ShopModel      Model = "shop"
	StockModel     Model = "stock"
	SaleModel      Model = "sale"
)

// Models lists every known tag.
var Models = []Model{PublisherModel, BookModel, ShopModel, StockModel, SaleModel}

func (m Model) Table() string { return string(m) }

// Record is a typed row ready to be inserted.
type Record interface {
	Model() Model
	PK() int64
	Columns() []string
	Values() []any
}

type Publisher struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
}

func (p Publisher) Model() Model { return PublisherModel }
func (p Publisher) PK() int64 { return p.ID }
func (p Publisher) Columns() []string { return []string{"id", "name"} }
func (p Publisher) Values() []any { return []any{p.ID, p.Name} }
func (p Publisher) String() string { return fmt.Sprintf("%d. %s", p.ID, p.Name) }

type Book struct {
	ID          int64  `json:"-"`
	Title       string `json:"title"`
	PublisherID int64  `json:"id_publisher"`
}

func (b Book) Model() Model { return BookModel }
func (b Book) PK() int64 { return b.ID }
func (b Book) Columns() []string { return []string{"id", "title", "id_publisher"} }
func (b Book) Values() []any { return []any{b.ID, b.Title, b.PublisherID} }

type Shop struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
}

func (s Shop) Model() Model { return ShopModel }
func (s Shop) PK() int64 { return s.ID }
func (s Shop) Columns() []string { return []string{"id", "name"} }
func (s Shop) Values() []any { return []any{s.ID, s.Name} }
func (s Shop) String() string { return fmt.Sprintf("%d. %s", s.ID, s.Name) }

// Stock is the quantity of one book on hand at one shop.
type Stock struct {
	ID     int64 `json:"-"`
	BookID int64 `json:"id_book"`
	ShopID int64 `json:"id_shop"`
	Count  int64 `json:"count"`
}

func (s Stock) Model() Model { return StockModel }
func (s Stock) PK() int64 { return s.ID }
func (s Stock) Columns() []string { return []string{"id", "id_book", "id_shop", "count"} }
func (s Stock) Values() []any { return []any{s.ID, s.BookID, s.ShopID, s.Count} }

// Sale records copies sold against a stock line.
type Sale struct {
	ID       int64 `json:"-"`
	Price    Price `json:"price"`
	DateSale Date  `json:"date_sale"`
	StockID  int64 `json:"id_stock"`
	Count    int64 `json:"count"`
}

func (s Sale) Model() Model { return SaleModel }
func (s Sale) PK() int64 { return s.ID }
func (s Sale) Columns() []string { return []string{"id", "price", "date_sale", "id_stock", "count"} }
func (s Sale) Values() []any {
	return []any{s.ID, float64(s.Price), s.DateSale.String(), s.StockID, s.Count}
}
