// Package inventory answers which shops carry a publisher's books.
package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/bookstock/internal/database"
	"github.com/Rana718/bookstock/internal/database/common"
	"github.com/Rana718/bookstock/internal/models"
)

type Outcome int

const (
	NotFound Outcome = iota
	Found
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Result carries the matched publishers and, when exactly one matched, the
// shops holding its books. Shops repeat once per qualifying stock line.
type Result struct {
	Outcome    Outcome
	Publishers []models.Publisher
	Shops      []models.Shop
}

// Publisher returns the single matched publisher.
func (r Result) Publisher() (models.Publisher, bool) {
	if r.Outcome != Found || len(r.Publishers) != 1 {
		return models.Publisher{}, false
	}
	return r.Publishers[0], true
}

func (r Result) Message() string {
	switch r.Outcome {
	case Found:
		return fmt.Sprintf("Found publisher: %s", r.Publishers[0])
	case Ambiguous:
		return "More than one publisher found. Please refine the query!"
	default:
		return "No publishers found. Please refine the query!"
	}
}

type Finder struct {
	adapter database.DatabaseAdapter
	qb      squirrel.StatementBuilderType
}

func NewFinder(adapter database.DatabaseAdapter) *Finder {
	return &Finder{
		adapter: adapter,
		qb:      adapter.StatementBuilder(),
	}
}

// ShopsByPublisher looks up publishers whose name contains fragment, ignoring
// case. Shops are only listed when the lookup is unambiguous. Errors are
// reserved for database failures.
func (f *Finder) ShopsByPublisher(ctx context.Context, fragment string) (Result, error) {
	publishers, err := f.PublishersMatching(ctx, fragment)
	if err != nil {
		return Result{}, err
	}

	switch len(publishers) {
	case 0:
		return Result{Outcome: NotFound}, nil
	case 1:
	default:
		return Result{Outcome: Ambiguous, Publishers: publishers}, nil
	}

	shops, err := f.StockedShops(ctx, publishers[0].ID)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: Found, Publishers: publishers, Shops: shops}, nil
}

func (f *Finder) PublishersMatching(ctx context.Context, fragment string) ([]models.Publisher, error) {
	query, args, err := f.qb.
		Select("id", "name").
		From("publisher").
		Where(f.adapter.ContainsFold("name", common.ContainsPattern(fragment))).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build publisher query: %w", err)
	}

	rows, err := f.adapter.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query publishers: %w", err)
	}
	defer rows.Close()

	var publishers []models.Publisher
	for rows.Next() {
		var p models.Publisher
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, p)
	}
	return publishers, rows.Err()
}

// StockedShops lists one shop per stock line with a positive count for any
// book of the publisher, in stock id order.
func (f *Finder) StockedShops(ctx context.Context, publisherID int64) ([]models.Shop, error) {
	query, args, err := f.qb.
		Select("shop.id", "shop.name").
		From("shop").
		Join("stock ON stock.id_shop = shop.id").
		Join("book ON book.id = stock.id_book").
		Join("publisher ON publisher.id = book.id_publisher").
		Where(squirrel.Eq{"publisher.id": publisherID}).
		Where(squirrel.Gt{"stock.count": 0}).
		OrderBy("stock.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build shop query: %w", err)
	}

	rows, err := f.adapter.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	return scanShops(rows)
}

func scanShops(rows *sql.Rows) ([]models.Shop, error) {
	var shops []models.Shop
	for rows.Next() {
		var s models.Shop
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}
