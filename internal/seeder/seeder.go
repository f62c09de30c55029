package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Rana718/bookstock/internal/database"
	"github.com/Rana718/bookstock/internal/models"
	"github.com/Rana718/bookstock/internal/schema"
	"github.com/Rana718/bookstock/internal/sqlerr"
	"github.com/rs/zerolog"
)

type Loader struct {
	adapter   database.DatabaseAdapter
	log       zerolog.Logger
	batchSize int
}

func NewLoader(adapter database.DatabaseAdapter, log zerolog.Logger) *Loader {
	return &Loader{
		adapter:   adapter,
		log:       log,
		batchSize: DefaultBatchSize,
	}
}

// Load inserts every record in a single transaction. Records are grouped by
// table in foreign key order; within a table the input order is kept.
//
// A uniqueness conflict anywhere rolls the whole batch back and returns
// ErrDataAlreadyPresent. Any other failure is returned as is.
func (l *Loader) Load(ctx context.Context, records []models.Record) (*LoadResult, error) {
	staged, err := stage(records)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Inserted: make(map[string]int)}

	err = database.WithTx(ctx, l.adapter.DB(), func(tx *sql.Tx) error {
		for start := 0; start < len(staged); {
			end := l.batchEnd(staged, start)
			if err := l.insertBatch(ctx, tx, staged[start:end]); err != nil {
				return err
			}
			result.Inserted[staged[start].Model().Table()] += end - start
			result.Total += end - start
			start = end
		}
		return nil
	})
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			l.log.Debug().Err(err).Msg("seed batch rolled back")
			return nil, fmt.Errorf("%w: %v", ErrDataAlreadyPresent, err)
		}
		return nil, err
	}

	return result, nil
}

// stage orders records by table dependency, keeping file order per table.
func stage(records []models.Record) ([]models.Record, error) {
	order, err := schema.InsertionOrder()
	if err != nil {
		return nil, err
	}
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}

	staged := make([]models.Record, len(records))
	copy(staged, records)
	sort.SliceStable(staged, func(i, j int) bool {
		return rank[staged[i].Model().Table()] < rank[staged[j].Model().Table()]
	})
	return staged, nil
}

// batchEnd returns the end of the run of same-table records starting at start,
// capped at the batch size.
func (l *Loader) batchEnd(staged []models.Record, start int) int {
	end := start + 1
	for end < len(staged) && end-start < l.batchSize && staged[end].Model() == staged[start].Model() {
		end++
	}
	return end
}

func (l *Loader) insertBatch(ctx context.Context, tx *sql.Tx, batch []models.Record) error {
	table := batch[0].Model().Table()

	insert := l.adapter.StatementBuilder().Insert(table).Columns(batch[0].Columns()...)
	for _, rec := range batch {
		insert = insert.Values(rec.Values()...)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s (%s): %w", table, pkRange(batch), err)
	}

	l.log.Debug().Str("table", table).Str("records", pkRange(batch)).Int("rows", len(batch)).Msg("inserted batch")
	return nil
}

// pkRange names a batch by the primary keys of its first and last record.
func pkRange(batch []models.Record) string {
	first, last := batch[0].PK(), batch[len(batch)-1].PK()
	if first == last {
		return fmt.Sprintf("pk %d", first)
	}
	return fmt.Sprintf("pk %d..%d", first, last)
}
