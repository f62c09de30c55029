package seeder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rana718/bookstock/internal/models"
	"github.com/Rana718/bookstock/internal/seeder"
	"github.com/Rana718/bookstock/internal/sqlerr"
	"github.com/Rana718/bookstock/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `[
  {"model": "publisher", "pk": 1, "fields": {"name": "O'Reilly"}},
  {"model": "publisher", "pk": 2, "fields": {"name": "Pearson"}},
  {"model": "book", "pk": 1, "fields": {"title": "Programming Python", "id_publisher": 1}},
  {"model": "book", "pk": 2, "fields": {"title": "Learning Go", "id_publisher": 1}},
  {"model": "book", "pk": 3, "fields": {"title": "Algorithms", "id_publisher": 2}},
  {"model": "shop", "pk": 1, "fields": {"name": "Labirint"}},
  {"model": "shop", "pk": 2, "fields": {"name": "OZON"}},
  {"model": "stock", "pk": 1, "fields": {"id_shop": 1, "id_book": 1, "count": 34}},
  {"model": "stock", "pk": 2, "fields": {"id_shop": 2, "id_book": 2, "count": 0}},
  {"model": "stock", "pk": 3, "fields": {"id_shop": 1, "id_book": 3, "count": 12}},
  {"model": "sale", "pk": 1, "fields": {"price": "50.05", "date_sale": "2018-10-25T09:45:24.552Z", "count": 16, "id_stock": 1}},
  {"model": "sale", "pk": 2, "fields": {"price": 42.5, "date_sale": "2018-10-26", "count": 2, "id_stock": 3}}
]`

func decodeSample(t *testing.T) []models.Record {
	t.Helper()
	records, err := seeder.Decode(strings.NewReader(sampleSeed))
	require.NoError(t, err)
	return records
}

func TestDecode(t *testing.T) {
	records := decodeSample(t)
	require.Len(t, records, 12)

	assert.Equal(t, models.Publisher{ID: 1, Name: "O'Reilly"}, records[0])
	assert.Equal(t, models.Book{ID: 2, Title: "Learning Go", PublisherID: 1}, records[3])
	assert.Equal(t, models.Stock{ID: 2, BookID: 2, ShopID: 2, Count: 0}, records[8])

	sale, ok := records[10].(models.Sale)
	require.True(t, ok)
	assert.InDelta(t, 50.05, float64(sale.Price), 1e-9)
	assert.Equal(t, "2018-10-25", sale.DateSale.String())
	assert.Equal(t, int64(1), sale.StockID)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
		is    error
	}{
		{
			name:  "not an array",
			input: `{"model": "publisher"}`,
			index: -1,
		},
		{
			name:  "unknown model",
			input: `[{"model": "publisher", "pk": 1, "fields": {"name": "A"}}, {"model": "author", "pk": 1, "fields": {}}]`,
			index: 1,
			is:    seeder.ErrUnknownModel,
		},
		{
			name:  "unknown field",
			input: `[{"model": "shop", "pk": 1, "fields": {"name": "A", "city": "Moscow"}}]`,
			index: 0,
		},
		{
			name:  "missing pk",
			input: `[{"model": "shop", "fields": {"name": "A"}}]`,
			index: 0,
		},
		{
			name:  "missing fields",
			input: `[{"model": "shop", "pk": 3}]`,
			index: 0,
		},
		{
			name:  "bad price",
			input: `[{"model": "sale", "pk": 1, "fields": {"price": "cheap", "date_sale": "2018-10-25", "count": 1, "id_stock": 1}}]`,
			index: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seeder.Decode(strings.NewReader(tt.input))
			require.Error(t, err)

			var decodeErr *seeder.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.index, decodeErr.Index)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db_data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0644))

	records, err := seeder.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 12)

	_, err = seeder.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInsertsEveryRecord(t *testing.T) {
	adapter := testutil.OpenBookstore(t)
	loader := seeder.NewLoader(adapter, zerolog.Nop())

	result, err := loader.Load(context.Background(), decodeSample(t))
	require.NoError(t, err)

	assert.Equal(t, 12, result.Total)
	assert.Equal(t, map[string]int{"publisher": 2, "book": 3, "shop": 2, "stock": 3, "sale": 2}, result.Inserted)

	for table, want := range result.Inserted {
		assert.Equal(t, want, testutil.RowCount(t, adapter, table), table)
	}
}

func TestLoadOrdersByDependency(t *testing.T) {
	adapter := testutil.OpenBookstore(t)
	loader := seeder.NewLoader(adapter, zerolog.Nop())

	records := decodeSample(t)
	reversed := make([]models.Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	result, err := loader.Load(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
}

func TestLoadTwiceReportsDataPresent(t *testing.T) {
	adapter := testutil.OpenBookstore(t)
	loader := seeder.NewLoader(adapter, zerolog.Nop())
	ctx := context.Background()

	_, err := loader.Load(ctx, decodeSample(t))
	require.NoError(t, err)

	_, err = loader.Load(ctx, decodeSample(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, seeder.ErrDataAlreadyPresent))

	assert.Equal(t, 2, testutil.RowCount(t, adapter, "publisher"))
	assert.Equal(t, 2, testutil.RowCount(t, adapter, "sale"))
}

func TestLoadRollsBackOnConflict(t *testing.T) {
	adapter := testutil.OpenBookstore(t)
	loader := seeder.NewLoader(adapter, zerolog.Nop())

	records := []models.Record{
		models.Publisher{ID: 1, Name: "Alpha"},
		models.Publisher{ID: 2, Name: "Beta"},
		models.Publisher{ID: 3, Name: "Alpha"},
	}

	_, err := loader.Load(context.Background(), records)
	require.ErrorIs(t, err, seeder.ErrDataAlreadyPresent)
	assert.Equal(t, 0, testutil.RowCount(t, adapter, "publisher"))
}

func TestLoadRejectsInvalidRows(t *testing.T) {
	base := []models.Record{
		models.Publisher{ID: 1, Name: "Alpha"},
		models.Book{ID: 1, Title: "A", PublisherID: 1},
		models.Shop{ID: 1, Name: "S"},
	}

	tests := []struct {
		name  string
		extra []models.Record
		code  sqlerr.Code
	}{
		{
			name:  "negative stock",
			extra: []models.Record{models.Stock{ID: 1, BookID: 1, ShopID: 1, Count: -1}},
			code:  sqlerr.CheckViolation,
		},
		{
			name: "zero price",
			extra: []models.Record{
				models.Stock{ID: 1, BookID: 1, ShopID: 1, Count: 3},
				models.Sale{ID: 1, Price: 0, DateSale: models.NewDate(2020, 1, 2), StockID: 1, Count: 1},
			},
			code: sqlerr.CheckViolation,
		},
		{
			name:  "dangling book",
			extra: []models.Record{models.Stock{ID: 1, BookID: 9, ShopID: 1, Count: 1}},
			code:  sqlerr.ForeignKeyViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := testutil.OpenBookstore(t)
			loader := seeder.NewLoader(adapter, zerolog.Nop())

			records := append(append([]models.Record{}, base...), tt.extra...)
			_, err := loader.Load(context.Background(), records)
			require.Error(t, err)
			assert.NotErrorIs(t, err, seeder.ErrDataAlreadyPresent)
			assert.Equal(t, tt.code, sqlerr.ErrCode(err))
			assert.Equal(t, 0, testutil.RowCount(t, adapter, "publisher"))
		})
	}
}

func TestLoadErrorNamesFailingBatch(t *testing.T) {
	adapter := testutil.OpenBookstore(t)
	loader := seeder.NewLoader(adapter, zerolog.Nop())

	records := []models.Record{
		models.Publisher{ID: 1, Name: "Alpha"},
		models.Book{ID: 7, Title: "A", PublisherID: 1},
		models.Book{ID: 9, Title: "B", PublisherID: 4},
	}

	_, err := loader.Load(context.Background(), records)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to insert into book (pk 7..9)")
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
}
