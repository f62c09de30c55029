package seeder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Rana718/bookstock/internal/models"
)

type decodeFunc func(pk int64, fields json.RawMessage) (models.Record, error)

var registry = map[models.Model]decodeFunc{
	models.PublisherModel: decodeInto(func(p *models.Publisher, pk int64) models.Record { p.ID = pk; return *p }),
	models.BookModel:      decodeInto(func(b *models.Book, pk int64) models.Record { b.ID = pk; return *b }),
	models.ShopModel:      decodeInto(func(s *models.Shop, pk int64) models.Record { s.ID = pk; return *s }),
	models.StockModel:     decodeInto(func(s *models.Stock, pk int64) models.Record { s.ID = pk; return *s }),
	models.SaleModel:      decodeInto(func(s *models.Sale, pk int64) models.Record { s.ID = pk; return *s }),
}

func decodeInto[T any](build func(*T, int64) models.Record) decodeFunc {
	return func(pk int64, fields json.RawMessage) (models.Record, error) {
		var v T
		dec := json.NewDecoder(bytes.NewReader(fields))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return build(&v, pk), nil
	}
}

// Decode reads a seed document and returns its records in file order.
func Decode(r io.Reader) ([]models.Record, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	records := make([]models.Record, 0, len(entries))
	for i, entry := range entries {
		build, ok := registry[entry.Model]
		if !ok {
			return nil, &DecodeError{Index: i, Model: entry.Model, Err: ErrUnknownModel}
		}
		if entry.PK == nil {
			return nil, &DecodeError{Index: i, Model: entry.Model, Err: errors.New("pk is missing")}
		}
		if len(entry.Fields) == 0 || string(entry.Fields) == "null" {
			return nil, &DecodeError{Index: i, Model: entry.Model, Err: errors.New("fields are missing")}
		}

		record, err := build(*entry.PK, entry.Fields)
		if err != nil {
			return nil, &DecodeError{Index: i, Model: entry.Model, Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}

func ReadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}
