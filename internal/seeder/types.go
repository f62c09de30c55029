package seeder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rana718/bookstock/internal/models"
)

var (
	// ErrDataAlreadyPresent means the batch hit a uniqueness conflict and was
	// rolled back as a whole, typically because a previous run loaded it.
	ErrDataAlreadyPresent = errors.New("data already present in the database")

	ErrUnknownModel = errors.New("unknown model")
)

const DefaultBatchSize = 100

// Entry is one element of a seed file.
type Entry struct {
	Model  models.Model    `json:"model"`
	PK     *int64          `json:"pk"`
	Fields json.RawMessage `json:"fields"`
}

// DecodeError reports a seed entry that cannot become a typed record.
// Index is -1 when the file itself is not a JSON array of entries.
type DecodeError struct {
	Index int
	Model models.Model
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid seed data: %v", e.Err)
	}
	return fmt.Sprintf("invalid seed entry #%d (model %q): %v", e.Index, e.Model, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type LoadResult struct {
	Inserted map[string]int
	Total    int
}
