package store

import (
	"time"

	"github.com/google/uuid"
)

// Import records one ingested transaction file.
type Import struct {
	ID         string
	Source     string
	RowCount   int // rows actually inserted (duplicates across imports collapse)
	ImportedAt time.Time
}

// NewImport creates an Import record for the given source file.
func NewImport(source string) *Import {
	return &Import{
		ID:         uuid.NewString(),
		Source:     source,
		ImportedAt: time.Now().UTC(),
	}
}

// Summary describes the current contents of the store.
type Summary struct {
	Imports    int
	Baskets    int
	Items      int       // distinct item identifiers
	Rows       int       // transaction line items
	LastImport time.Time // zero when no imports exist
}
