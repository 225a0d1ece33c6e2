// Package store persists submission records. The SQLite implementation is
// the only one in tree; the interface keeps the document-store seam narrow
// so handlers and tests do not touch SQL.
package store

import (
	"context"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// RecordStore appends one immutable submission record per completed
// inspection. Add assigns and returns the record ID. A failed Add leaves
// the caller's record intact for a retry.
type RecordStore interface {
	Add(ctx context.Context, record model.SubmissionRecord) (id string, err error)
	Get(ctx context.Context, id string) (model.SubmissionRecord, error)
}
