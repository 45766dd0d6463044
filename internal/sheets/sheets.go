// Package sheets provides the row store backing the application: a named,
// ordered sequence of string-cell rows per sheet. The production
// implementation talks to a Google Sheets document; an in-memory
// implementation backs tests and local development.
//
// The store is deliberately primitive. There is no caching, no transaction
// and no partial-row patching: every read fetches the full sheet and every
// write is a single synchronous round-trip.
package sheets

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the named sheet does not exist.
	ErrNotFound = errors.New("sheets: sheet not found")

	// ErrConflict is returned when creating a sheet whose name is taken.
	ErrConflict = errors.New("sheets: sheet already exists")

	// ErrUnavailable is returned when the backing service call failed.
	ErrUnavailable = errors.New("sheets: store unavailable")
)

// RowStore is the minimal row-level contract the application builds on.
//
// Row indexes are 0-based and header-inclusive. AppendRows is the only
// concurrency-safe write: the backing service places the rows after the last
// populated row regardless of what concurrent writers observed. InsertRows
// and DeleteRows shift subsequent rows and require external serialization
// against concurrent writers on the same sheet.
type RowStore interface {
	// ReadSheet returns every row of the named sheet. Trailing empty cells
	// may be absent; callers must index defensively.
	ReadSheet(ctx context.Context, sheet string) ([][]string, error)

	// AppendRows writes rows after the last populated row of the sheet.
	AppendRows(ctx context.Context, sheet string, rows [][]string) error

	// InsertRows inserts rows so that they occupy indexes
	// [index, index+len(rows)), shifting existing rows down.
	InsertRows(ctx context.Context, sheet string, index int64, rows [][]string) error

	// UpdateRow overwrites the row at the given index entirely.
	UpdateRow(ctx context.Context, sheet string, index int64, row []string) error

	// CreateSheet adds a new, empty sheet.
	CreateSheet(ctx context.Context, sheet string) error

	// RenameSheet changes a sheet's name, keeping its contents.
	RenameSheet(ctx context.Context, oldName, newName string) error

	// DeleteRows removes the half-open row range [start, end).
	DeleteRows(ctx context.Context, sheet string, start, end int64) error
}
