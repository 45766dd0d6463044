package core

import (
	"errors"
	"fmt"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/filehost"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/sheets"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/tablestore"
)

// Error taxonomy surfaced to the web layer. Every service method returns one
// of these sentinels wrapped with operation context; the core never retries,
// a failed store round-trip propagates immediately.
var (
	// ErrInvalidArgument marks malformed or missing input, caught before any
	// store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks an absent company, event or sheet.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks duplicate usernames, event names or registrants.
	ErrConflict = errors.New("conflict")

	// ErrForbidden marks disabled companies/events and rejected credentials.
	ErrForbidden = errors.New("forbidden")

	// ErrStoreUnavailable marks a failed backing service call.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// invalidf wraps ErrInvalidArgument with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// storeErr translates row-store and table-layer failures into the service
// taxonomy, keeping the original error in the chain.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sheets.ErrNotFound), errors.Is(err, tablestore.ErrNotFound), errors.Is(err, filehost.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, sheets.ErrConflict), errors.Is(err, tablestore.ErrExists):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
