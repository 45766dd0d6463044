package core

import (
	"context"
	"errors"
	"time"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/filehost"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/sheets"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/tablestore"
)

// Service wires the row store, table layer and file host into the
// application's business operations. It holds no persistent state: every
// operation re-reads the backing sheet before acting.
type Service struct {
	store  sheets.RowStore
	tables *tablestore.Store
	files  filehost.Host

	companiesSheet string
	publicBaseURL  string

	// now is injectable for deterministic registration timestamps in tests.
	now func() time.Time
}

// Options configures a Service.
type Options struct {
	// CompaniesSheet is the name of the flat company-directory sheet.
	CompaniesSheet string

	// PublicBaseURL is the base for registration links returned from event
	// creation.
	PublicBaseURL string

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewService creates a Service over the given store and file host.
func NewService(store sheets.RowStore, files filehost.Host, opts Options) *Service {
	if opts.CompaniesSheet == "" {
		opts.CompaniesSheet = "companies"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:          store,
		tables:         tablestore.New(store),
		files:          files,
		companiesSheet: opts.CompaniesSheet,
		publicBaseURL:  opts.PublicBaseURL,
		now:            opts.Now,
	}
}

// Init ensures the company directory sheet exists with its header row.
// Safe to call on every startup.
func (s *Service) Init(ctx context.Context) error {
	err := s.store.CreateSheet(ctx, s.companiesSheet)
	if errors.Is(err, sheets.ErrConflict) {
		return nil
	}
	if err != nil {
		return storeErr(err)
	}
	if err := s.store.AppendRows(ctx, s.companiesSheet, [][]string{companyHeader}); err != nil {
		return storeErr(err)
	}
	return nil
}

// cell returns row[i], tolerating rows truncated at trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// statusOrDefault applies the enabled-by-default rule for absent status cells.
func statusOrDefault(status string) string {
	if status == "" {
		return StatusEnabled
	}
	return status
}
