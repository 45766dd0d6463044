package core

import (
	"context"
	"fmt"
	"time"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/tablestore"
)

// Register runs the public registration pipeline:
//
//  1. validate the submission (no store access on failure)
//  2. resolve the company and reject disabled ones
//  3. resolve the event's stored table name (the path-supplied id may arrive
//     percent-decoded or re-cased)
//  4. reject disabled events
//  5. reject duplicate registrants by exact phone or email match
//  6. append the registrant row with a server-generated timestamp
func (s *Service) Register(ctx context.Context, in RegisterInput) (Registration, error) {
	if err := validateRegister(in); err != nil {
		return Registration{}, err
	}

	company, err := s.companyByName(ctx, in.CompanyName)
	if err != nil {
		return Registration{}, err
	}
	if company.Status == StatusDisabled {
		return Registration{}, fmt.Errorf("%w: company %q is disabled", ErrForbidden, company.Name)
	}

	table, err := s.tables.Find(ctx, company.Name, in.EventID)
	if err != nil {
		return Registration{}, storeErr(err)
	}
	rows, err := s.tables.Read(ctx, company.Name, table.Name)
	if err != nil {
		return Registration{}, storeErr(err)
	}
	if len(rows) == 0 {
		return Registration{}, fmt.Errorf("%w: event %q has no header row", ErrNotFound, table.Name)
	}

	header := rows[0]
	idx := headerIndex(header)

	if _, settings := settingsRow(rows); settings != nil {
		if i, ok := idx[tablestore.ColStatus]; ok &&
			statusOrDefault(cell(settings, i)) == StatusDisabled {
			return Registration{}, fmt.Errorf("%w: event %q is disabled", ErrForbidden, table.Name)
		}
	}

	// Duplicate detection is exact-string on phone and email, no
	// normalization. Case or whitespace variants of the same address pass
	// through; see DESIGN.md before changing this.
	phoneCol, emailCol := idx["Phone"], idx["Email"]
	for _, row := range rows[1:] {
		if tablestore.IsSettingsRow(header, row) {
			continue
		}
		if cell(row, phoneCol) == in.Registrant.Phone || cell(row, emailCol) == in.Registrant.Email {
			return Registration{}, fmt.Errorf("%w: already registered", ErrConflict)
		}
	}

	registeredAt := s.now().UTC().Format(time.RFC3339)

	record := make([]string, len(header))
	set := func(column, value string) {
		if i, ok := idx[column]; ok {
			record[i] = value
		}
	}
	set("Name", in.Registrant.Name)
	set("Phone", in.Registrant.Phone)
	set("Email", in.Registrant.Email)
	set("Gender", in.Registrant.Gender)
	set("College", in.Registrant.College)
	set("Status", in.Registrant.Status)
	set("National ID", in.Registrant.NationalID)
	set("Registration Date", registeredAt)
	// Image and the event metadata columns stay empty: those belong to the
	// settings row.

	if err := s.tables.AppendRow(ctx, company.Name, table.Name, record); err != nil {
		return Registration{}, storeErr(err)
	}

	return Registration{
		Name:             in.Registrant.Name,
		Email:            in.Registrant.Email,
		RegistrationDate: registeredAt,
	}, nil
}
