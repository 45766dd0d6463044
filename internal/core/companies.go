package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// companyRecord pairs a parsed directory row with its absolute sheet index.
type companyRecord struct {
	Company
	passwordHash string
	rowIndex     int64
}

func parseCompanyRow(row []string, index int64) companyRecord {
	return companyRecord{
		Company: Company{
			ID:       cell(row, colCompanyID),
			Name:     cell(row, colCompanyName),
			Username: cell(row, colCompanyUsername),
			Image:    cell(row, colCompanyImage),
			Status:   statusOrDefault(cell(row, colCompanyStatus)),
		},
		passwordHash: cell(row, colCompanyPassword),
		rowIndex:     index,
	}
}

// readCompanies returns all directory records, header row excluded.
func (s *Service) readCompanies(ctx context.Context) ([]companyRecord, error) {
	rows, err := s.store.ReadSheet(ctx, s.companiesSheet)
	if err != nil {
		return nil, storeErr(err)
	}
	records := make([]companyRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if rec := parseCompanyRow(row, int64(i)); rec.ID != "" {
			records = append(records, rec)
		}
	}
	return records, nil
}

// companyByName resolves a company by display name, exact match first and
// trimmed case-insensitive as fallback. The fallback mirrors table lookup:
// company names travel as URL path segments.
func (s *Service) companyByName(ctx context.Context, name string) (companyRecord, error) {
	records, err := s.readCompanies(ctx)
	if err != nil {
		return companyRecord{}, err
	}
	for _, rec := range records {
		if rec.Name == name {
			return rec, nil
		}
	}
	folded := strings.ToLower(strings.TrimSpace(name))
	for _, rec := range records {
		if strings.ToLower(strings.TrimSpace(rec.Name)) == folded {
			return rec, nil
		}
	}
	return companyRecord{}, fmt.Errorf("%w: company %q", ErrNotFound, name)
}

// ListCompanies returns every company in the directory.
func (s *Service) ListCompanies(ctx context.Context) ([]Company, error) {
	records, err := s.readCompanies(ctx)
	if err != nil {
		return nil, err
	}
	companies := make([]Company, len(records))
	for i, rec := range records {
		companies[i] = rec.Company
	}
	return companies, nil
}

// CreateCompany adds a company to the directory, hashes its password,
// optionally commits an uploaded image, and creates the company's own event
// sheet. The username must be unique (case-sensitive).
func (s *Service) CreateCompany(ctx context.Context, in CreateCompanyInput) (Company, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Company{}, invalidf("name is required")
	}
	if strings.TrimSpace(in.Username) == "" {
		return Company{}, invalidf("username is required")
	}
	if len(in.Password) < 8 {
		return Company{}, invalidf("password must be at least 8 characters")
	}

	records, err := s.readCompanies(ctx)
	if err != nil {
		return Company{}, err
	}
	for _, rec := range records {
		if rec.Username == in.Username {
			return Company{}, fmt.Errorf("%w: username %q already taken", ErrConflict, in.Username)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Company{}, fmt.Errorf("hash password: %w", err)
	}

	imageURL := ""
	if len(in.ImageData) > 0 {
		imageURL, err = s.files.Upload(ctx, in.Name, in.ImageName, in.ImageData)
		if err != nil {
			return Company{}, storeErr(err)
		}
	}

	company := Company{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Username: in.Username,
		Image:    imageURL,
		Status:   StatusEnabled,
	}
	row := []string{company.ID, company.Name, company.Username, string(hash), company.Image, company.Status}
	if err := s.store.AppendRows(ctx, s.companiesSheet, [][]string{row}); err != nil {
		return Company{}, storeErr(err)
	}

	// Each company owns one multi-table sheet named after its display name.
	if err := s.store.CreateSheet(ctx, company.Name); err != nil {
		return Company{}, storeErr(err)
	}

	return company, nil
}

// UpdateCompany applies a partial update. A name change renames the
// company's event sheet; a username change is rechecked for collisions
// against all other companies.
func (s *Service) UpdateCompany(ctx context.Context, in UpdateCompanyInput) (Company, error) {
	if in.ID == "" {
		return Company{}, invalidf("id is required")
	}
	if in.Status != "" && in.Status != StatusEnabled && in.Status != StatusDisabled {
		return Company{}, invalidf("status must be %q or %q", StatusEnabled, StatusDisabled)
	}

	records, err := s.readCompanies(ctx)
	if err != nil {
		return Company{}, err
	}

	var current *companyRecord
	for i := range records {
		if records[i].ID == in.ID {
			current = &records[i]
			break
		}
	}
	if current == nil {
		return Company{}, fmt.Errorf("%w: company id %q", ErrNotFound, in.ID)
	}

	if in.Username != "" && in.Username != current.Username {
		for _, rec := range records {
			if rec.ID != in.ID && rec.Username == in.Username {
				return Company{}, fmt.Errorf("%w: username %q already taken", ErrConflict, in.Username)
			}
		}
		current.Username = in.Username
	}

	if in.Password != "" {
		if len(in.Password) < 8 {
			return Company{}, invalidf("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return Company{}, fmt.Errorf("hash password: %w", err)
		}
		current.passwordHash = string(hash)
	}

	if len(in.ImageData) > 0 {
		imageURL, err := s.files.Upload(ctx, current.Name, in.ImageName, in.ImageData)
		if err != nil {
			return Company{}, storeErr(err)
		}
		current.Image = imageURL
	}

	if in.Status != "" {
		current.Status = in.Status
	}

	if in.Name != "" && in.Name != current.Name {
		if err := s.store.RenameSheet(ctx, current.Name, in.Name); err != nil {
			return Company{}, storeErr(err)
		}
		current.Name = in.Name
	}

	row := []string{current.ID, current.Name, current.Username, current.passwordHash, current.Image, current.Status}
	if err := s.store.UpdateRow(ctx, s.companiesSheet, current.rowIndex, row); err != nil {
		return Company{}, storeErr(err)
	}

	return current.Company, nil
}

// Authenticate verifies a company's credentials. A disabled company is
// rejected with ErrForbidden, never ErrNotFound: the account exists, it is
// just not allowed in.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Company, error) {
	records, err := s.readCompanies(ctx)
	if err != nil {
		return Company{}, err
	}
	for _, rec := range records {
		if rec.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(rec.passwordHash), []byte(password)); err != nil {
			return Company{}, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		if rec.Status == StatusDisabled {
			return Company{}, fmt.Errorf("%w: company %q is disabled", ErrForbidden, rec.Name)
		}
		return rec.Company, nil
	}
	return Company{}, fmt.Errorf("%w: username %q", ErrNotFound, username)
}
