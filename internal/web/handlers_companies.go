package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/core"
	mw "github.com/RamezHany/test-form-1-lod-logo-main/internal/web/middleware"
	"github.com/go-chi/chi/v5"
)

// maxImageSize caps the accepted multipart body: images are logos and
// banners, not photo archives.
const maxImageSize = 10 << 20

// formFile reads an optional uploaded file from a multipart form.
// Returns empty values when the field is absent or the form is not multipart.
func formFile(r *http.Request, field string) (name string, data []byte, err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("%w: read %s upload: %v", core.ErrInvalidArgument, field, err)
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("%w: read %s upload: %v", core.ErrInvalidArgument, field, err)
	}
	if len(data) > maxImageSize {
		return "", nil, fmt.Errorf("%w: %s upload exceeds %d bytes", core.ErrInvalidArgument, field, maxImageSize)
	}
	return header.Filename, data, nil
}

// authorizeCompany checks that the caller may act on companyName's events:
// either the admin, or the company itself via its own credentials.
// The returned flag reports admin access.
func (s *Server) authorizeCompany(r *http.Request, companyName string) (bool, error) {
	if mw.IsAdmin(r, &s.cfg.Admin) {
		return true, nil
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		return false, errUnauthorized
	}
	company, err := s.service.Authenticate(r.Context(), username, password)
	if err != nil {
		return false, err
	}
	if !strings.EqualFold(strings.TrimSpace(company.Name), strings.TrimSpace(companyName)) {
		return false, fmt.Errorf("%w: credentials do not match company %q", core.ErrForbidden, companyName)
	}
	return false, nil
}

// handleListCompanies returns the full company directory.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.service.ListCompanies(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, companies)
}

// handleCreateCompany creates a company from a multipart form with an
// optional logo image.
func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)

	imageName, imageData, err := formFile(r, "image")
	if err != nil {
		respondError(w, r, err)
		return
	}

	company, err := s.service.CreateCompany(r.Context(), core.CreateCompanyInput{
		Name:      r.FormValue("name"),
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		ImageName: imageName,
		ImageData: imageData,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

// handleUpdateCompany applies a partial company update.
func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)

	imageName, imageData, err := formFile(r, "image")
	if err != nil {
		respondError(w, r, err)
		return
	}

	company, err := s.service.UpdateCompany(r.Context(), core.UpdateCompanyInput{
		ID:        chi.URLParam(r, "id"),
		Name:      r.FormValue("name"),
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		Status:    r.FormValue("status"),
		ImageName: imageName,
		ImageData: imageData,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// handleLogin verifies company credentials and returns the company record.
// Session issuance is the caller's concern; this endpoint only answers
// whether the credentials are valid and the company is enabled.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, fmt.Errorf("%w: invalid request body", core.ErrInvalidArgument))
		return
	}

	company, err := s.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}
