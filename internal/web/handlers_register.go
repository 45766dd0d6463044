package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/core"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/logging"
	"github.com/go-chi/chi/v5"
)

// handleRegister accepts a public registration submission.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var registrant core.Registrant
	if err := json.NewDecoder(r.Body).Decode(&registrant); err != nil {
		respondError(w, r, fmt.Errorf("%w: invalid request body", core.ErrInvalidArgument))
		return
	}

	in := core.RegisterInput{
		CompanyName: chi.URLParam(r, "companyName"),
		EventID:     chi.URLParam(r, "eventID"),
		Registrant:  registrant,
	}

	registration, err := s.service.Register(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("registration stored",
		"company", in.CompanyName,
		"event", in.EventID,
	)
	respondJSON(w, http.StatusCreated, registration)
}
