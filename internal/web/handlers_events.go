package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/core"
	"github.com/go-chi/chi/v5"
)

// handleListEvents returns a company's events. The listing is public: the
// registration page needs event metadata without credentials.
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.service.ListEvents(r.Context(), chi.URLParam(r, "companyName"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// handleCreateEvent creates an event from a multipart form with an optional
// banner image. Requires admin or the owning company's credentials.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "companyName")
	if _, err := s.authorizeCompany(r, companyName); err != nil {
		respondError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	imageName, imageData, err := formFile(r, "image")
	if err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.service.CreateEvent(r.Context(), core.CreateEventInput{
		CompanyName: companyName,
		EventName:   r.FormValue("eventName"),
		Description: r.FormValue("eventDescription"),
		Date:        r.FormValue("eventDate"),
		ImageName:   imageName,
		ImageData:   imageData,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleSetEventStatus toggles registration for an event.
func (s *Server) handleSetEventStatus(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "companyName")
	if _, err := s.authorizeCompany(r, companyName); err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, fmt.Errorf("%w: invalid request body", core.ErrInvalidArgument))
		return
	}

	if err := s.service.SetEventStatus(r.Context(), companyName, chi.URLParam(r, "eventID"), req.Status); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// handleDeleteEvent removes an event and its registrations.
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "companyName")
	if _, err := s.authorizeCompany(r, companyName); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.DeleteEvent(r.Context(), companyName, chi.URLParam(r, "eventID")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListRegistrations returns an event's registrants. The National ID
// column appears only for admin callers. ?format=csv or ?format=xlsx streams
// a file download instead of JSON.
func (s *Server) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "companyName")
	eventID := chi.URLParam(r, "eventID")

	isAdmin, err := s.authorizeCompany(r, companyName)
	if err != nil {
		respondError(w, r, err)
		return
	}

	view, err := s.service.ListRegistrations(r.Context(), companyName, eventID, isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "":
		respondJSON(w, http.StatusOK, view)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", eventID+".csv"))
		if err := core.WriteCSV(w, view); err != nil {
			respondError(w, r, err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", eventID+".xlsx"))
		if err := core.WriteXLSX(w, view); err != nil {
			respondError(w, r, err)
		}
	default:
		respondError(w, r, fmt.Errorf("%w: unknown format %q", core.ErrInvalidArgument, r.URL.Query().Get("format")))
	}
}
