package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/go-chi/chi/v5"
)

type visitResponse struct {
	ID              string                 `json:"id"`
	SiteID          string                 `json:"site_id"`
	Type            string                 `json:"type"`
	Mode            string                 `json:"mode"`
	Date            string                 `json:"date"`
	Status          string                 `json:"status"`
	Checklist       []domain.ChecklistItem `json:"checklist"`
	Isf             []domain.IsfItem       `json:"isf"`
	ProgressPercent int                    `json:"progress_percent"`
}

func toVisitResponse(v *domain.Visit) visitResponse {
	return visitResponse{
		ID:              v.ID,
		SiteID:          v.SiteID,
		Type:            string(v.Type),
		Mode:            string(v.Mode),
		Date:            v.Date.Format(time.RFC3339),
		Status:          string(v.Status),
		Checklist:       v.Checklist,
		Isf:             v.Isf,
		ProgressPercent: v.ProgressPercent,
	}
}

func toVisitResponses(visits []*domain.Visit) []visitResponse {
	out := make([]visitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, toVisitResponse(v))
	}
	return out
}

// createVisitRequest mirrors the documented wire shape: camelCase siteId on
// input, snake_case row fields on output.
type createVisitRequest struct {
	SiteID string `json:"siteId"`
	Type   string `json:"type"`
	Mode   string `json:"mode"`
	Date   string `json:"date"`
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req createVisitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	// Enum validation happens at this boundary; the engine below accepts any
	// type and falls back to the default template.
	if !domain.ValidVisitTypes[req.Type] {
		writeError(w, fmt.Errorf("invalid visit type %q: %w", req.Type, domain.ErrValidation))
		return
	}
	if req.Mode != "" && !domain.ValidVisitModes[req.Mode] {
		writeError(w, fmt.Errorf("invalid visit mode %q: %w", req.Mode, domain.ErrValidation))
		return
	}
	// Both RFC3339 and date-only input are accepted.
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	visit, err := s.visits.Create(r.Context(), req.SiteID,
		domain.VisitType(req.Type), domain.VisitMode(req.Mode), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVisitResponse(visit))
}

func (s *Server) handleListUpcomingVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := s.visits.ListUpcoming(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponses(visits))
}

func (s *Server) handleListVisitsBySite(w http.ResponseWriter, r *http.Request) {
	visits, err := s.visits.ListBySite(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponses(visits))
}

func (s *Server) handleGetVisit(w http.ResponseWriter, r *http.Request) {
	visit, err := s.visits.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponse(visit))
}

type updateChecklistRequest struct {
	Items []domain.ChecklistItem `json:"items"`
}

func (s *Server) handleUpdateChecklist(w http.ResponseWriter, r *http.Request) {
	var req updateChecklistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	visit, err := s.visits.UpdateChecklist(r.Context(), chi.URLParam(r, "id"), req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponse(visit))
}

type updateIsfRequest struct {
	Items []domain.IsfItem `json:"items"`
}

func (s *Server) handleUpdateIsf(w http.ResponseWriter, r *http.Request) {
	var req updateIsfRequest
	if !decodeBody(w, r, &req) {
		return
	}
	visit, err := s.visits.UpdateIsf(r.Context(), chi.URLParam(r, "id"), req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponse(visit))
}

func (s *Server) handleCompleteVisit(w http.ResponseWriter, r *http.Request) {
	visit, err := s.visits.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVisitResponse(visit))
}
