package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/go-chi/chi/v5"
)

type winRequest struct {
	Date        string `json:"date"`
	ProjectID   string `json:"project_id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Impact      string `json:"impact"`
	ReviewReady bool   `json:"review_ready"`
}

type winResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ProjectID   string `json:"project_id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Impact      string `json:"impact"`
	ReviewReady bool   `json:"review_ready"`
}

func toWinResponse(a *domain.SiteAchievement) winResponse {
	return winResponse{
		ID:          a.ID,
		Date:        a.Date.Format(time.RFC3339),
		ProjectID:   a.ProjectID,
		Category:    a.Category,
		Title:       a.Title,
		Impact:      a.Impact,
		ReviewReady: a.ReviewReady,
	}
}

func (s *Server) handleLogWin(w http.ResponseWriter, r *http.Request) {
	var req winRequest
	if !decodeBody(w, r, &req) {
		return
	}
	win := &domain.SiteAchievement{
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Title:       req.Title,
		Impact:      req.Impact,
		ReviewReady: req.ReviewReady,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		win.Date = date
	}
	if err := s.tracker.LogWin(r.Context(), win); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWinResponse(win))
}

func (s *Server) handleListWins(w http.ResponseWriter, r *http.Request) {
	wins, err := s.tracker.ListWins(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]winResponse, 0, len(wins))
	for _, win := range wins {
		out = append(out, toWinResponse(win))
	}
	writeJSON(w, http.StatusOK, out)
}

type timesheetRequest struct {
	Date         string  `json:"date"`
	ProjectID    string  `json:"project_id"`
	ActivityType string  `json:"activity_type"`
	Hours        float64 `json:"hours"`
	Notes        string  `json:"notes"`
	AsWin        bool    `json:"as_win"`
}

type timesheetResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	ProjectID     string  `json:"project_id"`
	ActivityType  string  `json:"activity_type"`
	Hours         float64 `json:"hours"`
	AchievementID string  `json:"achievement_id,omitempty"`
	Notes         string  `json:"notes"`
}

func toTimesheetResponse(e *domain.TimesheetEntry) timesheetResponse {
	return timesheetResponse{
		ID:            e.ID,
		Date:          e.Date.Format(time.RFC3339),
		ProjectID:     e.ProjectID,
		ActivityType:  e.ActivityType,
		Hours:         e.Hours,
		AchievementID: e.AchievementID,
		Notes:         e.Notes,
	}
}

func (s *Server) handleLogTimesheet(w http.ResponseWriter, r *http.Request) {
	var req timesheetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entry := &domain.TimesheetEntry{
		ProjectID:    req.ProjectID,
		ActivityType: req.ActivityType,
		Hours:        req.Hours,
		Notes:        req.Notes,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		entry.Date = date
	}
	if err := s.tracker.LogTimesheet(r.Context(), entry, req.AsWin); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimesheetResponse(entry))
}

func (s *Server) handleListTimesheet(w http.ResponseWriter, r *http.Request) {
	entries, err := s.tracker.ListTimesheet(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]timesheetResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTimesheetResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteTimesheet(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteTimesheet(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, domain.ErrValidation)
	}
	return t, nil
}
