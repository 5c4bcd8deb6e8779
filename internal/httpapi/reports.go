package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleDossier(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		writeError(w, fmt.Errorf("invalid year: %w", domain.ErrValidation))
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, fmt.Errorf("invalid month: %w", domain.ErrValidation))
		return
	}

	md, err := s.reports.MonthlyDossier(r.Context(), year, time.Month(month))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(md))
}

func (s *Server) handleVisitReview(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.reviews.Analyze(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	reply, err := s.assistant.Chat(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type leadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleCaptureLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := s.assistant.CaptureLead(r.Context(), req.Name, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
