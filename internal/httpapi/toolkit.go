package httpapi

import (
	"net/http"
	"time"

	"github.com/edvall/cratrack/internal/domain"
)

type toolResponse struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Config  domain.ToolConfig `json:"config"`
	AddedAt string            `json:"added_at"`
}

func toToolResponse(t *domain.Tool) toolResponse {
	return toolResponse{
		ID:      t.ID,
		Name:    t.Name,
		Type:    t.Type,
		Config:  t.Config,
		AddedAt: t.AddedAt.Format(time.RFC3339),
	}
}

type generateToolRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleGenerateTool(w http.ResponseWriter, r *http.Request) {
	var req generateToolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tool, err := s.toolkit.GenerateTool(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(tool))
}

type calculateRequest struct {
	Formula string             `json:"formula"`
	Inputs  map[string]float64 `json:"inputs"`
}

type calculateResponse struct {
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := s.toolkit.Calculate(r.Context(), req.Formula, req.Inputs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calculateResponse{
		Formula: result.Formula,
		Value:   result.Value,
		Unit:    result.Unit,
	})
}

type saveToolRequest struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Config domain.ToolConfig `json:"config"`
}

func (s *Server) handleSaveTool(w http.ResponseWriter, r *http.Request) {
	var req saveToolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tool := &domain.Tool{
		ID:     req.ID,
		Name:   req.Name,
		Type:   req.Type,
		Config: req.Config,
	}
	if err := s.toolkit.SaveTool(r.Context(), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toToolResponse(tool))
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := s.toolkit.ListTools(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]toolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, toToolResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}
