package httpapi

import (
	"net/http"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/go-chi/chi/v5"
)

type siteRequest struct {
	Number         string `json:"number"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
	BestHotel      string `json:"best_hotel"`
	BestRestaurant string `json:"best_restaurant"`
	ParkingSpot    string `json:"parking_spot"`
	DoorCode       string `json:"door_code"`
	PrimaryContact string `json:"primary_contact"`
}

type siteResponse struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
	BestHotel      string `json:"best_hotel"`
	BestRestaurant string `json:"best_restaurant"`
	ParkingSpot    string `json:"parking_spot"`
	DoorCode       string `json:"door_code"`
	PrimaryContact string `json:"primary_contact"`
}

func toSiteResponse(s *domain.Site) siteResponse {
	return siteResponse{
		ID:             s.ID,
		Number:         s.Number,
		Name:           s.Name,
		Location:       s.Location,
		Notes:          s.Notes,
		BestHotel:      s.BestHotel,
		BestRestaurant: s.BestRestaurant,
		ParkingSpot:    s.ParkingSpot,
		DoorCode:       s.DoorCode,
		PrimaryContact: s.PrimaryContact,
	}
}

func (s *Server) handleUpsertSite(w http.ResponseWriter, r *http.Request) {
	var req siteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	site := &domain.Site{
		Number:         req.Number,
		Name:           req.Name,
		Location:       req.Location,
		Notes:          req.Notes,
		BestHotel:      req.BestHotel,
		BestRestaurant: req.BestRestaurant,
		ParkingSpot:    req.ParkingSpot,
		DoorCode:       req.DoorCode,
		PrimaryContact: req.PrimaryContact,
	}
	saved, err := s.sites.Upsert(r.Context(), site)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSiteResponse(saved))
}

func (s *Server) handleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.sites.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]siteResponse, 0, len(sites))
	for _, site := range sites {
		out = append(out, toSiteResponse(site))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSite(w http.ResponseWriter, r *http.Request) {
	site, err := s.sites.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSiteResponse(site))
}

type projectRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type projectResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	project, err := s.sites.CreateProject(r.Context(), req.Code, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectResponse{ID: project.ID, Code: project.Code, Name: project.Name})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.sites.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectResponse{ID: p.ID, Code: p.Code, Name: p.Name})
	}
	writeJSON(w, http.StatusOK, out)
}
