package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edvall/cratrack/internal/review"
	"github.com/edvall/cratrack/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server bundles the HTTP surface over the service layer. Handlers stay
// thin: decode, delegate, map errors.
type Server struct {
	logger     *slog.Logger
	visits     service.VisitService
	tracker    service.TrackerService
	sites      service.SiteService
	reports    service.ReportService
	toolkit    service.ToolkitService
	reviews    *review.Service
	assistant  *review.Assistant
	uploadsDir string
}

func NewServer(
	logger *slog.Logger,
	visits service.VisitService,
	tracker service.TrackerService,
	sites service.SiteService,
	reports service.ReportService,
	toolkit service.ToolkitService,
	reviews *review.Service,
	assistant *review.Assistant,
	uploadsDir string,
) *Server {
	return &Server{
		logger:     logger,
		visits:     visits,
		tracker:    tracker,
		sites:      sites,
		reports:    reports,
		toolkit:    toolkit,
		reviews:    reviews,
		assistant:  assistant,
		uploadsDir: uploadsDir,
	}
}

// Router builds the full route table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/visits", s.handleCreateVisit)
		r.Get("/visits", s.handleListUpcomingVisits)
		r.Get("/visits/{siteID}", s.handleListVisitsBySite)

		r.Route("/visit/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetVisit)
			r.Put("/checklist", s.handleUpdateChecklist)
			r.Put("/isf", s.handleUpdateIsf)
			r.Post("/complete", s.handleCompleteVisit)
			r.Get("/review", s.handleVisitReview)
		})

		r.Post("/wins", s.handleLogWin)
		r.Get("/wins", s.handleListWins)
		r.Post("/timesheet", s.handleLogTimesheet)
		r.Get("/timesheet", s.handleListTimesheet)
		r.Delete("/timesheet/{id}", s.handleDeleteTimesheet)

		r.Post("/sites", s.handleUpsertSite)
		r.Get("/sites", s.handleListSites)
		r.Get("/sites/{number}", s.handleGetSite)
		r.Post("/projects", s.handleCreateProject)
		r.Get("/projects", s.handleListProjects)

		r.Post("/tools/generate", s.handleGenerateTool)
		r.Post("/tools/calculate", s.handleCalculate)
		r.Post("/tools", s.handleSaveTool)
		r.Get("/tools", s.handleListTools)

		r.Get("/reports/dossier", s.handleDossier)
		r.Post("/chat", s.handleChat)
		r.Post("/leads", s.handleCaptureLead)
		r.Post("/upload", s.handleUpload)
	})

	// Stored FileRef URLs point here.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
