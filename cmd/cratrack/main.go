package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/edvall/cratrack/internal/cli"
	"github.com/edvall/cratrack/internal/config"
	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/httpapi"
	"github.com/edvall/cratrack/internal/llm"
	"github.com/edvall/cratrack/internal/metrics"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/review"
	"github.com/edvall/cratrack/internal/sanitize"
	"github.com/edvall/cratrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	visitRepo := repository.NewSQLiteVisitRepo(database)
	achievementRepo := repository.NewSQLiteAchievementRepo(database)
	timesheetRepo := repository.NewSQLiteTimesheetRepo(database)
	siteRepo := repository.NewSQLiteSiteRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	toolRepo := repository.NewSQLiteToolRepo(database)
	leadRepo := repository.NewSQLiteLeadRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	sanitizer := sanitize.New(cfg.ProprietaryTerms)
	m := metrics.New()

	logger := newLogger()

	// Wire LLM client (only when enabled; services fall back offline otherwise)
	var llmClient llm.LLMClient
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(cfg.LLM, observer)
	}

	// Wire services
	visitSvc := service.NewVisitService(visitRepo, m, service.NewLogUseCaseObserver(os.Stderr))
	trackerSvc := service.NewTrackerService(achievementRepo, timesheetRepo, uow, sanitizer, m)
	siteSvc := service.NewSiteService(siteRepo, projectRepo)
	reportSvc := service.NewReportService(visitRepo, achievementRepo, timesheetRepo)
	toolkitSvc := service.NewToolkitService(toolRepo)
	reviewSvc := review.NewService(visitRepo, llmClient, sanitizer, m)
	assistant := review.NewAssistant(llmClient, leadRepo)

	server := httpapi.NewServer(logger, visitSvc, trackerSvc, siteSvc,
		reportSvc, toolkitSvc, reviewSvc, assistant, cfg.UploadsDir)

	app := &cli.App{
		Visits:  visitSvc,
		Tracker: trackerSvc,
		Sites:   siteSvc,
		Reports: reportSvc,
		Toolkit: toolkitSvc,
		Reviews: reviewSvc,
	}

	app.Serve = func(ctx context.Context, addr string) error {
		if addr == "" {
			addr = cfg.Addr
		}
		logger.Info("listening", "addr", addr)
		srv := &http.Server{Addr: addr, Handler: server.Router()}
		go func() {
			<-ctx.Done()
			srv.Shutdown(context.Background())
		}()
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds a text slog logger. Debug level when stderr is a terminal,
// info otherwise.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
