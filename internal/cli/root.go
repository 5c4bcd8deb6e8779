package cli

import (
	"context"

	"github.com/edvall/cratrack/internal/review"
	"github.com/edvall/cratrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Visits  service.VisitService
	Tracker service.TrackerService
	Sites   service.SiteService
	Reports service.ReportService
	Toolkit service.ToolkitService
	Reviews *review.Service

	// Serve starts the HTTP API on the given address. Wired by main so the
	// CLI package does not own server assembly.
	Serve func(ctx context.Context, addr string) error
}

// NewRootCmd creates the top-level "cratrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cratrack",
		Short: "Monitoring visit tracker and site logistics companion",
	}

	root.AddCommand(
		newServeCmd(app),
		newVisitCmd(app),
		newWinCmd(app),
		newTimesheetCmd(app),
		newSiteCmd(app),
		newProjectCmd(app),
		newDossierCmd(app),
		newToolCmd(app),
	)

	return root
}
