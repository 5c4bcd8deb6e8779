package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/spf13/cobra"
)

func newWinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "win",
		Short: "Log and list professional wins",
	}

	cmd.AddCommand(newWinLogCmd(app), newWinListCmd(app))

	return cmd
}

func newWinLogCmd(app *App) *cobra.Command {
	var projectID, category, title, impact string
	var reviewReady bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a win (free text is sanitized before storage)",
		RunE: func(cmd *cobra.Command, args []string) error {
			win := &domain.SiteAchievement{
				Date:        time.Now().UTC(),
				ProjectID:   projectID,
				Category:    category,
				Title:       title,
				Impact:      impact,
				ReviewReady: reviewReady,
			}
			if err := app.Tracker.LogWin(context.Background(), win); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged win %s: %s\n", win.ID, win.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project the win belongs to")
	cmd.Flags().StringVar(&category, "category", "General Operations", "Win category")
	cmd.Flags().StringVar(&title, "title", "", "Short description (required)")
	cmd.Flags().StringVar(&impact, "impact", "", "Impact statement")
	cmd.Flags().BoolVar(&reviewReady, "review-ready", false, "Flag for the next performance review")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newWinListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged wins, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			wins, err := app.Tracker.ListWins(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWinList(wins))
			return nil
		},
	}
}
