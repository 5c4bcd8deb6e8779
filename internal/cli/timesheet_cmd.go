package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/spf13/cobra"
)

func newTimesheetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Track hours against projects",
	}

	cmd.AddCommand(
		newTimesheetLogCmd(app),
		newTimesheetListCmd(app),
		newTimesheetDeleteCmd(app),
	)

	return cmd
}

func newTimesheetLogCmd(app *App) *cobra.Command {
	var projectID, activity, notes string
	var hours float64
	var asWin bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log hours, optionally recording a linked win",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := &domain.TimesheetEntry{
				Date:         time.Now().UTC(),
				ProjectID:    projectID,
				ActivityType: activity,
				Hours:        hours,
				Notes:        notes,
			}
			if err := app.Tracker.LogTimesheet(context.Background(), entry, asWin); err != nil {
				return err
			}

			out := fmt.Sprintf("Logged %.1f hours of %s", entry.Hours, entry.ActivityType)
			if entry.AchievementID != "" {
				out += " (win recorded)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project to bill against")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity type, e.g. Monitoring (required)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes (sanitized before storage)")
	cmd.Flags().BoolVar(&asWin, "as-win", false, "Also log this entry as a win")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newTimesheetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List timesheet entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Tracker.ListTimesheet(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimesheet(entries))
			return nil
		},
	}
}

func newTimesheetDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a timesheet entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.DeleteTimesheet(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entry deleted.")
			return nil
		},
	}
}
