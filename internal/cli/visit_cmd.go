package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/spf13/cobra"
)

func newVisitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Manage monitoring visits",
	}

	cmd.AddCommand(
		newVisitCreateCmd(app),
		newVisitListCmd(app),
		newVisitShowCmd(app),
		newVisitCompleteCmd(app),
		newVisitReviewCmd(app),
	)

	return cmd
}

func newVisitCreateCmd(app *App) *cobra.Command {
	var siteID, visitType, mode, date string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a visit with its checklist and ISF inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidVisitTypes[visitType] {
				return fmt.Errorf("unknown visit type %q (expected SIV, IMV, COV or PSV)", visitType)
			}
			if mode != "" && !domain.ValidVisitModes[mode] {
				return fmt.Errorf("unknown visit mode %q (expected On-site or Remote)", mode)
			}
			when, err := parseDateArg(date)
			if err != nil {
				return err
			}

			v, err := app.Visits.Create(context.Background(), siteID,
				domain.VisitType(visitType), domain.VisitMode(mode), when)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVisitDetail(v))
			return nil
		},
	}

	cmd.Flags().StringVar(&siteID, "site", "", "Site identifier (required)")
	cmd.Flags().StringVar(&visitType, "type", "IMV", "Visit type: SIV, IMV, COV or PSV")
	cmd.Flags().StringVar(&mode, "mode", "", "Visit mode: On-site or Remote")
	cmd.Flags().StringVar(&date, "date", "", "Visit date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("site")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newVisitListCmd(app *App) *cobra.Command {
	var siteID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming visits, or a site's visit history with --site",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				visits []*domain.Visit
				err    error
			)
			if siteID != "" {
				visits, err = app.Visits.ListBySite(ctx, siteID)
			} else {
				visits, err = app.Visits.ListUpcoming(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVisitList(visits))
			return nil
		},
	}

	cmd.Flags().StringVar(&siteID, "site", "", "Show all visits for this site")

	return cmd
}

func newVisitShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <visit-id>",
		Short: "Show a visit's checklist and ISF gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Visits.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVisitDetail(v))
			return nil
		},
	}
}

func newVisitCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <visit-id>",
		Short: "Mark a visit completed regardless of checklist state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Visits.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Visit %s marked completed (%d%% checklist done).\n",
				v.ID, v.ProgressPercent)
			return nil
		},
	}
}

func newVisitReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review <visit-id>",
		Short: "Generate a pre-visit review for a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.Reviews.Analyze(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), analysis)
			return nil
		},
	}
}

// parseDateArg accepts YYYY-MM-DD or full RFC3339.
func parseDateArg(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
