package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newDossierCmd(app *App) *cobra.Command {
	now := time.Now().UTC()
	var year, month int

	cmd := &cobra.Command{
		Use:   "dossier",
		Short: "Render the monthly performance dossier as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}
			report, err := app.Reports.MonthlyDossier(context.Background(), year, time.Month(month))
			if err != nil {
				return err
			}
			// Style only for a terminal; piped output stays raw markdown.
			if isatty.IsTerminal(os.Stdout.Fd()) {
				report = formatter.StyleMarkdown(report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", now.Year(), "Reporting year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Reporting month (1-12)")

	return cmd
}
