package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newToolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Clinical calculator toolkit",
	}

	cmd.AddCommand(newToolGenerateCmd(app), newToolCalcCmd(app), newToolListCmd(app))

	return cmd
}

func newToolGenerateCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "generate <query>",
		Short: "Generate a calculator from a description, e.g. \"bsa calculator\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tool, err := app.Toolkit.GenerateTool(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", formatter.Bold(tool.Name), tool.Config.Formula)
			for _, in := range tool.Config.Inputs {
				fmt.Fprintf(out, "  %s %s\n", formatter.Dim(in.Name+":"), in.Label)
			}
			if save {
				if err := app.Toolkit.SaveTool(ctx, tool); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved to toolkit as %s\n", tool.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the generated tool to the toolkit")

	return cmd
}

func newToolCalcCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <formula> [name=value ...]",
		Short: "Evaluate a formula, e.g. calc calvert target_auc=5 gfr=60",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make(map[string]float64, len(args)-1)
			for _, arg := range args[1:] {
				name, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid input %q (expected name=value)", arg)
				}
				value, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid value for %s: %q", name, raw)
				}
				inputs[name] = value
			}

			result, err := app.Toolkit.Calculate(context.Background(), args[0], inputs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", result.Value, result.Unit)
			return nil
		},
	}
}

func newToolListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := app.Toolkit.ListTools(context.Background())
			if err != nil {
				return err
			}
			if len(tools) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Toolkit is empty."))
				return nil
			}
			rows := make([][]string, 0, len(tools))
			for _, tool := range tools {
				rows = append(rows, []string{tool.Name, tool.Type, tool.Config.Formula, tool.Config.Unit})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"Name", "Type", "Formula", "Unit"}, rows))
			return nil
		},
	}
}
