package cli

import (
	"context"
	"fmt"

	"github.com/edvall/cratrack/internal/cli/formatter"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/spf13/cobra"
)

func newSiteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage site logistics profiles",
	}

	cmd.AddCommand(newSiteSetCmd(app), newSiteListCmd(app), newSiteShowCmd(app))

	return cmd
}

func newSiteSetCmd(app *App) *cobra.Command {
	site := &domain.Site{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a site's logistics by site number",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Sites.Upsert(context.Background(), site)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSiteDetail(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&site.Number, "number", "", "Sponsor site number (required)")
	cmd.Flags().StringVar(&site.Name, "name", "", "Site name")
	cmd.Flags().StringVar(&site.Location, "location", "", "City / address")
	cmd.Flags().StringVar(&site.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&site.BestHotel, "hotel", "", "Preferred hotel")
	cmd.Flags().StringVar(&site.BestRestaurant, "restaurant", "", "Preferred restaurant")
	cmd.Flags().StringVar(&site.ParkingSpot, "parking", "", "Where to park")
	cmd.Flags().StringVar(&site.DoorCode, "door-code", "", "Building access code")
	cmd.Flags().StringVar(&site.PrimaryContact, "contact", "", "Primary site contact")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func newSiteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sites by number",
		RunE: func(cmd *cobra.Command, args []string) error {
			sites, err := app.Sites.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSiteList(sites))
			return nil
		},
	}
}

func newSiteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <site-number>",
		Short: "Show a site's full logistics card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := app.Sites.GetByNumber(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSiteDetail(site))
			return nil
		},
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage study projects",
	}

	var code, name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Sites.CreateProject(context.Background(), code, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered project %s (%s)\n", p.Code, p.ID)
			return nil
		},
	}
	add.Flags().StringVar(&code, "code", "", "Project code, e.g. ONC-22 (required)")
	add.Flags().StringVar(&name, "name", "", "Project name")
	_ = add.MarkFlagRequired("code")

	list := &cobra.Command{
		Use:   "list",
		Short: "List projects by code",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Sites.ListProjects(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.AddCommand(add, list)

	return cmd
}
