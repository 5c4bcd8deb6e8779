package formatter

import (
	"fmt"
	"strings"

	"github.com/edvall/cratrack/internal/domain"
)

// FormatSiteList renders sites as a table keyed by site number.
func FormatSiteList(sites []*domain.Site) string {
	if len(sites) == 0 {
		return Dim("No sites on file.") + "\n"
	}

	rows := make([][]string, 0, len(sites))
	for _, s := range sites {
		rows = append(rows, []string{s.Number, s.Name, s.Location, s.PrimaryContact})
	}
	return RenderTable([]string{"Number", "Name", "Location", "Contact"}, rows)
}

// FormatSiteDetail renders the full logistics card for one site. Empty fields
// are skipped.
func FormatSiteDetail(s *domain.Site) string {
	var b strings.Builder
	title := s.Name
	if title == "" {
		title = "Site " + s.Number
	}
	b.WriteString(Header(fmt.Sprintf("%s (site %s)", title, s.Number)) + "\n")

	fields := []struct{ label, value string }{
		{"Location", s.Location},
		{"Primary contact", s.PrimaryContact},
		{"Hotel", s.BestHotel},
		{"Restaurant", s.BestRestaurant},
		{"Parking", s.ParkingSpot},
		{"Door code", s.DoorCode},
		{"Notes", s.Notes},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(f.label+":"), f.value))
	}
	return b.String()
}

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects registered.") + "\n"
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.Code, p.Name})
	}
	return RenderTable([]string{"Code", "Name"}, rows)
}
