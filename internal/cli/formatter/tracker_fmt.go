package formatter

import (
	"fmt"

	"github.com/edvall/cratrack/internal/domain"
)

// FormatWinList renders achievements as a table.
func FormatWinList(wins []*domain.SiteAchievement) string {
	if len(wins) == 0 {
		return Dim("No wins logged yet.") + "\n"
	}

	rows := make([][]string, 0, len(wins))
	for _, w := range wins {
		ready := ""
		if w.ReviewReady {
			ready = StyleGreen.Render("✓")
		}
		rows = append(rows, []string{
			shortID(w.ID),
			w.Date.Format("2006-01-02"),
			w.Category,
			w.Title,
			ready,
		})
	}
	return RenderTable([]string{"ID", "Date", "Category", "Title", "Review"}, rows)
}

// FormatTimesheet renders timesheet entries and a total line.
func FormatTimesheet(entries []*domain.TimesheetEntry) string {
	if len(entries) == 0 {
		return Dim("No timesheet entries.") + "\n"
	}

	var total float64
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		total += e.Hours
		linked := ""
		if e.AchievementID != "" {
			linked = StyleBlue.Render("win")
		}
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date.Format("2006-01-02"),
			e.ProjectID,
			e.ActivityType,
			fmt.Sprintf("%.1f", e.Hours),
			linked,
		})
	}
	out := RenderTable([]string{"ID", "Date", "Project", "Activity", "Hours", ""}, rows)
	return out + Bold(fmt.Sprintf("Total: %.1f hours", total)) + "\n"
}
