package formatter

import (
	"fmt"
	"strings"

	"github.com/edvall/cratrack/internal/domain"
)

// FormatVisitList renders visits as a table ordered as given.
func FormatVisitList(visits []*domain.Visit) string {
	if len(visits) == 0 {
		return Dim("No visits found.") + "\n"
	}

	rows := make([][]string, 0, len(visits))
	for _, v := range visits {
		rows = append(rows, []string{
			shortID(v.ID),
			v.Date.Format("2006-01-02"),
			v.SiteID,
			string(v.Type),
			string(v.Mode),
			StatusIndicator(v.Status),
			RenderProgress(v.ProgressPercent, 10),
		})
	}
	return RenderTable([]string{"ID", "Date", "Site", "Type", "Mode", "Status", "Progress"}, rows)
}

// FormatVisitDetail renders a single visit with its checklist and any ISF
// entries that need attention.
func FormatVisitDetail(v *domain.Visit) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s visit / site %s", v.Type, v.SiteID)) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n\n",
		Dim(v.ID),
		v.Date.Format("2006-01-02"),
		string(v.Mode),
		StatusIndicator(v.Status)))
	b.WriteString(RenderProgress(v.ProgressPercent, 20) + "\n\n")

	b.WriteString(Bold("Checklist") + "\n")
	for _, item := range v.Checklist {
		box := Dim("[ ]")
		if item.Completed {
			box = StyleGreen.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("  %s %s: %s\n", box, item.Category, item.Label))
		if item.Notes != "" {
			b.WriteString("      " + Dim(item.Notes) + "\n")
		}
	}

	gaps := make([]domain.IsfItem, 0)
	for _, item := range v.Isf {
		if item.Status != domain.IsfPresent && item.Status != domain.IsfNA {
			gaps = append(gaps, item)
		}
	}
	if len(gaps) > 0 {
		b.WriteString("\n" + Bold("ISF gaps") + "\n")
		for _, item := range gaps {
			line := fmt.Sprintf("  %s %s / %s",
				IsfStatusColor(item.Status).Render(string(item.Status)), item.Section, item.Label)
			if item.ActionPlan != "" {
				line += Dim(" (plan: " + item.ActionPlan + ")")
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
