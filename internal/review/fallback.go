package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edvall/cratrack/internal/domain"
)

// FallbackAnalysis builds a deterministic markdown review from visit state
// alone. It mirrors the shape of a model analysis: open work grouped by
// category, ISF gaps, and a short posture summary.
func FallbackAnalysis(visit *domain.Visit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s Review (offline)\n\n", visit.Type)
	fmt.Fprintf(&b, "**Progress:** %d%% | **Status:** %s | **Mode:** %s\n\n",
		visit.ProgressPercent, visit.Status, visit.Mode)

	b.WriteString("### Open Checklist Items\n\n")
	writeOpenItems(&b, visit.Checklist)

	b.WriteString("### ISF Gaps\n\n")
	writeIsfGaps(&b, visit)

	b.WriteString("### Suggested Focus\n\n")
	writeFocus(&b, visit)

	return b.String()
}

func writeOpenItems(b *strings.Builder, items []domain.ChecklistItem) {
	groups := make(map[string][]domain.ChecklistItem)
	for _, item := range items {
		if !item.Completed {
			groups[item.Category] = append(groups[item.Category], item)
		}
	}
	if len(groups) == 0 {
		b.WriteString("All checklist items are complete.\n\n")
		return
	}

	cats := make([]string, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		fmt.Fprintf(b, "**%s**\n\n", cat)
		for _, item := range groups[cat] {
			fmt.Fprintf(b, "- %s\n", item.Label)
		}
		b.WriteString("\n")
	}
}

func writeIsfGaps(b *strings.Builder, visit *domain.Visit) {
	gaps := isfGaps(visit)
	if len(gaps) == 0 {
		b.WriteString("None detected.\n\n")
		return
	}
	for _, gap := range gaps {
		fmt.Fprintf(b, "- **%s** — %s: %s", gap.Section, gap.Label, gap.Status)
		if gap.ActionPlan != "" {
			fmt.Fprintf(b, " (plan: %s)", gap.ActionPlan)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeFocus(b *strings.Builder, visit *domain.Visit) {
	open := 0
	for _, item := range visit.Checklist {
		if !item.Completed {
			open++
		}
	}
	gaps := len(isfGaps(visit))

	switch {
	case open == 0 && gaps == 0:
		b.WriteString("- Visit documentation is reconciled; confirm sign-off and archive.\n")
	case gaps > open:
		b.WriteString("- ISF reconciliation is the larger risk; prioritize the gaps above before checklist work.\n")
	default:
		fmt.Fprintf(b, "- %d checklist items remain open; close the oldest categories first.\n", open)
	}
	if visit.Status == domain.VisitCompleted && visit.ProgressPercent < 100 {
		b.WriteString("- Visit is marked completed with an unfinished checklist; reconcile or document the remainder.\n")
	}
}
