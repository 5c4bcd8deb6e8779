package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_ClampsAndLabels(t *testing.T) {
	assert.Contains(t, RenderProgress(-5, 10), "  0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
	assert.Contains(t, RenderProgress(50, 10), " 50%")
}

func TestRenderProgress_BarFill(t *testing.T) {
	out := RenderProgress(50, 10)
	assert.Equal(t, 5, countRune(out, '█'))
	assert.Equal(t, 5, countRune(out, '░'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"A", "Long header"},
		[][]string{{"x", "y"}, {"wide cell", "z"}},
	)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "wide cell")
	assert.Contains(t, out, "─")

	// Every cell in the first column pads to the widest entry plus the gap.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "x          y")
	assert.Contains(t, lines[3], "wide cell  z")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatVisitList_Empty(t *testing.T) {
	assert.Contains(t, FormatVisitList(nil), "No visits found.")
}

func TestFormatVisitDetail_ShowsChecklistAndGaps(t *testing.T) {
	v := &domain.Visit{
		ID:     "visit-1",
		SiteID: "site-101",
		Type:   domain.VisitIMV,
		Mode:   domain.ModeOnSite,
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.VisitInProgress,
		Checklist: []domain.ChecklistItem{
			{ID: "c1", Label: "Review delegation log", Category: "Regulatory", Completed: true},
			{ID: "c2", Label: "SDV new participants", Category: "Data", Notes: "pending CRF batch"},
		},
		Isf: []domain.IsfItem{
			{ID: "i1", Section: "Regulatory", Label: "1572", Status: domain.IsfPresent},
			{ID: "i2", Section: "Safety", Label: "SAE log", Status: domain.IsfMissing, ActionPlan: "request from CRC"},
		},
		ProgressPercent: 50,
	}

	out := FormatVisitDetail(v)
	assert.Contains(t, out, "IMV VISIT / SITE SITE-101")
	assert.Contains(t, out, "[x] Regulatory: Review delegation log")
	assert.Contains(t, out, "[ ] Data: SDV new participants")
	assert.Contains(t, out, "pending CRF batch")
	assert.Contains(t, out, "ISF gaps")
	assert.Contains(t, out, "SAE log")
	assert.Contains(t, out, "plan: request from CRC")
	assert.NotContains(t, out, "1572")
}

func TestFormatTimesheet_Totals(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		{ID: "e1", Date: time.Now(), ProjectID: "p1", ActivityType: "Monitoring", Hours: 4},
		{ID: "e2", Date: time.Now(), ProjectID: "p1", ActivityType: "Travel", Hours: 2.5, AchievementID: "a1"},
	}
	out := FormatTimesheet(entries)
	assert.Contains(t, out, "Total: 6.5 hours")
	assert.Contains(t, out, "win")
}

func TestStyleMarkdown_PreservesText(t *testing.T) {
	md := "# Dossier\n**Total:** 8.5 Hours\n_Nothing logged._\n| a | b |"
	out := StyleMarkdown(md)
	assert.Contains(t, out, "# Dossier")
	assert.Contains(t, out, "**Total:**")
	assert.Contains(t, out, "| a | b |")
}

func TestFormatSiteDetail_SkipsEmptyFields(t *testing.T) {
	s := &domain.Site{Number: "101", Name: "City General", DoorCode: "4471#"}
	out := FormatSiteDetail(s)
	assert.Contains(t, out, "4471#")
	assert.NotContains(t, out, "Hotel")
}
