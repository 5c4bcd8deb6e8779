package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
)

type reportService struct {
	visits       repository.VisitRepo
	achievements repository.AchievementRepo
	timesheet    repository.TimesheetRepo
}

func NewReportService(visits repository.VisitRepo, achievements repository.AchievementRepo, timesheet repository.TimesheetRepo) ReportService {
	return &reportService{visits: visits, achievements: achievements, timesheet: timesheet}
}

// MonthlyDossier renders a markdown performance dossier for one calendar
// month: wins grouped by category, completed visits, aggregate hours and the
// count of sites touched in the period.
func (s *reportService) MonthlyDossier(ctx context.Context, year int, month time.Month) (string, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	wins, err := s.achievements.ListBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	visits, err := s.visits.ListCompletedBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	totalHours, err := s.timesheet.SumHoursBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	activeSites, err := s.visits.CountActiveSitesBetween(ctx, from, to)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Clinical Performance Dossier\n\n")
	fmt.Fprintf(&b, "**Reporting Period:** %s — %s\n\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
	b.WriteString("**Role:** Senior Clinical Research Associate (CRA)\n\n---\n\n")

	b.WriteString("## 1. Executive Summary\n\n")
	fmt.Fprintf(&b, "During this period, I actively managed **%d sites**, executing a total of **%d monitoring visits**.\n\n", activeSites, len(visits))
	fmt.Fprintf(&b, "- **Total Monitoring Volume:** %.1f Hours\n", totalHours)
	fmt.Fprintf(&b, "- **Visits Completed:** %d\n", len(visits))
	fmt.Fprintf(&b, "- **Key Impact Areas:** %s\n\n---\n\n", topCategories(wins))

	b.WriteString("## 2. Qualitative Achievements (Wins)\n\n")
	writeWins(&b, wins)
	b.WriteString("---\n\n")

	b.WriteString("## 3. Monitoring Activity (Visits)\n\n")
	writeVisitTable(&b, visits)
	b.WriteString("\n")

	b.WriteString("> *Confidentiality Notice: This document contains metadata-only performance metrics. No Patient Health Information (PHI) or proprietary identification is included.*\n")
	return b.String(), nil
}

func writeWins(b *strings.Builder, wins []*domain.SiteAchievement) {
	if len(wins) == 0 {
		b.WriteString("_No specific achievements logged for this period._\n\n")
		return
	}

	groups := make(map[string][]*domain.SiteAchievement)
	var order []string
	for _, w := range wins {
		cat := w.Category
		if cat == "" {
			cat = "General"
		}
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], w)
	}
	sort.Strings(order)

	for _, cat := range order {
		fmt.Fprintf(b, "### %s\n\n", cat)
		for _, w := range groups[cat] {
			text := w.Impact
			if text == "" {
				text = w.Title
			}
			fmt.Fprintf(b, "- **%s**: %s\n", w.Date.Format("2006-01-02"), text)
		}
		b.WriteString("\n")
	}
}

func writeVisitTable(b *strings.Builder, visits []*domain.Visit) {
	if len(visits) == 0 {
		b.WriteString("_No visits recorded in this period._\n")
		return
	}
	b.WriteString("| Date | Type | Site | Progress |\n|---|---|---|---|\n")
	for _, v := range visits {
		fmt.Fprintf(b, "| %s | **%s** | %s | %d%% |\n",
			v.Date.Format("2006-01-02"), v.Type, v.SiteID, v.ProgressPercent)
	}
}

// topCategories names the three most frequent win categories, busiest first.
func topCategories(wins []*domain.SiteAchievement) string {
	if len(wins) == 0 {
		return "General Operations"
	}
	counts := make(map[string]int)
	for _, w := range wins {
		cat := w.Category
		if cat == "" {
			cat = "General"
		}
		counts[cat]++
	}
	cats := make([]string, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] < cats[j]
	})
	if len(cats) > 3 {
		cats = cats[:3]
	}
	return strings.Join(cats, ", ")
}
