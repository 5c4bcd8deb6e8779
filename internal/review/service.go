// Package review generates monitoring-strategy analyses of visits. When a
// language model is configured it drives the analysis; otherwise, and on any
// model failure, a deterministic summary built from the same visit context is
// returned instead, so the endpoint always answers.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/llm"
	"github.com/edvall/cratrack/internal/metrics"
	"github.com/edvall/cratrack/internal/sanitize"
)

// VisitLoader is the slice of the visit store this package needs.
type VisitLoader interface {
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
}

type Service struct {
	visits    VisitLoader
	client    llm.LLMClient // nil means model disabled
	sanitizer *sanitize.Sanitizer
	metrics   *metrics.Metrics
}

func NewService(visits VisitLoader, client llm.LLMClient, sanitizer *sanitize.Sanitizer, m *metrics.Metrics) *Service {
	if sanitizer == nil {
		sanitizer = sanitize.New(sanitize.DefaultTerms)
	}
	return &Service{visits: visits, client: client, sanitizer: sanitizer, metrics: m}
}

// Analyze produces a markdown review of the visit's monitoring posture.
func (s *Service) Analyze(ctx context.Context, visitID string) (string, error) {
	visit, err := s.visits.GetByID(ctx, visitID)
	if err != nil {
		return "", err
	}

	if s.client == nil || !s.client.Available(ctx) {
		s.metrics.IncrementReviewFallbacks()
		return FallbackAnalysis(visit), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: promptFor(visit.Type),
		UserPrompt:   s.visitContext(visit),
	})
	if err != nil {
		s.metrics.IncrementReviewFallbacks()
		return FallbackAnalysis(visit), nil
	}
	return resp.Text, nil
}

// visitContext renders the visit as prompt context. Free text goes through
// the sanitizer: nothing that looks like PII leaves the process.
func (s *Service) visitContext(visit *domain.Visit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current Visit Context:\n")
	fmt.Fprintf(&b, "- Type: %s\n", visit.Type)
	fmt.Fprintf(&b, "- Mode: %s\n", visit.Mode)
	fmt.Fprintf(&b, "- Date: %s\n", visit.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Progress: %d%%\n\n", visit.ProgressPercent)

	b.WriteString("Checklist Items:\n")
	for _, item := range visit.Checklist {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("- [%s] %s: %s", mark, item.Category, item.Label)
		if item.Notes != "" {
			notes, _ := s.sanitizer.Sanitize(item.Notes)
			line += fmt.Sprintf(" (Note: %s)", notes)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\nISF Gaps/Issues:\n")
	gaps := isfGaps(visit)
	if len(gaps) == 0 {
		b.WriteString("None detected.\n")
		return b.String()
	}
	for _, gap := range gaps {
		plan := gap.ActionPlan
		if plan == "" {
			plan = "None"
		} else {
			plan, _ = s.sanitizer.Sanitize(plan)
		}
		fmt.Fprintf(&b, "- %s: %s is %s. Plan: %s\n", gap.Section, gap.Label, gap.Status, plan)
	}
	return b.String()
}

// isfGaps filters ISF items down to the ones needing attention.
func isfGaps(visit *domain.Visit) []domain.IsfItem {
	var gaps []domain.IsfItem
	for _, item := range visit.Isf {
		if item.Status != domain.IsfPresent && item.Status != domain.IsfNA {
			gaps = append(gaps, item)
		}
	}
	return gaps
}
