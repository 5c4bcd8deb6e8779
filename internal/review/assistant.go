package review

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/llm"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/google/uuid"
)

const assistantInstruction = `You are the product assistant for a CRA record-keeping application.
Your goal is to answer questions about the application for Senior Clinical Research Associates (CRAs).

CORE KNOWLEDGE BASE:
1. Product: an operating system for Senior CRAs. It tracks proactive interventions ("Wins"), manages site logistics (codes, parking), and generates performance dossiers.
2. Pricing: currently in Early Access. Free for the first 500 Senior CRAs.
3. Privacy: metadata-only architecture. PHI (Patient Health Information) is never stored. Data is encrypted locally and in transit.
4. Features: an evidence locker for critical interventions, site intelligence for non-PHI logistics, and dossier generation.

GUARDRAILS:
- Answer ONLY questions related to the application, Clinical Research, or CRA work.
- If asked about general topics, politely refuse: "I am designed only to assist with clinical operations inquiries."
- Maintain a professional, Senior CRA tone: concise, precise, and helpful.
- Do NOT invent features not listed above.`

var (
	pricingPattern  = regexp.MustCompile(`prime|pricing|cost|free|trial`)
	privacyPattern  = regexp.MustCompile(`security|phi|privacy|safe`)
	featuresPattern = regexp.MustCompile(`feature|dossier|log`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Assistant answers product questions and captures interest leads. Chat works
// with or without a model: the keyword fallback covers the common questions.
type Assistant struct {
	client llm.LLMClient // nil means model disabled
	leads  repository.LeadRepo
}

func NewAssistant(client llm.LLMClient, leads repository.LeadRepo) *Assistant {
	return &Assistant{client: client, leads: leads}
}

func (a *Assistant) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is required: %w", domain.ErrValidation)
	}
	if a.client == nil || !a.client.Available(ctx) {
		return fallbackChat(message), nil
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: assistantInstruction,
		UserPrompt:   message,
	})
	if err != nil {
		return fallbackChat(message), nil
	}
	return resp.Text, nil
}

// CaptureLead stores an interest registration and returns its id.
func (a *Assistant) CaptureLead(ctx context.Context, name, email string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("lead name is required: %w", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("invalid email %q: %w", email, domain.ErrValidation)
	}

	lead := &domain.Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		CapturedAt: time.Now().UTC(),
	}
	if err := a.leads.Create(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

// fallbackChat is the rule-based answer path used when no model responds.
func fallbackChat(message string) string {
	msg := strings.ToLower(message)
	switch {
	case pricingPattern.MatchString(msg):
		return "Currently in Early Access. Free for the first 500 Senior CRAs."
	case privacyPattern.MatchString(msg):
		return "We use a metadata-only architecture. No PHI is ever stored."
	case featuresPattern.MatchString(msg):
		return "I can track Wins, manage Site Logistics, and generate Dossiers."
	}
	return "I'll flag this for our Product Team. (System Note: AI connection unavailable, running in offline mode)."
}
