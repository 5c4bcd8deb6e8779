package review

import (
	"context"
	"errors"
	"testing"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/llm"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	available bool
	text      string
	err       error
	lastReq   llm.GenerateRequest
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeLLM) Available(ctx context.Context) bool { return f.available }

func seedVisit(t *testing.T, repo repository.VisitRepo, opts ...testutil.VisitOption) *domain.Visit {
	t.Helper()
	visit := testutil.NewTestVisit("site-1", domain.VisitIMV, opts...)
	require.NoError(t, repo.Create(context.Background(), visit))
	return visit
}

func TestService_Analyze_UsesModelWhenAvailable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVisitRepo(db)
	visit := seedVisit(t, repo)

	client := &fakeLLM{available: true, text: "## Strategy Validation\n- Looks sound."}
	svc := NewService(repo, client, nil, nil)

	out, err := svc.Analyze(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Equal(t, "## Strategy Validation\n- Looks sound.", out)
	assert.Equal(t, llm.TaskReview, client.lastReq.Task)
	assert.Contains(t, client.lastReq.SystemPrompt, "Interim Monitoring Visit")
	assert.Contains(t, client.lastReq.UserPrompt, "- Type: IMV")
}

func TestService_Analyze_FallsBackWhenModelFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVisitRepo(db)
	visit := seedVisit(t, repo)

	client := &fakeLLM{available: true, err: llm.ErrTimeout}
	svc := NewService(repo, client, nil, nil)

	out, err := svc.Analyze(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "## IMV Review (offline)")
}

func TestService_Analyze_FallsBackWhenUnavailable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVisitRepo(db)
	items := testutil.NewTestChecklist("v", 4, 1)
	visit := seedVisit(t, repo, testutil.WithChecklist(items), testutil.WithProgress(25))

	svc := NewService(repo, nil, nil, nil)

	out, err := svc.Analyze(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "**Progress:** 25%")
	assert.Contains(t, out, "### Open Checklist Items")
	assert.Contains(t, out, "Task 2")
}

func TestService_Analyze_MissingVisit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(repository.NewSQLiteVisitRepo(db), nil, nil, nil)

	_, err := svc.Analyze(context.Background(), "nope")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestService_Analyze_SanitizesPromptContext(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVisitRepo(db)

	items := testutil.NewTestChecklist("v", 2, 1)
	items[0].Notes = "Participant JS-123 enrolled on MK-3475"
	visit := seedVisit(t, repo, testutil.WithChecklist(items))

	client := &fakeLLM{available: true, text: "ok"}
	svc := NewService(repo, client, nil, nil)

	_, err := svc.Analyze(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.NotContains(t, client.lastReq.UserPrompt, "JS-123")
	assert.NotContains(t, client.lastReq.UserPrompt, "MK-3475")
	assert.Contains(t, client.lastReq.UserPrompt, "[PARTICIPANT_ID]")
	assert.Contains(t, client.lastReq.UserPrompt, "[STUDY_DRUG]")
}

func TestService_Analyze_UnknownTypeUsesDefaultPrompt(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVisitRepo(db)
	visit := testutil.NewTestVisit("site-1", domain.VisitType("ADHOC"))
	require.NoError(t, repo.Create(context.Background(), visit))

	client := &fakeLLM{available: true, text: "ok"}
	svc := NewService(repo, client, nil, nil)

	_, err := svc.Analyze(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Contains(t, client.lastReq.SystemPrompt, "Interim Monitoring Visit")
}

func TestFallbackAnalysis_IsfGapsAndCompletedMismatch(t *testing.T) {
	visit := testutil.NewTestVisit("site-1", domain.VisitCOV,
		testutil.WithChecklist(testutil.NewTestChecklist("v", 2, 1)),
		testutil.WithVisitStatus(domain.VisitCompleted),
		testutil.WithProgress(50),
		testutil.WithIsf([]domain.IsfItem{
			{Section: "Safety", Label: "SAE reports", Status: domain.IsfMissing, ActionPlan: "Request copies"},
			{Section: "IP & Supplies", Label: "Temp logs", Status: domain.IsfPresent},
		}))

	out := FallbackAnalysis(visit)
	assert.Contains(t, out, "## COV Review (offline)")
	assert.Contains(t, out, "**Safety** — SAE reports: Missing (plan: Request copies)")
	assert.NotContains(t, out, "Temp logs")
	assert.Contains(t, out, "marked completed with an unfinished checklist")
}
