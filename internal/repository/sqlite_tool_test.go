package repository

import (
	"context"
	"testing"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(name string) *domain.Tool {
	return &domain.Tool{
		ID:   uuid.New().String(),
		Name: name,
		Type: "calculator",
		Config: domain.ToolConfig{
			Inputs: []domain.ToolInput{
				{Name: "weight", Label: "Weight (kg)", Type: "number"},
				{Name: "height", Label: "Height (cm)", Type: "number"},
			},
			Formula: "bsa-mosteller",
			Unit:    "m²",
		},
		AddedAt: time.Now().UTC(),
	}
}

func TestToolRepo_SaveAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteToolRepo(db)
	ctx := context.Background()

	tool := newTestTool("BSA Calculator")
	require.NoError(t, repo.Save(ctx, tool))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BSA Calculator", list[0].Name)
	assert.Equal(t, "bsa-mosteller", list[0].Config.Formula)
	require.Len(t, list[0].Config.Inputs, 2)
	assert.Equal(t, "weight", list[0].Config.Inputs[0].Name)
}

func TestToolRepo_SaveUpsertsByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteToolRepo(db)
	ctx := context.Background()

	tool := newTestTool("BSA Calculator")
	require.NoError(t, repo.Save(ctx, tool))

	tool.Name = "BSA (Mosteller)"
	require.NoError(t, repo.Save(ctx, tool))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BSA (Mosteller)", list[0].Name)
}

func TestLeadRepo_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(db)
	ctx := context.Background()

	lead := &domain.Lead{
		ID:         uuid.New().String(),
		Name:       "Dana Reyes",
		Email:      "dana.reyes@example.com",
		CapturedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, lead))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count))
	assert.Equal(t, 1, count)
}
