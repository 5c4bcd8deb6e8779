package service

import (
	"context"
	"testing"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToolkitService(t *testing.T) ToolkitService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewToolkitService(repository.NewSQLiteToolRepo(db))
}

func TestToolkitService_GenerateTool_KeywordMatching(t *testing.T) {
	svc := newToolkitService(t)
	ctx := context.Background()

	tests := []struct {
		query   string
		formula string
	}{
		{"I need a BSA calculator", FormulaBSAMosteller},
		{"body surface area please", FormulaBSAMosteller},
		{"bmi", FormulaBMI},
		{"something for mass index", FormulaBMI},
		{"carboplatin dosing", FormulaCalvert},
		{"Calvert formula", FormulaCalvert},
	}
	for _, tt := range tests {
		tool, err := svc.GenerateTool(ctx, tt.query)
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.formula, tool.Config.Formula, tt.query)
		assert.Equal(t, "calculator", tool.Type)
		assert.Len(t, tool.Config.Inputs, 2)
	}

	_, err := svc.GenerateTool(ctx, "weather forecast")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestToolkitService_Calculate(t *testing.T) {
	svc := newToolkitService(t)
	ctx := context.Background()

	// Mosteller: sqrt(170*70/3600) ≈ 1.818
	res, err := svc.Calculate(ctx, FormulaBSAMosteller, map[string]float64{"height_cm": 170, "weight_kg": 70})
	require.NoError(t, err)
	assert.InDelta(t, 1.818, res.Value, 0.001)
	assert.Equal(t, "m²", res.Unit)

	// BMI: 70 / 1.70² ≈ 24.22
	res, err = svc.Calculate(ctx, FormulaBMI, map[string]float64{"height_cm": 170, "weight_kg": 70})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, res.Value, 0.01)

	// Calvert: 5 * (60 + 25) = 425
	res, err = svc.Calculate(ctx, FormulaCalvert, map[string]float64{"target_auc": 5, "gfr": 60})
	require.NoError(t, err)
	assert.Equal(t, 425.0, res.Value)
	assert.Equal(t, "mg", res.Unit)
}

func TestToolkitService_Calculate_Validation(t *testing.T) {
	svc := newToolkitService(t)
	ctx := context.Background()

	_, err := svc.Calculate(ctx, "magic", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Calculate(ctx, FormulaBMI, map[string]float64{"height_cm": 170})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Calculate(ctx, FormulaBMI, map[string]float64{"height_cm": 0, "weight_kg": 70})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestToolkitService_SaveAndListGeneratedTool(t *testing.T) {
	svc := newToolkitService(t)
	ctx := context.Background()

	tool, err := svc.GenerateTool(ctx, "bsa")
	require.NoError(t, err)
	require.NoError(t, svc.SaveTool(ctx, tool))

	list, err := svc.ListTools(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tool.ID, list[0].ID)
	assert.Equal(t, FormulaBSAMosteller, list[0].Config.Formula)
}
