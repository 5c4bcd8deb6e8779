package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/google/uuid"
)

// Formula identifiers understood by Calculate.
const (
	FormulaBSAMosteller = "bsa-mosteller"
	FormulaBMI          = "bmi"
	FormulaCalvert      = "calvert"
)

type toolkitService struct {
	tools repository.ToolRepo
}

func NewToolkitService(tools repository.ToolRepo) ToolkitService {
	return &toolkitService{tools: tools}
}

// GenerateTool maps a free-text query onto one of the known calculator
// configurations by keyword. Queries matching nothing return ErrValidation;
// there is no model in the loop here.
func (s *toolkitService) GenerateTool(ctx context.Context, query string) (*domain.Tool, error) {
	q := strings.ToLower(query)
	now := time.Now().UTC()

	switch {
	case strings.Contains(q, "bsa") || strings.Contains(q, "body surface"):
		return &domain.Tool{
			ID:   uuid.New().String(),
			Name: "BSA Calculator (Mosteller)",
			Type: "calculator",
			Config: domain.ToolConfig{
				Inputs: []domain.ToolInput{
					{Name: "height_cm", Label: "Height (cm)", Type: "number"},
					{Name: "weight_kg", Label: "Weight (kg)", Type: "number"},
				},
				Formula: FormulaBSAMosteller,
				Unit:    "m²",
			},
			AddedAt: now,
		}, nil

	case strings.Contains(q, "bmi") || strings.Contains(q, "mass index"):
		return &domain.Tool{
			ID:   uuid.New().String(),
			Name: "BMI Calculator",
			Type: "calculator",
			Config: domain.ToolConfig{
				Inputs: []domain.ToolInput{
					{Name: "height_cm", Label: "Height (cm)", Type: "number"},
					{Name: "weight_kg", Label: "Weight (kg)", Type: "number"},
				},
				Formula: FormulaBMI,
				Unit:    "kg/m²",
			},
			AddedAt: now,
		}, nil

	case strings.Contains(q, "carboplatin") || strings.Contains(q, "calvert"):
		return &domain.Tool{
			ID:   uuid.New().String(),
			Name: "Carboplatin Dosing (Calvert)",
			Type: "calculator",
			Config: domain.ToolConfig{
				Inputs: []domain.ToolInput{
					{Name: "target_auc", Label: "Target AUC", Type: "number"},
					{Name: "gfr", Label: "GFR (mL/min)", Type: "number"},
				},
				Formula: FormulaCalvert,
				Unit:    "mg",
			},
			AddedAt: now,
		}, nil
	}

	return nil, fmt.Errorf("no calculator matches query %q: %w", query, domain.ErrValidation)
}

// Calculate evaluates one of the known formulas over named inputs.
func (s *toolkitService) Calculate(ctx context.Context, formula string, inputs map[string]float64) (*domain.CalcResult, error) {
	switch formula {
	case FormulaBSAMosteller:
		height, weight, err := requireInputs(inputs, "height_cm", "weight_kg")
		if err != nil {
			return nil, err
		}
		return &domain.CalcResult{
			Formula: formula,
			Value:   math.Sqrt(height * weight / 3600),
			Unit:    "m²",
		}, nil

	case FormulaBMI:
		height, weight, err := requireInputs(inputs, "height_cm", "weight_kg")
		if err != nil {
			return nil, err
		}
		if height == 0 {
			return nil, fmt.Errorf("height must be positive: %w", domain.ErrValidation)
		}
		meters := height / 100
		return &domain.CalcResult{
			Formula: formula,
			Value:   weight / (meters * meters),
			Unit:    "kg/m²",
		}, nil

	case FormulaCalvert:
		auc, gfr, err := requireInputs(inputs, "target_auc", "gfr")
		if err != nil {
			return nil, err
		}
		return &domain.CalcResult{
			Formula: formula,
			Value:   auc * (gfr + 25),
			Unit:    "mg",
		}, nil
	}

	return nil, fmt.Errorf("unknown formula %q: %w", formula, domain.ErrValidation)
}

func (s *toolkitService) SaveTool(ctx context.Context, tool *domain.Tool) error {
	if tool.ID == "" {
		tool.ID = uuid.New().String()
	}
	if tool.AddedAt.IsZero() {
		tool.AddedAt = time.Now().UTC()
	}
	return s.tools.Save(ctx, tool)
}

func (s *toolkitService) ListTools(ctx context.Context) ([]*domain.Tool, error) {
	return s.tools.List(ctx)
}

func requireInputs(inputs map[string]float64, a, b string) (float64, float64, error) {
	va, ok := inputs[a]
	if !ok {
		return 0, 0, fmt.Errorf("missing input %q: %w", a, domain.ErrValidation)
	}
	vb, ok := inputs[b]
	if !ok {
		return 0, 0, fmt.Errorf("missing input %q: %w", b, domain.ErrValidation)
	}
	return va, vb, nil
}
