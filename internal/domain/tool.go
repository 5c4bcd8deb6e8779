package domain

import "time"

// ToolInput describes one input field of a calculator tool.
type ToolInput struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ToolConfig defines a calculator: its input fields, the formula evaluated
// over them, and the unit of the result.
type ToolConfig struct {
	Inputs  []ToolInput `json:"inputs"`
	Formula string      `json:"formula"`
	Unit    string      `json:"unit"`
}

// Tool is a saved calculator or reference card in the user's toolkit.
type Tool struct {
	ID      string
	Name    string
	Type    string
	Config  ToolConfig
	AddedAt time.Time
}

// CalcResult is the outcome of evaluating a calculator formula.
type CalcResult struct {
	Formula string
	Value   float64
	Unit    string
}
