package domain

import (
	"fmt"
	"math"
	"time"
)

// ChecklistItem is one task on a visit checklist. IDs are assigned when the
// visit is created from a template and stay stable across checklist updates.
type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// FileRef points at an uploaded document attached to an ISF item.
type FileRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// IsfItem tracks one entry of the Investigator Site File inventory.
// Every visit starts with the full catalog, all entries at N/A.
type IsfItem struct {
	ID          string    `json:"id"`
	Section     string    `json:"section"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Status      IsfStatus `json:"status"`
	ActionPlan  string    `json:"actionPlan,omitempty"`
	Files       []FileRef `json:"files,omitempty"`
}

// Visit is a monitoring visit against a site. Status and ProgressPercent are
// derived from the checklist; they are never set independently except through
// the explicit completion override.
type Visit struct {
	ID              string
	SiteID          string
	Type            VisitType
	Mode            VisitMode
	Date            time.Time
	Status          VisitStatus
	Checklist       []ChecklistItem
	Isf             []IsfItem
	ProgressPercent int
}

// DeriveChecklistProgress computes the progress percentage and visit status
// from a checklist. It depends only on the count of completed items, so it is
// idempotent and order-independent. An empty checklist violates the template
// invariant (templates always hold at least one item) and is reported as an
// integrity error rather than a division panic.
func DeriveChecklistProgress(items []ChecklistItem) (int, VisitStatus, error) {
	total := len(items)
	if total == 0 {
		return 0, "", fmt.Errorf("checklist has no items: %w", ErrIntegrity)
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	percent := int(math.Round(float64(completed) / float64(total) * 100))

	status := VisitInProgress
	switch percent {
	case 100:
		status = VisitCompleted
	case 0:
		status = VisitScheduled
	}
	return percent, status, nil
}
