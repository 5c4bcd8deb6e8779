package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistOf(total, completed int) []ChecklistItem {
	items := make([]ChecklistItem, total)
	for i := range items {
		items[i] = ChecklistItem{
			ID:        fmt.Sprintf("v1-%d", i),
			Label:     fmt.Sprintf("Task %d", i),
			Category:  "General",
			Completed: i < completed,
		}
	}
	return items
}

func TestDeriveChecklistProgress_CountOnly(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for completed := 0; completed <= total; completed++ {
			percent, status, err := DeriveChecklistProgress(checklistOf(total, completed))
			require.NoError(t, err)

			want := int(math.Round(float64(completed) / float64(total) * 100))
			assert.Equal(t, want, percent, "total=%d completed=%d", total, completed)

			switch {
			case completed == total:
				assert.Equal(t, VisitCompleted, status)
			case completed == 0:
				assert.Equal(t, VisitScheduled, status)
			default:
				assert.Equal(t, VisitInProgress, status)
			}
		}
	}
}

func TestDeriveChecklistProgress_OrderIndependent(t *testing.T) {
	// Same completion count, different items completed.
	a := checklistOf(5, 0)
	a[0].Completed = true
	a[3].Completed = true

	b := checklistOf(5, 0)
	b[1].Completed = true
	b[4].Completed = true

	pa, sa, err := DeriveChecklistProgress(a)
	require.NoError(t, err)
	pb, sb, err := DeriveChecklistProgress(b)
	require.NoError(t, err)

	assert.Equal(t, pa, pb)
	assert.Equal(t, sa, sb)
	assert.Equal(t, 40, pa)
}

func TestDeriveChecklistProgress_RoundsHalfUp(t *testing.T) {
	// 1 of 8 = 12.5% rounds to 13.
	percent, _, err := DeriveChecklistProgress(checklistOf(8, 1))
	require.NoError(t, err)
	assert.Equal(t, 13, percent)
}

func TestDeriveChecklistProgress_EmptyChecklist(t *testing.T) {
	_, _, err := DeriveChecklistProgress(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
}
