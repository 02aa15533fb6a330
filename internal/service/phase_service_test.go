package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracklite.io/tracklite/ent"
)

func sp(id, phaseID string, override *int) *ent.SolutionPhase {
	return &ent.SolutionPhase{ID: id, PhaseID: phaseID, SequenceOverride: override}
}

func intPtr(v int) *int { return &v }

func phaseIDs(sps []*ent.SolutionPhase) []string {
	ids := make([]string, 0, len(sps))
	for _, s := range sps {
		ids = append(ids, s.PhaseID)
	}
	return ids
}

func TestOrderSolutionPhases(t *testing.T) {
	catalog := map[string]int{"backlog": 1, "discovery": 2, "design": 3}

	tests := []struct {
		name string
		rows []*ent.SolutionPhase
		want []string
	}{
		{
			name: "catalog order when no overrides",
			rows: []*ent.SolutionPhase{
				sp("c", "design", nil),
				sp("a", "backlog", nil),
				sp("b", "discovery", nil),
			},
			want: []string{"backlog", "discovery", "design"},
		},
		{
			name: "override zero sorts before everything",
			rows: []*ent.SolutionPhase{
				sp("a", "backlog", nil),
				sp("b", "discovery", nil),
				sp("c", "design", intPtr(0)),
			},
			want: []string{"design", "backlog", "discovery"},
		},
		{
			name: "override ties broken by catalog sequence",
			rows: []*ent.SolutionPhase{
				sp("c", "design", intPtr(5)),
				sp("b", "discovery", intPtr(5)),
				sp("a", "backlog", nil),
			},
			want: []string{"backlog", "discovery", "design"},
		},
		{
			name: "override repositions a late phase early",
			rows: []*ent.SolutionPhase{
				sp("a", "backlog", nil),
				sp("b", "discovery", intPtr(9)),
				sp("c", "design", intPtr(2)),
			},
			want: []string{"backlog", "design", "discovery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			OrderSolutionPhases(tt.rows, catalog)
			assert.Equal(t, tt.want, phaseIDs(tt.rows))
		})
	}
}

func TestOrderSolutionPhases_RowIDFinalTiebreak(t *testing.T) {
	catalog := map[string]int{"backlog": 1}
	rows := []*ent.SolutionPhase{
		sp("02", "backlog", nil),
		sp("01", "backlog", nil),
	}
	OrderSolutionPhases(rows, catalog)
	assert.Equal(t, []string{"01", "02"}, []string{rows[0].ID, rows[1].ID})
}

func TestPhaseCatalogIsDense(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range PhaseCatalog {
		assert.False(t, seen[p.ID], "duplicate phase id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Group)
		assert.NotEmpty(t, p.Name)
	}
	assert.Len(t, PhaseCatalog, 17)
}
