package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/ent/solution"
)

func strPtr(s string) *string { return &s }

func TestStringify(t *testing.T) {
	due := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   interface{}
		want *string
	}{
		{"nil", nil, nil},
		{"nil string pointer", (*string)(nil), nil},
		{"nil time pointer", (*time.Time)(nil), nil},
		{"string", "hello", strPtr("hello")},
		{"int", 5, strPtr("5")},
		{"bool", true, strPtr("true")},
		{"enum collapses to scalar", solution.StatusOnHold, strPtr("on_hold")},
		{"time is RFC3339 UTC", due, strPtr("2026-03-15T09:30:00Z")},
		{"time pointer", &due, strPtr("2026-03-15T09:30:00Z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stringify(tt.in)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.want, *got)
		})
	}
}

func TestBuildRows_SuppressesEqualPairs(t *testing.T) {
	rows := buildRows(Entry{
		EntityType: "solution",
		EntityID:   "s-1",
		UserID:     "u-1",
		Action:     changelog.ActionUpdate,
		Changes:    Changes{"priority": {Old: 5, New: 5}},
	})
	require.Empty(t, rows)
}

func TestBuildRows_EmitsChangedPair(t *testing.T) {
	rows := buildRows(Entry{
		EntityType: "solution",
		EntityID:   "s-1",
		UserID:     "u-1",
		Action:     changelog.ActionUpdate,
		Changes:    Changes{"priority": {Old: 5, New: 6}},
	})
	require.Len(t, rows, 1)
	require.Equal(t, "priority", *rows[0].field)
	require.Equal(t, "5", *rows[0].oldValue)
	require.Equal(t, "6", *rows[0].newValue)
}

func TestBuildRows_NilChangesEmitsMarkerRow(t *testing.T) {
	rows := buildRows(Entry{
		EntityType: "solution",
		EntityID:   "s-1",
		UserID:     "u-1",
		Action:     changelog.ActionDelete,
	})
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].field)
	require.Nil(t, rows[0].oldValue)
	require.Nil(t, rows[0].newValue)
}

func TestBuildRows_OneRowPerChangedField(t *testing.T) {
	rows := buildRows(Entry{
		EntityType: "solution",
		EntityID:   "s-1",
		UserID:     "u-1",
		Action:     changelog.ActionUpdate,
		Changes: Changes{
			"status":   {Old: solution.StatusActive, New: solution.StatusComplete},
			"priority": {Old: 3, New: 3},
			"owner":    {Old: "alice", New: "bob"},
		},
	})
	require.Len(t, rows, 2)
	// Rows come out sorted by field name for deterministic insertion order.
	require.Equal(t, "owner", *rows[0].field)
	require.Equal(t, "status", *rows[1].field)
}

func TestBuildRows_NilToValueTransition(t *testing.T) {
	rows := buildRows(Entry{
		EntityType: "solution",
		EntityID:   "s-1",
		UserID:     "u-1",
		Action:     changelog.ActionUpdate,
		Changes:    Changes{"rag_reason": {Old: nil, New: "escalated by sponsor"}},
	})
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].oldValue)
	require.Equal(t, "escalated by sponsor", *rows[0].newValue)
}

func TestEqualValues_NilVersusEmpty(t *testing.T) {
	require.True(t, equalValues(nil, nil))
	require.False(t, equalValues(nil, strPtr("")))
	require.False(t, equalValues(strPtr(""), nil))
	require.True(t, equalValues(strPtr("x"), strPtr("x")))
}
