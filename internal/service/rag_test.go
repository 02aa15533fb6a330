package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracklite.io/tracklite/ent/solution"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
)

func TestDeriveRagStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  solution.Status
		dueDate *time.Time
		want    solution.RagStatus
	}{
		{
			name:   "complete is green",
			status: solution.StatusComplete,
			want:   solution.RagStatusGreen,
		},
		{
			name:    "complete is green even when overdue",
			status:  solution.StatusComplete,
			dueDate: &yesterday,
			want:    solution.RagStatusGreen,
		},
		{
			name:   "abandoned is red",
			status: solution.StatusAbandoned,
			want:   solution.RagStatusRed,
		},
		{
			name:    "overdue active is red",
			status:  solution.StatusActive,
			dueDate: &yesterday,
			want:    solution.RagStatusRed,
		},
		{
			name:    "due today is not yet overdue",
			status:  solution.StatusActive,
			dueDate: &today,
			want:    solution.RagStatusAmber,
		},
		{
			name:    "future due date is amber",
			status:  solution.StatusActive,
			dueDate: &tomorrow,
			want:    solution.RagStatusAmber,
		},
		{
			name:   "no due date is amber",
			status: solution.StatusNotStarted,
			want:   solution.RagStatusAmber,
		},
		{
			name:   "on hold without due date is amber",
			status: solution.StatusOnHold,
			want:   solution.RagStatusAmber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRagStatus(tt.status, tt.dueDate, now))
		})
	}
}

func TestInferRagTransition(t *testing.T) {
	manual := solution.RagSourceManual
	auto := solution.RagSourceAuto
	red := solution.RagStatusRed
	reason := "vendor slipped the delivery date"
	blank := "   "

	t.Run("no fields means no change", func(t *testing.T) {
		tr, err := InferRagTransition(RagFields{})
		require.NoError(t, err)
		assert.Equal(t, NoRagChange{}, tr)
	})

	t.Run("explicit manual with full triple", func(t *testing.T) {
		tr, err := InferRagTransition(RagFields{Source: &manual, Status: &red, Reason: &reason})
		require.NoError(t, err)
		assert.Equal(t, SetManual{Status: red, Reason: reason}, tr)
	})

	t.Run("status and reason imply manual", func(t *testing.T) {
		tr, err := InferRagTransition(RagFields{Status: &red, Reason: &reason})
		require.NoError(t, err)
		assert.Equal(t, SetManual{Status: red, Reason: reason}, tr)
	})

	t.Run("manual without status is rejected", func(t *testing.T) {
		_, err := InferRagTransition(RagFields{Source: &manual, Reason: &reason})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeRagStatusRequired, appErr.Code)
	})

	t.Run("manual without reason is rejected", func(t *testing.T) {
		_, err := InferRagTransition(RagFields{Source: &manual, Status: &red})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeRagReasonRequired, appErr.Code)
	})

	t.Run("blank reason is rejected", func(t *testing.T) {
		_, err := InferRagTransition(RagFields{Status: &red, Reason: &blank})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeRagReasonRequired, appErr.Code)
	})

	t.Run("reset to auto", func(t *testing.T) {
		tr, err := InferRagTransition(RagFields{Source: &auto})
		require.NoError(t, err)
		assert.Equal(t, ResetAuto{}, tr)
	})

	t.Run("auto with manual fields is contradictory", func(t *testing.T) {
		_, err := InferRagTransition(RagFields{Source: &auto, Status: &red, Reason: &reason})
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidRequestField, appErr.Code)
	})
}
