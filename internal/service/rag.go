package service

import (
	"strings"
	"time"

	"tracklite.io/tracklite/ent/solution"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
)

// DeriveRagStatus computes the automatic traffic-light health status of a
// solution from its lifecycle status and due date:
//
//	complete            → green
//	abandoned           → red
//	due date in the past → red
//	otherwise           → amber (default/no-signal state)
//
// Due dates are day-granular; a solution due today is not yet overdue.
func DeriveRagStatus(status solution.Status, dueDate *time.Time, now time.Time) solution.RagStatus {
	switch status {
	case solution.StatusComplete:
		return solution.RagStatusGreen
	case solution.StatusAbandoned:
		return solution.RagStatusRed
	}
	if dueDate != nil {
		due := dueDate.UTC().Truncate(24 * time.Hour)
		today := now.UTC().Truncate(24 * time.Hour)
		if due.Before(today) {
			return solution.RagStatusRed
		}
	}
	return solution.RagStatusAmber
}

// RagFields is the optional RAG field group of an update payload. A nil
// pointer means the caller did not supply the field.
type RagFields struct {
	Source *solution.RagSource
	Status *solution.RagStatus
	Reason *string
}

// RagTransition is the inferred intent of a RAG field group: exactly one of
// SetManual, ResetAuto or NoRagChange.
type RagTransition interface {
	isRagTransition()
}

// SetManual asserts a human-supplied RAG status with a mandatory reason.
type SetManual struct {
	Status solution.RagStatus
	Reason string
}

// ResetAuto switches the solution back to system-computed RAG.
type ResetAuto struct{}

// NoRagChange leaves the RAG field group untouched.
type NoRagChange struct{}

func (SetManual) isRagTransition()   {}
func (ResetAuto) isRagTransition()   {}
func (NoRagChange) isRagTransition() {}

// InferRagTransition maps which RAG fields were supplied to a tagged
// transition, decoupling intent inference from persistence.
//
// Supplying rag_status or rag_reason without rag_source implicitly switches
// the source to manual; the manual triple is all-or-nothing, so a partial
// group is rejected with a field-specific validation error.
func InferRagTransition(f RagFields) (RagTransition, error) {
	if f.Source == nil && f.Status == nil && f.Reason == nil {
		return NoRagChange{}, nil
	}

	if f.Source != nil && *f.Source == solution.RagSourceAuto {
		if f.Status != nil || f.Reason != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				"rag_status and rag_reason cannot be supplied when resetting rag_source to auto")
		}
		return ResetAuto{}, nil
	}

	// Explicit manual, or implicit manual via supplied status/reason.
	if f.Status == nil {
		return nil, apperrors.BadRequest(apperrors.CodeRagStatusRequired,
			"rag_status is required when rag_source is manual")
	}
	if f.Reason == nil || strings.TrimSpace(*f.Reason) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeRagReasonRequired,
			"rag_reason is required when rag_source is manual")
	}
	return SetManual{Status: *f.Status, Reason: *f.Reason}, nil
}
