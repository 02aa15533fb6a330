package service

import (
	"context"
	"fmt"
	"sort"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/ent/solutionphase"
)

// PhaseService handles phase catalog and per-solution phase queries.
type PhaseService struct {
	client *ent.Client
}

// NewPhaseService creates a new PhaseService.
func NewPhaseService(client *ent.Client) *PhaseService {
	return &PhaseService{client: client}
}

// ListCatalog returns all catalog phases in global sequence order.
func (s *PhaseService) ListCatalog(ctx context.Context) ([]*ent.Phase, error) {
	phases, err := s.client.Phase.Query().
		Order(ent.Asc(phase.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	return phases, nil
}

// CatalogSequences returns the phase_id → global sequence mapping.
func (s *PhaseService) CatalogSequences(ctx context.Context) (map[string]int, error) {
	phases, err := s.client.Phase.Query().
		Select(phase.FieldID, phase.FieldSequence).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query phase sequences: %w", err)
	}
	seqs := make(map[string]int, len(phases))
	for _, p := range phases {
		seqs[p.ID] = p.Sequence
	}
	return seqs, nil
}

// ListSolutionPhases returns every SolutionPhase row of a solution in
// effective order (see OrderSolutionPhases).
func (s *PhaseService) ListSolutionPhases(ctx context.Context, solutionID string) ([]*ent.SolutionPhase, error) {
	sps, err := s.client.SolutionPhase.Query().
		Where(solutionphase.SolutionIDEQ(solutionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solution phases: %w", err)
	}
	seqs, err := s.CatalogSequences(ctx)
	if err != nil {
		return nil, err
	}
	OrderSolutionPhases(sps, seqs)
	return sps, nil
}

// EnabledSolutionPhases returns the currently enabled SolutionPhase rows of a
// solution in effective order.
func (s *PhaseService) EnabledSolutionPhases(ctx context.Context, solutionID string) ([]*ent.SolutionPhase, error) {
	sps, err := s.client.SolutionPhase.Query().
		Where(
			solutionphase.SolutionIDEQ(solutionID),
			solutionphase.IsEnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled solution phases: %w", err)
	}
	seqs, err := s.CatalogSequences(ctx)
	if err != nil {
		return nil, err
	}
	OrderSolutionPhases(sps, seqs)
	return sps, nil
}

// OrderSolutionPhases sorts rows in place by the effective ordering contract:
// ascending coalesce(sequence_override, catalog sequence), ties broken by
// catalog sequence, final tie broken by row id for determinism.
func OrderSolutionPhases(sps []*ent.SolutionPhase, catalogSeq map[string]int) {
	sort.SliceStable(sps, func(i, j int) bool {
		a, b := sps[i], sps[j]
		aEff := effectiveSequence(a, catalogSeq)
		bEff := effectiveSequence(b, catalogSeq)
		if aEff != bEff {
			return aEff < bEff
		}
		aCat := catalogSeq[a.PhaseID]
		bCat := catalogSeq[b.PhaseID]
		if aCat != bCat {
			return aCat < bCat
		}
		return a.ID < b.ID
	})
}

func effectiveSequence(sp *ent.SolutionPhase, catalogSeq map[string]int) int {
	if sp.SequenceOverride != nil {
		return *sp.SequenceOverride
	}
	return catalogSeq[sp.PhaseID]
}
