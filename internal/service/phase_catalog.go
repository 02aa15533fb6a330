// Package service provides entity-level business logic for Tracklite.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/internal/pkg/logger"
)

// CatalogPhase is one entry of the fixed global phase catalog.
type CatalogPhase struct {
	ID    string
	Group string
	Name  string
}

// PhaseCatalog is the fixed, ordered workflow phase list. Sequence numbers are
// assigned from position (1-based). The catalog is seeded once and never
// mutated by user action.
var PhaseCatalog = []CatalogPhase{
	{"backlog", "Backlog", "Backlog"},
	{"requirements", "Planning", "Requirements"},
	{"controls_scoping", "Planning", "Controls & Scoping"},
	{"resourcing_timeline", "Planning", "Resourcing & Timeline"},
	{"poc", "Planning", "Proof of Concept"},
	{"delivery_success", "Planning", "Delivery and Success Criteria"},
	{"design", "Development", "Design"},
	{"build_docs", "Development", "Build & Documentation"},
	{"sandbox_deploy", "Development", "Sandbox Deployment"},
	{"socialization_signoff", "Development", "Socialization & Signoff"},
	{"deployment_prep", "Deployment & Testing", "Deployment Preparation"},
	{"dev_deploy", "Deployment & Testing", "DEV Deployment"},
	{"uat_deploy", "Deployment & Testing", "UAT Deployment"},
	{"prod_deploy", "Deployment & Testing", "PROD Deployment"},
	{"go_live", "Closure", "Go Live"},
	{"closure_signoff", "Closure", "Closure and Signoff"},
	{"handoff_offboarding", "Closure", "Handoff and offboarding"},
}

// SeedPhases idempotently seeds the global phase catalog. Existing rows are
// left untouched; only missing catalog entries are inserted.
func SeedPhases(ctx context.Context, client *ent.Client) error {
	existing, err := client.Phase.Query().Select(phase.FieldID).Strings(ctx)
	if err != nil {
		return fmt.Errorf("query existing phases: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, id := range existing {
		present[id] = true
	}

	builders := make([]*ent.PhaseCreate, 0, len(PhaseCatalog))
	for i, cp := range PhaseCatalog {
		if present[cp.ID] {
			continue
		}
		builders = append(builders, client.Phase.Create().
			SetID(cp.ID).
			SetPhaseGroup(cp.Group).
			SetPhaseName(cp.Name).
			SetSequence(i+1))
	}
	if len(builders) == 0 {
		return nil
	}

	if err := client.Phase.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("seed phases: %w", err)
	}
	logger.Info("Phase catalog seeded", zap.Int("inserted", len(builders)))
	return nil
}
