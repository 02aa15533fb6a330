// Package usecase provides application use cases (Clean Architecture).
//
// UseCases are reusable across HTTP, CLI and Cron. Atomic transactions are
// managed at the UseCase level: every mutating operation runs inside a single
// transaction, and audit rows commit together with the mutation they document.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tracklite.io/tracklite/ent"
)

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
