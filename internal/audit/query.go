package audit

import (
	"context"
	"fmt"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/changelog"
)

// HistoryFilter narrows a change-log query. Zero values mean "no filter".
type HistoryFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	RequestID  string
	Limit      int
}

const defaultHistoryLimit = 200

// History returns change-log rows newest first. Rows from one burst share a
// created_at, so id (time-ordered) breaks ties deterministically.
func History(ctx context.Context, client *ent.Client, f HistoryFilter) ([]*ent.ChangeLog, error) {
	q := client.ChangeLog.Query()
	if f.EntityType != "" {
		q.Where(changelog.EntityTypeEQ(f.EntityType))
	}
	if f.EntityID != "" {
		q.Where(changelog.EntityIDEQ(f.EntityID))
	}
	if f.UserID != "" {
		q.Where(changelog.UserIDEQ(f.UserID))
	}
	if f.RequestID != "" {
		q.Where(changelog.RequestIDEQ(f.RequestID))
	}

	limit := f.Limit
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	rows, err := q.
		Order(ent.Desc(changelog.FieldCreatedAt), ent.Desc(changelog.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query change log: %w", err)
	}
	return rows, nil
}
