// Package audit implements the change-log recording service.
//
// Change-log rows are append-only records of field-level before/after diffs.
// Hard-delete is NOT allowed. A recording failure is degraded to a log line:
// the business transaction that triggered it must never be aborted by audit
// bookkeeping.
package audit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/internal/pkg/logger"
)

// Change is a before/after pair for one field.
type Change struct {
	Old interface{}
	New interface{}
}

// Changes maps field names to before/after pairs.
type Changes map[string]Change

// Entry describes one logical change to record. A nil Changes map means the
// action has no itemized diff (e.g. delete/restore) and produces exactly one
// field-less row; a non-nil map produces one row per field whose serialized
// old and new values differ.
type Entry struct {
	EntityType string
	EntityID   string
	UserID     string
	Action     changelog.Action
	Changes    Changes
	RequestID  string
}

// Recorder writes change-log rows through the client it is handed, which lets
// callers pass tx.ChangeLog so rows commit atomically with the mutation they
// document.
type Recorder struct{}

// NewRecorder creates a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// row is a fully serialized pending change-log row.
type row struct {
	field    *string
	oldValue *string
	newValue *string
}

// Record appends change-log rows for entry. All rows from one call share one
// timestamp so a burst orders deterministically. Errors are logged and
// swallowed; audit durability is best-effort by contract.
func (r *Recorder) Record(ctx context.Context, cl *ent.ChangeLogClient, entry Entry) {
	rows := buildRows(entry)
	if len(rows) == 0 {
		return
	}

	now := time.Now().UTC()
	builders := make([]*ent.ChangeLogCreate, 0, len(rows))
	for _, rw := range rows {
		b := cl.Create().
			SetID(newChangeID()).
			SetEntityType(entry.EntityType).
			SetEntityID(entry.EntityID).
			SetAction(entry.Action).
			SetUserID(entry.UserID).
			SetCreatedAt(now)
		if rw.field != nil {
			b.SetField(*rw.field)
		}
		if rw.oldValue != nil {
			b.SetOldValue(*rw.oldValue)
		}
		if rw.newValue != nil {
			b.SetNewValue(*rw.newValue)
		}
		if entry.RequestID != "" {
			b.SetRequestID(entry.RequestID)
		}
		builders = append(builders, b)
	}

	if _, err := cl.CreateBulk(builders...).Save(ctx); err != nil {
		logger.Error("Failed to write change log",
			zap.String("entity_type", entry.EntityType),
			zap.String("entity_id", entry.EntityID),
			zap.String("action", string(entry.Action)),
			zap.Int("rows", len(rows)),
			zap.Error(err),
		)
	}
}

// buildRows serializes an entry into pending rows. Pairs whose canonical
// string forms are equal are dropped; a nil Changes map yields the single
// field-less marker row.
func buildRows(entry Entry) []row {
	if entry.Changes == nil {
		return []row{{}}
	}

	fields := make([]string, 0, len(entry.Changes))
	for f := range entry.Changes {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	rows := make([]row, 0, len(fields))
	for _, f := range fields {
		ch := entry.Changes[f]
		oldStr := Stringify(ch.Old)
		newStr := Stringify(ch.New)
		if equalValues(oldStr, newStr) {
			continue
		}
		field := f
		rows = append(rows, row{field: &field, oldValue: oldStr, newValue: newStr})
	}
	return rows
}

// equalValues compares two serialized values, treating nil as distinct from
// the empty string.
func equalValues(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Stringify reduces a value to its canonical audit string: nil stays nil,
// enum-like values collapse to their underlying scalar, times use ISO-8601
// (RFC 3339, UTC). Anything else falls back to fmt formatting; stringification
// must never panic a business transaction.
func Stringify(v interface{}) *string {
	if v == nil {
		return nil
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case *string:
		if val == nil {
			return nil
		}
		s = *val
	case time.Time:
		s = val.UTC().Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		s = val.UTC().Format(time.RFC3339)
	case *int:
		if val == nil {
			return nil
		}
		s = fmt.Sprintf("%d", *val)
	case fmt.Stringer:
		s = val.String()
	case error:
		s = val.Error()
	default:
		s = fmt.Sprintf("%v", val)
	}
	return &s
}

func newChangeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
