// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/ent/predicate"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/session"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
	"tracklite.io/tracklite/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChangeLog               = "ChangeLog"
	TypePhase                   = "Phase"
	TypeProject                 = "Project"
	TypeSession                 = "Session"
	TypeSolution                = "Solution"
	TypeSolutionPhase           = "SolutionPhase"
	TypeSubcomponent            = "Subcomponent"
	TypeSubcomponentPhaseStatus = "SubcomponentPhaseStatus"
	TypeUser                    = "User"
)

// ChangeLogMutation represents an operation that mutates the ChangeLog nodes in the graph.
type ChangeLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	entity_type   *string
	entity_id     *string
	action        *changelog.Action
	field         *string
	old_value     *string
	new_value     *string
	user_id       *string
	request_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChangeLog, error)
	predicates    []predicate.ChangeLog
}

var _ ent.Mutation = (*ChangeLogMutation)(nil)

// changelogOption allows management of the mutation configuration using functional options.
type changelogOption func(*ChangeLogMutation)

// newChangeLogMutation creates new mutation for the ChangeLog entity.
func newChangeLogMutation(c config, op Op, opts ...changelogOption) *ChangeLogMutation {
	m := &ChangeLogMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangeLogID sets the ID field of the mutation.
func withChangeLogID(id string) changelogOption {
	return func(m *ChangeLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangeLog
		)
		m.oldValue = func(ctx context.Context) (*ChangeLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangeLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeLog sets the old ChangeLog of the mutation.
func withChangeLog(node *ChangeLog) changelogOption {
	return func(m *ChangeLogMutation) {
		m.oldValue = func(context.Context) (*ChangeLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangeLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangeLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChangeLog entities.
func (m *ChangeLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangeLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangeLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangeLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChangeLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChangeLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChangeLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEntityType sets the "entity_type" field.
func (m *ChangeLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ChangeLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ChangeLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *ChangeLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ChangeLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ChangeLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAction sets the "action" field.
func (m *ChangeLogMutation) SetAction(c changelog.Action) {
	m.action = &c
}

// Action returns the value of the "action" field in the mutation.
func (m *ChangeLogMutation) Action() (r changelog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldAction(ctx context.Context) (v changelog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ChangeLogMutation) ResetAction() {
	m.action = nil
}

// SetFieldField sets the "field" field.
func (m *ChangeLogMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *ChangeLogMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) GetOldField(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ClearFieldField clears the value of the "field" field.
func (m *ChangeLogMutation) ClearFieldField() {
	m.field = nil
	m.clearedFields[changelog.FieldField] = struct{}{}
}

// FieldFieldCleared returns if the "field" field was cleared in this mutation.
func (m *ChangeLogMutation) FieldFieldCleared() bool {
	_, ok := m.clearedFields[changelog.FieldField]
	return ok
}

// ResetFieldField resets all changes to the "field" field.
func (m *ChangeLogMutation) ResetFieldField() {
	m.field = nil
	delete(m.clearedFields, changelog.FieldField)
}

// SetOldValue sets the "old_value" field.
func (m *ChangeLogMutation) SetOldValue(s string) {
	m.old_value = &s
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *ChangeLogMutation) OldValue() (r string, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldOldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *ChangeLogMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[changelog.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *ChangeLogMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[changelog.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *ChangeLogMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, changelog.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *ChangeLogMutation) SetNewValue(s string) {
	m.new_value = &s
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *ChangeLogMutation) NewValue() (r string, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldNewValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *ChangeLogMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[changelog.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *ChangeLogMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[changelog.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *ChangeLogMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, changelog.FieldNewValue)
}

// SetUserID sets the "user_id" field.
func (m *ChangeLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChangeLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChangeLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *ChangeLogMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ChangeLogMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ChangeLog entity.
// If the ChangeLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLogMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *ChangeLogMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[changelog.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *ChangeLogMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[changelog.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ChangeLogMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, changelog.FieldRequestID)
}

// Where appends a list predicates to the ChangeLogMutation builder.
func (m *ChangeLogMutation) Where(ps ...predicate.ChangeLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangeLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangeLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangeLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangeLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangeLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangeLog).
func (m *ChangeLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangeLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, changelog.FieldCreatedAt)
	}
	if m.entity_type != nil {
		fields = append(fields, changelog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, changelog.FieldEntityID)
	}
	if m.action != nil {
		fields = append(fields, changelog.FieldAction)
	}
	if m.field != nil {
		fields = append(fields, changelog.FieldField)
	}
	if m.old_value != nil {
		fields = append(fields, changelog.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, changelog.FieldNewValue)
	}
	if m.user_id != nil {
		fields = append(fields, changelog.FieldUserID)
	}
	if m.request_id != nil {
		fields = append(fields, changelog.FieldRequestID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangeLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changelog.FieldCreatedAt:
		return m.CreatedAt()
	case changelog.FieldEntityType:
		return m.EntityType()
	case changelog.FieldEntityID:
		return m.EntityID()
	case changelog.FieldAction:
		return m.Action()
	case changelog.FieldField:
		return m.GetField()
	case changelog.FieldOldValue:
		return m.OldValue()
	case changelog.FieldNewValue:
		return m.NewValue()
	case changelog.FieldUserID:
		return m.UserID()
	case changelog.FieldRequestID:
		return m.RequestID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangeLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case changelog.FieldEntityType:
		return m.OldEntityType(ctx)
	case changelog.FieldEntityID:
		return m.OldEntityID(ctx)
	case changelog.FieldAction:
		return m.OldAction(ctx)
	case changelog.FieldField:
		return m.GetOldField(ctx)
	case changelog.FieldOldValue:
		return m.OldOldValue(ctx)
	case changelog.FieldNewValue:
		return m.OldNewValue(ctx)
	case changelog.FieldUserID:
		return m.OldUserID(ctx)
	case changelog.FieldRequestID:
		return m.OldRequestID(ctx)
	}
	return nil, fmt.Errorf("unknown ChangeLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case changelog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case changelog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case changelog.FieldAction:
		v, ok := value.(changelog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case changelog.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case changelog.FieldOldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case changelog.FieldNewValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case changelog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case changelog.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangeLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangeLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChangeLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangeLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changelog.FieldField) {
		fields = append(fields, changelog.FieldField)
	}
	if m.FieldCleared(changelog.FieldOldValue) {
		fields = append(fields, changelog.FieldOldValue)
	}
	if m.FieldCleared(changelog.FieldNewValue) {
		fields = append(fields, changelog.FieldNewValue)
	}
	if m.FieldCleared(changelog.FieldRequestID) {
		fields = append(fields, changelog.FieldRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangeLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangeLogMutation) ClearField(name string) error {
	switch name {
	case changelog.FieldField:
		m.ClearFieldField()
		return nil
	case changelog.FieldOldValue:
		m.ClearOldValue()
		return nil
	case changelog.FieldNewValue:
		m.ClearNewValue()
		return nil
	case changelog.FieldRequestID:
		m.ClearRequestID()
		return nil
	}
	return fmt.Errorf("unknown ChangeLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangeLogMutation) ResetField(name string) error {
	switch name {
	case changelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case changelog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case changelog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case changelog.FieldAction:
		m.ResetAction()
		return nil
	case changelog.FieldField:
		m.ResetFieldField()
		return nil
	case changelog.FieldOldValue:
		m.ResetOldValue()
		return nil
	case changelog.FieldNewValue:
		m.ResetNewValue()
		return nil
	case changelog.FieldUserID:
		m.ResetUserID()
		return nil
	case changelog.FieldRequestID:
		m.ResetRequestID()
		return nil
	}
	return fmt.Errorf("unknown ChangeLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangeLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangeLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangeLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangeLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangeLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangeLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangeLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChangeLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangeLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChangeLog edge %s", name)
}

// PhaseMutation represents an operation that mutates the Phase nodes in the graph.
type PhaseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	phase_group   *string
	phase_name    *string
	sequence      *int
	addsequence   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Phase, error)
	predicates    []predicate.Phase
}

var _ ent.Mutation = (*PhaseMutation)(nil)

// phaseOption allows management of the mutation configuration using functional options.
type phaseOption func(*PhaseMutation)

// newPhaseMutation creates new mutation for the Phase entity.
func newPhaseMutation(c config, op Op, opts ...phaseOption) *PhaseMutation {
	m := &PhaseMutation{
		config:        c,
		op:            op,
		typ:           TypePhase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhaseID sets the ID field of the mutation.
func withPhaseID(id string) phaseOption {
	return func(m *PhaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Phase
		)
		m.oldValue = func(ctx context.Context) (*Phase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Phase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhase sets the old Phase of the mutation.
func withPhase(node *Phase) phaseOption {
	return func(m *PhaseMutation) {
		m.oldValue = func(context.Context) (*Phase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Phase entities.
func (m *PhaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Phase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PhaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPhaseGroup sets the "phase_group" field.
func (m *PhaseMutation) SetPhaseGroup(s string) {
	m.phase_group = &s
}

// PhaseGroup returns the value of the "phase_group" field in the mutation.
func (m *PhaseMutation) PhaseGroup() (r string, exists bool) {
	v := m.phase_group
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseGroup returns the old "phase_group" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldPhaseGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseGroup: %w", err)
	}
	return oldValue.PhaseGroup, nil
}

// ResetPhaseGroup resets all changes to the "phase_group" field.
func (m *PhaseMutation) ResetPhaseGroup() {
	m.phase_group = nil
}

// SetPhaseName sets the "phase_name" field.
func (m *PhaseMutation) SetPhaseName(s string) {
	m.phase_name = &s
}

// PhaseName returns the value of the "phase_name" field in the mutation.
func (m *PhaseMutation) PhaseName() (r string, exists bool) {
	v := m.phase_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseName returns the old "phase_name" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldPhaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseName: %w", err)
	}
	return oldValue.PhaseName, nil
}

// ResetPhaseName resets all changes to the "phase_name" field.
func (m *PhaseMutation) ResetPhaseName() {
	m.phase_name = nil
}

// SetSequence sets the "sequence" field.
func (m *PhaseMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PhaseMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PhaseMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PhaseMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PhaseMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// Where appends a list predicates to the PhaseMutation builder.
func (m *PhaseMutation) Where(ps ...predicate.Phase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Phase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Phase).
func (m *PhaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhaseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, phase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, phase.FieldUpdatedAt)
	}
	if m.phase_group != nil {
		fields = append(fields, phase.FieldPhaseGroup)
	}
	if m.phase_name != nil {
		fields = append(fields, phase.FieldPhaseName)
	}
	if m.sequence != nil {
		fields = append(fields, phase.FieldSequence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phase.FieldCreatedAt:
		return m.CreatedAt()
	case phase.FieldUpdatedAt:
		return m.UpdatedAt()
	case phase.FieldPhaseGroup:
		return m.PhaseGroup()
	case phase.FieldPhaseName:
		return m.PhaseName()
	case phase.FieldSequence:
		return m.Sequence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case phase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case phase.FieldPhaseGroup:
		return m.OldPhaseGroup(ctx)
	case phase.FieldPhaseName:
		return m.OldPhaseName(ctx)
	case phase.FieldSequence:
		return m.OldSequence(ctx)
	}
	return nil, fmt.Errorf("unknown Phase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case phase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case phase.FieldPhaseGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseGroup(v)
		return nil
	case phase.FieldPhaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseName(v)
		return nil
	case phase.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Phase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhaseMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, phase.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case phase.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case phase.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Phase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Phase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhaseMutation) ResetField(name string) error {
	switch name {
	case phase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case phase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case phase.FieldPhaseGroup:
		m.ResetPhaseGroup()
		return nil
	case phase.FieldPhaseName:
		m.ResetPhaseName()
		return nil
	case phase.FieldSequence:
		m.ResetSequence()
		return nil
	}
	return fmt.Errorf("unknown Phase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Phase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Phase edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	name                 *string
	name_abbreviation    *string
	status               *project.Status
	description          *string
	success_criteria     *string
	sponsor              *string
	created_by           *string
	clearedFields        map[string]struct{}
	solutions            map[string]struct{}
	removedsolutions     map[string]struct{}
	clearedsolutions     bool
	subcomponents        map[string]struct{}
	removedsubcomponents map[string]struct{}
	clearedsubcomponents bool
	done                 bool
	oldValue             func(context.Context) (*Project, error)
	predicates           []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProjectMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProjectMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProjectMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[project.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProjectMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProjectMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, project.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetNameAbbreviation sets the "name_abbreviation" field.
func (m *ProjectMutation) SetNameAbbreviation(s string) {
	m.name_abbreviation = &s
}

// NameAbbreviation returns the value of the "name_abbreviation" field in the mutation.
func (m *ProjectMutation) NameAbbreviation() (r string, exists bool) {
	v := m.name_abbreviation
	if v == nil {
		return
	}
	return *v, true
}

// OldNameAbbreviation returns the old "name_abbreviation" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldNameAbbreviation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameAbbreviation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameAbbreviation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameAbbreviation: %w", err)
	}
	return oldValue.NameAbbreviation, nil
}

// ResetNameAbbreviation resets all changes to the "name_abbreviation" field.
func (m *ProjectMutation) ResetNameAbbreviation() {
	m.name_abbreviation = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(pr project.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r project.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v project.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetSuccessCriteria sets the "success_criteria" field.
func (m *ProjectMutation) SetSuccessCriteria(s string) {
	m.success_criteria = &s
}

// SuccessCriteria returns the value of the "success_criteria" field in the mutation.
func (m *ProjectMutation) SuccessCriteria() (r string, exists bool) {
	v := m.success_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCriteria returns the old "success_criteria" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSuccessCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCriteria: %w", err)
	}
	return oldValue.SuccessCriteria, nil
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (m *ProjectMutation) ClearSuccessCriteria() {
	m.success_criteria = nil
	m.clearedFields[project.FieldSuccessCriteria] = struct{}{}
}

// SuccessCriteriaCleared returns if the "success_criteria" field was cleared in this mutation.
func (m *ProjectMutation) SuccessCriteriaCleared() bool {
	_, ok := m.clearedFields[project.FieldSuccessCriteria]
	return ok
}

// ResetSuccessCriteria resets all changes to the "success_criteria" field.
func (m *ProjectMutation) ResetSuccessCriteria() {
	m.success_criteria = nil
	delete(m.clearedFields, project.FieldSuccessCriteria)
}

// SetSponsor sets the "sponsor" field.
func (m *ProjectMutation) SetSponsor(s string) {
	m.sponsor = &s
}

// Sponsor returns the value of the "sponsor" field in the mutation.
func (m *ProjectMutation) Sponsor() (r string, exists bool) {
	v := m.sponsor
	if v == nil {
		return
	}
	return *v, true
}

// OldSponsor returns the old "sponsor" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSponsor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSponsor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSponsor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSponsor: %w", err)
	}
	return oldValue.Sponsor, nil
}

// ResetSponsor resets all changes to the "sponsor" field.
func (m *ProjectMutation) ResetSponsor() {
	m.sponsor = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ProjectMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ProjectMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ProjectMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[project.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ProjectMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[project.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ProjectMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, project.FieldCreatedBy)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by ids.
func (m *ProjectMutation) AddSolutionIDs(ids ...string) {
	if m.solutions == nil {
		m.solutions = make(map[string]struct{})
	}
	for i := range ids {
		m.solutions[ids[i]] = struct{}{}
	}
}

// ClearSolutions clears the "solutions" edge to the Solution entity.
func (m *ProjectMutation) ClearSolutions() {
	m.clearedsolutions = true
}

// SolutionsCleared reports if the "solutions" edge to the Solution entity was cleared.
func (m *ProjectMutation) SolutionsCleared() bool {
	return m.clearedsolutions
}

// RemoveSolutionIDs removes the "solutions" edge to the Solution entity by IDs.
func (m *ProjectMutation) RemoveSolutionIDs(ids ...string) {
	if m.removedsolutions == nil {
		m.removedsolutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.solutions, ids[i])
		m.removedsolutions[ids[i]] = struct{}{}
	}
}

// RemovedSolutions returns the removed IDs of the "solutions" edge to the Solution entity.
func (m *ProjectMutation) RemovedSolutionsIDs() (ids []string) {
	for id := range m.removedsolutions {
		ids = append(ids, id)
	}
	return
}

// SolutionsIDs returns the "solutions" edge IDs in the mutation.
func (m *ProjectMutation) SolutionsIDs() (ids []string) {
	for id := range m.solutions {
		ids = append(ids, id)
	}
	return
}

// ResetSolutions resets all changes to the "solutions" edge.
func (m *ProjectMutation) ResetSolutions() {
	m.solutions = nil
	m.clearedsolutions = false
	m.removedsolutions = nil
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by ids.
func (m *ProjectMutation) AddSubcomponentIDs(ids ...string) {
	if m.subcomponents == nil {
		m.subcomponents = make(map[string]struct{})
	}
	for i := range ids {
		m.subcomponents[ids[i]] = struct{}{}
	}
}

// ClearSubcomponents clears the "subcomponents" edge to the Subcomponent entity.
func (m *ProjectMutation) ClearSubcomponents() {
	m.clearedsubcomponents = true
}

// SubcomponentsCleared reports if the "subcomponents" edge to the Subcomponent entity was cleared.
func (m *ProjectMutation) SubcomponentsCleared() bool {
	return m.clearedsubcomponents
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to the Subcomponent entity by IDs.
func (m *ProjectMutation) RemoveSubcomponentIDs(ids ...string) {
	if m.removedsubcomponents == nil {
		m.removedsubcomponents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.subcomponents, ids[i])
		m.removedsubcomponents[ids[i]] = struct{}{}
	}
}

// RemovedSubcomponents returns the removed IDs of the "subcomponents" edge to the Subcomponent entity.
func (m *ProjectMutation) RemovedSubcomponentsIDs() (ids []string) {
	for id := range m.removedsubcomponents {
		ids = append(ids, id)
	}
	return
}

// SubcomponentsIDs returns the "subcomponents" edge IDs in the mutation.
func (m *ProjectMutation) SubcomponentsIDs() (ids []string) {
	for id := range m.subcomponents {
		ids = append(ids, id)
	}
	return
}

// ResetSubcomponents resets all changes to the "subcomponents" edge.
func (m *ProjectMutation) ResetSubcomponents() {
	m.subcomponents = nil
	m.clearedsubcomponents = false
	m.removedsubcomponents = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, project.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.name_abbreviation != nil {
		fields = append(fields, project.FieldNameAbbreviation)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.success_criteria != nil {
		fields = append(fields, project.FieldSuccessCriteria)
	}
	if m.sponsor != nil {
		fields = append(fields, project.FieldSponsor)
	}
	if m.created_by != nil {
		fields = append(fields, project.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldDeletedAt:
		return m.DeletedAt()
	case project.FieldName:
		return m.Name()
	case project.FieldNameAbbreviation:
		return m.NameAbbreviation()
	case project.FieldStatus:
		return m.Status()
	case project.FieldDescription:
		return m.Description()
	case project.FieldSuccessCriteria:
		return m.SuccessCriteria()
	case project.FieldSponsor:
		return m.Sponsor()
	case project.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldNameAbbreviation:
		return m.OldNameAbbreviation(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldSuccessCriteria:
		return m.OldSuccessCriteria(ctx)
	case project.FieldSponsor:
		return m.OldSponsor(ctx)
	case project.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldNameAbbreviation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameAbbreviation(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(project.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldSuccessCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCriteria(v)
		return nil
	case project.FieldSponsor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSponsor(v)
		return nil
	case project.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDeletedAt) {
		fields = append(fields, project.FieldDeletedAt)
	}
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldSuccessCriteria) {
		fields = append(fields, project.FieldSuccessCriteria)
	}
	if m.FieldCleared(project.FieldCreatedBy) {
		fields = append(fields, project.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldSuccessCriteria:
		m.ClearSuccessCriteria()
		return nil
	case project.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldNameAbbreviation:
		m.ResetNameAbbreviation()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldSuccessCriteria:
		m.ResetSuccessCriteria()
		return nil
	case project.FieldSponsor:
		m.ResetSponsor()
		return nil
	case project.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.solutions != nil {
		edges = append(edges, project.EdgeSolutions)
	}
	if m.subcomponents != nil {
		edges = append(edges, project.EdgeSubcomponents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.solutions))
		for id := range m.solutions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSubcomponents:
		ids := make([]ent.Value, 0, len(m.subcomponents))
		for id := range m.subcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsolutions != nil {
		edges = append(edges, project.EdgeSolutions)
	}
	if m.removedsubcomponents != nil {
		edges = append(edges, project.EdgeSubcomponents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.removedsolutions))
		for id := range m.removedsolutions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSubcomponents:
		ids := make([]ent.Value, 0, len(m.removedsubcomponents))
		for id := range m.removedsubcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsolutions {
		edges = append(edges, project.EdgeSolutions)
	}
	if m.clearedsubcomponents {
		edges = append(edges, project.EdgeSubcomponents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSolutions:
		return m.clearedsolutions
	case project.EdgeSubcomponents:
		return m.clearedsubcomponents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSolutions:
		m.ResetSolutions()
		return nil
	case project.EdgeSubcomponents:
		m.ResetSubcomponents()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	expires_at    *time.Time
	revoked_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *SessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *SessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *SessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[session.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *SessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *SessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, session.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *SessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[session.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.user != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.expires_at != nil {
		fields = append(fields, session.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, session.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldExpiresAt:
		return m.ExpiresAt()
	case session.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case session.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case session.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldRevokedAt) {
		fields = append(fields, session.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case session.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, session.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, session.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SolutionMutation represents an operation that mutates the Solution nodes in the graph.
type SolutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	deleted_at             *time.Time
	name                   *string
	version                *string
	status                 *solution.Status
	priority               *int
	addpriority            *int
	due_date               *time.Time
	current_phase          *string
	rag_status             *solution.RagStatus
	rag_source             *solution.RagSource
	rag_reason             *string
	description            *string
	success_criteria       *string
	owner                  *string
	assignee               *string
	approver               *string
	key_stakeholder        *string
	blockers               *string
	risks                  *string
	completed_at           *time.Time
	created_by             *string
	clearedFields          map[string]struct{}
	project                *string
	clearedproject         bool
	solution_phases        map[string]struct{}
	removedsolution_phases map[string]struct{}
	clearedsolution_phases bool
	subcomponents          map[string]struct{}
	removedsubcomponents   map[string]struct{}
	clearedsubcomponents   bool
	done                   bool
	oldValue               func(context.Context) (*Solution, error)
	predicates             []predicate.Solution
}

var _ ent.Mutation = (*SolutionMutation)(nil)

// solutionOption allows management of the mutation configuration using functional options.
type solutionOption func(*SolutionMutation)

// newSolutionMutation creates new mutation for the Solution entity.
func newSolutionMutation(c config, op Op, opts ...solutionOption) *SolutionMutation {
	m := &SolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeSolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSolutionID sets the ID field of the mutation.
func withSolutionID(id string) solutionOption {
	return func(m *SolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Solution
		)
		m.oldValue = func(ctx context.Context) (*Solution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Solution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSolution sets the old Solution of the mutation.
func withSolution(node *Solution) solutionOption {
	return func(m *SolutionMutation) {
		m.oldValue = func(context.Context) (*Solution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Solution entities.
func (m *SolutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SolutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SolutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Solution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SolutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SolutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SolutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SolutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SolutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SolutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SolutionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SolutionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SolutionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[solution.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SolutionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[solution.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SolutionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, solution.FieldDeletedAt)
}

// SetProjectID sets the "project_id" field.
func (m *SolutionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SolutionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SolutionMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SolutionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SolutionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SolutionMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *SolutionMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *SolutionMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *SolutionMutation) ResetVersion() {
	m.version = nil
}

// SetStatus sets the "status" field.
func (m *SolutionMutation) SetStatus(s solution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SolutionMutation) Status() (r solution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldStatus(ctx context.Context) (v solution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SolutionMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *SolutionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SolutionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *SolutionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SolutionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SolutionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDueDate sets the "due_date" field.
func (m *SolutionMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *SolutionMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *SolutionMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[solution.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *SolutionMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[solution.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *SolutionMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, solution.FieldDueDate)
}

// SetCurrentPhase sets the "current_phase" field.
func (m *SolutionMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *SolutionMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCurrentPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *SolutionMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[solution.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *SolutionMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[solution.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *SolutionMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, solution.FieldCurrentPhase)
}

// SetRagStatus sets the "rag_status" field.
func (m *SolutionMutation) SetRagStatus(ss solution.RagStatus) {
	m.rag_status = &ss
}

// RagStatus returns the value of the "rag_status" field in the mutation.
func (m *SolutionMutation) RagStatus() (r solution.RagStatus, exists bool) {
	v := m.rag_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRagStatus returns the old "rag_status" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldRagStatus(ctx context.Context) (v solution.RagStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRagStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRagStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRagStatus: %w", err)
	}
	return oldValue.RagStatus, nil
}

// ResetRagStatus resets all changes to the "rag_status" field.
func (m *SolutionMutation) ResetRagStatus() {
	m.rag_status = nil
}

// SetRagSource sets the "rag_source" field.
func (m *SolutionMutation) SetRagSource(ss solution.RagSource) {
	m.rag_source = &ss
}

// RagSource returns the value of the "rag_source" field in the mutation.
func (m *SolutionMutation) RagSource() (r solution.RagSource, exists bool) {
	v := m.rag_source
	if v == nil {
		return
	}
	return *v, true
}

// OldRagSource returns the old "rag_source" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldRagSource(ctx context.Context) (v solution.RagSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRagSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRagSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRagSource: %w", err)
	}
	return oldValue.RagSource, nil
}

// ResetRagSource resets all changes to the "rag_source" field.
func (m *SolutionMutation) ResetRagSource() {
	m.rag_source = nil
}

// SetRagReason sets the "rag_reason" field.
func (m *SolutionMutation) SetRagReason(s string) {
	m.rag_reason = &s
}

// RagReason returns the value of the "rag_reason" field in the mutation.
func (m *SolutionMutation) RagReason() (r string, exists bool) {
	v := m.rag_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRagReason returns the old "rag_reason" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldRagReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRagReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRagReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRagReason: %w", err)
	}
	return oldValue.RagReason, nil
}

// ClearRagReason clears the value of the "rag_reason" field.
func (m *SolutionMutation) ClearRagReason() {
	m.rag_reason = nil
	m.clearedFields[solution.FieldRagReason] = struct{}{}
}

// RagReasonCleared returns if the "rag_reason" field was cleared in this mutation.
func (m *SolutionMutation) RagReasonCleared() bool {
	_, ok := m.clearedFields[solution.FieldRagReason]
	return ok
}

// ResetRagReason resets all changes to the "rag_reason" field.
func (m *SolutionMutation) ResetRagReason() {
	m.rag_reason = nil
	delete(m.clearedFields, solution.FieldRagReason)
}

// SetDescription sets the "description" field.
func (m *SolutionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SolutionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SolutionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[solution.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SolutionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[solution.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SolutionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, solution.FieldDescription)
}

// SetSuccessCriteria sets the "success_criteria" field.
func (m *SolutionMutation) SetSuccessCriteria(s string) {
	m.success_criteria = &s
}

// SuccessCriteria returns the value of the "success_criteria" field in the mutation.
func (m *SolutionMutation) SuccessCriteria() (r string, exists bool) {
	v := m.success_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCriteria returns the old "success_criteria" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldSuccessCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCriteria: %w", err)
	}
	return oldValue.SuccessCriteria, nil
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (m *SolutionMutation) ClearSuccessCriteria() {
	m.success_criteria = nil
	m.clearedFields[solution.FieldSuccessCriteria] = struct{}{}
}

// SuccessCriteriaCleared returns if the "success_criteria" field was cleared in this mutation.
func (m *SolutionMutation) SuccessCriteriaCleared() bool {
	_, ok := m.clearedFields[solution.FieldSuccessCriteria]
	return ok
}

// ResetSuccessCriteria resets all changes to the "success_criteria" field.
func (m *SolutionMutation) ResetSuccessCriteria() {
	m.success_criteria = nil
	delete(m.clearedFields, solution.FieldSuccessCriteria)
}

// SetOwner sets the "owner" field.
func (m *SolutionMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *SolutionMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *SolutionMutation) ResetOwner() {
	m.owner = nil
}

// SetAssignee sets the "assignee" field.
func (m *SolutionMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *SolutionMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *SolutionMutation) ResetAssignee() {
	m.assignee = nil
}

// SetApprover sets the "approver" field.
func (m *SolutionMutation) SetApprover(s string) {
	m.approver = &s
}

// Approver returns the value of the "approver" field in the mutation.
func (m *SolutionMutation) Approver() (r string, exists bool) {
	v := m.approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprover returns the old "approver" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldApprover(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprover: %w", err)
	}
	return oldValue.Approver, nil
}

// ClearApprover clears the value of the "approver" field.
func (m *SolutionMutation) ClearApprover() {
	m.approver = nil
	m.clearedFields[solution.FieldApprover] = struct{}{}
}

// ApproverCleared returns if the "approver" field was cleared in this mutation.
func (m *SolutionMutation) ApproverCleared() bool {
	_, ok := m.clearedFields[solution.FieldApprover]
	return ok
}

// ResetApprover resets all changes to the "approver" field.
func (m *SolutionMutation) ResetApprover() {
	m.approver = nil
	delete(m.clearedFields, solution.FieldApprover)
}

// SetKeyStakeholder sets the "key_stakeholder" field.
func (m *SolutionMutation) SetKeyStakeholder(s string) {
	m.key_stakeholder = &s
}

// KeyStakeholder returns the value of the "key_stakeholder" field in the mutation.
func (m *SolutionMutation) KeyStakeholder() (r string, exists bool) {
	v := m.key_stakeholder
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyStakeholder returns the old "key_stakeholder" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldKeyStakeholder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyStakeholder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyStakeholder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyStakeholder: %w", err)
	}
	return oldValue.KeyStakeholder, nil
}

// ClearKeyStakeholder clears the value of the "key_stakeholder" field.
func (m *SolutionMutation) ClearKeyStakeholder() {
	m.key_stakeholder = nil
	m.clearedFields[solution.FieldKeyStakeholder] = struct{}{}
}

// KeyStakeholderCleared returns if the "key_stakeholder" field was cleared in this mutation.
func (m *SolutionMutation) KeyStakeholderCleared() bool {
	_, ok := m.clearedFields[solution.FieldKeyStakeholder]
	return ok
}

// ResetKeyStakeholder resets all changes to the "key_stakeholder" field.
func (m *SolutionMutation) ResetKeyStakeholder() {
	m.key_stakeholder = nil
	delete(m.clearedFields, solution.FieldKeyStakeholder)
}

// SetBlockers sets the "blockers" field.
func (m *SolutionMutation) SetBlockers(s string) {
	m.blockers = &s
}

// Blockers returns the value of the "blockers" field in the mutation.
func (m *SolutionMutation) Blockers() (r string, exists bool) {
	v := m.blockers
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockers returns the old "blockers" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldBlockers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockers: %w", err)
	}
	return oldValue.Blockers, nil
}

// ClearBlockers clears the value of the "blockers" field.
func (m *SolutionMutation) ClearBlockers() {
	m.blockers = nil
	m.clearedFields[solution.FieldBlockers] = struct{}{}
}

// BlockersCleared returns if the "blockers" field was cleared in this mutation.
func (m *SolutionMutation) BlockersCleared() bool {
	_, ok := m.clearedFields[solution.FieldBlockers]
	return ok
}

// ResetBlockers resets all changes to the "blockers" field.
func (m *SolutionMutation) ResetBlockers() {
	m.blockers = nil
	delete(m.clearedFields, solution.FieldBlockers)
}

// SetRisks sets the "risks" field.
func (m *SolutionMutation) SetRisks(s string) {
	m.risks = &s
}

// Risks returns the value of the "risks" field in the mutation.
func (m *SolutionMutation) Risks() (r string, exists bool) {
	v := m.risks
	if v == nil {
		return
	}
	return *v, true
}

// OldRisks returns the old "risks" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldRisks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisks: %w", err)
	}
	return oldValue.Risks, nil
}

// ClearRisks clears the value of the "risks" field.
func (m *SolutionMutation) ClearRisks() {
	m.risks = nil
	m.clearedFields[solution.FieldRisks] = struct{}{}
}

// RisksCleared returns if the "risks" field was cleared in this mutation.
func (m *SolutionMutation) RisksCleared() bool {
	_, ok := m.clearedFields[solution.FieldRisks]
	return ok
}

// ResetRisks resets all changes to the "risks" field.
func (m *SolutionMutation) ResetRisks() {
	m.risks = nil
	delete(m.clearedFields, solution.FieldRisks)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SolutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SolutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SolutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[solution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SolutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[solution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SolutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, solution.FieldCompletedAt)
}

// SetCreatedBy sets the "created_by" field.
func (m *SolutionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *SolutionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *SolutionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[solution.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *SolutionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[solution.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *SolutionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, solution.FieldCreatedBy)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SolutionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[solution.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SolutionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SolutionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SolutionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddSolutionPhaseIDs adds the "solution_phases" edge to the SolutionPhase entity by ids.
func (m *SolutionMutation) AddSolutionPhaseIDs(ids ...string) {
	if m.solution_phases == nil {
		m.solution_phases = make(map[string]struct{})
	}
	for i := range ids {
		m.solution_phases[ids[i]] = struct{}{}
	}
}

// ClearSolutionPhases clears the "solution_phases" edge to the SolutionPhase entity.
func (m *SolutionMutation) ClearSolutionPhases() {
	m.clearedsolution_phases = true
}

// SolutionPhasesCleared reports if the "solution_phases" edge to the SolutionPhase entity was cleared.
func (m *SolutionMutation) SolutionPhasesCleared() bool {
	return m.clearedsolution_phases
}

// RemoveSolutionPhaseIDs removes the "solution_phases" edge to the SolutionPhase entity by IDs.
func (m *SolutionMutation) RemoveSolutionPhaseIDs(ids ...string) {
	if m.removedsolution_phases == nil {
		m.removedsolution_phases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.solution_phases, ids[i])
		m.removedsolution_phases[ids[i]] = struct{}{}
	}
}

// RemovedSolutionPhases returns the removed IDs of the "solution_phases" edge to the SolutionPhase entity.
func (m *SolutionMutation) RemovedSolutionPhasesIDs() (ids []string) {
	for id := range m.removedsolution_phases {
		ids = append(ids, id)
	}
	return
}

// SolutionPhasesIDs returns the "solution_phases" edge IDs in the mutation.
func (m *SolutionMutation) SolutionPhasesIDs() (ids []string) {
	for id := range m.solution_phases {
		ids = append(ids, id)
	}
	return
}

// ResetSolutionPhases resets all changes to the "solution_phases" edge.
func (m *SolutionMutation) ResetSolutionPhases() {
	m.solution_phases = nil
	m.clearedsolution_phases = false
	m.removedsolution_phases = nil
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by ids.
func (m *SolutionMutation) AddSubcomponentIDs(ids ...string) {
	if m.subcomponents == nil {
		m.subcomponents = make(map[string]struct{})
	}
	for i := range ids {
		m.subcomponents[ids[i]] = struct{}{}
	}
}

// ClearSubcomponents clears the "subcomponents" edge to the Subcomponent entity.
func (m *SolutionMutation) ClearSubcomponents() {
	m.clearedsubcomponents = true
}

// SubcomponentsCleared reports if the "subcomponents" edge to the Subcomponent entity was cleared.
func (m *SolutionMutation) SubcomponentsCleared() bool {
	return m.clearedsubcomponents
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to the Subcomponent entity by IDs.
func (m *SolutionMutation) RemoveSubcomponentIDs(ids ...string) {
	if m.removedsubcomponents == nil {
		m.removedsubcomponents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.subcomponents, ids[i])
		m.removedsubcomponents[ids[i]] = struct{}{}
	}
}

// RemovedSubcomponents returns the removed IDs of the "subcomponents" edge to the Subcomponent entity.
func (m *SolutionMutation) RemovedSubcomponentsIDs() (ids []string) {
	for id := range m.removedsubcomponents {
		ids = append(ids, id)
	}
	return
}

// SubcomponentsIDs returns the "subcomponents" edge IDs in the mutation.
func (m *SolutionMutation) SubcomponentsIDs() (ids []string) {
	for id := range m.subcomponents {
		ids = append(ids, id)
	}
	return
}

// ResetSubcomponents resets all changes to the "subcomponents" edge.
func (m *SolutionMutation) ResetSubcomponents() {
	m.subcomponents = nil
	m.clearedsubcomponents = false
	m.removedsubcomponents = nil
}

// Where appends a list predicates to the SolutionMutation builder.
func (m *SolutionMutation) Where(ps ...predicate.Solution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Solution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Solution).
func (m *SolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SolutionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.created_at != nil {
		fields = append(fields, solution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, solution.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, solution.FieldDeletedAt)
	}
	if m.project != nil {
		fields = append(fields, solution.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, solution.FieldName)
	}
	if m.version != nil {
		fields = append(fields, solution.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, solution.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, solution.FieldPriority)
	}
	if m.due_date != nil {
		fields = append(fields, solution.FieldDueDate)
	}
	if m.current_phase != nil {
		fields = append(fields, solution.FieldCurrentPhase)
	}
	if m.rag_status != nil {
		fields = append(fields, solution.FieldRagStatus)
	}
	if m.rag_source != nil {
		fields = append(fields, solution.FieldRagSource)
	}
	if m.rag_reason != nil {
		fields = append(fields, solution.FieldRagReason)
	}
	if m.description != nil {
		fields = append(fields, solution.FieldDescription)
	}
	if m.success_criteria != nil {
		fields = append(fields, solution.FieldSuccessCriteria)
	}
	if m.owner != nil {
		fields = append(fields, solution.FieldOwner)
	}
	if m.assignee != nil {
		fields = append(fields, solution.FieldAssignee)
	}
	if m.approver != nil {
		fields = append(fields, solution.FieldApprover)
	}
	if m.key_stakeholder != nil {
		fields = append(fields, solution.FieldKeyStakeholder)
	}
	if m.blockers != nil {
		fields = append(fields, solution.FieldBlockers)
	}
	if m.risks != nil {
		fields = append(fields, solution.FieldRisks)
	}
	if m.completed_at != nil {
		fields = append(fields, solution.FieldCompletedAt)
	}
	if m.created_by != nil {
		fields = append(fields, solution.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case solution.FieldCreatedAt:
		return m.CreatedAt()
	case solution.FieldUpdatedAt:
		return m.UpdatedAt()
	case solution.FieldDeletedAt:
		return m.DeletedAt()
	case solution.FieldProjectID:
		return m.ProjectID()
	case solution.FieldName:
		return m.Name()
	case solution.FieldVersion:
		return m.Version()
	case solution.FieldStatus:
		return m.Status()
	case solution.FieldPriority:
		return m.Priority()
	case solution.FieldDueDate:
		return m.DueDate()
	case solution.FieldCurrentPhase:
		return m.CurrentPhase()
	case solution.FieldRagStatus:
		return m.RagStatus()
	case solution.FieldRagSource:
		return m.RagSource()
	case solution.FieldRagReason:
		return m.RagReason()
	case solution.FieldDescription:
		return m.Description()
	case solution.FieldSuccessCriteria:
		return m.SuccessCriteria()
	case solution.FieldOwner:
		return m.Owner()
	case solution.FieldAssignee:
		return m.Assignee()
	case solution.FieldApprover:
		return m.Approver()
	case solution.FieldKeyStakeholder:
		return m.KeyStakeholder()
	case solution.FieldBlockers:
		return m.Blockers()
	case solution.FieldRisks:
		return m.Risks()
	case solution.FieldCompletedAt:
		return m.CompletedAt()
	case solution.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case solution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case solution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case solution.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case solution.FieldProjectID:
		return m.OldProjectID(ctx)
	case solution.FieldName:
		return m.OldName(ctx)
	case solution.FieldVersion:
		return m.OldVersion(ctx)
	case solution.FieldStatus:
		return m.OldStatus(ctx)
	case solution.FieldPriority:
		return m.OldPriority(ctx)
	case solution.FieldDueDate:
		return m.OldDueDate(ctx)
	case solution.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case solution.FieldRagStatus:
		return m.OldRagStatus(ctx)
	case solution.FieldRagSource:
		return m.OldRagSource(ctx)
	case solution.FieldRagReason:
		return m.OldRagReason(ctx)
	case solution.FieldDescription:
		return m.OldDescription(ctx)
	case solution.FieldSuccessCriteria:
		return m.OldSuccessCriteria(ctx)
	case solution.FieldOwner:
		return m.OldOwner(ctx)
	case solution.FieldAssignee:
		return m.OldAssignee(ctx)
	case solution.FieldApprover:
		return m.OldApprover(ctx)
	case solution.FieldKeyStakeholder:
		return m.OldKeyStakeholder(ctx)
	case solution.FieldBlockers:
		return m.OldBlockers(ctx)
	case solution.FieldRisks:
		return m.OldRisks(ctx)
	case solution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case solution.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Solution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case solution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case solution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case solution.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case solution.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case solution.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case solution.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case solution.FieldStatus:
		v, ok := value.(solution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case solution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case solution.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case solution.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case solution.FieldRagStatus:
		v, ok := value.(solution.RagStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRagStatus(v)
		return nil
	case solution.FieldRagSource:
		v, ok := value.(solution.RagSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRagSource(v)
		return nil
	case solution.FieldRagReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRagReason(v)
		return nil
	case solution.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case solution.FieldSuccessCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCriteria(v)
		return nil
	case solution.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case solution.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case solution.FieldApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprover(v)
		return nil
	case solution.FieldKeyStakeholder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyStakeholder(v)
		return nil
	case solution.FieldBlockers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockers(v)
		return nil
	case solution.FieldRisks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisks(v)
		return nil
	case solution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case solution.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Solution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SolutionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, solution.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SolutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case solution.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case solution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Solution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SolutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(solution.FieldDeletedAt) {
		fields = append(fields, solution.FieldDeletedAt)
	}
	if m.FieldCleared(solution.FieldDueDate) {
		fields = append(fields, solution.FieldDueDate)
	}
	if m.FieldCleared(solution.FieldCurrentPhase) {
		fields = append(fields, solution.FieldCurrentPhase)
	}
	if m.FieldCleared(solution.FieldRagReason) {
		fields = append(fields, solution.FieldRagReason)
	}
	if m.FieldCleared(solution.FieldDescription) {
		fields = append(fields, solution.FieldDescription)
	}
	if m.FieldCleared(solution.FieldSuccessCriteria) {
		fields = append(fields, solution.FieldSuccessCriteria)
	}
	if m.FieldCleared(solution.FieldApprover) {
		fields = append(fields, solution.FieldApprover)
	}
	if m.FieldCleared(solution.FieldKeyStakeholder) {
		fields = append(fields, solution.FieldKeyStakeholder)
	}
	if m.FieldCleared(solution.FieldBlockers) {
		fields = append(fields, solution.FieldBlockers)
	}
	if m.FieldCleared(solution.FieldRisks) {
		fields = append(fields, solution.FieldRisks)
	}
	if m.FieldCleared(solution.FieldCompletedAt) {
		fields = append(fields, solution.FieldCompletedAt)
	}
	if m.FieldCleared(solution.FieldCreatedBy) {
		fields = append(fields, solution.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SolutionMutation) ClearField(name string) error {
	switch name {
	case solution.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case solution.FieldDueDate:
		m.ClearDueDate()
		return nil
	case solution.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case solution.FieldRagReason:
		m.ClearRagReason()
		return nil
	case solution.FieldDescription:
		m.ClearDescription()
		return nil
	case solution.FieldSuccessCriteria:
		m.ClearSuccessCriteria()
		return nil
	case solution.FieldApprover:
		m.ClearApprover()
		return nil
	case solution.FieldKeyStakeholder:
		m.ClearKeyStakeholder()
		return nil
	case solution.FieldBlockers:
		m.ClearBlockers()
		return nil
	case solution.FieldRisks:
		m.ClearRisks()
		return nil
	case solution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case solution.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Solution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SolutionMutation) ResetField(name string) error {
	switch name {
	case solution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case solution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case solution.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case solution.FieldProjectID:
		m.ResetProjectID()
		return nil
	case solution.FieldName:
		m.ResetName()
		return nil
	case solution.FieldVersion:
		m.ResetVersion()
		return nil
	case solution.FieldStatus:
		m.ResetStatus()
		return nil
	case solution.FieldPriority:
		m.ResetPriority()
		return nil
	case solution.FieldDueDate:
		m.ResetDueDate()
		return nil
	case solution.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case solution.FieldRagStatus:
		m.ResetRagStatus()
		return nil
	case solution.FieldRagSource:
		m.ResetRagSource()
		return nil
	case solution.FieldRagReason:
		m.ResetRagReason()
		return nil
	case solution.FieldDescription:
		m.ResetDescription()
		return nil
	case solution.FieldSuccessCriteria:
		m.ResetSuccessCriteria()
		return nil
	case solution.FieldOwner:
		m.ResetOwner()
		return nil
	case solution.FieldAssignee:
		m.ResetAssignee()
		return nil
	case solution.FieldApprover:
		m.ResetApprover()
		return nil
	case solution.FieldKeyStakeholder:
		m.ResetKeyStakeholder()
		return nil
	case solution.FieldBlockers:
		m.ResetBlockers()
		return nil
	case solution.FieldRisks:
		m.ResetRisks()
		return nil
	case solution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case solution.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Solution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, solution.EdgeProject)
	}
	if m.solution_phases != nil {
		edges = append(edges, solution.EdgeSolutionPhases)
	}
	if m.subcomponents != nil {
		edges = append(edges, solution.EdgeSubcomponents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SolutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case solution.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case solution.EdgeSolutionPhases:
		ids := make([]ent.Value, 0, len(m.solution_phases))
		for id := range m.solution_phases {
			ids = append(ids, id)
		}
		return ids
	case solution.EdgeSubcomponents:
		ids := make([]ent.Value, 0, len(m.subcomponents))
		for id := range m.subcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsolution_phases != nil {
		edges = append(edges, solution.EdgeSolutionPhases)
	}
	if m.removedsubcomponents != nil {
		edges = append(edges, solution.EdgeSubcomponents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SolutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case solution.EdgeSolutionPhases:
		ids := make([]ent.Value, 0, len(m.removedsolution_phases))
		for id := range m.removedsolution_phases {
			ids = append(ids, id)
		}
		return ids
	case solution.EdgeSubcomponents:
		ids := make([]ent.Value, 0, len(m.removedsubcomponents))
		for id := range m.removedsubcomponents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, solution.EdgeProject)
	}
	if m.clearedsolution_phases {
		edges = append(edges, solution.EdgeSolutionPhases)
	}
	if m.clearedsubcomponents {
		edges = append(edges, solution.EdgeSubcomponents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SolutionMutation) EdgeCleared(name string) bool {
	switch name {
	case solution.EdgeProject:
		return m.clearedproject
	case solution.EdgeSolutionPhases:
		return m.clearedsolution_phases
	case solution.EdgeSubcomponents:
		return m.clearedsubcomponents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SolutionMutation) ClearEdge(name string) error {
	switch name {
	case solution.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Solution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SolutionMutation) ResetEdge(name string) error {
	switch name {
	case solution.EdgeProject:
		m.ResetProject()
		return nil
	case solution.EdgeSolutionPhases:
		m.ResetSolutionPhases()
		return nil
	case solution.EdgeSubcomponents:
		m.ResetSubcomponents()
		return nil
	}
	return fmt.Errorf("unknown Solution edge %s", name)
}

// SolutionPhaseMutation represents an operation that mutates the SolutionPhase nodes in the graph.
type SolutionPhaseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	phase_id              *string
	is_enabled            *bool
	sequence_override     *int
	addsequence_override  *int
	clearedFields         map[string]struct{}
	solution              *string
	clearedsolution       bool
	phase_statuses        map[string]struct{}
	removedphase_statuses map[string]struct{}
	clearedphase_statuses bool
	done                  bool
	oldValue              func(context.Context) (*SolutionPhase, error)
	predicates            []predicate.SolutionPhase
}

var _ ent.Mutation = (*SolutionPhaseMutation)(nil)

// solutionphaseOption allows management of the mutation configuration using functional options.
type solutionphaseOption func(*SolutionPhaseMutation)

// newSolutionPhaseMutation creates new mutation for the SolutionPhase entity.
func newSolutionPhaseMutation(c config, op Op, opts ...solutionphaseOption) *SolutionPhaseMutation {
	m := &SolutionPhaseMutation{
		config:        c,
		op:            op,
		typ:           TypeSolutionPhase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSolutionPhaseID sets the ID field of the mutation.
func withSolutionPhaseID(id string) solutionphaseOption {
	return func(m *SolutionPhaseMutation) {
		var (
			err   error
			once  sync.Once
			value *SolutionPhase
		)
		m.oldValue = func(ctx context.Context) (*SolutionPhase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SolutionPhase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSolutionPhase sets the old SolutionPhase of the mutation.
func withSolutionPhase(node *SolutionPhase) solutionphaseOption {
	return func(m *SolutionPhaseMutation) {
		m.oldValue = func(context.Context) (*SolutionPhase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SolutionPhaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SolutionPhaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SolutionPhase entities.
func (m *SolutionPhaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SolutionPhaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SolutionPhaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SolutionPhase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SolutionPhaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SolutionPhaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SolutionPhaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SolutionPhaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SolutionPhaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SolutionPhaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSolutionID sets the "solution_id" field.
func (m *SolutionPhaseMutation) SetSolutionID(s string) {
	m.solution = &s
}

// SolutionID returns the value of the "solution_id" field in the mutation.
func (m *SolutionPhaseMutation) SolutionID() (r string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionID returns the old "solution_id" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldSolutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionID: %w", err)
	}
	return oldValue.SolutionID, nil
}

// ResetSolutionID resets all changes to the "solution_id" field.
func (m *SolutionPhaseMutation) ResetSolutionID() {
	m.solution = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *SolutionPhaseMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *SolutionPhaseMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *SolutionPhaseMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *SolutionPhaseMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *SolutionPhaseMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *SolutionPhaseMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetSequenceOverride sets the "sequence_override" field.
func (m *SolutionPhaseMutation) SetSequenceOverride(i int) {
	m.sequence_override = &i
	m.addsequence_override = nil
}

// SequenceOverride returns the value of the "sequence_override" field in the mutation.
func (m *SolutionPhaseMutation) SequenceOverride() (r int, exists bool) {
	v := m.sequence_override
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceOverride returns the old "sequence_override" field's value of the SolutionPhase entity.
// If the SolutionPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionPhaseMutation) OldSequenceOverride(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceOverride: %w", err)
	}
	return oldValue.SequenceOverride, nil
}

// AddSequenceOverride adds i to the "sequence_override" field.
func (m *SolutionPhaseMutation) AddSequenceOverride(i int) {
	if m.addsequence_override != nil {
		*m.addsequence_override += i
	} else {
		m.addsequence_override = &i
	}
}

// AddedSequenceOverride returns the value that was added to the "sequence_override" field in this mutation.
func (m *SolutionPhaseMutation) AddedSequenceOverride() (r int, exists bool) {
	v := m.addsequence_override
	if v == nil {
		return
	}
	return *v, true
}

// ClearSequenceOverride clears the value of the "sequence_override" field.
func (m *SolutionPhaseMutation) ClearSequenceOverride() {
	m.sequence_override = nil
	m.addsequence_override = nil
	m.clearedFields[solutionphase.FieldSequenceOverride] = struct{}{}
}

// SequenceOverrideCleared returns if the "sequence_override" field was cleared in this mutation.
func (m *SolutionPhaseMutation) SequenceOverrideCleared() bool {
	_, ok := m.clearedFields[solutionphase.FieldSequenceOverride]
	return ok
}

// ResetSequenceOverride resets all changes to the "sequence_override" field.
func (m *SolutionPhaseMutation) ResetSequenceOverride() {
	m.sequence_override = nil
	m.addsequence_override = nil
	delete(m.clearedFields, solutionphase.FieldSequenceOverride)
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (m *SolutionPhaseMutation) ClearSolution() {
	m.clearedsolution = true
	m.clearedFields[solutionphase.FieldSolutionID] = struct{}{}
}

// SolutionCleared reports if the "solution" edge to the Solution entity was cleared.
func (m *SolutionPhaseMutation) SolutionCleared() bool {
	return m.clearedsolution
}

// SolutionIDs returns the "solution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SolutionID instead. It exists only for internal usage by the builders.
func (m *SolutionPhaseMutation) SolutionIDs() (ids []string) {
	if id := m.solution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSolution resets all changes to the "solution" edge.
func (m *SolutionPhaseMutation) ResetSolution() {
	m.solution = nil
	m.clearedsolution = false
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by ids.
func (m *SolutionPhaseMutation) AddPhaseStatusIDs(ids ...string) {
	if m.phase_statuses == nil {
		m.phase_statuses = make(map[string]struct{})
	}
	for i := range ids {
		m.phase_statuses[ids[i]] = struct{}{}
	}
}

// ClearPhaseStatuses clears the "phase_statuses" edge to the SubcomponentPhaseStatus entity.
func (m *SolutionPhaseMutation) ClearPhaseStatuses() {
	m.clearedphase_statuses = true
}

// PhaseStatusesCleared reports if the "phase_statuses" edge to the SubcomponentPhaseStatus entity was cleared.
func (m *SolutionPhaseMutation) PhaseStatusesCleared() bool {
	return m.clearedphase_statuses
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (m *SolutionPhaseMutation) RemovePhaseStatusIDs(ids ...string) {
	if m.removedphase_statuses == nil {
		m.removedphase_statuses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.phase_statuses, ids[i])
		m.removedphase_statuses[ids[i]] = struct{}{}
	}
}

// RemovedPhaseStatuses returns the removed IDs of the "phase_statuses" edge to the SubcomponentPhaseStatus entity.
func (m *SolutionPhaseMutation) RemovedPhaseStatusesIDs() (ids []string) {
	for id := range m.removedphase_statuses {
		ids = append(ids, id)
	}
	return
}

// PhaseStatusesIDs returns the "phase_statuses" edge IDs in the mutation.
func (m *SolutionPhaseMutation) PhaseStatusesIDs() (ids []string) {
	for id := range m.phase_statuses {
		ids = append(ids, id)
	}
	return
}

// ResetPhaseStatuses resets all changes to the "phase_statuses" edge.
func (m *SolutionPhaseMutation) ResetPhaseStatuses() {
	m.phase_statuses = nil
	m.clearedphase_statuses = false
	m.removedphase_statuses = nil
}

// Where appends a list predicates to the SolutionPhaseMutation builder.
func (m *SolutionPhaseMutation) Where(ps ...predicate.SolutionPhase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SolutionPhaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SolutionPhaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SolutionPhase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SolutionPhaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SolutionPhaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SolutionPhase).
func (m *SolutionPhaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SolutionPhaseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, solutionphase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, solutionphase.FieldUpdatedAt)
	}
	if m.solution != nil {
		fields = append(fields, solutionphase.FieldSolutionID)
	}
	if m.phase_id != nil {
		fields = append(fields, solutionphase.FieldPhaseID)
	}
	if m.is_enabled != nil {
		fields = append(fields, solutionphase.FieldIsEnabled)
	}
	if m.sequence_override != nil {
		fields = append(fields, solutionphase.FieldSequenceOverride)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SolutionPhaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case solutionphase.FieldCreatedAt:
		return m.CreatedAt()
	case solutionphase.FieldUpdatedAt:
		return m.UpdatedAt()
	case solutionphase.FieldSolutionID:
		return m.SolutionID()
	case solutionphase.FieldPhaseID:
		return m.PhaseID()
	case solutionphase.FieldIsEnabled:
		return m.IsEnabled()
	case solutionphase.FieldSequenceOverride:
		return m.SequenceOverride()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SolutionPhaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case solutionphase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case solutionphase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case solutionphase.FieldSolutionID:
		return m.OldSolutionID(ctx)
	case solutionphase.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case solutionphase.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case solutionphase.FieldSequenceOverride:
		return m.OldSequenceOverride(ctx)
	}
	return nil, fmt.Errorf("unknown SolutionPhase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionPhaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case solutionphase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case solutionphase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case solutionphase.FieldSolutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionID(v)
		return nil
	case solutionphase.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case solutionphase.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case solutionphase.FieldSequenceOverride:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceOverride(v)
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SolutionPhaseMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_override != nil {
		fields = append(fields, solutionphase.FieldSequenceOverride)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SolutionPhaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case solutionphase.FieldSequenceOverride:
		return m.AddedSequenceOverride()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionPhaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case solutionphase.FieldSequenceOverride:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceOverride(v)
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SolutionPhaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(solutionphase.FieldSequenceOverride) {
		fields = append(fields, solutionphase.FieldSequenceOverride)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SolutionPhaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SolutionPhaseMutation) ClearField(name string) error {
	switch name {
	case solutionphase.FieldSequenceOverride:
		m.ClearSequenceOverride()
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SolutionPhaseMutation) ResetField(name string) error {
	switch name {
	case solutionphase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case solutionphase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case solutionphase.FieldSolutionID:
		m.ResetSolutionID()
		return nil
	case solutionphase.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case solutionphase.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case solutionphase.FieldSequenceOverride:
		m.ResetSequenceOverride()
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SolutionPhaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.solution != nil {
		edges = append(edges, solutionphase.EdgeSolution)
	}
	if m.phase_statuses != nil {
		edges = append(edges, solutionphase.EdgePhaseStatuses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SolutionPhaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case solutionphase.EdgeSolution:
		if id := m.solution; id != nil {
			return []ent.Value{*id}
		}
	case solutionphase.EdgePhaseStatuses:
		ids := make([]ent.Value, 0, len(m.phase_statuses))
		for id := range m.phase_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SolutionPhaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedphase_statuses != nil {
		edges = append(edges, solutionphase.EdgePhaseStatuses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SolutionPhaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case solutionphase.EdgePhaseStatuses:
		ids := make([]ent.Value, 0, len(m.removedphase_statuses))
		for id := range m.removedphase_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SolutionPhaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsolution {
		edges = append(edges, solutionphase.EdgeSolution)
	}
	if m.clearedphase_statuses {
		edges = append(edges, solutionphase.EdgePhaseStatuses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SolutionPhaseMutation) EdgeCleared(name string) bool {
	switch name {
	case solutionphase.EdgeSolution:
		return m.clearedsolution
	case solutionphase.EdgePhaseStatuses:
		return m.clearedphase_statuses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SolutionPhaseMutation) ClearEdge(name string) error {
	switch name {
	case solutionphase.EdgeSolution:
		m.ClearSolution()
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SolutionPhaseMutation) ResetEdge(name string) error {
	switch name {
	case solutionphase.EdgeSolution:
		m.ResetSolution()
		return nil
	case solutionphase.EdgePhaseStatuses:
		m.ResetPhaseStatuses()
		return nil
	}
	return fmt.Errorf("unknown SolutionPhase edge %s", name)
}

// SubcomponentMutation represents an operation that mutates the Subcomponent nodes in the graph.
type SubcomponentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	name                  *string
	status                *subcomponent.Status
	priority              *int
	addpriority           *int
	due_date              *time.Time
	sub_phase             *string
	description           *string
	notes                 *string
	category              *string
	dependencies          *string
	work_estimate         *float64
	addwork_estimate      *float64
	owner                 *string
	assignee              *string
	approver              *string
	completed_at          *time.Time
	created_by            *string
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	solution              *string
	clearedsolution       bool
	phase_statuses        map[string]struct{}
	removedphase_statuses map[string]struct{}
	clearedphase_statuses bool
	done                  bool
	oldValue              func(context.Context) (*Subcomponent, error)
	predicates            []predicate.Subcomponent
}

var _ ent.Mutation = (*SubcomponentMutation)(nil)

// subcomponentOption allows management of the mutation configuration using functional options.
type subcomponentOption func(*SubcomponentMutation)

// newSubcomponentMutation creates new mutation for the Subcomponent entity.
func newSubcomponentMutation(c config, op Op, opts ...subcomponentOption) *SubcomponentMutation {
	m := &SubcomponentMutation{
		config:        c,
		op:            op,
		typ:           TypeSubcomponent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubcomponentID sets the ID field of the mutation.
func withSubcomponentID(id string) subcomponentOption {
	return func(m *SubcomponentMutation) {
		var (
			err   error
			once  sync.Once
			value *Subcomponent
		)
		m.oldValue = func(ctx context.Context) (*Subcomponent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subcomponent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubcomponent sets the old Subcomponent of the mutation.
func withSubcomponent(node *Subcomponent) subcomponentOption {
	return func(m *SubcomponentMutation) {
		m.oldValue = func(context.Context) (*Subcomponent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubcomponentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubcomponentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subcomponent entities.
func (m *SubcomponentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubcomponentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubcomponentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subcomponent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubcomponentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubcomponentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubcomponentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubcomponentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubcomponentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubcomponentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SubcomponentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SubcomponentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SubcomponentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[subcomponent.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SubcomponentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SubcomponentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, subcomponent.FieldDeletedAt)
}

// SetProjectID sets the "project_id" field.
func (m *SubcomponentMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SubcomponentMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SubcomponentMutation) ResetProjectID() {
	m.project = nil
}

// SetSolutionID sets the "solution_id" field.
func (m *SubcomponentMutation) SetSolutionID(s string) {
	m.solution = &s
}

// SolutionID returns the value of the "solution_id" field in the mutation.
func (m *SubcomponentMutation) SolutionID() (r string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionID returns the old "solution_id" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldSolutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionID: %w", err)
	}
	return oldValue.SolutionID, nil
}

// ResetSolutionID resets all changes to the "solution_id" field.
func (m *SubcomponentMutation) ResetSolutionID() {
	m.solution = nil
}

// SetName sets the "name" field.
func (m *SubcomponentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubcomponentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubcomponentMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *SubcomponentMutation) SetStatus(s subcomponent.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubcomponentMutation) Status() (r subcomponent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldStatus(ctx context.Context) (v subcomponent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubcomponentMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *SubcomponentMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SubcomponentMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *SubcomponentMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SubcomponentMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SubcomponentMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDueDate sets the "due_date" field.
func (m *SubcomponentMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *SubcomponentMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *SubcomponentMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[subcomponent.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *SubcomponentMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *SubcomponentMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, subcomponent.FieldDueDate)
}

// SetSubPhase sets the "sub_phase" field.
func (m *SubcomponentMutation) SetSubPhase(s string) {
	m.sub_phase = &s
}

// SubPhase returns the value of the "sub_phase" field in the mutation.
func (m *SubcomponentMutation) SubPhase() (r string, exists bool) {
	v := m.sub_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldSubPhase returns the old "sub_phase" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldSubPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubPhase: %w", err)
	}
	return oldValue.SubPhase, nil
}

// ClearSubPhase clears the value of the "sub_phase" field.
func (m *SubcomponentMutation) ClearSubPhase() {
	m.sub_phase = nil
	m.clearedFields[subcomponent.FieldSubPhase] = struct{}{}
}

// SubPhaseCleared returns if the "sub_phase" field was cleared in this mutation.
func (m *SubcomponentMutation) SubPhaseCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldSubPhase]
	return ok
}

// ResetSubPhase resets all changes to the "sub_phase" field.
func (m *SubcomponentMutation) ResetSubPhase() {
	m.sub_phase = nil
	delete(m.clearedFields, subcomponent.FieldSubPhase)
}

// SetDescription sets the "description" field.
func (m *SubcomponentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubcomponentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SubcomponentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[subcomponent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SubcomponentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SubcomponentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, subcomponent.FieldDescription)
}

// SetNotes sets the "notes" field.
func (m *SubcomponentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SubcomponentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *SubcomponentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[subcomponent.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *SubcomponentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *SubcomponentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, subcomponent.FieldNotes)
}

// SetCategory sets the "category" field.
func (m *SubcomponentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *SubcomponentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *SubcomponentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[subcomponent.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *SubcomponentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *SubcomponentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, subcomponent.FieldCategory)
}

// SetDependencies sets the "dependencies" field.
func (m *SubcomponentMutation) SetDependencies(s string) {
	m.dependencies = &s
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *SubcomponentMutation) Dependencies() (r string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldDependencies(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *SubcomponentMutation) ClearDependencies() {
	m.dependencies = nil
	m.clearedFields[subcomponent.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *SubcomponentMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *SubcomponentMutation) ResetDependencies() {
	m.dependencies = nil
	delete(m.clearedFields, subcomponent.FieldDependencies)
}

// SetWorkEstimate sets the "work_estimate" field.
func (m *SubcomponentMutation) SetWorkEstimate(f float64) {
	m.work_estimate = &f
	m.addwork_estimate = nil
}

// WorkEstimate returns the value of the "work_estimate" field in the mutation.
func (m *SubcomponentMutation) WorkEstimate() (r float64, exists bool) {
	v := m.work_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkEstimate returns the old "work_estimate" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldWorkEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkEstimate: %w", err)
	}
	return oldValue.WorkEstimate, nil
}

// AddWorkEstimate adds f to the "work_estimate" field.
func (m *SubcomponentMutation) AddWorkEstimate(f float64) {
	if m.addwork_estimate != nil {
		*m.addwork_estimate += f
	} else {
		m.addwork_estimate = &f
	}
}

// AddedWorkEstimate returns the value that was added to the "work_estimate" field in this mutation.
func (m *SubcomponentMutation) AddedWorkEstimate() (r float64, exists bool) {
	v := m.addwork_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ClearWorkEstimate clears the value of the "work_estimate" field.
func (m *SubcomponentMutation) ClearWorkEstimate() {
	m.work_estimate = nil
	m.addwork_estimate = nil
	m.clearedFields[subcomponent.FieldWorkEstimate] = struct{}{}
}

// WorkEstimateCleared returns if the "work_estimate" field was cleared in this mutation.
func (m *SubcomponentMutation) WorkEstimateCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldWorkEstimate]
	return ok
}

// ResetWorkEstimate resets all changes to the "work_estimate" field.
func (m *SubcomponentMutation) ResetWorkEstimate() {
	m.work_estimate = nil
	m.addwork_estimate = nil
	delete(m.clearedFields, subcomponent.FieldWorkEstimate)
}

// SetOwner sets the "owner" field.
func (m *SubcomponentMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *SubcomponentMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *SubcomponentMutation) ResetOwner() {
	m.owner = nil
}

// SetAssignee sets the "assignee" field.
func (m *SubcomponentMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *SubcomponentMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *SubcomponentMutation) ResetAssignee() {
	m.assignee = nil
}

// SetApprover sets the "approver" field.
func (m *SubcomponentMutation) SetApprover(s string) {
	m.approver = &s
}

// Approver returns the value of the "approver" field in the mutation.
func (m *SubcomponentMutation) Approver() (r string, exists bool) {
	v := m.approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprover returns the old "approver" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldApprover(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprover: %w", err)
	}
	return oldValue.Approver, nil
}

// ClearApprover clears the value of the "approver" field.
func (m *SubcomponentMutation) ClearApprover() {
	m.approver = nil
	m.clearedFields[subcomponent.FieldApprover] = struct{}{}
}

// ApproverCleared returns if the "approver" field was cleared in this mutation.
func (m *SubcomponentMutation) ApproverCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldApprover]
	return ok
}

// ResetApprover resets all changes to the "approver" field.
func (m *SubcomponentMutation) ResetApprover() {
	m.approver = nil
	delete(m.clearedFields, subcomponent.FieldApprover)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubcomponentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubcomponentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubcomponentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subcomponent.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubcomponentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubcomponentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subcomponent.FieldCompletedAt)
}

// SetCreatedBy sets the "created_by" field.
func (m *SubcomponentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *SubcomponentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Subcomponent entity.
// If the Subcomponent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *SubcomponentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[subcomponent.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *SubcomponentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[subcomponent.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *SubcomponentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, subcomponent.FieldCreatedBy)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SubcomponentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[subcomponent.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SubcomponentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SubcomponentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SubcomponentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (m *SubcomponentMutation) ClearSolution() {
	m.clearedsolution = true
	m.clearedFields[subcomponent.FieldSolutionID] = struct{}{}
}

// SolutionCleared reports if the "solution" edge to the Solution entity was cleared.
func (m *SubcomponentMutation) SolutionCleared() bool {
	return m.clearedsolution
}

// SolutionIDs returns the "solution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SolutionID instead. It exists only for internal usage by the builders.
func (m *SubcomponentMutation) SolutionIDs() (ids []string) {
	if id := m.solution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSolution resets all changes to the "solution" edge.
func (m *SubcomponentMutation) ResetSolution() {
	m.solution = nil
	m.clearedsolution = false
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by ids.
func (m *SubcomponentMutation) AddPhaseStatusIDs(ids ...string) {
	if m.phase_statuses == nil {
		m.phase_statuses = make(map[string]struct{})
	}
	for i := range ids {
		m.phase_statuses[ids[i]] = struct{}{}
	}
}

// ClearPhaseStatuses clears the "phase_statuses" edge to the SubcomponentPhaseStatus entity.
func (m *SubcomponentMutation) ClearPhaseStatuses() {
	m.clearedphase_statuses = true
}

// PhaseStatusesCleared reports if the "phase_statuses" edge to the SubcomponentPhaseStatus entity was cleared.
func (m *SubcomponentMutation) PhaseStatusesCleared() bool {
	return m.clearedphase_statuses
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (m *SubcomponentMutation) RemovePhaseStatusIDs(ids ...string) {
	if m.removedphase_statuses == nil {
		m.removedphase_statuses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.phase_statuses, ids[i])
		m.removedphase_statuses[ids[i]] = struct{}{}
	}
}

// RemovedPhaseStatuses returns the removed IDs of the "phase_statuses" edge to the SubcomponentPhaseStatus entity.
func (m *SubcomponentMutation) RemovedPhaseStatusesIDs() (ids []string) {
	for id := range m.removedphase_statuses {
		ids = append(ids, id)
	}
	return
}

// PhaseStatusesIDs returns the "phase_statuses" edge IDs in the mutation.
func (m *SubcomponentMutation) PhaseStatusesIDs() (ids []string) {
	for id := range m.phase_statuses {
		ids = append(ids, id)
	}
	return
}

// ResetPhaseStatuses resets all changes to the "phase_statuses" edge.
func (m *SubcomponentMutation) ResetPhaseStatuses() {
	m.phase_statuses = nil
	m.clearedphase_statuses = false
	m.removedphase_statuses = nil
}

// Where appends a list predicates to the SubcomponentMutation builder.
func (m *SubcomponentMutation) Where(ps ...predicate.Subcomponent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubcomponentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubcomponentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subcomponent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubcomponentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubcomponentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subcomponent).
func (m *SubcomponentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubcomponentMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.created_at != nil {
		fields = append(fields, subcomponent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subcomponent.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, subcomponent.FieldDeletedAt)
	}
	if m.project != nil {
		fields = append(fields, subcomponent.FieldProjectID)
	}
	if m.solution != nil {
		fields = append(fields, subcomponent.FieldSolutionID)
	}
	if m.name != nil {
		fields = append(fields, subcomponent.FieldName)
	}
	if m.status != nil {
		fields = append(fields, subcomponent.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, subcomponent.FieldPriority)
	}
	if m.due_date != nil {
		fields = append(fields, subcomponent.FieldDueDate)
	}
	if m.sub_phase != nil {
		fields = append(fields, subcomponent.FieldSubPhase)
	}
	if m.description != nil {
		fields = append(fields, subcomponent.FieldDescription)
	}
	if m.notes != nil {
		fields = append(fields, subcomponent.FieldNotes)
	}
	if m.category != nil {
		fields = append(fields, subcomponent.FieldCategory)
	}
	if m.dependencies != nil {
		fields = append(fields, subcomponent.FieldDependencies)
	}
	if m.work_estimate != nil {
		fields = append(fields, subcomponent.FieldWorkEstimate)
	}
	if m.owner != nil {
		fields = append(fields, subcomponent.FieldOwner)
	}
	if m.assignee != nil {
		fields = append(fields, subcomponent.FieldAssignee)
	}
	if m.approver != nil {
		fields = append(fields, subcomponent.FieldApprover)
	}
	if m.completed_at != nil {
		fields = append(fields, subcomponent.FieldCompletedAt)
	}
	if m.created_by != nil {
		fields = append(fields, subcomponent.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubcomponentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subcomponent.FieldCreatedAt:
		return m.CreatedAt()
	case subcomponent.FieldUpdatedAt:
		return m.UpdatedAt()
	case subcomponent.FieldDeletedAt:
		return m.DeletedAt()
	case subcomponent.FieldProjectID:
		return m.ProjectID()
	case subcomponent.FieldSolutionID:
		return m.SolutionID()
	case subcomponent.FieldName:
		return m.Name()
	case subcomponent.FieldStatus:
		return m.Status()
	case subcomponent.FieldPriority:
		return m.Priority()
	case subcomponent.FieldDueDate:
		return m.DueDate()
	case subcomponent.FieldSubPhase:
		return m.SubPhase()
	case subcomponent.FieldDescription:
		return m.Description()
	case subcomponent.FieldNotes:
		return m.Notes()
	case subcomponent.FieldCategory:
		return m.Category()
	case subcomponent.FieldDependencies:
		return m.Dependencies()
	case subcomponent.FieldWorkEstimate:
		return m.WorkEstimate()
	case subcomponent.FieldOwner:
		return m.Owner()
	case subcomponent.FieldAssignee:
		return m.Assignee()
	case subcomponent.FieldApprover:
		return m.Approver()
	case subcomponent.FieldCompletedAt:
		return m.CompletedAt()
	case subcomponent.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubcomponentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subcomponent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subcomponent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case subcomponent.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case subcomponent.FieldProjectID:
		return m.OldProjectID(ctx)
	case subcomponent.FieldSolutionID:
		return m.OldSolutionID(ctx)
	case subcomponent.FieldName:
		return m.OldName(ctx)
	case subcomponent.FieldStatus:
		return m.OldStatus(ctx)
	case subcomponent.FieldPriority:
		return m.OldPriority(ctx)
	case subcomponent.FieldDueDate:
		return m.OldDueDate(ctx)
	case subcomponent.FieldSubPhase:
		return m.OldSubPhase(ctx)
	case subcomponent.FieldDescription:
		return m.OldDescription(ctx)
	case subcomponent.FieldNotes:
		return m.OldNotes(ctx)
	case subcomponent.FieldCategory:
		return m.OldCategory(ctx)
	case subcomponent.FieldDependencies:
		return m.OldDependencies(ctx)
	case subcomponent.FieldWorkEstimate:
		return m.OldWorkEstimate(ctx)
	case subcomponent.FieldOwner:
		return m.OldOwner(ctx)
	case subcomponent.FieldAssignee:
		return m.OldAssignee(ctx)
	case subcomponent.FieldApprover:
		return m.OldApprover(ctx)
	case subcomponent.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case subcomponent.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Subcomponent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcomponentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subcomponent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subcomponent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case subcomponent.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case subcomponent.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case subcomponent.FieldSolutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionID(v)
		return nil
	case subcomponent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subcomponent.FieldStatus:
		v, ok := value.(subcomponent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subcomponent.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case subcomponent.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case subcomponent.FieldSubPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubPhase(v)
		return nil
	case subcomponent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subcomponent.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case subcomponent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case subcomponent.FieldDependencies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case subcomponent.FieldWorkEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkEstimate(v)
		return nil
	case subcomponent.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case subcomponent.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case subcomponent.FieldApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprover(v)
		return nil
	case subcomponent.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case subcomponent.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Subcomponent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubcomponentMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, subcomponent.FieldPriority)
	}
	if m.addwork_estimate != nil {
		fields = append(fields, subcomponent.FieldWorkEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubcomponentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subcomponent.FieldPriority:
		return m.AddedPriority()
	case subcomponent.FieldWorkEstimate:
		return m.AddedWorkEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcomponentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subcomponent.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case subcomponent.FieldWorkEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown Subcomponent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubcomponentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subcomponent.FieldDeletedAt) {
		fields = append(fields, subcomponent.FieldDeletedAt)
	}
	if m.FieldCleared(subcomponent.FieldDueDate) {
		fields = append(fields, subcomponent.FieldDueDate)
	}
	if m.FieldCleared(subcomponent.FieldSubPhase) {
		fields = append(fields, subcomponent.FieldSubPhase)
	}
	if m.FieldCleared(subcomponent.FieldDescription) {
		fields = append(fields, subcomponent.FieldDescription)
	}
	if m.FieldCleared(subcomponent.FieldNotes) {
		fields = append(fields, subcomponent.FieldNotes)
	}
	if m.FieldCleared(subcomponent.FieldCategory) {
		fields = append(fields, subcomponent.FieldCategory)
	}
	if m.FieldCleared(subcomponent.FieldDependencies) {
		fields = append(fields, subcomponent.FieldDependencies)
	}
	if m.FieldCleared(subcomponent.FieldWorkEstimate) {
		fields = append(fields, subcomponent.FieldWorkEstimate)
	}
	if m.FieldCleared(subcomponent.FieldApprover) {
		fields = append(fields, subcomponent.FieldApprover)
	}
	if m.FieldCleared(subcomponent.FieldCompletedAt) {
		fields = append(fields, subcomponent.FieldCompletedAt)
	}
	if m.FieldCleared(subcomponent.FieldCreatedBy) {
		fields = append(fields, subcomponent.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubcomponentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubcomponentMutation) ClearField(name string) error {
	switch name {
	case subcomponent.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case subcomponent.FieldDueDate:
		m.ClearDueDate()
		return nil
	case subcomponent.FieldSubPhase:
		m.ClearSubPhase()
		return nil
	case subcomponent.FieldDescription:
		m.ClearDescription()
		return nil
	case subcomponent.FieldNotes:
		m.ClearNotes()
		return nil
	case subcomponent.FieldCategory:
		m.ClearCategory()
		return nil
	case subcomponent.FieldDependencies:
		m.ClearDependencies()
		return nil
	case subcomponent.FieldWorkEstimate:
		m.ClearWorkEstimate()
		return nil
	case subcomponent.FieldApprover:
		m.ClearApprover()
		return nil
	case subcomponent.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case subcomponent.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Subcomponent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubcomponentMutation) ResetField(name string) error {
	switch name {
	case subcomponent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subcomponent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case subcomponent.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case subcomponent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case subcomponent.FieldSolutionID:
		m.ResetSolutionID()
		return nil
	case subcomponent.FieldName:
		m.ResetName()
		return nil
	case subcomponent.FieldStatus:
		m.ResetStatus()
		return nil
	case subcomponent.FieldPriority:
		m.ResetPriority()
		return nil
	case subcomponent.FieldDueDate:
		m.ResetDueDate()
		return nil
	case subcomponent.FieldSubPhase:
		m.ResetSubPhase()
		return nil
	case subcomponent.FieldDescription:
		m.ResetDescription()
		return nil
	case subcomponent.FieldNotes:
		m.ResetNotes()
		return nil
	case subcomponent.FieldCategory:
		m.ResetCategory()
		return nil
	case subcomponent.FieldDependencies:
		m.ResetDependencies()
		return nil
	case subcomponent.FieldWorkEstimate:
		m.ResetWorkEstimate()
		return nil
	case subcomponent.FieldOwner:
		m.ResetOwner()
		return nil
	case subcomponent.FieldAssignee:
		m.ResetAssignee()
		return nil
	case subcomponent.FieldApprover:
		m.ResetApprover()
		return nil
	case subcomponent.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case subcomponent.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Subcomponent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubcomponentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, subcomponent.EdgeProject)
	}
	if m.solution != nil {
		edges = append(edges, subcomponent.EdgeSolution)
	}
	if m.phase_statuses != nil {
		edges = append(edges, subcomponent.EdgePhaseStatuses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubcomponentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subcomponent.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case subcomponent.EdgeSolution:
		if id := m.solution; id != nil {
			return []ent.Value{*id}
		}
	case subcomponent.EdgePhaseStatuses:
		ids := make([]ent.Value, 0, len(m.phase_statuses))
		for id := range m.phase_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubcomponentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedphase_statuses != nil {
		edges = append(edges, subcomponent.EdgePhaseStatuses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubcomponentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subcomponent.EdgePhaseStatuses:
		ids := make([]ent.Value, 0, len(m.removedphase_statuses))
		for id := range m.removedphase_statuses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubcomponentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, subcomponent.EdgeProject)
	}
	if m.clearedsolution {
		edges = append(edges, subcomponent.EdgeSolution)
	}
	if m.clearedphase_statuses {
		edges = append(edges, subcomponent.EdgePhaseStatuses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubcomponentMutation) EdgeCleared(name string) bool {
	switch name {
	case subcomponent.EdgeProject:
		return m.clearedproject
	case subcomponent.EdgeSolution:
		return m.clearedsolution
	case subcomponent.EdgePhaseStatuses:
		return m.clearedphase_statuses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubcomponentMutation) ClearEdge(name string) error {
	switch name {
	case subcomponent.EdgeProject:
		m.ClearProject()
		return nil
	case subcomponent.EdgeSolution:
		m.ClearSolution()
		return nil
	}
	return fmt.Errorf("unknown Subcomponent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubcomponentMutation) ResetEdge(name string) error {
	switch name {
	case subcomponent.EdgeProject:
		m.ResetProject()
		return nil
	case subcomponent.EdgeSolution:
		m.ResetSolution()
		return nil
	case subcomponent.EdgePhaseStatuses:
		m.ResetPhaseStatuses()
		return nil
	}
	return fmt.Errorf("unknown Subcomponent edge %s", name)
}

// SubcomponentPhaseStatusMutation represents an operation that mutates the SubcomponentPhaseStatus nodes in the graph.
type SubcomponentPhaseStatusMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	phase_id              *string
	is_complete           *bool
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	subcomponent          *string
	clearedsubcomponent   bool
	solution_phase        *string
	clearedsolution_phase bool
	done                  bool
	oldValue              func(context.Context) (*SubcomponentPhaseStatus, error)
	predicates            []predicate.SubcomponentPhaseStatus
}

var _ ent.Mutation = (*SubcomponentPhaseStatusMutation)(nil)

// subcomponentphasestatusOption allows management of the mutation configuration using functional options.
type subcomponentphasestatusOption func(*SubcomponentPhaseStatusMutation)

// newSubcomponentPhaseStatusMutation creates new mutation for the SubcomponentPhaseStatus entity.
func newSubcomponentPhaseStatusMutation(c config, op Op, opts ...subcomponentphasestatusOption) *SubcomponentPhaseStatusMutation {
	m := &SubcomponentPhaseStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeSubcomponentPhaseStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubcomponentPhaseStatusID sets the ID field of the mutation.
func withSubcomponentPhaseStatusID(id string) subcomponentphasestatusOption {
	return func(m *SubcomponentPhaseStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *SubcomponentPhaseStatus
		)
		m.oldValue = func(ctx context.Context) (*SubcomponentPhaseStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubcomponentPhaseStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubcomponentPhaseStatus sets the old SubcomponentPhaseStatus of the mutation.
func withSubcomponentPhaseStatus(node *SubcomponentPhaseStatus) subcomponentphasestatusOption {
	return func(m *SubcomponentPhaseStatusMutation) {
		m.oldValue = func(context.Context) (*SubcomponentPhaseStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubcomponentPhaseStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubcomponentPhaseStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubcomponentPhaseStatus entities.
func (m *SubcomponentPhaseStatusMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubcomponentPhaseStatusMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubcomponentPhaseStatusMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubcomponentPhaseStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubcomponentPhaseStatusMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubcomponentPhaseStatusMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubcomponentPhaseStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubcomponentPhaseStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubcomponentID sets the "subcomponent_id" field.
func (m *SubcomponentPhaseStatusMutation) SetSubcomponentID(s string) {
	m.subcomponent = &s
}

// SubcomponentID returns the value of the "subcomponent_id" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) SubcomponentID() (r string, exists bool) {
	v := m.subcomponent
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcomponentID returns the old "subcomponent_id" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldSubcomponentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcomponentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcomponentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcomponentID: %w", err)
	}
	return oldValue.SubcomponentID, nil
}

// ResetSubcomponentID resets all changes to the "subcomponent_id" field.
func (m *SubcomponentPhaseStatusMutation) ResetSubcomponentID() {
	m.subcomponent = nil
}

// SetSolutionPhaseID sets the "solution_phase_id" field.
func (m *SubcomponentPhaseStatusMutation) SetSolutionPhaseID(s string) {
	m.solution_phase = &s
}

// SolutionPhaseID returns the value of the "solution_phase_id" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) SolutionPhaseID() (r string, exists bool) {
	v := m.solution_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionPhaseID returns the old "solution_phase_id" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldSolutionPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionPhaseID: %w", err)
	}
	return oldValue.SolutionPhaseID, nil
}

// ResetSolutionPhaseID resets all changes to the "solution_phase_id" field.
func (m *SubcomponentPhaseStatusMutation) ResetSolutionPhaseID() {
	m.solution_phase = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *SubcomponentPhaseStatusMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldPhaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *SubcomponentPhaseStatusMutation) ResetPhaseID() {
	m.phase_id = nil
}

// SetIsComplete sets the "is_complete" field.
func (m *SubcomponentPhaseStatusMutation) SetIsComplete(b bool) {
	m.is_complete = &b
}

// IsComplete returns the value of the "is_complete" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) IsComplete() (r bool, exists bool) {
	v := m.is_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldIsComplete returns the old "is_complete" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldIsComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsComplete: %w", err)
	}
	return oldValue.IsComplete, nil
}

// ResetIsComplete resets all changes to the "is_complete" field.
func (m *SubcomponentPhaseStatusMutation) ResetIsComplete() {
	m.is_complete = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubcomponentPhaseStatusMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubcomponentPhaseStatusMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubcomponentPhaseStatus entity.
// If the SubcomponentPhaseStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcomponentPhaseStatusMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubcomponentPhaseStatusMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subcomponentphasestatus.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubcomponentPhaseStatusMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subcomponentphasestatus.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubcomponentPhaseStatusMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subcomponentphasestatus.FieldCompletedAt)
}

// ClearSubcomponent clears the "subcomponent" edge to the Subcomponent entity.
func (m *SubcomponentPhaseStatusMutation) ClearSubcomponent() {
	m.clearedsubcomponent = true
	m.clearedFields[subcomponentphasestatus.FieldSubcomponentID] = struct{}{}
}

// SubcomponentCleared reports if the "subcomponent" edge to the Subcomponent entity was cleared.
func (m *SubcomponentPhaseStatusMutation) SubcomponentCleared() bool {
	return m.clearedsubcomponent
}

// SubcomponentIDs returns the "subcomponent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubcomponentID instead. It exists only for internal usage by the builders.
func (m *SubcomponentPhaseStatusMutation) SubcomponentIDs() (ids []string) {
	if id := m.subcomponent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubcomponent resets all changes to the "subcomponent" edge.
func (m *SubcomponentPhaseStatusMutation) ResetSubcomponent() {
	m.subcomponent = nil
	m.clearedsubcomponent = false
}

// ClearSolutionPhase clears the "solution_phase" edge to the SolutionPhase entity.
func (m *SubcomponentPhaseStatusMutation) ClearSolutionPhase() {
	m.clearedsolution_phase = true
	m.clearedFields[subcomponentphasestatus.FieldSolutionPhaseID] = struct{}{}
}

// SolutionPhaseCleared reports if the "solution_phase" edge to the SolutionPhase entity was cleared.
func (m *SubcomponentPhaseStatusMutation) SolutionPhaseCleared() bool {
	return m.clearedsolution_phase
}

// SolutionPhaseIDs returns the "solution_phase" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SolutionPhaseID instead. It exists only for internal usage by the builders.
func (m *SubcomponentPhaseStatusMutation) SolutionPhaseIDs() (ids []string) {
	if id := m.solution_phase; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSolutionPhase resets all changes to the "solution_phase" edge.
func (m *SubcomponentPhaseStatusMutation) ResetSolutionPhase() {
	m.solution_phase = nil
	m.clearedsolution_phase = false
}

// Where appends a list predicates to the SubcomponentPhaseStatusMutation builder.
func (m *SubcomponentPhaseStatusMutation) Where(ps ...predicate.SubcomponentPhaseStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubcomponentPhaseStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubcomponentPhaseStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubcomponentPhaseStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubcomponentPhaseStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubcomponentPhaseStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubcomponentPhaseStatus).
func (m *SubcomponentPhaseStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubcomponentPhaseStatusMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, subcomponentphasestatus.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subcomponentphasestatus.FieldUpdatedAt)
	}
	if m.subcomponent != nil {
		fields = append(fields, subcomponentphasestatus.FieldSubcomponentID)
	}
	if m.solution_phase != nil {
		fields = append(fields, subcomponentphasestatus.FieldSolutionPhaseID)
	}
	if m.phase_id != nil {
		fields = append(fields, subcomponentphasestatus.FieldPhaseID)
	}
	if m.is_complete != nil {
		fields = append(fields, subcomponentphasestatus.FieldIsComplete)
	}
	if m.completed_at != nil {
		fields = append(fields, subcomponentphasestatus.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubcomponentPhaseStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subcomponentphasestatus.FieldCreatedAt:
		return m.CreatedAt()
	case subcomponentphasestatus.FieldUpdatedAt:
		return m.UpdatedAt()
	case subcomponentphasestatus.FieldSubcomponentID:
		return m.SubcomponentID()
	case subcomponentphasestatus.FieldSolutionPhaseID:
		return m.SolutionPhaseID()
	case subcomponentphasestatus.FieldPhaseID:
		return m.PhaseID()
	case subcomponentphasestatus.FieldIsComplete:
		return m.IsComplete()
	case subcomponentphasestatus.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubcomponentPhaseStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subcomponentphasestatus.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subcomponentphasestatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case subcomponentphasestatus.FieldSubcomponentID:
		return m.OldSubcomponentID(ctx)
	case subcomponentphasestatus.FieldSolutionPhaseID:
		return m.OldSolutionPhaseID(ctx)
	case subcomponentphasestatus.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case subcomponentphasestatus.FieldIsComplete:
		return m.OldIsComplete(ctx)
	case subcomponentphasestatus.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubcomponentPhaseStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcomponentPhaseStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subcomponentphasestatus.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subcomponentphasestatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case subcomponentphasestatus.FieldSubcomponentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcomponentID(v)
		return nil
	case subcomponentphasestatus.FieldSolutionPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionPhaseID(v)
		return nil
	case subcomponentphasestatus.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case subcomponentphasestatus.FieldIsComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsComplete(v)
		return nil
	case subcomponentphasestatus.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubcomponentPhaseStatusMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubcomponentPhaseStatusMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcomponentPhaseStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubcomponentPhaseStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subcomponentphasestatus.FieldCompletedAt) {
		fields = append(fields, subcomponentphasestatus.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubcomponentPhaseStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubcomponentPhaseStatusMutation) ClearField(name string) error {
	switch name {
	case subcomponentphasestatus.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubcomponentPhaseStatusMutation) ResetField(name string) error {
	switch name {
	case subcomponentphasestatus.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subcomponentphasestatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case subcomponentphasestatus.FieldSubcomponentID:
		m.ResetSubcomponentID()
		return nil
	case subcomponentphasestatus.FieldSolutionPhaseID:
		m.ResetSolutionPhaseID()
		return nil
	case subcomponentphasestatus.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case subcomponentphasestatus.FieldIsComplete:
		m.ResetIsComplete()
		return nil
	case subcomponentphasestatus.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubcomponentPhaseStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subcomponent != nil {
		edges = append(edges, subcomponentphasestatus.EdgeSubcomponent)
	}
	if m.solution_phase != nil {
		edges = append(edges, subcomponentphasestatus.EdgeSolutionPhase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubcomponentPhaseStatusMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subcomponentphasestatus.EdgeSubcomponent:
		if id := m.subcomponent; id != nil {
			return []ent.Value{*id}
		}
	case subcomponentphasestatus.EdgeSolutionPhase:
		if id := m.solution_phase; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubcomponentPhaseStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubcomponentPhaseStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubcomponentPhaseStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubcomponent {
		edges = append(edges, subcomponentphasestatus.EdgeSubcomponent)
	}
	if m.clearedsolution_phase {
		edges = append(edges, subcomponentphasestatus.EdgeSolutionPhase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubcomponentPhaseStatusMutation) EdgeCleared(name string) bool {
	switch name {
	case subcomponentphasestatus.EdgeSubcomponent:
		return m.clearedsubcomponent
	case subcomponentphasestatus.EdgeSolutionPhase:
		return m.clearedsolution_phase
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubcomponentPhaseStatusMutation) ClearEdge(name string) error {
	switch name {
	case subcomponentphasestatus.EdgeSubcomponent:
		m.ClearSubcomponent()
		return nil
	case subcomponentphasestatus.EdgeSolutionPhase:
		m.ClearSolutionPhase()
		return nil
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubcomponentPhaseStatusMutation) ResetEdge(name string) error {
	switch name {
	case subcomponentphasestatus.EdgeSubcomponent:
		m.ResetSubcomponent()
		return nil
	case subcomponentphasestatus.EdgeSolutionPhase:
		m.ResetSolutionPhase()
		return nil
	}
	return fmt.Errorf("unknown SubcomponentPhaseStatus edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	soeid              *string
	email              *string
	display_name       *string
	password_hash      *string
	role               *string
	is_active          *bool
	failed_attempts    *int
	addfailed_attempts *int
	locked_until       *time.Time
	last_login_at      *time.Time
	clearedFields      map[string]struct{}
	sessions           map[string]struct{}
	removedsessions    map[string]struct{}
	clearedsessions    bool
	done               bool
	oldValue           func(context.Context) (*User, error)
	predicates         []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSoeid sets the "soeid" field.
func (m *UserMutation) SetSoeid(s string) {
	m.soeid = &s
}

// Soeid returns the value of the "soeid" field in the mutation.
func (m *UserMutation) Soeid() (r string, exists bool) {
	v := m.soeid
	if v == nil {
		return
	}
	return *v, true
}

// OldSoeid returns the old "soeid" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSoeid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoeid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoeid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoeid: %w", err)
	}
	return oldValue.Soeid, nil
}

// ResetSoeid resets all changes to the "soeid" field.
func (m *UserMutation) ResetSoeid() {
	m.soeid = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetFailedAttempts sets the "failed_attempts" field.
func (m *UserMutation) SetFailedAttempts(i int) {
	m.failed_attempts = &i
	m.addfailed_attempts = nil
}

// FailedAttempts returns the value of the "failed_attempts" field in the mutation.
func (m *UserMutation) FailedAttempts() (r int, exists bool) {
	v := m.failed_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAttempts returns the old "failed_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAttempts: %w", err)
	}
	return oldValue.FailedAttempts, nil
}

// AddFailedAttempts adds i to the "failed_attempts" field.
func (m *UserMutation) AddFailedAttempts(i int) {
	if m.addfailed_attempts != nil {
		*m.addfailed_attempts += i
	} else {
		m.addfailed_attempts = &i
	}
}

// AddedFailedAttempts returns the value that was added to the "failed_attempts" field in this mutation.
func (m *UserMutation) AddedFailedAttempts() (r int, exists bool) {
	v := m.addfailed_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedAttempts resets all changes to the "failed_attempts" field.
func (m *UserMutation) ResetFailedAttempts() {
	m.failed_attempts = nil
	m.addfailed_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *UserMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *UserMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *UserMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *UserMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *UserMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *UserMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *UserMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.soeid != nil {
		fields = append(fields, user.FieldSoeid)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.failed_attempts != nil {
		fields = append(fields, user.FieldFailedAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldSoeid:
		return m.Soeid()
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldFailedAttempts:
		return m.FailedAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldSoeid:
		return m.OldSoeid(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldFailedAttempts:
		return m.OldFailedAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldSoeid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoeid(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldFailedAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_attempts != nil {
		fields = append(fields, user.FieldFailedAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedAttempts:
		return m.AddedFailedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldSoeid:
		m.ResetSoeid()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldFailedAttempts:
		m.ResetFailedAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
