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
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/setting"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEnvelope      = "Envelope"
	TypeSetting       = "Setting"
	TypeTrackedEntity = "TrackedEntity"
	TypeTransaction   = "Transaction"
	TypeVersionGroup  = "VersionGroup"
	TypeWorkBasket    = "WorkBasket"
)

// EnvelopeMutation represents an operation that mutates the Envelope nodes in the graph.
type EnvelopeMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	envelope_id   *string
	xml_file      *string
	deleted       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Envelope, error)
	predicates    []predicate.Envelope
}

var _ ent.Mutation = (*EnvelopeMutation)(nil)

// envelopeOption allows management of the mutation configuration using functional options.
type envelopeOption func(*EnvelopeMutation)

// newEnvelopeMutation creates new mutation for the Envelope entity.
func newEnvelopeMutation(c config, op Op, opts ...envelopeOption) *EnvelopeMutation {
	m := &EnvelopeMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvelope,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvelopeID sets the ID field of the mutation.
func withEnvelopeID(id uint) envelopeOption {
	return func(m *EnvelopeMutation) {
		var (
			err   error
			once  sync.Once
			value *Envelope
		)
		m.oldValue = func(ctx context.Context) (*Envelope, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Envelope.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvelope sets the old Envelope of the mutation.
func withEnvelope(node *Envelope) envelopeOption {
	return func(m *EnvelopeMutation) {
		m.oldValue = func(context.Context) (*Envelope, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvelopeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvelopeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Envelope entities.
func (m *EnvelopeMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvelopeMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvelopeMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Envelope.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnvelopeID sets the "envelope_id" field.
func (m *EnvelopeMutation) SetEnvelopeID(s string) {
	m.envelope_id = &s
}

// EnvelopeID returns the value of the "envelope_id" field in the mutation.
func (m *EnvelopeMutation) EnvelopeID() (r string, exists bool) {
	v := m.envelope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelopeID returns the old "envelope_id" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldEnvelopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelopeID: %w", err)
	}
	return oldValue.EnvelopeID, nil
}

// ResetEnvelopeID resets all changes to the "envelope_id" field.
func (m *EnvelopeMutation) ResetEnvelopeID() {
	m.envelope_id = nil
}

// SetXMLFile sets the "xml_file" field.
func (m *EnvelopeMutation) SetXMLFile(s string) {
	m.xml_file = &s
}

// XMLFile returns the value of the "xml_file" field in the mutation.
func (m *EnvelopeMutation) XMLFile() (r string, exists bool) {
	v := m.xml_file
	if v == nil {
		return
	}
	return *v, true
}

// OldXMLFile returns the old "xml_file" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldXMLFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXMLFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXMLFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXMLFile: %w", err)
	}
	return oldValue.XMLFile, nil
}

// ResetXMLFile resets all changes to the "xml_file" field.
func (m *EnvelopeMutation) ResetXMLFile() {
	m.xml_file = nil
}

// SetDeleted sets the "deleted" field.
func (m *EnvelopeMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *EnvelopeMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *EnvelopeMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EnvelopeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnvelopeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Envelope entity.
// If the Envelope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvelopeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EnvelopeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EnvelopeMutation builder.
func (m *EnvelopeMutation) Where(ps ...predicate.Envelope) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvelopeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvelopeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Envelope, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvelopeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvelopeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Envelope).
func (m *EnvelopeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvelopeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.envelope_id != nil {
		fields = append(fields, envelope.FieldEnvelopeID)
	}
	if m.xml_file != nil {
		fields = append(fields, envelope.FieldXMLFile)
	}
	if m.deleted != nil {
		fields = append(fields, envelope.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, envelope.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvelopeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case envelope.FieldEnvelopeID:
		return m.EnvelopeID()
	case envelope.FieldXMLFile:
		return m.XMLFile()
	case envelope.FieldDeleted:
		return m.Deleted()
	case envelope.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvelopeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case envelope.FieldEnvelopeID:
		return m.OldEnvelopeID(ctx)
	case envelope.FieldXMLFile:
		return m.OldXMLFile(ctx)
	case envelope.FieldDeleted:
		return m.OldDeleted(ctx)
	case envelope.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Envelope field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case envelope.FieldEnvelopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelopeID(v)
		return nil
	case envelope.FieldXMLFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXMLFile(v)
		return nil
	case envelope.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case envelope.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Envelope field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvelopeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvelopeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvelopeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Envelope numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvelopeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvelopeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvelopeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Envelope nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvelopeMutation) ResetField(name string) error {
	switch name {
	case envelope.FieldEnvelopeID:
		m.ResetEnvelopeID()
		return nil
	case envelope.FieldXMLFile:
		m.ResetXMLFile()
		return nil
	case envelope.FieldDeleted:
		m.ResetDeleted()
		return nil
	case envelope.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Envelope field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvelopeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvelopeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvelopeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvelopeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvelopeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvelopeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvelopeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Envelope unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvelopeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Envelope edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	deleted_at    *time.Time
	config_key    *string
	value         *string
	comment       *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SettingMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SettingMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *SettingMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[setting.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SettingMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[setting.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SettingMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, setting.FieldDeletedAt)
}

// SetConfigKey sets the "config_key" field.
func (m *SettingMutation) SetConfigKey(s string) {
	m.config_key = &s
}

// ConfigKey returns the value of the "config_key" field in the mutation.
func (m *SettingMutation) ConfigKey() (r string, exists bool) {
	v := m.config_key
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigKey returns the old "config_key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldConfigKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigKey: %w", err)
	}
	return oldValue.ConfigKey, nil
}

// ResetConfigKey resets all changes to the "config_key" field.
func (m *SettingMutation) ResetConfigKey() {
	m.config_key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetComment sets the "comment" field.
func (m *SettingMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *SettingMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *SettingMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[setting.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *SettingMutation) CommentCleared() bool {
	_, ok := m.clearedFields[setting.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *SettingMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, setting.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *SettingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SettingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SettingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.deleted_at != nil {
		fields = append(fields, setting.FieldDeletedAt)
	}
	if m.config_key != nil {
		fields = append(fields, setting.FieldConfigKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.comment != nil {
		fields = append(fields, setting.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, setting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldDeletedAt:
		return m.DeletedAt()
	case setting.FieldConfigKey:
		return m.ConfigKey()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldComment:
		return m.Comment()
	case setting.FieldCreatedAt:
		return m.CreatedAt()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case setting.FieldConfigKey:
		return m.OldConfigKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldComment:
		return m.OldComment(ctx)
	case setting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case setting.FieldConfigKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case setting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(setting.FieldDeletedAt) {
		fields = append(fields, setting.FieldDeletedAt)
	}
	if m.FieldCleared(setting.FieldComment) {
		fields = append(fields, setting.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	switch name {
	case setting.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case setting.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case setting.FieldConfigKey:
		m.ResetConfigKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldComment:
		m.ResetComment()
		return nil
	case setting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// TrackedEntityMutation represents an operation that mutates the TrackedEntity nodes in the graph.
type TrackedEntityMutation struct {
	config
	op                 Op
	typ                string
	id                 *uint
	kind               *string
	update_type        *trackedentity.UpdateType
	sid                *int
	addsid             *int
	type_code          *string
	code               *string
	validity_start     *time.Time
	validity_end       *time.Time
	payload            *map[string]interface{}
	parent_group_id    *uint
	addparent_group_id *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	group              *uint
	clearedgroup       bool
	transaction        *uint
	clearedtransaction bool
	done               bool
	oldValue           func(context.Context) (*TrackedEntity, error)
	predicates         []predicate.TrackedEntity
}

var _ ent.Mutation = (*TrackedEntityMutation)(nil)

// trackedentityOption allows management of the mutation configuration using functional options.
type trackedentityOption func(*TrackedEntityMutation)

// newTrackedEntityMutation creates new mutation for the TrackedEntity entity.
func newTrackedEntityMutation(c config, op Op, opts ...trackedentityOption) *TrackedEntityMutation {
	m := &TrackedEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeTrackedEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackedEntityID sets the ID field of the mutation.
func withTrackedEntityID(id uint) trackedentityOption {
	return func(m *TrackedEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *TrackedEntity
		)
		m.oldValue = func(ctx context.Context) (*TrackedEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrackedEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrackedEntity sets the old TrackedEntity of the mutation.
func withTrackedEntity(node *TrackedEntity) trackedentityOption {
	return func(m *TrackedEntityMutation) {
		m.oldValue = func(context.Context) (*TrackedEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackedEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackedEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrackedEntity entities.
func (m *TrackedEntityMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackedEntityMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackedEntityMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrackedEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TrackedEntityMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TrackedEntityMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TrackedEntityMutation) ResetKind() {
	m.kind = nil
}

// SetVersionGroupID sets the "version_group_id" field.
func (m *TrackedEntityMutation) SetVersionGroupID(u uint) {
	m.group = &u
}

// VersionGroupID returns the value of the "version_group_id" field in the mutation.
func (m *TrackedEntityMutation) VersionGroupID() (r uint, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionGroupID returns the old "version_group_id" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldVersionGroupID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionGroupID: %w", err)
	}
	return oldValue.VersionGroupID, nil
}

// ResetVersionGroupID resets all changes to the "version_group_id" field.
func (m *TrackedEntityMutation) ResetVersionGroupID() {
	m.group = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *TrackedEntityMutation) SetTransactionID(u uint) {
	m.transaction = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *TrackedEntityMutation) TransactionID() (r uint, exists bool) {
	v := m.transaction
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldTransactionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *TrackedEntityMutation) ResetTransactionID() {
	m.transaction = nil
}

// SetUpdateType sets the "update_type" field.
func (m *TrackedEntityMutation) SetUpdateType(tt trackedentity.UpdateType) {
	m.update_type = &tt
}

// UpdateType returns the value of the "update_type" field in the mutation.
func (m *TrackedEntityMutation) UpdateType() (r trackedentity.UpdateType, exists bool) {
	v := m.update_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateType returns the old "update_type" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldUpdateType(ctx context.Context) (v trackedentity.UpdateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateType: %w", err)
	}
	return oldValue.UpdateType, nil
}

// ResetUpdateType resets all changes to the "update_type" field.
func (m *TrackedEntityMutation) ResetUpdateType() {
	m.update_type = nil
}

// SetSid sets the "sid" field.
func (m *TrackedEntityMutation) SetSid(i int) {
	m.sid = &i
	m.addsid = nil
}

// Sid returns the value of the "sid" field in the mutation.
func (m *TrackedEntityMutation) Sid() (r int, exists bool) {
	v := m.sid
	if v == nil {
		return
	}
	return *v, true
}

// OldSid returns the old "sid" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldSid(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSid: %w", err)
	}
	return oldValue.Sid, nil
}

// AddSid adds i to the "sid" field.
func (m *TrackedEntityMutation) AddSid(i int) {
	if m.addsid != nil {
		*m.addsid += i
	} else {
		m.addsid = &i
	}
}

// AddedSid returns the value that was added to the "sid" field in this mutation.
func (m *TrackedEntityMutation) AddedSid() (r int, exists bool) {
	v := m.addsid
	if v == nil {
		return
	}
	return *v, true
}

// ClearSid clears the value of the "sid" field.
func (m *TrackedEntityMutation) ClearSid() {
	m.sid = nil
	m.addsid = nil
	m.clearedFields[trackedentity.FieldSid] = struct{}{}
}

// SidCleared returns if the "sid" field was cleared in this mutation.
func (m *TrackedEntityMutation) SidCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldSid]
	return ok
}

// ResetSid resets all changes to the "sid" field.
func (m *TrackedEntityMutation) ResetSid() {
	m.sid = nil
	m.addsid = nil
	delete(m.clearedFields, trackedentity.FieldSid)
}

// SetTypeCode sets the "type_code" field.
func (m *TrackedEntityMutation) SetTypeCode(s string) {
	m.type_code = &s
}

// TypeCode returns the value of the "type_code" field in the mutation.
func (m *TrackedEntityMutation) TypeCode() (r string, exists bool) {
	v := m.type_code
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeCode returns the old "type_code" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldTypeCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeCode: %w", err)
	}
	return oldValue.TypeCode, nil
}

// ClearTypeCode clears the value of the "type_code" field.
func (m *TrackedEntityMutation) ClearTypeCode() {
	m.type_code = nil
	m.clearedFields[trackedentity.FieldTypeCode] = struct{}{}
}

// TypeCodeCleared returns if the "type_code" field was cleared in this mutation.
func (m *TrackedEntityMutation) TypeCodeCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldTypeCode]
	return ok
}

// ResetTypeCode resets all changes to the "type_code" field.
func (m *TrackedEntityMutation) ResetTypeCode() {
	m.type_code = nil
	delete(m.clearedFields, trackedentity.FieldTypeCode)
}

// SetCode sets the "code" field.
func (m *TrackedEntityMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *TrackedEntityMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ClearCode clears the value of the "code" field.
func (m *TrackedEntityMutation) ClearCode() {
	m.code = nil
	m.clearedFields[trackedentity.FieldCode] = struct{}{}
}

// CodeCleared returns if the "code" field was cleared in this mutation.
func (m *TrackedEntityMutation) CodeCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldCode]
	return ok
}

// ResetCode resets all changes to the "code" field.
func (m *TrackedEntityMutation) ResetCode() {
	m.code = nil
	delete(m.clearedFields, trackedentity.FieldCode)
}

// SetValidityStart sets the "validity_start" field.
func (m *TrackedEntityMutation) SetValidityStart(t time.Time) {
	m.validity_start = &t
}

// ValidityStart returns the value of the "validity_start" field in the mutation.
func (m *TrackedEntityMutation) ValidityStart() (r time.Time, exists bool) {
	v := m.validity_start
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityStart returns the old "validity_start" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldValidityStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityStart: %w", err)
	}
	return oldValue.ValidityStart, nil
}

// ResetValidityStart resets all changes to the "validity_start" field.
func (m *TrackedEntityMutation) ResetValidityStart() {
	m.validity_start = nil
}

// SetValidityEnd sets the "validity_end" field.
func (m *TrackedEntityMutation) SetValidityEnd(t time.Time) {
	m.validity_end = &t
}

// ValidityEnd returns the value of the "validity_end" field in the mutation.
func (m *TrackedEntityMutation) ValidityEnd() (r time.Time, exists bool) {
	v := m.validity_end
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityEnd returns the old "validity_end" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldValidityEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityEnd: %w", err)
	}
	return oldValue.ValidityEnd, nil
}

// ClearValidityEnd clears the value of the "validity_end" field.
func (m *TrackedEntityMutation) ClearValidityEnd() {
	m.validity_end = nil
	m.clearedFields[trackedentity.FieldValidityEnd] = struct{}{}
}

// ValidityEndCleared returns if the "validity_end" field was cleared in this mutation.
func (m *TrackedEntityMutation) ValidityEndCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldValidityEnd]
	return ok
}

// ResetValidityEnd resets all changes to the "validity_end" field.
func (m *TrackedEntityMutation) ResetValidityEnd() {
	m.validity_end = nil
	delete(m.clearedFields, trackedentity.FieldValidityEnd)
}

// SetPayload sets the "payload" field.
func (m *TrackedEntityMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TrackedEntityMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TrackedEntityMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[trackedentity.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TrackedEntityMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TrackedEntityMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, trackedentity.FieldPayload)
}

// SetParentGroupID sets the "parent_group_id" field.
func (m *TrackedEntityMutation) SetParentGroupID(u uint) {
	m.parent_group_id = &u
	m.addparent_group_id = nil
}

// ParentGroupID returns the value of the "parent_group_id" field in the mutation.
func (m *TrackedEntityMutation) ParentGroupID() (r uint, exists bool) {
	v := m.parent_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentGroupID returns the old "parent_group_id" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldParentGroupID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentGroupID: %w", err)
	}
	return oldValue.ParentGroupID, nil
}

// AddParentGroupID adds u to the "parent_group_id" field.
func (m *TrackedEntityMutation) AddParentGroupID(u int) {
	if m.addparent_group_id != nil {
		*m.addparent_group_id += u
	} else {
		m.addparent_group_id = &u
	}
}

// AddedParentGroupID returns the value that was added to the "parent_group_id" field in this mutation.
func (m *TrackedEntityMutation) AddedParentGroupID() (r int, exists bool) {
	v := m.addparent_group_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentGroupID clears the value of the "parent_group_id" field.
func (m *TrackedEntityMutation) ClearParentGroupID() {
	m.parent_group_id = nil
	m.addparent_group_id = nil
	m.clearedFields[trackedentity.FieldParentGroupID] = struct{}{}
}

// ParentGroupIDCleared returns if the "parent_group_id" field was cleared in this mutation.
func (m *TrackedEntityMutation) ParentGroupIDCleared() bool {
	_, ok := m.clearedFields[trackedentity.FieldParentGroupID]
	return ok
}

// ResetParentGroupID resets all changes to the "parent_group_id" field.
func (m *TrackedEntityMutation) ResetParentGroupID() {
	m.parent_group_id = nil
	m.addparent_group_id = nil
	delete(m.clearedFields, trackedentity.FieldParentGroupID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackedEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackedEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrackedEntity entity.
// If the TrackedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TrackedEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGroupID sets the "group" edge to the VersionGroup entity by id.
func (m *TrackedEntityMutation) SetGroupID(id uint) {
	m.group = &id
}

// ClearGroup clears the "group" edge to the VersionGroup entity.
func (m *TrackedEntityMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[trackedentity.FieldVersionGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the VersionGroup entity was cleared.
func (m *TrackedEntityMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupID returns the "group" edge ID in the mutation.
func (m *TrackedEntityMutation) GroupID() (id uint, exists bool) {
	if m.group != nil {
		return *m.group, true
	}
	return
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *TrackedEntityMutation) GroupIDs() (ids []uint) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *TrackedEntityMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (m *TrackedEntityMutation) ClearTransaction() {
	m.clearedtransaction = true
	m.clearedFields[trackedentity.FieldTransactionID] = struct{}{}
}

// TransactionCleared reports if the "transaction" edge to the Transaction entity was cleared.
func (m *TrackedEntityMutation) TransactionCleared() bool {
	return m.clearedtransaction
}

// TransactionIDs returns the "transaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TransactionID instead. It exists only for internal usage by the builders.
func (m *TrackedEntityMutation) TransactionIDs() (ids []uint) {
	if id := m.transaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTransaction resets all changes to the "transaction" edge.
func (m *TrackedEntityMutation) ResetTransaction() {
	m.transaction = nil
	m.clearedtransaction = false
}

// Where appends a list predicates to the TrackedEntityMutation builder.
func (m *TrackedEntityMutation) Where(ps ...predicate.TrackedEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackedEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackedEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrackedEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackedEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackedEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrackedEntity).
func (m *TrackedEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackedEntityMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.kind != nil {
		fields = append(fields, trackedentity.FieldKind)
	}
	if m.group != nil {
		fields = append(fields, trackedentity.FieldVersionGroupID)
	}
	if m.transaction != nil {
		fields = append(fields, trackedentity.FieldTransactionID)
	}
	if m.update_type != nil {
		fields = append(fields, trackedentity.FieldUpdateType)
	}
	if m.sid != nil {
		fields = append(fields, trackedentity.FieldSid)
	}
	if m.type_code != nil {
		fields = append(fields, trackedentity.FieldTypeCode)
	}
	if m.code != nil {
		fields = append(fields, trackedentity.FieldCode)
	}
	if m.validity_start != nil {
		fields = append(fields, trackedentity.FieldValidityStart)
	}
	if m.validity_end != nil {
		fields = append(fields, trackedentity.FieldValidityEnd)
	}
	if m.payload != nil {
		fields = append(fields, trackedentity.FieldPayload)
	}
	if m.parent_group_id != nil {
		fields = append(fields, trackedentity.FieldParentGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, trackedentity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackedEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trackedentity.FieldKind:
		return m.Kind()
	case trackedentity.FieldVersionGroupID:
		return m.VersionGroupID()
	case trackedentity.FieldTransactionID:
		return m.TransactionID()
	case trackedentity.FieldUpdateType:
		return m.UpdateType()
	case trackedentity.FieldSid:
		return m.Sid()
	case trackedentity.FieldTypeCode:
		return m.TypeCode()
	case trackedentity.FieldCode:
		return m.Code()
	case trackedentity.FieldValidityStart:
		return m.ValidityStart()
	case trackedentity.FieldValidityEnd:
		return m.ValidityEnd()
	case trackedentity.FieldPayload:
		return m.Payload()
	case trackedentity.FieldParentGroupID:
		return m.ParentGroupID()
	case trackedentity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackedEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trackedentity.FieldKind:
		return m.OldKind(ctx)
	case trackedentity.FieldVersionGroupID:
		return m.OldVersionGroupID(ctx)
	case trackedentity.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case trackedentity.FieldUpdateType:
		return m.OldUpdateType(ctx)
	case trackedentity.FieldSid:
		return m.OldSid(ctx)
	case trackedentity.FieldTypeCode:
		return m.OldTypeCode(ctx)
	case trackedentity.FieldCode:
		return m.OldCode(ctx)
	case trackedentity.FieldValidityStart:
		return m.OldValidityStart(ctx)
	case trackedentity.FieldValidityEnd:
		return m.OldValidityEnd(ctx)
	case trackedentity.FieldPayload:
		return m.OldPayload(ctx)
	case trackedentity.FieldParentGroupID:
		return m.OldParentGroupID(ctx)
	case trackedentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrackedEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackedEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trackedentity.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case trackedentity.FieldVersionGroupID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionGroupID(v)
		return nil
	case trackedentity.FieldTransactionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case trackedentity.FieldUpdateType:
		v, ok := value.(trackedentity.UpdateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateType(v)
		return nil
	case trackedentity.FieldSid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSid(v)
		return nil
	case trackedentity.FieldTypeCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeCode(v)
		return nil
	case trackedentity.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case trackedentity.FieldValidityStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityStart(v)
		return nil
	case trackedentity.FieldValidityEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityEnd(v)
		return nil
	case trackedentity.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case trackedentity.FieldParentGroupID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentGroupID(v)
		return nil
	case trackedentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackedEntityMutation) AddedFields() []string {
	var fields []string
	if m.addsid != nil {
		fields = append(fields, trackedentity.FieldSid)
	}
	if m.addparent_group_id != nil {
		fields = append(fields, trackedentity.FieldParentGroupID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackedEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trackedentity.FieldSid:
		return m.AddedSid()
	case trackedentity.FieldParentGroupID:
		return m.AddedParentGroupID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackedEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trackedentity.FieldSid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSid(v)
		return nil
	case trackedentity.FieldParentGroupID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentGroupID(v)
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackedEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trackedentity.FieldSid) {
		fields = append(fields, trackedentity.FieldSid)
	}
	if m.FieldCleared(trackedentity.FieldTypeCode) {
		fields = append(fields, trackedentity.FieldTypeCode)
	}
	if m.FieldCleared(trackedentity.FieldCode) {
		fields = append(fields, trackedentity.FieldCode)
	}
	if m.FieldCleared(trackedentity.FieldValidityEnd) {
		fields = append(fields, trackedentity.FieldValidityEnd)
	}
	if m.FieldCleared(trackedentity.FieldPayload) {
		fields = append(fields, trackedentity.FieldPayload)
	}
	if m.FieldCleared(trackedentity.FieldParentGroupID) {
		fields = append(fields, trackedentity.FieldParentGroupID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackedEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackedEntityMutation) ClearField(name string) error {
	switch name {
	case trackedentity.FieldSid:
		m.ClearSid()
		return nil
	case trackedentity.FieldTypeCode:
		m.ClearTypeCode()
		return nil
	case trackedentity.FieldCode:
		m.ClearCode()
		return nil
	case trackedentity.FieldValidityEnd:
		m.ClearValidityEnd()
		return nil
	case trackedentity.FieldPayload:
		m.ClearPayload()
		return nil
	case trackedentity.FieldParentGroupID:
		m.ClearParentGroupID()
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackedEntityMutation) ResetField(name string) error {
	switch name {
	case trackedentity.FieldKind:
		m.ResetKind()
		return nil
	case trackedentity.FieldVersionGroupID:
		m.ResetVersionGroupID()
		return nil
	case trackedentity.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case trackedentity.FieldUpdateType:
		m.ResetUpdateType()
		return nil
	case trackedentity.FieldSid:
		m.ResetSid()
		return nil
	case trackedentity.FieldTypeCode:
		m.ResetTypeCode()
		return nil
	case trackedentity.FieldCode:
		m.ResetCode()
		return nil
	case trackedentity.FieldValidityStart:
		m.ResetValidityStart()
		return nil
	case trackedentity.FieldValidityEnd:
		m.ResetValidityEnd()
		return nil
	case trackedentity.FieldPayload:
		m.ResetPayload()
		return nil
	case trackedentity.FieldParentGroupID:
		m.ResetParentGroupID()
		return nil
	case trackedentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackedEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, trackedentity.EdgeGroup)
	}
	if m.transaction != nil {
		edges = append(edges, trackedentity.EdgeTransaction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackedEntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trackedentity.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case trackedentity.EdgeTransaction:
		if id := m.transaction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackedEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackedEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackedEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, trackedentity.EdgeGroup)
	}
	if m.clearedtransaction {
		edges = append(edges, trackedentity.EdgeTransaction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackedEntityMutation) EdgeCleared(name string) bool {
	switch name {
	case trackedentity.EdgeGroup:
		return m.clearedgroup
	case trackedentity.EdgeTransaction:
		return m.clearedtransaction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackedEntityMutation) ClearEdge(name string) error {
	switch name {
	case trackedentity.EdgeGroup:
		m.ClearGroup()
		return nil
	case trackedentity.EdgeTransaction:
		m.ClearTransaction()
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackedEntityMutation) ResetEdge(name string) error {
	switch name {
	case trackedentity.EdgeGroup:
		m.ResetGroup()
		return nil
	case trackedentity.EdgeTransaction:
		m.ResetTransaction()
		return nil
	}
	return fmt.Errorf("unknown TrackedEntity edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op                Op
	typ               string
	id                *uint
	partition         *int
	addpartition      *int
	_order            *int
	add_order         *int
	composite_key     *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	workbasket        *uint
	clearedworkbasket bool
	entities          map[uint]struct{}
	removedentities   map[uint]struct{}
	clearedentities   bool
	done              bool
	oldValue          func(context.Context) (*Transaction, error)
	predicates        []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uint) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPartition sets the "partition" field.
func (m *TransactionMutation) SetPartition(i int) {
	m.partition = &i
	m.addpartition = nil
}

// Partition returns the value of the "partition" field in the mutation.
func (m *TransactionMutation) Partition() (r int, exists bool) {
	v := m.partition
	if v == nil {
		return
	}
	return *v, true
}

// OldPartition returns the old "partition" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPartition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartition: %w", err)
	}
	return oldValue.Partition, nil
}

// AddPartition adds i to the "partition" field.
func (m *TransactionMutation) AddPartition(i int) {
	if m.addpartition != nil {
		*m.addpartition += i
	} else {
		m.addpartition = &i
	}
}

// AddedPartition returns the value that was added to the "partition" field in this mutation.
func (m *TransactionMutation) AddedPartition() (r int, exists bool) {
	v := m.addpartition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartition resets all changes to the "partition" field.
func (m *TransactionMutation) ResetPartition() {
	m.partition = nil
	m.addpartition = nil
}

// SetOrder sets the "order" field.
func (m *TransactionMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *TransactionMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *TransactionMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *TransactionMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *TransactionMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetWorkbasketID sets the "workbasket_id" field.
func (m *TransactionMutation) SetWorkbasketID(u uint) {
	m.workbasket = &u
}

// WorkbasketID returns the value of the "workbasket_id" field in the mutation.
func (m *TransactionMutation) WorkbasketID() (r uint, exists bool) {
	v := m.workbasket
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkbasketID returns the old "workbasket_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldWorkbasketID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkbasketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkbasketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkbasketID: %w", err)
	}
	return oldValue.WorkbasketID, nil
}

// ResetWorkbasketID resets all changes to the "workbasket_id" field.
func (m *TransactionMutation) ResetWorkbasketID() {
	m.workbasket = nil
}

// SetCompositeKey sets the "composite_key" field.
func (m *TransactionMutation) SetCompositeKey(s string) {
	m.composite_key = &s
}

// CompositeKey returns the value of the "composite_key" field in the mutation.
func (m *TransactionMutation) CompositeKey() (r string, exists bool) {
	v := m.composite_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeKey returns the old "composite_key" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCompositeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeKey: %w", err)
	}
	return oldValue.CompositeKey, nil
}

// ResetCompositeKey resets all changes to the "composite_key" field.
func (m *TransactionMutation) ResetCompositeKey() {
	m.composite_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkbasket clears the "workbasket" edge to the WorkBasket entity.
func (m *TransactionMutation) ClearWorkbasket() {
	m.clearedworkbasket = true
	m.clearedFields[transaction.FieldWorkbasketID] = struct{}{}
}

// WorkbasketCleared reports if the "workbasket" edge to the WorkBasket entity was cleared.
func (m *TransactionMutation) WorkbasketCleared() bool {
	return m.clearedworkbasket
}

// WorkbasketIDs returns the "workbasket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkbasketID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) WorkbasketIDs() (ids []uint) {
	if id := m.workbasket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkbasket resets all changes to the "workbasket" edge.
func (m *TransactionMutation) ResetWorkbasket() {
	m.workbasket = nil
	m.clearedworkbasket = false
}

// AddEntityIDs adds the "entities" edge to the TrackedEntity entity by ids.
func (m *TransactionMutation) AddEntityIDs(ids ...uint) {
	if m.entities == nil {
		m.entities = make(map[uint]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the TrackedEntity entity.
func (m *TransactionMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the TrackedEntity entity was cleared.
func (m *TransactionMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the TrackedEntity entity by IDs.
func (m *TransactionMutation) RemoveEntityIDs(ids ...uint) {
	if m.removedentities == nil {
		m.removedentities = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the TrackedEntity entity.
func (m *TransactionMutation) RemovedEntitiesIDs() (ids []uint) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *TransactionMutation) EntitiesIDs() (ids []uint) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *TransactionMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.partition != nil {
		fields = append(fields, transaction.FieldPartition)
	}
	if m._order != nil {
		fields = append(fields, transaction.FieldOrder)
	}
	if m.workbasket != nil {
		fields = append(fields, transaction.FieldWorkbasketID)
	}
	if m.composite_key != nil {
		fields = append(fields, transaction.FieldCompositeKey)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldPartition:
		return m.Partition()
	case transaction.FieldOrder:
		return m.Order()
	case transaction.FieldWorkbasketID:
		return m.WorkbasketID()
	case transaction.FieldCompositeKey:
		return m.CompositeKey()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldPartition:
		return m.OldPartition(ctx)
	case transaction.FieldOrder:
		return m.OldOrder(ctx)
	case transaction.FieldWorkbasketID:
		return m.OldWorkbasketID(ctx)
	case transaction.FieldCompositeKey:
		return m.OldCompositeKey(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartition(v)
		return nil
	case transaction.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case transaction.FieldWorkbasketID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkbasketID(v)
		return nil
	case transaction.FieldCompositeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeKey(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addpartition != nil {
		fields = append(fields, transaction.FieldPartition)
	}
	if m.add_order != nil {
		fields = append(fields, transaction.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldPartition:
		return m.AddedPartition()
	case transaction.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartition(v)
		return nil
	case transaction.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldPartition:
		m.ResetPartition()
		return nil
	case transaction.FieldOrder:
		m.ResetOrder()
		return nil
	case transaction.FieldWorkbasketID:
		m.ResetWorkbasketID()
		return nil
	case transaction.FieldCompositeKey:
		m.ResetCompositeKey()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workbasket != nil {
		edges = append(edges, transaction.EdgeWorkbasket)
	}
	if m.entities != nil {
		edges = append(edges, transaction.EdgeEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeWorkbasket:
		if id := m.workbasket; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentities != nil {
		edges = append(edges, transaction.EdgeEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkbasket {
		edges = append(edges, transaction.EdgeWorkbasket)
	}
	if m.clearedentities {
		edges = append(edges, transaction.EdgeEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeWorkbasket:
		return m.clearedworkbasket
	case transaction.EdgeEntities:
		return m.clearedentities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeWorkbasket:
		m.ClearWorkbasket()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeWorkbasket:
		m.ResetWorkbasket()
		return nil
	case transaction.EdgeEntities:
		m.ResetEntities()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}

// VersionGroupMutation represents an operation that mutates the VersionGroup nodes in the graph.
type VersionGroupMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uint
	created_at             *time.Time
	clearedFields          map[string]struct{}
	versions               map[uint]struct{}
	removedversions        map[uint]struct{}
	clearedversions        bool
	current_version        *uint
	clearedcurrent_version bool
	done                   bool
	oldValue               func(context.Context) (*VersionGroup, error)
	predicates             []predicate.VersionGroup
}

var _ ent.Mutation = (*VersionGroupMutation)(nil)

// versiongroupOption allows management of the mutation configuration using functional options.
type versiongroupOption func(*VersionGroupMutation)

// newVersionGroupMutation creates new mutation for the VersionGroup entity.
func newVersionGroupMutation(c config, op Op, opts ...versiongroupOption) *VersionGroupMutation {
	m := &VersionGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeVersionGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVersionGroupID sets the ID field of the mutation.
func withVersionGroupID(id uint) versiongroupOption {
	return func(m *VersionGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *VersionGroup
		)
		m.oldValue = func(ctx context.Context) (*VersionGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VersionGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVersionGroup sets the old VersionGroup of the mutation.
func withVersionGroup(node *VersionGroup) versiongroupOption {
	return func(m *VersionGroupMutation) {
		m.oldValue = func(context.Context) (*VersionGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VersionGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VersionGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VersionGroup entities.
func (m *VersionGroupMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VersionGroupMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VersionGroupMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VersionGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *VersionGroupMutation) SetCurrentVersionID(u uint) {
	m.current_version = &u
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *VersionGroupMutation) CurrentVersionID() (r uint, exists bool) {
	v := m.current_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the VersionGroup entity.
// If the VersionGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionGroupMutation) OldCurrentVersionID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *VersionGroupMutation) ClearCurrentVersionID() {
	m.current_version = nil
	m.clearedFields[versiongroup.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *VersionGroupMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[versiongroup.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *VersionGroupMutation) ResetCurrentVersionID() {
	m.current_version = nil
	delete(m.clearedFields, versiongroup.FieldCurrentVersionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *VersionGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VersionGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VersionGroup entity.
// If the VersionGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VersionGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVersionIDs adds the "versions" edge to the TrackedEntity entity by ids.
func (m *VersionGroupMutation) AddVersionIDs(ids ...uint) {
	if m.versions == nil {
		m.versions = make(map[uint]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the TrackedEntity entity.
func (m *VersionGroupMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the TrackedEntity entity was cleared.
func (m *VersionGroupMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the TrackedEntity entity by IDs.
func (m *VersionGroupMutation) RemoveVersionIDs(ids ...uint) {
	if m.removedversions == nil {
		m.removedversions = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the TrackedEntity entity.
func (m *VersionGroupMutation) RemovedVersionsIDs() (ids []uint) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *VersionGroupMutation) VersionsIDs() (ids []uint) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *VersionGroupMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// ClearCurrentVersion clears the "current_version" edge to the TrackedEntity entity.
func (m *VersionGroupMutation) ClearCurrentVersion() {
	m.clearedcurrent_version = true
	m.clearedFields[versiongroup.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionCleared reports if the "current_version" edge to the TrackedEntity entity was cleared.
func (m *VersionGroupMutation) CurrentVersionCleared() bool {
	return m.CurrentVersionIDCleared() || m.clearedcurrent_version
}

// CurrentVersionIDs returns the "current_version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CurrentVersionID instead. It exists only for internal usage by the builders.
func (m *VersionGroupMutation) CurrentVersionIDs() (ids []uint) {
	if id := m.current_version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCurrentVersion resets all changes to the "current_version" edge.
func (m *VersionGroupMutation) ResetCurrentVersion() {
	m.current_version = nil
	m.clearedcurrent_version = false
}

// Where appends a list predicates to the VersionGroupMutation builder.
func (m *VersionGroupMutation) Where(ps ...predicate.VersionGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VersionGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VersionGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VersionGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VersionGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VersionGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VersionGroup).
func (m *VersionGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VersionGroupMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.current_version != nil {
		fields = append(fields, versiongroup.FieldCurrentVersionID)
	}
	if m.created_at != nil {
		fields = append(fields, versiongroup.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VersionGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case versiongroup.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case versiongroup.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VersionGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case versiongroup.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case versiongroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VersionGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case versiongroup.FieldCurrentVersionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case versiongroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VersionGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VersionGroupMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VersionGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VersionGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VersionGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(versiongroup.FieldCurrentVersionID) {
		fields = append(fields, versiongroup.FieldCurrentVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VersionGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VersionGroupMutation) ClearField(name string) error {
	switch name {
	case versiongroup.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	}
	return fmt.Errorf("unknown VersionGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VersionGroupMutation) ResetField(name string) error {
	switch name {
	case versiongroup.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case versiongroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VersionGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VersionGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.versions != nil {
		edges = append(edges, versiongroup.EdgeVersions)
	}
	if m.current_version != nil {
		edges = append(edges, versiongroup.EdgeCurrentVersion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VersionGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case versiongroup.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case versiongroup.EdgeCurrentVersion:
		if id := m.current_version; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VersionGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedversions != nil {
		edges = append(edges, versiongroup.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VersionGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case versiongroup.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VersionGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedversions {
		edges = append(edges, versiongroup.EdgeVersions)
	}
	if m.clearedcurrent_version {
		edges = append(edges, versiongroup.EdgeCurrentVersion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VersionGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case versiongroup.EdgeVersions:
		return m.clearedversions
	case versiongroup.EdgeCurrentVersion:
		return m.clearedcurrent_version
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VersionGroupMutation) ClearEdge(name string) error {
	switch name {
	case versiongroup.EdgeCurrentVersion:
		m.ClearCurrentVersion()
		return nil
	}
	return fmt.Errorf("unknown VersionGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VersionGroupMutation) ResetEdge(name string) error {
	switch name {
	case versiongroup.EdgeVersions:
		m.ResetVersions()
		return nil
	case versiongroup.EdgeCurrentVersion:
		m.ResetCurrentVersion()
		return nil
	}
	return fmt.Errorf("unknown VersionGroup edge %s", name)
}

// WorkBasketMutation represents an operation that mutates the WorkBasket nodes in the graph.
type WorkBasketMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uint
	title               *string
	reason              *string
	status              *workbasket.Status
	author              *string
	approver            *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	transactions        map[uint]struct{}
	removedtransactions map[uint]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*WorkBasket, error)
	predicates          []predicate.WorkBasket
}

var _ ent.Mutation = (*WorkBasketMutation)(nil)

// workbasketOption allows management of the mutation configuration using functional options.
type workbasketOption func(*WorkBasketMutation)

// newWorkBasketMutation creates new mutation for the WorkBasket entity.
func newWorkBasketMutation(c config, op Op, opts ...workbasketOption) *WorkBasketMutation {
	m := &WorkBasketMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkBasket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkBasketID sets the ID field of the mutation.
func withWorkBasketID(id uint) workbasketOption {
	return func(m *WorkBasketMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkBasket
		)
		m.oldValue = func(ctx context.Context) (*WorkBasket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkBasket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkBasket sets the old WorkBasket of the mutation.
func withWorkBasket(node *WorkBasket) workbasketOption {
	return func(m *WorkBasketMutation) {
		m.oldValue = func(context.Context) (*WorkBasket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkBasketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkBasketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkBasket entities.
func (m *WorkBasketMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkBasketMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkBasketMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkBasket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *WorkBasketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WorkBasketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *WorkBasketMutation) ResetTitle() {
	m.title = nil
}

// SetReason sets the "reason" field.
func (m *WorkBasketMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *WorkBasketMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *WorkBasketMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[workbasket.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *WorkBasketMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[workbasket.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *WorkBasketMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, workbasket.FieldReason)
}

// SetStatus sets the "status" field.
func (m *WorkBasketMutation) SetStatus(w workbasket.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkBasketMutation) Status() (r workbasket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldStatus(ctx context.Context) (v workbasket.Status, err error) {
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
func (m *WorkBasketMutation) ResetStatus() {
	m.status = nil
}

// SetAuthor sets the "author" field.
func (m *WorkBasketMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *WorkBasketMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *WorkBasketMutation) ResetAuthor() {
	m.author = nil
}

// SetApprover sets the "approver" field.
func (m *WorkBasketMutation) SetApprover(s string) {
	m.approver = &s
}

// Approver returns the value of the "approver" field in the mutation.
func (m *WorkBasketMutation) Approver() (r string, exists bool) {
	v := m.approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprover returns the old "approver" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldApprover(ctx context.Context) (v string, err error) {
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
func (m *WorkBasketMutation) ClearApprover() {
	m.approver = nil
	m.clearedFields[workbasket.FieldApprover] = struct{}{}
}

// ApproverCleared returns if the "approver" field was cleared in this mutation.
func (m *WorkBasketMutation) ApproverCleared() bool {
	_, ok := m.clearedFields[workbasket.FieldApprover]
	return ok
}

// ResetApprover resets all changes to the "approver" field.
func (m *WorkBasketMutation) ResetApprover() {
	m.approver = nil
	delete(m.clearedFields, workbasket.FieldApprover)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkBasketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkBasketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkBasketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkBasketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkBasketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkBasket entity.
// If the WorkBasket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkBasketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkBasketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *WorkBasketMutation) AddTransactionIDs(ids ...uint) {
	if m.transactions == nil {
		m.transactions = make(map[uint]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *WorkBasketMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *WorkBasketMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *WorkBasketMutation) RemoveTransactionIDs(ids ...uint) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *WorkBasketMutation) RemovedTransactionsIDs() (ids []uint) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *WorkBasketMutation) TransactionsIDs() (ids []uint) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *WorkBasketMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the WorkBasketMutation builder.
func (m *WorkBasketMutation) Where(ps ...predicate.WorkBasket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkBasketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkBasketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkBasket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkBasketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkBasketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkBasket).
func (m *WorkBasketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkBasketMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, workbasket.FieldTitle)
	}
	if m.reason != nil {
		fields = append(fields, workbasket.FieldReason)
	}
	if m.status != nil {
		fields = append(fields, workbasket.FieldStatus)
	}
	if m.author != nil {
		fields = append(fields, workbasket.FieldAuthor)
	}
	if m.approver != nil {
		fields = append(fields, workbasket.FieldApprover)
	}
	if m.created_at != nil {
		fields = append(fields, workbasket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workbasket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkBasketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workbasket.FieldTitle:
		return m.Title()
	case workbasket.FieldReason:
		return m.Reason()
	case workbasket.FieldStatus:
		return m.Status()
	case workbasket.FieldAuthor:
		return m.Author()
	case workbasket.FieldApprover:
		return m.Approver()
	case workbasket.FieldCreatedAt:
		return m.CreatedAt()
	case workbasket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkBasketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workbasket.FieldTitle:
		return m.OldTitle(ctx)
	case workbasket.FieldReason:
		return m.OldReason(ctx)
	case workbasket.FieldStatus:
		return m.OldStatus(ctx)
	case workbasket.FieldAuthor:
		return m.OldAuthor(ctx)
	case workbasket.FieldApprover:
		return m.OldApprover(ctx)
	case workbasket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workbasket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkBasket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkBasketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workbasket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case workbasket.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case workbasket.FieldStatus:
		v, ok := value.(workbasket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workbasket.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case workbasket.FieldApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprover(v)
		return nil
	case workbasket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workbasket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkBasket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkBasketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkBasketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkBasketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkBasket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkBasketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workbasket.FieldReason) {
		fields = append(fields, workbasket.FieldReason)
	}
	if m.FieldCleared(workbasket.FieldApprover) {
		fields = append(fields, workbasket.FieldApprover)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkBasketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkBasketMutation) ClearField(name string) error {
	switch name {
	case workbasket.FieldReason:
		m.ClearReason()
		return nil
	case workbasket.FieldApprover:
		m.ClearApprover()
		return nil
	}
	return fmt.Errorf("unknown WorkBasket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkBasketMutation) ResetField(name string) error {
	switch name {
	case workbasket.FieldTitle:
		m.ResetTitle()
		return nil
	case workbasket.FieldReason:
		m.ResetReason()
		return nil
	case workbasket.FieldStatus:
		m.ResetStatus()
		return nil
	case workbasket.FieldAuthor:
		m.ResetAuthor()
		return nil
	case workbasket.FieldApprover:
		m.ResetApprover()
		return nil
	case workbasket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workbasket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkBasket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkBasketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transactions != nil {
		edges = append(edges, workbasket.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkBasketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workbasket.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkBasketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransactions != nil {
		edges = append(edges, workbasket.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkBasketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workbasket.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkBasketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransactions {
		edges = append(edges, workbasket.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkBasketMutation) EdgeCleared(name string) bool {
	switch name {
	case workbasket.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkBasketMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkBasket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkBasketMutation) ResetEdge(name string) error {
	switch name {
	case workbasket.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown WorkBasket edge %s", name)
}
