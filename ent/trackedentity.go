// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// 版本行表，一行即一个不可变版本
type TrackedEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 实体种类判别字段
	Kind string `json:"kind,omitempty"`
	// 所属版本组ID
	VersionGroupID uint `json:"version_group_id,omitempty"`
	// 引入该版本的事务ID
	TransactionID uint `json:"transaction_id,omitempty"`
	// 变更类型：首版本为create，之后为update，末版本可为delete
	UpdateType trackedentity.UpdateType `json:"update_type,omitempty"`
	// 系统分配的业务SID，按种类取用
	Sid int `json:"sid,omitempty"`
	// 业务键的类型段，按种类取用
	TypeCode string `json:"type_code,omitempty"`
	// 业务键的编码段，按种类取用
	Code string `json:"code,omitempty"`
	// 有效期起（含当天）
	ValidityStart time.Time `json:"validity_start,omitempty"`
	// 有效期止（含当天），空为无限期
	ValidityEnd *time.Time `json:"validity_end,omitempty"`
	// 种类特有的业务字段
	Payload map[string]interface{} `json:"payload,omitempty"`
	// 从属记录回指父实体版本组，顶层记录为空
	ParentGroupID uint `json:"parent_group_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackedEntityQuery when eager-loading is set.
	Edges        TrackedEntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrackedEntityEdges holds the relations/edges for other nodes in the graph.
type TrackedEntityEdges struct {
	// Group holds the value of the group edge.
	Group *VersionGroup `json:"group,omitempty"`
	// Transaction holds the value of the transaction edge.
	Transaction *Transaction `json:"transaction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackedEntityEdges) GroupOrErr() (*VersionGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: versiongroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// TransactionOrErr returns the Transaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackedEntityEdges) TransactionOrErr() (*Transaction, error) {
	if e.Transaction != nil {
		return e.Transaction, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transaction.Label}
	}
	return nil, &NotLoadedError{edge: "transaction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrackedEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trackedentity.FieldPayload:
			values[i] = new([]byte)
		case trackedentity.FieldID, trackedentity.FieldVersionGroupID, trackedentity.FieldTransactionID, trackedentity.FieldSid, trackedentity.FieldParentGroupID:
			values[i] = new(sql.NullInt64)
		case trackedentity.FieldKind, trackedentity.FieldUpdateType, trackedentity.FieldTypeCode, trackedentity.FieldCode:
			values[i] = new(sql.NullString)
		case trackedentity.FieldValidityStart, trackedentity.FieldValidityEnd, trackedentity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrackedEntity fields.
func (te *TrackedEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trackedentity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			te.ID = uint(value.Int64)
		case trackedentity.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				te.Kind = value.String
			}
		case trackedentity.FieldVersionGroupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_group_id", values[i])
			} else if value.Valid {
				te.VersionGroupID = uint(value.Int64)
			}
		case trackedentity.FieldTransactionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				te.TransactionID = uint(value.Int64)
			}
		case trackedentity.FieldUpdateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field update_type", values[i])
			} else if value.Valid {
				te.UpdateType = trackedentity.UpdateType(value.String)
			}
		case trackedentity.FieldSid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sid", values[i])
			} else if value.Valid {
				te.Sid = int(value.Int64)
			}
		case trackedentity.FieldTypeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_code", values[i])
			} else if value.Valid {
				te.TypeCode = value.String
			}
		case trackedentity.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				te.Code = value.String
			}
		case trackedentity.FieldValidityStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validity_start", values[i])
			} else if value.Valid {
				te.ValidityStart = value.Time
			}
		case trackedentity.FieldValidityEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validity_end", values[i])
			} else if value.Valid {
				te.ValidityEnd = new(time.Time)
				*te.ValidityEnd = value.Time
			}
		case trackedentity.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &te.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case trackedentity.FieldParentGroupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_group_id", values[i])
			} else if value.Valid {
				te.ParentGroupID = uint(value.Int64)
			}
		case trackedentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				te.CreatedAt = value.Time
			}
		default:
			te.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrackedEntity.
// This includes values selected through modifiers, order, etc.
func (te *TrackedEntity) Value(name string) (ent.Value, error) {
	return te.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the TrackedEntity entity.
func (te *TrackedEntity) QueryGroup() *VersionGroupQuery {
	return NewTrackedEntityClient(te.config).QueryGroup(te)
}

// QueryTransaction queries the "transaction" edge of the TrackedEntity entity.
func (te *TrackedEntity) QueryTransaction() *TransactionQuery {
	return NewTrackedEntityClient(te.config).QueryTransaction(te)
}

// Update returns a builder for updating this TrackedEntity.
// Note that you need to call TrackedEntity.Unwrap() before calling this method if this TrackedEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (te *TrackedEntity) Update() *TrackedEntityUpdateOne {
	return NewTrackedEntityClient(te.config).UpdateOne(te)
}

// Unwrap unwraps the TrackedEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (te *TrackedEntity) Unwrap() *TrackedEntity {
	_tx, ok := te.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrackedEntity is not a transactional entity")
	}
	te.config.driver = _tx.drv
	return te
}

// String implements the fmt.Stringer.
func (te *TrackedEntity) String() string {
	var builder strings.Builder
	builder.WriteString("TrackedEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", te.ID))
	builder.WriteString("kind=")
	builder.WriteString(te.Kind)
	builder.WriteString(", ")
	builder.WriteString("version_group_id=")
	builder.WriteString(fmt.Sprintf("%v", te.VersionGroupID))
	builder.WriteString(", ")
	builder.WriteString("transaction_id=")
	builder.WriteString(fmt.Sprintf("%v", te.TransactionID))
	builder.WriteString(", ")
	builder.WriteString("update_type=")
	builder.WriteString(fmt.Sprintf("%v", te.UpdateType))
	builder.WriteString(", ")
	builder.WriteString("sid=")
	builder.WriteString(fmt.Sprintf("%v", te.Sid))
	builder.WriteString(", ")
	builder.WriteString("type_code=")
	builder.WriteString(te.TypeCode)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(te.Code)
	builder.WriteString(", ")
	builder.WriteString("validity_start=")
	builder.WriteString(te.ValidityStart.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := te.ValidityEnd; v != nil {
		builder.WriteString("validity_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", te.Payload))
	builder.WriteString(", ")
	builder.WriteString("parent_group_id=")
	builder.WriteString(fmt.Sprintf("%v", te.ParentGroupID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(te.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrackedEntities is a parsable slice of TrackedEntity.
type TrackedEntities []*TrackedEntity
