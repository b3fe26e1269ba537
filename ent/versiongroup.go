// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// 版本组表，一个逻辑实体跨版本的身份
type VersionGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 当前权威版本的行ID，最新批准版本为删除时为空
	CurrentVersionID *uint `json:"current_version_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VersionGroupQuery when eager-loading is set.
	Edges        VersionGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VersionGroupEdges holds the relations/edges for other nodes in the graph.
type VersionGroupEdges struct {
	// 该逻辑实体的全部版本行
	Versions []*TrackedEntity `json:"versions,omitempty"`
	// CurrentVersion holds the value of the current_version edge.
	CurrentVersion *TrackedEntity `json:"current_version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e VersionGroupEdges) VersionsOrErr() ([]*TrackedEntity, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// CurrentVersionOrErr returns the CurrentVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VersionGroupEdges) CurrentVersionOrErr() (*TrackedEntity, error) {
	if e.CurrentVersion != nil {
		return e.CurrentVersion, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: trackedentity.Label}
	}
	return nil, &NotLoadedError{edge: "current_version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VersionGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case versiongroup.FieldID, versiongroup.FieldCurrentVersionID:
			values[i] = new(sql.NullInt64)
		case versiongroup.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VersionGroup fields.
func (vg *VersionGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case versiongroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			vg.ID = uint(value.Int64)
		case versiongroup.FieldCurrentVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_version_id", values[i])
			} else if value.Valid {
				vg.CurrentVersionID = new(uint)
				*vg.CurrentVersionID = uint(value.Int64)
			}
		case versiongroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				vg.CreatedAt = value.Time
			}
		default:
			vg.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VersionGroup.
// This includes values selected through modifiers, order, etc.
func (vg *VersionGroup) Value(name string) (ent.Value, error) {
	return vg.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the VersionGroup entity.
func (vg *VersionGroup) QueryVersions() *TrackedEntityQuery {
	return NewVersionGroupClient(vg.config).QueryVersions(vg)
}

// QueryCurrentVersion queries the "current_version" edge of the VersionGroup entity.
func (vg *VersionGroup) QueryCurrentVersion() *TrackedEntityQuery {
	return NewVersionGroupClient(vg.config).QueryCurrentVersion(vg)
}

// Update returns a builder for updating this VersionGroup.
// Note that you need to call VersionGroup.Unwrap() before calling this method if this VersionGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (vg *VersionGroup) Update() *VersionGroupUpdateOne {
	return NewVersionGroupClient(vg.config).UpdateOne(vg)
}

// Unwrap unwraps the VersionGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (vg *VersionGroup) Unwrap() *VersionGroup {
	_tx, ok := vg.config.driver.(*txDriver)
	if !ok {
		panic("ent: VersionGroup is not a transactional entity")
	}
	vg.config.driver = _tx.drv
	return vg
}

// String implements the fmt.Stringer.
func (vg *VersionGroup) String() string {
	var builder strings.Builder
	builder.WriteString("VersionGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", vg.ID))
	if v := vg.CurrentVersionID; v != nil {
		builder.WriteString("current_version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(vg.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VersionGroups is a parsable slice of VersionGroup.
type VersionGroups []*VersionGroup
