// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// 事务表，(partition, order) 构成严格全序
type Transaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 分区：1=seed_file 2=revision 3=draft，分区值编码时间先后
	Partition int `json:"partition,omitempty"`
	// 分区内的序号，由排序分配器串行分配
	Order int `json:"order,omitempty"`
	// 所属workbasket ID
	WorkbasketID uint `json:"workbasket_id,omitempty"`
	// 复合键 workbasketID-order，导入去重用
	CompositeKey string `json:"composite_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TransactionQuery when eager-loading is set.
	Edges        TransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TransactionEdges holds the relations/edges for other nodes in the graph.
type TransactionEdges struct {
	// Workbasket holds the value of the workbasket edge.
	Workbasket *WorkBasket `json:"workbasket,omitempty"`
	// Entities holds the value of the entities edge.
	Entities []*TrackedEntity `json:"entities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkbasketOrErr returns the Workbasket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TransactionEdges) WorkbasketOrErr() (*WorkBasket, error) {
	if e.Workbasket != nil {
		return e.Workbasket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workbasket.Label}
	}
	return nil, &NotLoadedError{edge: "workbasket"}
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e TransactionEdges) EntitiesOrErr() ([]*TrackedEntity, error) {
	if e.loadedTypes[1] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transaction.FieldID, transaction.FieldPartition, transaction.FieldOrder, transaction.FieldWorkbasketID:
			values[i] = new(sql.NullInt64)
		case transaction.FieldCompositeKey:
			values[i] = new(sql.NullString)
		case transaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transaction fields.
func (t *Transaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			t.ID = uint(value.Int64)
		case transaction.FieldPartition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partition", values[i])
			} else if value.Valid {
				t.Partition = int(value.Int64)
			}
		case transaction.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				t.Order = int(value.Int64)
			}
		case transaction.FieldWorkbasketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workbasket_id", values[i])
			} else if value.Valid {
				t.WorkbasketID = uint(value.Int64)
			}
		case transaction.FieldCompositeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field composite_key", values[i])
			} else if value.Valid {
				t.CompositeKey = value.String
			}
		case transaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				t.CreatedAt = value.Time
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transaction.
// This includes values selected through modifiers, order, etc.
func (t *Transaction) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// QueryWorkbasket queries the "workbasket" edge of the Transaction entity.
func (t *Transaction) QueryWorkbasket() *WorkBasketQuery {
	return NewTransactionClient(t.config).QueryWorkbasket(t)
}

// QueryEntities queries the "entities" edge of the Transaction entity.
func (t *Transaction) QueryEntities() *TrackedEntityQuery {
	return NewTransactionClient(t.config).QueryEntities(t)
}

// Update returns a builder for updating this Transaction.
// Note that you need to call Transaction.Unwrap() before calling this method if this Transaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Transaction) Update() *TransactionUpdateOne {
	return NewTransactionClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Transaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Transaction) Unwrap() *Transaction {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transaction is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Transaction) String() string {
	var builder strings.Builder
	builder.WriteString("Transaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("partition=")
	builder.WriteString(fmt.Sprintf("%v", t.Partition))
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", t.Order))
	builder.WriteString(", ")
	builder.WriteString("workbasket_id=")
	builder.WriteString(fmt.Sprintf("%v", t.WorkbasketID))
	builder.WriteString(", ")
	builder.WriteString("composite_key=")
	builder.WriteString(t.CompositeKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(t.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Transactions is a parsable slice of Transaction.
type Transactions []*Transaction
