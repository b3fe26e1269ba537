// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// workbasket表，聚合将同时生效的一组关税变更
type WorkBasket struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 简短名称
	Title string `json:"title,omitempty"`
	// 变更原因
	Reason string `json:"reason,omitempty"`
	// 审批工作流状态
	Status workbasket.Status `json:"status,omitempty"`
	// 创建人
	Author string `json:"author,omitempty"`
	// 审批人，批准前为空
	Approver string `json:"approver,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkBasketQuery when eager-loading is set.
	Edges        WorkBasketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkBasketEdges holds the relations/edges for other nodes in the graph.
type WorkBasketEdges struct {
	// Transactions holds the value of the transactions edge.
	Transactions []*Transaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkBasketEdges) TransactionsOrErr() ([]*Transaction, error) {
	if e.loadedTypes[0] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkBasket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workbasket.FieldID:
			values[i] = new(sql.NullInt64)
		case workbasket.FieldTitle, workbasket.FieldReason, workbasket.FieldStatus, workbasket.FieldAuthor, workbasket.FieldApprover:
			values[i] = new(sql.NullString)
		case workbasket.FieldCreatedAt, workbasket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkBasket fields.
func (wb *WorkBasket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workbasket.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wb.ID = uint(value.Int64)
		case workbasket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				wb.Title = value.String
			}
		case workbasket.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				wb.Reason = value.String
			}
		case workbasket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wb.Status = workbasket.Status(value.String)
			}
		case workbasket.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				wb.Author = value.String
			}
		case workbasket.FieldApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver", values[i])
			} else if value.Valid {
				wb.Approver = value.String
			}
		case workbasket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wb.CreatedAt = value.Time
			}
		case workbasket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wb.UpdatedAt = value.Time
			}
		default:
			wb.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkBasket.
// This includes values selected through modifiers, order, etc.
func (wb *WorkBasket) Value(name string) (ent.Value, error) {
	return wb.selectValues.Get(name)
}

// QueryTransactions queries the "transactions" edge of the WorkBasket entity.
func (wb *WorkBasket) QueryTransactions() *TransactionQuery {
	return NewWorkBasketClient(wb.config).QueryTransactions(wb)
}

// Update returns a builder for updating this WorkBasket.
// Note that you need to call WorkBasket.Unwrap() before calling this method if this WorkBasket
// was returned from a transaction, and the transaction was committed or rolled back.
func (wb *WorkBasket) Update() *WorkBasketUpdateOne {
	return NewWorkBasketClient(wb.config).UpdateOne(wb)
}

// Unwrap unwraps the WorkBasket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wb *WorkBasket) Unwrap() *WorkBasket {
	_tx, ok := wb.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkBasket is not a transactional entity")
	}
	wb.config.driver = _tx.drv
	return wb
}

// String implements the fmt.Stringer.
func (wb *WorkBasket) String() string {
	var builder strings.Builder
	builder.WriteString("WorkBasket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wb.ID))
	builder.WriteString("title=")
	builder.WriteString(wb.Title)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(wb.Reason)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wb.Status))
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(wb.Author)
	builder.WriteString(", ")
	builder.WriteString("approver=")
	builder.WriteString(wb.Approver)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wb.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wb.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkBaskets is a parsable slice of WorkBasket.
type WorkBaskets []*WorkBasket
