// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/topiq/ent/quizsession"
)

// QuizSession is the model entity for the QuizSession schema.
type QuizSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque UUID assigned on first persist
	SessionID string `json:"session_id,omitempty"`
	// User-provided quiz topic
	Topic string `json:"topic,omitempty"`
	// Number of questions, fixed at creation
	QuestionCount int `json:"question_count,omitempty"`
	// Questions and answers as JSON
	Payload map[string]interface{} `json:"payload,omitempty"`
	// 0-based index of the question being viewed
	CurrentIndex int `json:"current_index,omitempty"`
	// Count of correctly answered questions
	Score int `json:"score,omitempty"`
	// incomplete or completed
	Status string `json:"status,omitempty"`
	// When the session was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the session was finished
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// When the last snapshot was written
	LastSavedAt  *time.Time `json:"last_saved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsession.FieldPayload:
			values[i] = new([]byte)
		case quizsession.FieldID, quizsession.FieldQuestionCount, quizsession.FieldCurrentIndex, quizsession.FieldScore:
			values[i] = new(sql.NullInt64)
		case quizsession.FieldSessionID, quizsession.FieldTopic, quizsession.FieldStatus:
			values[i] = new(sql.NullString)
		case quizsession.FieldCreatedAt, quizsession.FieldCompletedAt, quizsession.FieldLastSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSession fields.
func (_m *QuizSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizsession.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case quizsession.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case quizsession.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case quizsession.FieldCurrentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_index", values[i])
			} else if value.Valid {
				_m.CurrentIndex = int(value.Int64)
			}
		case quizsession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case quizsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case quizsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case quizsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case quizsession.FieldLastSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_saved_at", values[i])
			} else if value.Valid {
				_m.LastSavedAt = new(time.Time)
				*_m.LastSavedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSession.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizSession.
// Note that you need to call QuizSession.Unwrap() before calling this method if this QuizSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSession) Update() *QuizSessionUpdateOne {
	return NewQuizSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSession) Unwrap() *QuizSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSession) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("current_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIndex))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSavedAt; v != nil {
		builder.WriteString("last_saved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuizSessions is a parsable slice of QuizSession.
type QuizSessions []*QuizSession
