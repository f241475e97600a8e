// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/inferenceevent"
)

// InferenceEvent is the model entity for the InferenceEvent schema.
type InferenceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Which estimator ran: table or gaussian
	Estimator string `json:"estimator,omitempty"`
	// Whether the answer was correct
	Correct bool `json:"correct,omitempty"`
	// Seconds spent on the question
	TimeSec float64 `json:"time_sec,omitempty"`
	// Self-reported difficulty feedback
	Feedback string `json:"feedback,omitempty"`
	// MAP emotional state
	State string `json:"state,omitempty"`
	// Posterior probability of the MAP state
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InferenceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inferenceevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case inferenceevent.FieldTimeSec, inferenceevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case inferenceevent.FieldID, inferenceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case inferenceevent.FieldEstimator, inferenceevent.FieldFeedback, inferenceevent.FieldState:
			values[i] = new(sql.NullString)
		case inferenceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InferenceEvent fields.
func (_m *InferenceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inferenceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case inferenceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case inferenceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case inferenceevent.FieldEstimator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimator", values[i])
			} else if value.Valid {
				_m.Estimator = value.String
			}
		case inferenceevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case inferenceevent.FieldTimeSec:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_sec", values[i])
			} else if value.Valid {
				_m.TimeSec = value.Float64
			}
		case inferenceevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case inferenceevent.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case inferenceevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InferenceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InferenceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InferenceEvent.
// Note that you need to call InferenceEvent.Unwrap() before calling this method if this InferenceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InferenceEvent) Update() *InferenceEventUpdateOne {
	return NewInferenceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InferenceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InferenceEvent) Unwrap() *InferenceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InferenceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InferenceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InferenceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("estimator=")
	builder.WriteString(_m.Estimator)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSec))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// InferenceEvents is a parsable slice of InferenceEvent.
type InferenceEvents []*InferenceEvent
