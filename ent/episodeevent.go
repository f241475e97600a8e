// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/episodeevent"
)

// EpisodeEvent is the model entity for the EpisodeEvent schema.
type EpisodeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping episodes of one training run
	RunID string `json:"run_id,omitempty"`
	// Zero-based index within the run
	Episode int `json:"episode,omitempty"`
	// Sum of step rewards over the episode
	TotalReward float64 `json:"total_reward,omitempty"`
	// Simulated learner mastery at episode end
	FinalMastery float64 `json:"final_mastery,omitempty"`
	// Simulated learner frustration at episode end
	FinalFrustration float64 `json:"final_frustration,omitempty"`
	// Exploration rate after the episode's decay step
	Epsilon      float64 `json:"epsilon,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EpisodeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case episodeevent.FieldTotalReward, episodeevent.FieldFinalMastery, episodeevent.FieldFinalFrustration, episodeevent.FieldEpsilon:
			values[i] = new(sql.NullFloat64)
		case episodeevent.FieldID, episodeevent.FieldSequence, episodeevent.FieldEpisode:
			values[i] = new(sql.NullInt64)
		case episodeevent.FieldRunID:
			values[i] = new(sql.NullString)
		case episodeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EpisodeEvent fields.
func (_m *EpisodeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case episodeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case episodeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case episodeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case episodeevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case episodeevent.FieldEpisode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field episode", values[i])
			} else if value.Valid {
				_m.Episode = int(value.Int64)
			}
		case episodeevent.FieldTotalReward:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_reward", values[i])
			} else if value.Valid {
				_m.TotalReward = value.Float64
			}
		case episodeevent.FieldFinalMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_mastery", values[i])
			} else if value.Valid {
				_m.FinalMastery = value.Float64
			}
		case episodeevent.FieldFinalFrustration:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_frustration", values[i])
			} else if value.Valid {
				_m.FinalFrustration = value.Float64
			}
		case episodeevent.FieldEpsilon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field epsilon", values[i])
			} else if value.Valid {
				_m.Epsilon = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EpisodeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EpisodeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EpisodeEvent.
// Note that you need to call EpisodeEvent.Unwrap() before calling this method if this EpisodeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EpisodeEvent) Update() *EpisodeEventUpdateOne {
	return NewEpisodeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EpisodeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EpisodeEvent) Unwrap() *EpisodeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EpisodeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EpisodeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EpisodeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("episode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Episode))
	builder.WriteString(", ")
	builder.WriteString("total_reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalReward))
	builder.WriteString(", ")
	builder.WriteString("final_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalMastery))
	builder.WriteString(", ")
	builder.WriteString("final_frustration=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalFrustration))
	builder.WriteString(", ")
	builder.WriteString("epsilon=")
	builder.WriteString(fmt.Sprintf("%v", _m.Epsilon))
	builder.WriteByte(')')
	return builder.String()
}

// EpisodeEvents is a parsable slice of EpisodeEvent.
type EpisodeEvents []*EpisodeEvent
