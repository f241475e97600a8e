// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/inferenceevent"
	"github.com/ankitray/sensei/ent/predicate"
)

// InferenceEventUpdate is the builder for updating InferenceEvent entities.
type InferenceEventUpdate struct {
	config
	hooks    []Hook
	mutation *InferenceEventMutation
}

// Where appends a list predicates to the InferenceEventUpdate builder.
func (_u *InferenceEventUpdate) Where(ps ...predicate.InferenceEvent) *InferenceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEstimator sets the "estimator" field.
func (_u *InferenceEventUpdate) SetEstimator(v string) *InferenceEventUpdate {
	_u.mutation.SetEstimator(v)
	return _u
}

// SetNillableEstimator sets the "estimator" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableEstimator(v *string) *InferenceEventUpdate {
	if v != nil {
		_u.SetEstimator(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *InferenceEventUpdate) SetCorrect(v bool) *InferenceEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableCorrect(v *bool) *InferenceEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSec sets the "time_sec" field.
func (_u *InferenceEventUpdate) SetTimeSec(v float64) *InferenceEventUpdate {
	_u.mutation.ResetTimeSec()
	_u.mutation.SetTimeSec(v)
	return _u
}

// SetNillableTimeSec sets the "time_sec" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableTimeSec(v *float64) *InferenceEventUpdate {
	if v != nil {
		_u.SetTimeSec(*v)
	}
	return _u
}

// AddTimeSec adds value to the "time_sec" field.
func (_u *InferenceEventUpdate) AddTimeSec(v float64) *InferenceEventUpdate {
	_u.mutation.AddTimeSec(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *InferenceEventUpdate) SetFeedback(v string) *InferenceEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableFeedback(v *string) *InferenceEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InferenceEventUpdate) SetState(v string) *InferenceEventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableState(v *string) *InferenceEventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InferenceEventUpdate) SetConfidence(v float64) *InferenceEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InferenceEventUpdate) SetNillableConfidence(v *float64) *InferenceEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InferenceEventUpdate) AddConfidence(v float64) *InferenceEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the InferenceEventMutation object of the builder.
func (_u *InferenceEventUpdate) Mutation() *InferenceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InferenceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InferenceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InferenceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InferenceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InferenceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(inferenceevent.Table, inferenceevent.Columns, sqlgraph.NewFieldSpec(inferenceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Estimator(); ok {
		_spec.SetField(inferenceevent.FieldEstimator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(inferenceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSec(); ok {
		_spec.SetField(inferenceevent.FieldTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSec(); ok {
		_spec.AddField(inferenceevent.FieldTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(inferenceevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(inferenceevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(inferenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(inferenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inferenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InferenceEventUpdateOne is the builder for updating a single InferenceEvent entity.
type InferenceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InferenceEventMutation
}

// SetEstimator sets the "estimator" field.
func (_u *InferenceEventUpdateOne) SetEstimator(v string) *InferenceEventUpdateOne {
	_u.mutation.SetEstimator(v)
	return _u
}

// SetNillableEstimator sets the "estimator" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableEstimator(v *string) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetEstimator(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *InferenceEventUpdateOne) SetCorrect(v bool) *InferenceEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableCorrect(v *bool) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSec sets the "time_sec" field.
func (_u *InferenceEventUpdateOne) SetTimeSec(v float64) *InferenceEventUpdateOne {
	_u.mutation.ResetTimeSec()
	_u.mutation.SetTimeSec(v)
	return _u
}

// SetNillableTimeSec sets the "time_sec" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableTimeSec(v *float64) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetTimeSec(*v)
	}
	return _u
}

// AddTimeSec adds value to the "time_sec" field.
func (_u *InferenceEventUpdateOne) AddTimeSec(v float64) *InferenceEventUpdateOne {
	_u.mutation.AddTimeSec(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *InferenceEventUpdateOne) SetFeedback(v string) *InferenceEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableFeedback(v *string) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InferenceEventUpdateOne) SetState(v string) *InferenceEventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableState(v *string) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InferenceEventUpdateOne) SetConfidence(v float64) *InferenceEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InferenceEventUpdateOne) SetNillableConfidence(v *float64) *InferenceEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InferenceEventUpdateOne) AddConfidence(v float64) *InferenceEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the InferenceEventMutation object of the builder.
func (_u *InferenceEventUpdateOne) Mutation() *InferenceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InferenceEventUpdate builder.
func (_u *InferenceEventUpdateOne) Where(ps ...predicate.InferenceEvent) *InferenceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InferenceEventUpdateOne) Select(field string, fields ...string) *InferenceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InferenceEvent entity.
func (_u *InferenceEventUpdateOne) Save(ctx context.Context) (*InferenceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InferenceEventUpdateOne) SaveX(ctx context.Context) *InferenceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InferenceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InferenceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InferenceEventUpdateOne) sqlSave(ctx context.Context) (_node *InferenceEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(inferenceevent.Table, inferenceevent.Columns, sqlgraph.NewFieldSpec(inferenceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InferenceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inferenceevent.FieldID)
		for _, f := range fields {
			if !inferenceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inferenceevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Estimator(); ok {
		_spec.SetField(inferenceevent.FieldEstimator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(inferenceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSec(); ok {
		_spec.SetField(inferenceevent.FieldTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSec(); ok {
		_spec.AddField(inferenceevent.FieldTimeSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(inferenceevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(inferenceevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(inferenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(inferenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &InferenceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inferenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
