// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/inferenceevent"
)

// InferenceEventCreate is the builder for creating a InferenceEvent entity.
type InferenceEventCreate struct {
	config
	mutation *InferenceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InferenceEventCreate) SetSequence(v int64) *InferenceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InferenceEventCreate) SetTimestamp(v time.Time) *InferenceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InferenceEventCreate) SetNillableTimestamp(v *time.Time) *InferenceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEstimator sets the "estimator" field.
func (_c *InferenceEventCreate) SetEstimator(v string) *InferenceEventCreate {
	_c.mutation.SetEstimator(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *InferenceEventCreate) SetCorrect(v bool) *InferenceEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeSec sets the "time_sec" field.
func (_c *InferenceEventCreate) SetTimeSec(v float64) *InferenceEventCreate {
	_c.mutation.SetTimeSec(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *InferenceEventCreate) SetFeedback(v string) *InferenceEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetState sets the "state" field.
func (_c *InferenceEventCreate) SetState(v string) *InferenceEventCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InferenceEventCreate) SetConfidence(v float64) *InferenceEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// Mutation returns the InferenceEventMutation object of the builder.
func (_c *InferenceEventCreate) Mutation() *InferenceEventMutation {
	return _c.mutation
}

// Save creates the InferenceEvent in the database.
func (_c *InferenceEventCreate) Save(ctx context.Context) (*InferenceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InferenceEventCreate) SaveX(ctx context.Context) *InferenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InferenceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InferenceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InferenceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := inferenceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InferenceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InferenceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InferenceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Estimator(); !ok {
		return &ValidationError{Name: "estimator", err: errors.New(`ent: missing required field "InferenceEvent.estimator"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "InferenceEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeSec(); !ok {
		return &ValidationError{Name: "time_sec", err: errors.New(`ent: missing required field "InferenceEvent.time_sec"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "InferenceEvent.feedback"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "InferenceEvent.state"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "InferenceEvent.confidence"`)}
	}
	return nil
}

func (_c *InferenceEventCreate) sqlSave(ctx context.Context) (*InferenceEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InferenceEventCreate) createSpec() (*InferenceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InferenceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inferenceevent.Table, sqlgraph.NewFieldSpec(inferenceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(inferenceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(inferenceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Estimator(); ok {
		_spec.SetField(inferenceevent.FieldEstimator, field.TypeString, value)
		_node.Estimator = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(inferenceevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeSec(); ok {
		_spec.SetField(inferenceevent.FieldTimeSec, field.TypeFloat64, value)
		_node.TimeSec = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(inferenceevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(inferenceevent.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(inferenceevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// InferenceEventCreateBulk is the builder for creating many InferenceEvent entities in bulk.
type InferenceEventCreateBulk struct {
	config
	err      error
	builders []*InferenceEventCreate
}

// Save creates the InferenceEvent entities in the database.
func (_c *InferenceEventCreateBulk) Save(ctx context.Context) ([]*InferenceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InferenceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InferenceEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InferenceEventCreateBulk) SaveX(ctx context.Context) []*InferenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InferenceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InferenceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
