// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/episodeevent"
)

// EpisodeEventCreate is the builder for creating a EpisodeEvent entity.
type EpisodeEventCreate struct {
	config
	mutation *EpisodeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EpisodeEventCreate) SetSequence(v int64) *EpisodeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EpisodeEventCreate) SetTimestamp(v time.Time) *EpisodeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EpisodeEventCreate) SetNillableTimestamp(v *time.Time) *EpisodeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *EpisodeEventCreate) SetRunID(v string) *EpisodeEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetEpisode sets the "episode" field.
func (_c *EpisodeEventCreate) SetEpisode(v int) *EpisodeEventCreate {
	_c.mutation.SetEpisode(v)
	return _c
}

// SetTotalReward sets the "total_reward" field.
func (_c *EpisodeEventCreate) SetTotalReward(v float64) *EpisodeEventCreate {
	_c.mutation.SetTotalReward(v)
	return _c
}

// SetFinalMastery sets the "final_mastery" field.
func (_c *EpisodeEventCreate) SetFinalMastery(v float64) *EpisodeEventCreate {
	_c.mutation.SetFinalMastery(v)
	return _c
}

// SetFinalFrustration sets the "final_frustration" field.
func (_c *EpisodeEventCreate) SetFinalFrustration(v float64) *EpisodeEventCreate {
	_c.mutation.SetFinalFrustration(v)
	return _c
}

// SetEpsilon sets the "epsilon" field.
func (_c *EpisodeEventCreate) SetEpsilon(v float64) *EpisodeEventCreate {
	_c.mutation.SetEpsilon(v)
	return _c
}

// Mutation returns the EpisodeEventMutation object of the builder.
func (_c *EpisodeEventCreate) Mutation() *EpisodeEventMutation {
	return _c.mutation
}

// Save creates the EpisodeEvent in the database.
func (_c *EpisodeEventCreate) Save(ctx context.Context) (*EpisodeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EpisodeEventCreate) SaveX(ctx context.Context) *EpisodeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EpisodeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := episodeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EpisodeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EpisodeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EpisodeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EpisodeEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Episode(); !ok {
		return &ValidationError{Name: "episode", err: errors.New(`ent: missing required field "EpisodeEvent.episode"`)}
	}
	if _, ok := _c.mutation.TotalReward(); !ok {
		return &ValidationError{Name: "total_reward", err: errors.New(`ent: missing required field "EpisodeEvent.total_reward"`)}
	}
	if _, ok := _c.mutation.FinalMastery(); !ok {
		return &ValidationError{Name: "final_mastery", err: errors.New(`ent: missing required field "EpisodeEvent.final_mastery"`)}
	}
	if _, ok := _c.mutation.FinalFrustration(); !ok {
		return &ValidationError{Name: "final_frustration", err: errors.New(`ent: missing required field "EpisodeEvent.final_frustration"`)}
	}
	if _, ok := _c.mutation.Epsilon(); !ok {
		return &ValidationError{Name: "epsilon", err: errors.New(`ent: missing required field "EpisodeEvent.epsilon"`)}
	}
	return nil
}

func (_c *EpisodeEventCreate) sqlSave(ctx context.Context) (*EpisodeEvent, error) {
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

func (_c *EpisodeEventCreate) createSpec() (*EpisodeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EpisodeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(episodeevent.Table, sqlgraph.NewFieldSpec(episodeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(episodeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(episodeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(episodeevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Episode(); ok {
		_spec.SetField(episodeevent.FieldEpisode, field.TypeInt, value)
		_node.Episode = value
	}
	if value, ok := _c.mutation.TotalReward(); ok {
		_spec.SetField(episodeevent.FieldTotalReward, field.TypeFloat64, value)
		_node.TotalReward = value
	}
	if value, ok := _c.mutation.FinalMastery(); ok {
		_spec.SetField(episodeevent.FieldFinalMastery, field.TypeFloat64, value)
		_node.FinalMastery = value
	}
	if value, ok := _c.mutation.FinalFrustration(); ok {
		_spec.SetField(episodeevent.FieldFinalFrustration, field.TypeFloat64, value)
		_node.FinalFrustration = value
	}
	if value, ok := _c.mutation.Epsilon(); ok {
		_spec.SetField(episodeevent.FieldEpsilon, field.TypeFloat64, value)
		_node.Epsilon = value
	}
	return _node, _spec
}

// EpisodeEventCreateBulk is the builder for creating many EpisodeEvent entities in bulk.
type EpisodeEventCreateBulk struct {
	config
	err      error
	builders []*EpisodeEventCreate
}

// Save creates the EpisodeEvent entities in the database.
func (_c *EpisodeEventCreateBulk) Save(ctx context.Context) ([]*EpisodeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EpisodeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EpisodeEventMutation)
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
func (_c *EpisodeEventCreateBulk) SaveX(ctx context.Context) []*EpisodeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpisodeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpisodeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
