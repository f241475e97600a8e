// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanner sets the "planner" field.
func (_c *PlanEventCreate) SetPlanner(v string) *PlanEventCreate {
	_c.mutation.SetPlanner(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PlanEventCreate) SetSubject(v string) *PlanEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetPlanLength sets the "plan_length" field.
func (_c *PlanEventCreate) SetPlanLength(v int) *PlanEventCreate {
	_c.mutation.SetPlanLength(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *PlanEventCreate) SetSuccess(v bool) *PlanEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlanEventCreate) SetErrorMessage(v string) *PlanEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableErrorMessage(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := planevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Planner(); !ok {
		return &ValidationError{Name: "planner", err: errors.New(`ent: missing required field "PlanEvent.planner"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PlanEvent.subject"`)}
	}
	if _, ok := _c.mutation.PlanLength(); !ok {
		return &ValidationError{Name: "plan_length", err: errors.New(`ent: missing required field "PlanEvent.plan_length"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "PlanEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "PlanEvent.error_message"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
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

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Planner(); ok {
		_spec.SetField(planevent.FieldPlanner, field.TypeString, value)
		_node.Planner = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.PlanLength(); ok {
		_spec.SetField(planevent.FieldPlanLength, field.TypeInt, value)
		_node.PlanLength = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
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
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
