// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/planevent"
	"github.com/ankitray/sensei/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanner sets the "planner" field.
func (_u *PlanEventUpdate) SetPlanner(v string) *PlanEventUpdate {
	_u.mutation.SetPlanner(v)
	return _u
}

// SetNillablePlanner sets the "planner" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanner(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanner(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdate) SetSubject(v string) *PlanEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSubject(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPlanLength sets the "plan_length" field.
func (_u *PlanEventUpdate) SetPlanLength(v int) *PlanEventUpdate {
	_u.mutation.ResetPlanLength()
	_u.mutation.SetPlanLength(v)
	return _u
}

// SetNillablePlanLength sets the "plan_length" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanLength(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanLength(*v)
	}
	return _u
}

// AddPlanLength adds value to the "plan_length" field.
func (_u *PlanEventUpdate) AddPlanLength(v int) *PlanEventUpdate {
	_u.mutation.AddPlanLength(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdate) SetSuccess(v bool) *PlanEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSuccess(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdate) SetErrorMessage(v string) *PlanEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableErrorMessage(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Planner(); ok {
		_spec.SetField(planevent.FieldPlanner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanLength(); ok {
		_spec.SetField(planevent.FieldPlanLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanLength(); ok {
		_spec.AddField(planevent.FieldPlanLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetPlanner sets the "planner" field.
func (_u *PlanEventUpdateOne) SetPlanner(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanner(v)
	return _u
}

// SetNillablePlanner sets the "planner" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanner(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanner(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdateOne) SetSubject(v string) *PlanEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSubject(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPlanLength sets the "plan_length" field.
func (_u *PlanEventUpdateOne) SetPlanLength(v int) *PlanEventUpdateOne {
	_u.mutation.ResetPlanLength()
	_u.mutation.SetPlanLength(v)
	return _u
}

// SetNillablePlanLength sets the "plan_length" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanLength(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanLength(*v)
	}
	return _u
}

// AddPlanLength adds value to the "plan_length" field.
func (_u *PlanEventUpdateOne) AddPlanLength(v int) *PlanEventUpdateOne {
	_u.mutation.AddPlanLength(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdateOne) SetSuccess(v bool) *PlanEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSuccess(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdateOne) SetErrorMessage(v string) *PlanEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableErrorMessage(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.Planner(); ok {
		_spec.SetField(planevent.FieldPlanner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanLength(); ok {
		_spec.SetField(planevent.FieldPlanLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanLength(); ok {
		_spec.AddField(planevent.FieldPlanLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
