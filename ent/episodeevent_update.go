// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/episodeevent"
	"github.com/ankitray/sensei/ent/predicate"
)

// EpisodeEventUpdate is the builder for updating EpisodeEvent entities.
type EpisodeEventUpdate struct {
	config
	hooks    []Hook
	mutation *EpisodeEventMutation
}

// Where appends a list predicates to the EpisodeEventUpdate builder.
func (_u *EpisodeEventUpdate) Where(ps ...predicate.EpisodeEvent) *EpisodeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EpisodeEventUpdate) SetRunID(v string) *EpisodeEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableRunID(v *string) *EpisodeEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *EpisodeEventUpdate) SetEpisode(v int) *EpisodeEventUpdate {
	_u.mutation.ResetEpisode()
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableEpisode(v *int) *EpisodeEventUpdate {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// AddEpisode adds value to the "episode" field.
func (_u *EpisodeEventUpdate) AddEpisode(v int) *EpisodeEventUpdate {
	_u.mutation.AddEpisode(v)
	return _u
}

// SetTotalReward sets the "total_reward" field.
func (_u *EpisodeEventUpdate) SetTotalReward(v float64) *EpisodeEventUpdate {
	_u.mutation.ResetTotalReward()
	_u.mutation.SetTotalReward(v)
	return _u
}

// SetNillableTotalReward sets the "total_reward" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableTotalReward(v *float64) *EpisodeEventUpdate {
	if v != nil {
		_u.SetTotalReward(*v)
	}
	return _u
}

// AddTotalReward adds value to the "total_reward" field.
func (_u *EpisodeEventUpdate) AddTotalReward(v float64) *EpisodeEventUpdate {
	_u.mutation.AddTotalReward(v)
	return _u
}

// SetFinalMastery sets the "final_mastery" field.
func (_u *EpisodeEventUpdate) SetFinalMastery(v float64) *EpisodeEventUpdate {
	_u.mutation.ResetFinalMastery()
	_u.mutation.SetFinalMastery(v)
	return _u
}

// SetNillableFinalMastery sets the "final_mastery" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableFinalMastery(v *float64) *EpisodeEventUpdate {
	if v != nil {
		_u.SetFinalMastery(*v)
	}
	return _u
}

// AddFinalMastery adds value to the "final_mastery" field.
func (_u *EpisodeEventUpdate) AddFinalMastery(v float64) *EpisodeEventUpdate {
	_u.mutation.AddFinalMastery(v)
	return _u
}

// SetFinalFrustration sets the "final_frustration" field.
func (_u *EpisodeEventUpdate) SetFinalFrustration(v float64) *EpisodeEventUpdate {
	_u.mutation.ResetFinalFrustration()
	_u.mutation.SetFinalFrustration(v)
	return _u
}

// SetNillableFinalFrustration sets the "final_frustration" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableFinalFrustration(v *float64) *EpisodeEventUpdate {
	if v != nil {
		_u.SetFinalFrustration(*v)
	}
	return _u
}

// AddFinalFrustration adds value to the "final_frustration" field.
func (_u *EpisodeEventUpdate) AddFinalFrustration(v float64) *EpisodeEventUpdate {
	_u.mutation.AddFinalFrustration(v)
	return _u
}

// SetEpsilon sets the "epsilon" field.
func (_u *EpisodeEventUpdate) SetEpsilon(v float64) *EpisodeEventUpdate {
	_u.mutation.ResetEpsilon()
	_u.mutation.SetEpsilon(v)
	return _u
}

// SetNillableEpsilon sets the "epsilon" field if the given value is not nil.
func (_u *EpisodeEventUpdate) SetNillableEpsilon(v *float64) *EpisodeEventUpdate {
	if v != nil {
		_u.SetEpsilon(*v)
	}
	return _u
}

// AddEpsilon adds value to the "epsilon" field.
func (_u *EpisodeEventUpdate) AddEpsilon(v float64) *EpisodeEventUpdate {
	_u.mutation.AddEpsilon(v)
	return _u
}

// Mutation returns the EpisodeEventMutation object of the builder.
func (_u *EpisodeEventUpdate) Mutation() *EpisodeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EpisodeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EpisodeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EpisodeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(episodeevent.Table, episodeevent.Columns, sqlgraph.NewFieldSpec(episodeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(episodeevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(episodeevent.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpisode(); ok {
		_spec.AddField(episodeevent.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReward(); ok {
		_spec.SetField(episodeevent.FieldTotalReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalReward(); ok {
		_spec.AddField(episodeevent.FieldTotalReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalMastery(); ok {
		_spec.SetField(episodeevent.FieldFinalMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalMastery(); ok {
		_spec.AddField(episodeevent.FieldFinalMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalFrustration(); ok {
		_spec.SetField(episodeevent.FieldFinalFrustration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalFrustration(); ok {
		_spec.AddField(episodeevent.FieldFinalFrustration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Epsilon(); ok {
		_spec.SetField(episodeevent.FieldEpsilon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEpsilon(); ok {
		_spec.AddField(episodeevent.FieldEpsilon, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episodeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EpisodeEventUpdateOne is the builder for updating a single EpisodeEvent entity.
type EpisodeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EpisodeEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *EpisodeEventUpdateOne) SetRunID(v string) *EpisodeEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableRunID(v *string) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *EpisodeEventUpdateOne) SetEpisode(v int) *EpisodeEventUpdateOne {
	_u.mutation.ResetEpisode()
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableEpisode(v *int) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// AddEpisode adds value to the "episode" field.
func (_u *EpisodeEventUpdateOne) AddEpisode(v int) *EpisodeEventUpdateOne {
	_u.mutation.AddEpisode(v)
	return _u
}

// SetTotalReward sets the "total_reward" field.
func (_u *EpisodeEventUpdateOne) SetTotalReward(v float64) *EpisodeEventUpdateOne {
	_u.mutation.ResetTotalReward()
	_u.mutation.SetTotalReward(v)
	return _u
}

// SetNillableTotalReward sets the "total_reward" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableTotalReward(v *float64) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetTotalReward(*v)
	}
	return _u
}

// AddTotalReward adds value to the "total_reward" field.
func (_u *EpisodeEventUpdateOne) AddTotalReward(v float64) *EpisodeEventUpdateOne {
	_u.mutation.AddTotalReward(v)
	return _u
}

// SetFinalMastery sets the "final_mastery" field.
func (_u *EpisodeEventUpdateOne) SetFinalMastery(v float64) *EpisodeEventUpdateOne {
	_u.mutation.ResetFinalMastery()
	_u.mutation.SetFinalMastery(v)
	return _u
}

// SetNillableFinalMastery sets the "final_mastery" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableFinalMastery(v *float64) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetFinalMastery(*v)
	}
	return _u
}

// AddFinalMastery adds value to the "final_mastery" field.
func (_u *EpisodeEventUpdateOne) AddFinalMastery(v float64) *EpisodeEventUpdateOne {
	_u.mutation.AddFinalMastery(v)
	return _u
}

// SetFinalFrustration sets the "final_frustration" field.
func (_u *EpisodeEventUpdateOne) SetFinalFrustration(v float64) *EpisodeEventUpdateOne {
	_u.mutation.ResetFinalFrustration()
	_u.mutation.SetFinalFrustration(v)
	return _u
}

// SetNillableFinalFrustration sets the "final_frustration" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableFinalFrustration(v *float64) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetFinalFrustration(*v)
	}
	return _u
}

// AddFinalFrustration adds value to the "final_frustration" field.
func (_u *EpisodeEventUpdateOne) AddFinalFrustration(v float64) *EpisodeEventUpdateOne {
	_u.mutation.AddFinalFrustration(v)
	return _u
}

// SetEpsilon sets the "epsilon" field.
func (_u *EpisodeEventUpdateOne) SetEpsilon(v float64) *EpisodeEventUpdateOne {
	_u.mutation.ResetEpsilon()
	_u.mutation.SetEpsilon(v)
	return _u
}

// SetNillableEpsilon sets the "epsilon" field if the given value is not nil.
func (_u *EpisodeEventUpdateOne) SetNillableEpsilon(v *float64) *EpisodeEventUpdateOne {
	if v != nil {
		_u.SetEpsilon(*v)
	}
	return _u
}

// AddEpsilon adds value to the "epsilon" field.
func (_u *EpisodeEventUpdateOne) AddEpsilon(v float64) *EpisodeEventUpdateOne {
	_u.mutation.AddEpsilon(v)
	return _u
}

// Mutation returns the EpisodeEventMutation object of the builder.
func (_u *EpisodeEventUpdateOne) Mutation() *EpisodeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EpisodeEventUpdate builder.
func (_u *EpisodeEventUpdateOne) Where(ps ...predicate.EpisodeEvent) *EpisodeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EpisodeEventUpdateOne) Select(field string, fields ...string) *EpisodeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EpisodeEvent entity.
func (_u *EpisodeEventUpdateOne) Save(ctx context.Context) (*EpisodeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EpisodeEventUpdateOne) SaveX(ctx context.Context) *EpisodeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EpisodeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EpisodeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EpisodeEventUpdateOne) sqlSave(ctx context.Context) (_node *EpisodeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(episodeevent.Table, episodeevent.Columns, sqlgraph.NewFieldSpec(episodeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EpisodeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, episodeevent.FieldID)
		for _, f := range fields {
			if !episodeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != episodeevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(episodeevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(episodeevent.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpisode(); ok {
		_spec.AddField(episodeevent.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReward(); ok {
		_spec.SetField(episodeevent.FieldTotalReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalReward(); ok {
		_spec.AddField(episodeevent.FieldTotalReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalMastery(); ok {
		_spec.SetField(episodeevent.FieldFinalMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalMastery(); ok {
		_spec.AddField(episodeevent.FieldFinalMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalFrustration(); ok {
		_spec.SetField(episodeevent.FieldFinalFrustration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalFrustration(); ok {
		_spec.AddField(episodeevent.FieldFinalFrustration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Epsilon(); ok {
		_spec.SetField(episodeevent.FieldEpsilon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEpsilon(); ok {
		_spec.AddField(episodeevent.FieldEpsilon, field.TypeFloat64, value)
	}
	_node = &EpisodeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{episodeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
