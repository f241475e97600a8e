// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitray/sensei/ent/episodeevent"
	"github.com/ankitray/sensei/ent/predicate"
)

// EpisodeEventDelete is the builder for deleting a EpisodeEvent entity.
type EpisodeEventDelete struct {
	config
	hooks    []Hook
	mutation *EpisodeEventMutation
}

// Where appends a list predicates to the EpisodeEventDelete builder.
func (_d *EpisodeEventDelete) Where(ps ...predicate.EpisodeEvent) *EpisodeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EpisodeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EpisodeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EpisodeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(episodeevent.Table, sqlgraph.NewFieldSpec(episodeevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EpisodeEventDeleteOne is the builder for deleting a single EpisodeEvent entity.
type EpisodeEventDeleteOne struct {
	_d *EpisodeEventDelete
}

// Where appends a list predicates to the EpisodeEventDelete builder.
func (_d *EpisodeEventDeleteOne) Where(ps ...predicate.EpisodeEvent) *EpisodeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EpisodeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{episodeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EpisodeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
