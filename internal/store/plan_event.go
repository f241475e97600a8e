package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanner(data.Planner).
		SetSubject(data.Subject).
		SetPlanLength(data.PlanLength).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountPlans(ctx context.Context) (int, error) {
	n, err := r.client.PlanEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count plans: %w", err)
	}
	return n, nil
}
