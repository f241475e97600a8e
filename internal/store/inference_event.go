package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendInference(ctx context.Context, data InferenceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InferenceEvent.Create().
		SetSequence(seqNum).
		SetEstimator(data.Estimator).
		SetCorrect(data.Correct).
		SetTimeSec(data.TimeSec).
		SetFeedback(data.Feedback).
		SetState(data.State).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save inference event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountInferences(ctx context.Context) (int, error) {
	n, err := r.client.InferenceEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count inferences: %w", err)
	}
	return n, nil
}
