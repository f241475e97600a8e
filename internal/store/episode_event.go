package store

import (
	"context"
	"fmt"

	"github.com/ankitray/sensei/ent"
	"github.com/ankitray/sensei/ent/episodeevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendEpisode(ctx context.Context, data EpisodeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EpisodeEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetEpisode(data.Episode).
		SetTotalReward(data.TotalReward).
		SetFinalMastery(data.FinalMastery).
		SetFinalFrustration(data.FinalFrustration).
		SetEpsilon(data.Epsilon).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save episode event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountEpisodes(ctx context.Context) (int, error) {
	n, err := r.client.EpisodeEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentAverageReward(ctx context.Context, n int) (float64, error) {
	events, err := r.client.EpisodeEvent.Query().
		Order(ent.Desc(episodeevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query recent episodes: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, e := range events {
		sum += e.TotalReward
	}
	return sum / float64(len(events)), nil
}
