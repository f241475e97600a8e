package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EpisodeEvent records one simulated training episode of the Q-learning
// controller.
type EpisodeEvent struct {
	ent.Schema
}

func (EpisodeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EpisodeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Comment("UUID grouping episodes of one training run"),
		field.Int("episode").
			Comment("Zero-based index within the run"),
		field.Float("total_reward").
			Comment("Sum of step rewards over the episode"),
		field.Float("final_mastery").
			Comment("Simulated learner mastery at episode end"),
		field.Float("final_frustration").
			Comment("Simulated learner frustration at episode end"),
		field.Float("epsilon").
			Comment("Exploration rate after the episode's decay step"),
	}
}

func (EpisodeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
