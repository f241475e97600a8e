package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InferenceEvent records one emotional-state inference from answer evidence.
type InferenceEvent struct {
	ent.Schema
}

func (InferenceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InferenceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("estimator").
			Comment("Which estimator ran: table or gaussian"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("time_sec").
			Comment("Seconds spent on the question"),
		field.String("feedback").
			Comment("Self-reported difficulty feedback"),
		field.String("state").
			Comment("MAP emotional state"),
		field.Float("confidence").
			Comment("Posterior probability of the MAP state"),
	}
}

func (InferenceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
