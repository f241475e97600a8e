package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records one planner invocation and its outcome.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("planner").
			Comment("Algorithm used: graphplan or pop"),
		field.String("subject").
			Comment("Chapter subject the plan was built for"),
		field.Int("plan_length").
			Comment("Number of actions in the returned plan"),
		field.Bool("success").
			Comment("Whether a validated plan was produced"),
		field.String("error_message").
			Default("").
			Comment("Failure reason if unsuccessful"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("planner"),
		index.Fields("success"),
	}
}
