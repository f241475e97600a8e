// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EpisodeEvent is the predicate function for episodeevent builders.
type EpisodeEvent func(*sql.Selector)

// InferenceEvent is the predicate function for inferenceevent builders.
type InferenceEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlanEvent is the predicate function for planevent builders.
type PlanEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
