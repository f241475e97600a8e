// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ankitray/sensei/ent/episodeevent"
	"github.com/ankitray/sensei/ent/inferenceevent"
	"github.com/ankitray/sensei/ent/llmrequestevent"
	"github.com/ankitray/sensei/ent/planevent"
	"github.com/ankitray/sensei/ent/schema"
	"github.com/ankitray/sensei/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	episodeeventMixin := schema.EpisodeEvent{}.Mixin()
	episodeeventMixinFields0 := episodeeventMixin[0].Fields()
	_ = episodeeventMixinFields0
	episodeeventFields := schema.EpisodeEvent{}.Fields()
	_ = episodeeventFields
	// episodeeventDescTimestamp is the schema descriptor for timestamp field.
	episodeeventDescTimestamp := episodeeventMixinFields0[1].Descriptor()
	// episodeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	episodeevent.DefaultTimestamp = episodeeventDescTimestamp.Default.(func() time.Time)
	inferenceeventMixin := schema.InferenceEvent{}.Mixin()
	inferenceeventMixinFields0 := inferenceeventMixin[0].Fields()
	_ = inferenceeventMixinFields0
	inferenceeventFields := schema.InferenceEvent{}.Fields()
	_ = inferenceeventFields
	// inferenceeventDescTimestamp is the schema descriptor for timestamp field.
	inferenceeventDescTimestamp := inferenceeventMixinFields0[1].Descriptor()
	// inferenceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	inferenceevent.DefaultTimestamp = inferenceeventDescTimestamp.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescErrorMessage is the schema descriptor for error_message field.
	planeventDescErrorMessage := planeventFields[4].Descriptor()
	// planevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	planevent.DefaultErrorMessage = planeventDescErrorMessage.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
