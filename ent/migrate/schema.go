// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EpisodeEventsColumns holds the columns for the "episode_events" table.
	EpisodeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "episode", Type: field.TypeInt},
		{Name: "total_reward", Type: field.TypeFloat64},
		{Name: "final_mastery", Type: field.TypeFloat64},
		{Name: "final_frustration", Type: field.TypeFloat64},
		{Name: "epsilon", Type: field.TypeFloat64},
	}
	// EpisodeEventsTable holds the schema information for the "episode_events" table.
	EpisodeEventsTable = &schema.Table{
		Name:       "episode_events",
		Columns:    EpisodeEventsColumns,
		PrimaryKey: []*schema.Column{EpisodeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "episodeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EpisodeEventsColumns[1]},
			},
			{
				Name:    "episodeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EpisodeEventsColumns[2]},
			},
			{
				Name:    "episodeevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{EpisodeEventsColumns[3]},
			},
		},
	}
	// InferenceEventsColumns holds the columns for the "inference_events" table.
	InferenceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "estimator", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_sec", Type: field.TypeFloat64},
		{Name: "feedback", Type: field.TypeString},
		{Name: "state", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// InferenceEventsTable holds the schema information for the "inference_events" table.
	InferenceEventsTable = &schema.Table{
		Name:       "inference_events",
		Columns:    InferenceEventsColumns,
		PrimaryKey: []*schema.Column{InferenceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inferenceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InferenceEventsColumns[1]},
			},
			{
				Name:    "inferenceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InferenceEventsColumns[2]},
			},
			{
				Name:    "inferenceevent_state",
				Unique:  false,
				Columns: []*schema.Column{InferenceEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "planner", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "plan_length", Type: field.TypeInt},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_planner",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[3]},
			},
			{
				Name:    "planevent_success",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EpisodeEventsTable,
		InferenceEventsTable,
		LlmRequestEventsTable,
		PlanEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
