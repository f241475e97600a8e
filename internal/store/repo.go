package store

import (
	"context"
	"time"
)

// SnapshotData captures the full controller state at a point in time.
type SnapshotData struct {
	Version  int                           `json:"version"`
	QTable   map[string]map[string]float64 `json:"q_table"`
	Epsilon  float64                       `json:"epsilon"`
	Episodes int                           `json:"episodes"`
}

// Snapshot represents a point-in-time capture of controller state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages controller state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EpisodeEventData captures one simulated training episode.
type EpisodeEventData struct {
	RunID            string
	Episode          int
	TotalReward      float64
	FinalMastery     float64
	FinalFrustration float64
	Epsilon          float64
}

// InferenceEventData captures one emotional-state inference.
type InferenceEventData struct {
	Estimator  string
	Correct    bool
	TimeSec    float64
	Feedback   string
	State      string
	Confidence float64
}

// PlanEventData captures one planner invocation.
type PlanEventData struct {
	Planner      string
	Subject      string
	PlanLength   int
	Success      bool
	ErrorMessage string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendEpisode records a training episode.
	AppendEpisode(ctx context.Context, data EpisodeEventData) error

	// AppendInference records an emotion inference.
	AppendInference(ctx context.Context, data InferenceEventData) error

	// AppendPlan records a planner run.
	AppendPlan(ctx context.Context, data PlanEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CountEpisodes returns the total number of recorded training episodes.
	CountEpisodes(ctx context.Context) (int, error)

	// RecentAverageReward averages total reward over the last n episodes.
	// Returns 0 when no episodes exist.
	RecentAverageReward(ctx context.Context, n int) (float64, error)

	// CountInferences returns the total number of recorded inferences.
	CountInferences(ctx context.Context) (int, error)

	// CountPlans returns the total number of recorded planner runs.
	CountPlans(ctx context.Context) (int, error)
}
