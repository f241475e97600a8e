package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:  1,
			Epsilon:  0.08,
			Episodes: 600,
			QTable: map[string]map[string]float64{
				"(1, 1, 3)": {"increase_difficulty": 2.5},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Epsilon != 0.08 || snap.Data.Episodes != 600 {
		t.Errorf("data = %+v", snap.Data)
	}
	if got := snap.Data.QTable["(1, 1, 3)"]["increase_difficulty"]; got != 2.5 {
		t.Errorf("q value = %g, want 2.5", got)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, seq, i+1)
		}
	}
}

func TestEpisodeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rewards := []float64{100, 200, 300}
	for i, r := range rewards {
		err := repo.AppendEpisode(ctx, EpisodeEventData{
			RunID:            "run-1",
			Episode:          i,
			TotalReward:      r,
			FinalMastery:     0.8,
			FinalFrustration: 0.1,
			Epsilon:          0.12,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.CountEpisodes(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("CountEpisodes = %d, want 3", n)
	}

	avg, err := repo.RecentAverageReward(ctx, 2)
	if err != nil {
		t.Fatalf("recent average: %v", err)
	}
	if avg != 250 {
		t.Errorf("RecentAverageReward(2) = %g, want 250", avg)
	}
}

func TestRecentAverageRewardEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	avg, err := repo.RecentAverageReward(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent average: %v", err)
	}
	if avg != 0 {
		t.Errorf("RecentAverageReward = %g, want 0", avg)
	}
}

func TestInferenceAndPlanEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendInference(ctx, InferenceEventData{
		Estimator:  "table",
		Correct:    true,
		TimeSec:    15,
		Feedback:   "Just Right",
		State:      "highly_confident",
		Confidence: 0.75,
	})
	if err != nil {
		t.Fatalf("append inference: %v", err)
	}

	err = repo.AppendPlan(ctx, PlanEventData{
		Planner:    "graphplan",
		Subject:    "ch1",
		PlanLength: 10,
		Success:    true,
	})
	if err != nil {
		t.Fatalf("append plan: %v", err)
	}

	if n, err := repo.CountInferences(ctx); err != nil || n != 1 {
		t.Errorf("CountInferences = %d, %v; want 1, nil", n, err)
	}
	if n, err := repo.CountPlans(ctx); err != nil || n != 1 {
		t.Errorf("CountPlans = %d, %v; want 1, nil", n, err)
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "explanation",
		InputTokens:  120,
		OutputTokens: 200,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}
}
