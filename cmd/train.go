package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ankitray/sensei/internal/store"
	"github.com/ankitray/sensei/internal/tutor"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the difficulty controller against the student simulator",
	Long: `Run Q-learning episodes against the simulated student and persist the
learned Q-table as a snapshot. Training resumes from the latest snapshot
when one exists, so repeated runs keep improving the same policy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, _ := cmd.Flags().GetInt("episodes")
		steps, _ := cmd.Flags().GetInt("steps")
		seed, _ := cmd.Flags().GetUint64("seed")
		keep, _ := cmd.Flags().GetInt("keep-snapshots")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		t := tutor.NewSeeded(tutor.DefaultConfig(), seed)

		priorEpisodes := 0
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load latest snapshot: %w", err)
		}
		if snap != nil {
			t.Restore(snap.Data.QTable)
			t.Epsilon = snap.Data.Epsilon
			priorEpisodes = snap.Data.Episodes
			fmt.Printf("Resuming from snapshot: %d episodes trained, epsilon %.4f, %d states\n",
				priorEpisodes, t.Epsilon, t.States())
		}

		runID := uuid.NewString()
		fmt.Printf("Training run %s: %d episodes x %d steps\n\n", runID, episodes, steps)

		stats := tutor.Train(t, episodes, steps, seed)

		repo := st.EventRepo()
		progressEvery := episodes / 10
		if progressEvery == 0 {
			progressEvery = 1
		}

		for i, s := range stats {
			event := store.EpisodeEventData{
				RunID:            runID,
				Episode:          priorEpisodes + s.Episode,
				TotalReward:      s.TotalReward,
				FinalMastery:     s.FinalMastery,
				FinalFrustration: s.FinalFrustration,
				Epsilon:          s.Epsilon,
			}
			if err := repo.AppendEpisode(ctx, event); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record episode event: %v\n", err)
				break
			}

			if (i+1)%progressEvery == 0 {
				recent := tutor.AverageReward(stats[:i+1], progressEvery)
				fmt.Printf("Episode %5d | avg reward %8.2f | epsilon %.4f\n",
					priorEpisodes+i+1, recent, s.Epsilon)
			}
		}

		seqNum, err := st.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("allocate snapshot sequence: %w", err)
		}
		newSnap := &store.Snapshot{
			Sequence:  seqNum,
			Timestamp: time.Now().UTC(),
			Data: store.SnapshotData{
				Version:  1,
				QTable:   t.Snapshot(),
				Epsilon:  t.Epsilon,
				Episodes: priorEpisodes + episodes,
			},
		}
		if err := st.SnapshotRepo().Save(ctx, newSnap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := st.SnapshotRepo().Prune(ctx, keep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}

		fmt.Printf("\nDone. %d states learned, epsilon %.4f, avg reward over last 100 episodes: %.2f\n",
			t.States(), t.Epsilon, tutor.AverageReward(stats, 100))
		return nil
	},
}

func init() {
	trainCmd.Flags().IntP("episodes", "n", 2000, "Number of training episodes")
	trainCmd.Flags().Int("steps", 30, "Maximum steps per episode")
	trainCmd.Flags().Uint64("seed", 42, "Base random seed for reproducible runs")
	trainCmd.Flags().Int("keep-snapshots", 5, "Number of snapshots to retain")
}
