package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training and usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		repo := st.EventRepo()

		episodes, err := repo.CountEpisodes(ctx)
		if err != nil {
			return fmt.Errorf("count episodes: %w", err)
		}
		inferences, err := repo.CountInferences(ctx)
		if err != nil {
			return fmt.Errorf("count inferences: %w", err)
		}
		plans, err := repo.CountPlans(ctx)
		if err != nil {
			return fmt.Errorf("count plans: %w", err)
		}

		fmt.Printf("Training episodes:   %d\n", episodes)
		fmt.Printf("Emotion inferences:  %d\n", inferences)
		fmt.Printf("Planner runs:        %d\n", plans)

		if episodes > 0 {
			avg, err := repo.RecentAverageReward(ctx, 100)
			if err != nil {
				return fmt.Errorf("recent average reward: %w", err)
			}
			fmt.Printf("Avg reward (last 100 episodes): %.2f\n", avg)
		}

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load latest snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("\nNo policy snapshot saved yet.")
			return nil
		}

		fmt.Printf("\nLatest snapshot: %s\n", snap.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("  Episodes trained: %d\n", snap.Data.Episodes)
		fmt.Printf("  Epsilon:          %.4f\n", snap.Data.Epsilon)
		fmt.Printf("  States learned:   %d\n", len(snap.Data.QTable))
		return nil
	},
}
