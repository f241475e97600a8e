package cmd

import (
	"context"
	"fmt"

	"github.com/ankitray/sensei/internal/tutor"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the trained policy without learning",
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, _ := cmd.Flags().GetInt("episodes")
		steps, _ := cmd.Flags().GetInt("steps")
		seed, _ := cmd.Flags().GetUint64("seed")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load latest snapshot: %w", err)
		}
		if snap == nil {
			return fmt.Errorf("no trained policy found, run 'sensei train' first")
		}

		t := tutor.NewSeeded(tutor.DefaultConfig(), seed)
		t.Restore(snap.Data.QTable)

		fmt.Printf("Evaluating policy: %d episodes trained, %d states\n\n",
			snap.Data.Episodes, t.States())

		results := tutor.EvaluatePolicy(t, episodes, steps, seed)

		var mastery, frustration float64
		for _, r := range results {
			mastery += r.Mastery
			frustration += r.Frustration
		}
		n := float64(len(results))

		fmt.Printf("Greedy episodes:      %d\n", len(results))
		fmt.Printf("Average mastery:      %.3f\n", mastery/n)
		fmt.Printf("Average frustration:  %.3f\n", frustration/n)
		return nil
	},
}

func init() {
	evalCmd.Flags().IntP("episodes", "n", 20, "Number of evaluation episodes")
	evalCmd.Flags().Int("steps", 30, "Maximum steps per episode")
	evalCmd.Flags().Uint64("seed", 7, "Base random seed")
}
