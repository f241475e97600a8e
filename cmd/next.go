package cmd

import (
	"fmt"
	"strings"

	"github.com/ankitray/sensei/internal/concepts"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the next topic for the learner",
	Long: `Search the concept graph for the topic whose difficulty best matches
the learner's readiness and target level. BFS ranks every reachable concept
by mismatch; UCS and A* search with mismatch as the edge cost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy, _ := cmd.Flags().GetString("strategy")
		start, _ := cmd.Flags().GetString("start")
		readiness, _ := cmd.Flags().GetInt("readiness")
		target, _ := cmd.Flags().GetInt("target")

		g := concepts.DefaultGraph()
		p := concepts.Profile{Readiness: readiness, Target: target}

		res, err := concepts.Search(strategy, g, start, p)
		if err != nil {
			return err
		}

		fmt.Printf("Recommended topic: %s (difficulty %d)\n", res.Goal, g.Difficulty(res.Goal))
		if len(res.Path) > 0 {
			fmt.Printf("Path: %s\n", strings.Join(res.Path, " -> "))
		}
		if strategy != concepts.StrategyBFS {
			fmt.Printf("Cost: %.2f\n", res.Cost)
		}
		fmt.Printf("Explored %d concepts: %s\n", len(res.Explored), strings.Join(res.Explored, ", "))
		return nil
	},
}

func init() {
	nextCmd.Flags().String("strategy", concepts.StrategyAStar, "Search strategy: bfs, ucs, or astar")
	nextCmd.Flags().String("start", "Variables", "Concept the learner starts from")
	nextCmd.Flags().Int("readiness", 2, "Learner readiness level (1-5)")
	nextCmd.Flags().Int("target", 3, "Target difficulty level (1-5)")
}
