package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ankitray/sensei/internal/planning"
	"github.com/ankitray/sensei/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a lesson plan for a subject",
	Long: `Generate a lesson plan that takes the learner from an unassessed start
to full branch coverage plus a final assessment. Two planners are available:
graphplan builds a leveled planning graph and extracts a totally ordered
plan; pop builds a partial-order plan from causal links and prints one
legal linearization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		planner, _ := cmd.Flags().GetString("planner")
		subject, _ := cmd.Flags().GetString("subject")
		domainPath, _ := cmd.Flags().GetString("domain")
		maxLevels, _ := cmd.Flags().GetInt("max-levels")
		maxIters, _ := cmd.Flags().GetInt("max-iters")

		dom := planning.TutoringDomain(subject)
		if domainPath != "" {
			var err error
			dom, err = planning.LoadDomain(domainPath)
			if err != nil {
				return err
			}
		}

		initial := planning.TutoringInitial(subject)
		goal := planning.TutoringGoal(subject)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		var plan []string
		var planErr error

		switch planner {
		case "graphplan":
			plan, planErr = runGraphPlan(initial, goal, dom, maxLevels)
		case "pop":
			plan, planErr = runPOP(initial, goal, dom, maxIters)
		default:
			return fmt.Errorf("unknown planner %q (want graphplan or pop)", planner)
		}

		event := store.PlanEventData{
			Planner:    planner,
			Subject:    subject,
			PlanLength: len(plan),
			Success:    planErr == nil,
		}
		if planErr != nil {
			event.ErrorMessage = planErr.Error()
		}
		if err := st.EventRepo().AppendPlan(ctx, event); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record plan event: %v\n", err)
		}

		return planErr
	},
}

func runGraphPlan(initial, goal planning.State, dom *planning.Domain, maxLevels int) ([]string, error) {
	res, err := planning.Extract(initial, goal, dom, maxLevels)
	if err != nil {
		if errors.Is(err, planning.ErrUnreachable) {
			return nil, fmt.Errorf("goal unreachable within %d levels", maxLevels)
		}
		return nil, err
	}

	fmt.Printf("Goal reachable at level %d\n", res.GoalLevel)
	if !res.Complete {
		fmt.Println("Warning: extraction incomplete, plan may not reach the goal")
	}

	if _, err := planning.Validate(initial, goal, res.Plan, dom); err != nil {
		return res.Plan, fmt.Errorf("plan validation failed: %w", err)
	}

	fmt.Printf("\nPlan (%d steps):\n", len(res.Plan))
	for i, name := range res.Plan {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}
	fmt.Println("\nPlan validated: reaches the goal.")
	return res.Plan, nil
}

func runPOP(initial, goal planning.State, dom *planning.Domain, maxIters int) ([]string, error) {
	pp, err := planning.NewPOPPlanner(dom).Plan(initial, goal, maxIters)
	if err != nil {
		var budget *planning.ErrBudgetExceeded
		if errors.As(err, &budget) {
			return nil, fmt.Errorf("planning budget exhausted with %d open conditions left (try a larger --max-iters)", budget.Remaining)
		}
		return nil, err
	}

	fmt.Printf("Partial plan: %d steps, %d causal links, %d ordering constraints\n",
		len(pp.Steps)-2, len(pp.CausalLinks), len(pp.Order))

	if _, err := planning.Validate(initial, goal, pp.Linearization, dom); err != nil {
		return pp.Linearization, fmt.Errorf("linearization validation failed: %w", err)
	}

	fmt.Printf("\nLinearization (%d steps):\n", len(pp.Linearization))
	for i, name := range pp.Linearization {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}
	fmt.Println("\nLinearization validated: reaches the goal.")
	return pp.Linearization, nil
}

func init() {
	planCmd.Flags().StringP("planner", "p", "graphplan", "Planner to use: graphplan or pop")
	planCmd.Flags().StringP("subject", "s", "ch1", "Subject the plan is built for")
	planCmd.Flags().String("domain", "", "Path to a custom domain JSON file")
	planCmd.Flags().Int("max-levels", 15, "Maximum graph levels for graphplan")
	planCmd.Flags().Int("max-iters", 200, "Resolution budget for pop")
}
