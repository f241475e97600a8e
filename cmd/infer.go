package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ankitray/sensei/internal/emotion"
	"github.com/ankitray/sensei/internal/store"
	"github.com/spf13/cobra"
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Estimate the learner's emotional state from one observation",
	Long: `Estimate the learner's emotional state from answer correctness, response
time, and self-reported difficulty feedback. The table estimator discretizes
the evidence and looks the posterior up in a conditional probability table;
the gaussian estimator keeps response time continuous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		timeSec, _ := cmd.Flags().GetFloat64("time")
		feedback, _ := cmd.Flags().GetString("feedback")
		estimator, _ := cmd.Flags().GetString("estimator")

		ev := emotion.Evidence{Correct: correct, TimeSec: timeSec, Feedback: feedback}

		var res emotion.Result
		switch estimator {
		case "table":
			est, err := emotion.NewTableEstimator()
			if err != nil {
				return fmt.Errorf("build table estimator: %w", err)
			}
			res = est.Infer(ev)
		case "gaussian":
			res = emotion.NewGaussianEstimator().Infer(ev)
		default:
			return fmt.Errorf("unknown estimator %q (want table or gaussian)", estimator)
		}

		fmt.Printf("Estimated state: %s (confidence %.3f)\n\n", res.State, res.Confidence)
		fmt.Println("Posterior:")
		for i, s := range emotion.States {
			fmt.Printf("  %-18s %.3f\n", s, res.Posterior[i])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		event := store.InferenceEventData{
			Estimator:  estimator,
			Correct:    correct,
			TimeSec:    timeSec,
			Feedback:   feedback,
			State:      string(res.State),
			Confidence: res.Confidence,
		}
		if err := st.EventRepo().AppendInference(context.Background(), event); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record inference event: %v\n", err)
		}

		return nil
	},
}

func init() {
	inferCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	inferCmd.Flags().Float64P("time", "t", 15, "Response time in seconds")
	inferCmd.Flags().StringP("feedback", "f", emotion.FeedbackJustRight, `Self-reported difficulty: "Too Easy", "Just Right", or "Too Hard"`)
	inferCmd.Flags().StringP("estimator", "e", "table", "Estimator to use: table or gaussian")
}
