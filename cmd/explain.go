package cmd

import (
	"context"
	"fmt"

	"github.com/ankitray/sensei/internal/explain"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Generate a friendly explanation for an attempted question",
	Long: `Generate a supportive explanation tailored to the learner's emotional
state. The provider is configured through SENSEI_LLM_PROVIDER and the
matching SENSEI_*_API_KEY variables; when unset, standard provider key
variables (GEMINI_API_KEY, OPENAI_API_KEY, ...) are probed in order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		options, _ := cmd.Flags().GetStringSlice("options")
		answer, _ := cmd.Flags().GetString("answer")
		emotionFlag, _ := cmd.Flags().GetString("emotion")
		topic, _ := cmd.Flags().GetString("topic")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		provider, err := explain.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := explain.NewService(provider)
		out, err := svc.Explain(ctx, explain.Input{
			Question:      question,
			Options:       options,
			CorrectAnswer: answer,
			Emotion:       emotionFlag,
			Topic:         topic,
		})
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	explainCmd.Flags().StringP("question", "q", "", "The question the learner attempted (required)")
	explainCmd.Flags().StringSlice("options", nil, "Answer options, comma separated")
	explainCmd.Flags().StringP("answer", "a", "", "The correct answer (required)")
	explainCmd.Flags().String("emotion", "confused", "Learner's estimated emotional state")
	explainCmd.Flags().String("topic", "General", "Subject area of the question")

	explainCmd.MarkFlagRequired("question")
	explainCmd.MarkFlagRequired("answer")
}
