package explain

import (
	"context"
	"fmt"
	"strings"
)

// Input describes an attempted multiple-choice question plus the student
// context the explanation should be tailored to.
type Input struct {
	Question      string
	Options       []string
	CorrectAnswer string

	// Emotion is the estimated emotional state, e.g. "confused".
	Emotion string
	// Topic names the subject area, e.g. "Data Structures".
	Topic string
}

// Service generates friendly tutor explanations through an LLM provider.
type Service struct {
	provider Provider

	// MaxTokens bounds each generated explanation. Default: 1024.
	MaxTokens int
	// Temperature for generation. Default: 0.7.
	Temperature float64
}

// NewService creates an explanation service over the given provider.
func NewService(provider Provider) *Service {
	return &Service{
		provider:    provider,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Explain generates a supportive explanation for an attempted question.
func (s *Service) Explain(ctx context.Context, in Input) (string, error) {
	if in.Question == "" {
		return "", fmt.Errorf("question is required")
	}
	if in.CorrectAnswer == "" {
		return "", fmt.Errorf("correct answer is required")
	}

	ctx = WithPurpose(ctx, "explanation")

	resp, err := s.provider.Generate(ctx, Request{
		Prompt:      BuildPrompt(in),
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generating explanation: %w", err)
	}

	return resp.Text, nil
}

// BuildPrompt assembles the tutor prompt. The structure is fixed so the
// model cannot wander: emotional acknowledgement, concept, correct answer,
// wrong answers, motivation.
func BuildPrompt(in Input) string {
	emotion := in.Emotion
	if emotion == "" {
		emotion = "neutral"
	}
	topic := in.Topic
	if topic == "" {
		topic = "General"
	}

	var b strings.Builder

	b.WriteString("You are a friendly AI tutor. Your goal is to help the student learn with clarity and emotional safety.\n\n")
	fmt.Fprintf(&b, "STUDENT EMOTIONAL STATE: %s\n", emotion)
	fmt.Fprintf(&b, "TOPIC: %s\n\n", topic)

	b.WriteString("The student attempted an MCQ. Generate:\n")
	b.WriteString("1. A gentle emotional acknowledgement based on the student's state.\n")
	b.WriteString("2. A clear explanation of the underlying concept.\n")
	b.WriteString("3. Why the correct answer is correct.\n")
	b.WriteString("4. A short explanation of why each incorrect option is wrong.\n")
	b.WriteString("5. A motivational closing line.\n\n")

	fmt.Fprintf(&b, "QUESTION:\n%s\n\n", in.Question)

	if len(in.Options) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, opt := range in.Options {
			fmt.Fprintf(&b, "- %s\n", opt)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "CORRECT ANSWER:\n%s\n\n", strings.TrimSpace(in.CorrectAnswer))

	b.WriteString("Your tone MUST be:\n")
	b.WriteString("- supportive\n")
	b.WriteString("- simple\n")
	b.WriteString("- encouraging\n")
	b.WriteString("- non-judgmental\n")
	b.WriteString("- confidence-building\n")

	return b.String()
}
