package explain

import (
	"context"
	"strings"
	"testing"
)

func sampleInput() Input {
	return Input{
		Question:      "Which data structure uses FIFO ordering?",
		Options:       []string{"Stack", "Queue", "Tree", "Graph"},
		CorrectAnswer: "Queue",
		Emotion:       "confused",
		Topic:         "Data Structures",
	}
}

func TestBuildPrompt_ContainsAllSections(t *testing.T) {
	prompt := BuildPrompt(sampleInput())

	for _, want := range []string{
		"STUDENT EMOTIONAL STATE: confused",
		"TOPIC: Data Structures",
		"QUESTION:\nWhich data structure uses FIFO ordering?",
		"- Stack",
		"- Queue",
		"- Tree",
		"- Graph",
		"CORRECT ANSWER:\nQueue",
		"- supportive",
		"- non-judgmental",
		"- confidence-building",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_Defaults(t *testing.T) {
	prompt := BuildPrompt(Input{
		Question:      "What is 2+2?",
		CorrectAnswer: "4",
	})

	if !strings.Contains(prompt, "STUDENT EMOTIONAL STATE: neutral") {
		t.Error("expected neutral emotion default")
	}
	if !strings.Contains(prompt, "TOPIC: General") {
		t.Error("expected General topic default")
	}
	if strings.Contains(prompt, "OPTIONS:") {
		t.Error("OPTIONS section should be omitted when no options given")
	}
}

func TestBuildPrompt_TrimsCorrectAnswer(t *testing.T) {
	in := sampleInput()
	in.CorrectAnswer = "  Queue  "
	prompt := BuildPrompt(in)
	if !strings.Contains(prompt, "CORRECT ANSWER:\nQueue\n") {
		t.Error("correct answer should be trimmed")
	}
}

func TestService_Explain(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "It's okay to feel confused. A queue is first-in-first-out."},
	)
	svc := NewService(mock)

	out, err := svc.Explain(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "first-in-first-out") {
		t.Fatalf("unexpected output: %s", out)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.MaxTokens != 1024 {
		t.Errorf("expected MaxTokens 1024, got %d", req.MaxTokens)
	}
	if !strings.Contains(req.Prompt, "friendly AI tutor") {
		t.Error("prompt should carry the tutor framing")
	}
}

func TestService_Explain_MissingFields(t *testing.T) {
	svc := NewService(NewMockProvider())

	if _, err := svc.Explain(context.Background(), Input{CorrectAnswer: "4"}); err == nil {
		t.Error("expected error for missing question")
	}
	if _, err := svc.Explain(context.Background(), Input{Question: "q"}); err == nil {
		t.Error("expected error for missing correct answer")
	}
}

func TestService_Explain_ProviderError(t *testing.T) {
	mock := NewMockProvider() // Empty queue returns ErrProviderUnavailable.
	svc := NewService(mock)

	if _, err := svc.Explain(context.Background(), sampleInput()); err == nil {
		t.Fatal("expected error")
	}
}
