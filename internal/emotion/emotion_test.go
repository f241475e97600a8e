package emotion

import (
	"math"
	"testing"
)

func TestTableEstimatorColumnsValid(t *testing.T) {
	if _, err := NewTableEstimator(); err != nil {
		t.Fatal(err)
	}
}

func TestTableEstimatorInfer(t *testing.T) {
	e, err := NewTableEstimator()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		ev   Evidence
		want State
		conf float64
	}{
		{"fast correct easy", Evidence{true, 5, FeedbackTooEasy}, HighlyConfident, 0.95},
		{"medium correct just right", Evidence{true, 15, FeedbackJustRight}, HighlyConfident, 0.75},
		{"slow incorrect hard", Evidence{false, 45, FeedbackTooHard}, Frustrated, 0.44},
		{"unknown feedback maps to just right", Evidence{true, 15, "whatever"}, HighlyConfident, 0.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := e.Infer(tc.ev)
			if r.State != tc.want {
				t.Errorf("State = %q, want %q", r.State, tc.want)
			}
			if math.Abs(r.Confidence-tc.conf) > 1e-9 {
				t.Errorf("Confidence = %g, want %g", r.Confidence, tc.conf)
			}
		})
	}
}

func TestEvidenceIndexBuckets(t *testing.T) {
	cases := []struct {
		ev   Evidence
		want int
	}{
		{Evidence{true, 0, FeedbackTooEasy}, 0},
		{Evidence{false, 9.99, FeedbackTooEasy}, 1},
		{Evidence{true, 10, FeedbackTooEasy}, 2},
		{Evidence{true, 30, FeedbackTooEasy}, 4},
		{Evidence{true, 15, FeedbackJustRight}, 8},
		{Evidence{false, 45, FeedbackTooHard}, 17},
	}
	for _, tc := range cases {
		if got := evidenceIndex(tc.ev); got != tc.want {
			t.Errorf("evidenceIndex(%+v) = %d, want %d", tc.ev, got, tc.want)
		}
	}
}

func TestGaussianEstimatorInfer(t *testing.T) {
	g := NewGaussianEstimator()
	r := g.Infer(Evidence{Correct: false, TimeSec: 33.5, Feedback: FeedbackTooHard})

	// The time likelihood dominates here: 33.5s sits closest to the
	// highly_confused mean (30s, σ=8), edging out frustrated.
	if r.State != HighlyConfused {
		t.Errorf("State = %q, want %q", r.State, HighlyConfused)
	}
	if r.Posterior[Index(HighlyConfused)] < 0.55 || r.Posterior[Index(HighlyConfused)] > 0.59 {
		t.Errorf("P(highly_confused) = %g, want ~0.57", r.Posterior[Index(HighlyConfused)])
	}
	if r.Posterior[Index(Frustrated)] < 0.39 || r.Posterior[Index(Frustrated)] > 0.43 {
		t.Errorf("P(frustrated) = %g, want ~0.41", r.Posterior[Index(Frustrated)])
	}
}

func TestGaussianPosteriorNormalized(t *testing.T) {
	g := NewGaussianEstimator()
	evs := []Evidence{
		{true, 4, FeedbackTooEasy},
		{false, 33.5, FeedbackTooHard},
		{true, 18, FeedbackJustRight},
		{false, 120, FeedbackTooHard},
	}
	for _, ev := range evs {
		r := g.Infer(ev)
		sum := 0.0
		for _, p := range r.Posterior {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("posterior for %+v sums to %g, want 1", ev, sum)
		}
		if r.Confidence != r.Posterior[Index(r.State)] {
			t.Errorf("Confidence %g does not match MAP posterior entry", r.Confidence)
		}
	}
}

func TestGaussianFastCorrectEasy(t *testing.T) {
	g := NewGaussianEstimator()
	r := g.Infer(Evidence{Correct: true, TimeSec: 4, Feedback: FeedbackTooEasy})
	if r.State != HighlyConfident {
		t.Errorf("State = %q, want %q", r.State, HighlyConfident)
	}
}

func TestGaussianExtremeTimeFallsBackToPrior(t *testing.T) {
	g := NewGaussianEstimator()
	// Far beyond every time mean the Gaussian terms all underflow to zero;
	// the posterior must degrade to the prior instead of NaN.
	r := g.Infer(Evidence{Correct: false, TimeSec: 1e6, Feedback: FeedbackTooHard})

	want := [5]float64{0.25, 0.30, 0.20, 0.15, 0.10}
	if r.Posterior != want {
		t.Errorf("Posterior = %v, want prior %v", r.Posterior, want)
	}
	if r.State != Confident {
		t.Errorf("State = %q, want %q", r.State, Confident)
	}
	if r.Confidence != 0.30 {
		t.Errorf("Confidence = %g, want 0.30", r.Confidence)
	}
}

func TestIndex(t *testing.T) {
	for i, s := range States {
		if got := Index(s); got != i {
			t.Errorf("Index(%q) = %d, want %d", s, got, i)
		}
	}
	if got := Index("bored"); got != -1 {
		t.Errorf("Index(unknown) = %d, want -1", got)
	}
}
