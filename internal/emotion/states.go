// Package emotion estimates the learner's emotional state from observable
// evidence: answer correctness, response time, and self-reported difficulty
// feedback. Two estimators are provided. TableEstimator looks the posterior
// up in a conditional probability table over discretized evidence.
// GaussianEstimator keeps response time continuous and combines independent
// likelihoods with a prior.
package emotion

// State is one of the five recognized emotional states, ordered from most to
// least comfortable. The order is load-bearing: posterior vectors are indexed
// by it.
type State string

const (
	HighlyConfident State = "highly_confident"
	Confident       State = "confident"
	Confused        State = "confused"
	HighlyConfused  State = "highly_confused"
	Frustrated      State = "frustrated"
)

// States lists every emotional state in posterior index order.
var States = []State{HighlyConfident, Confident, Confused, HighlyConfused, Frustrated}

// Index returns the posterior index of s, or -1 if s is not a known state.
func Index(s State) int {
	for i, st := range States {
		if st == s {
			return i
		}
	}
	return -1
}

// Feedback values the estimators understand. Anything else is treated as
// FeedbackJustRight.
const (
	FeedbackTooEasy   = "Too Easy"
	FeedbackJustRight = "Just Right"
	FeedbackTooHard   = "Too Hard"
)

// Evidence is one observation of the learner answering a question.
type Evidence struct {
	Correct  bool
	TimeSec  float64
	Feedback string
}

// Result is a posterior over emotional states plus its MAP estimate.
type Result struct {
	State      State
	Confidence float64

	// Posterior is indexed by States order and sums to 1.
	Posterior [5]float64
}

func feedbackIndex(feedback string) int {
	switch feedback {
	case FeedbackTooEasy:
		return 0
	case FeedbackTooHard:
		return 2
	default:
		return 1
	}
}

func argmax(p [5]float64) int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return best
}
