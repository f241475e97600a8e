// Package student models a learner as a small stochastic system. The
// simulator drives controller training and evaluation without a human in the
// loop.
package student

import "math/rand/v2"

// Response labels the learner's immediate reaction to a tutoring action.
type Response string

const (
	ResponseSuccess    Response = "success"
	ResponseFrustrated Response = "frustrated"
	ResponseBored      Response = "bored"
	ResponseEngaged    Response = "engaged"
	ResponseImproved   Response = "improved"
	ResponseNeutral    Response = "neutral"

	// ResponseConfused is never produced by the simulator; it comes from
	// textual feedback heuristics.
	ResponseConfused Response = "confused"
)

// Tutoring actions the simulator reacts to.
const (
	ActionIncreaseDifficulty = "increase_difficulty"
	ActionDecreaseDifficulty = "decrease_difficulty"
	ActionSwitchStyle        = "switch_style"
	ActionOfferRevision      = "offer_revision"
)

// Actions lists the tutoring actions in canonical order.
var Actions = []string{
	ActionIncreaseDifficulty,
	ActionDecreaseDifficulty,
	ActionSwitchStyle,
	ActionOfferRevision,
}

const jitterSigma = 0.01

// Simulator is a stochastic learner with three continuous traits in [0, 1].
// Respond mutates them. Not safe for concurrent use.
type Simulator struct {
	Mastery     float64
	Frustration float64
	Engagement  float64

	rng *rand.Rand
}

// New returns a simulator in the canonical starting condition: modest
// mastery, low frustration, decent engagement.
func New(rng *rand.Rand) *Simulator {
	return &Simulator{
		Mastery:     0.30,
		Frustration: 0.20,
		Engagement:  0.70,
		rng:         rng,
	}
}

// NewSeeded returns a deterministic simulator.
func NewSeeded(seed uint64) *Simulator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Respond simulates the learner's reaction to an action posed at the given
// difficulty, updating the internal traits with a little Gaussian jitter.
func (s *Simulator) Respond(action string, difficulty float64) Response {
	switch action {
	case ActionIncreaseDifficulty:
		if difficulty > s.Mastery+0.2 {
			s.Frustration = clamp01(s.Frustration + 0.12 + s.noise())
			s.Engagement = clamp01(s.Engagement - 0.08 + s.noise())
			return ResponseFrustrated
		}
		s.Mastery = clamp01(s.Mastery + 0.05 + s.noise())
		s.Engagement = clamp01(s.Engagement + 0.02 + s.noise())
		return ResponseSuccess

	case ActionDecreaseDifficulty:
		if difficulty < s.Mastery-0.2 {
			s.Engagement = clamp01(s.Engagement - 0.06 + s.noise())
			return ResponseBored
		}
		s.Mastery = clamp01(s.Mastery + 0.03 + s.noise())
		s.Frustration = clamp01(s.Frustration - 0.05 + s.noise())
		return ResponseSuccess

	case ActionSwitchStyle:
		s.Engagement = clamp01(s.Engagement + 0.10 + s.noise())
		s.Frustration = clamp01(s.Frustration - 0.05 + s.noise())
		return ResponseEngaged

	case ActionOfferRevision:
		s.Mastery = clamp01(s.Mastery + 0.02 + s.noise())
		s.Frustration = clamp01(s.Frustration - 0.10 + s.noise())
		return ResponseImproved
	}
	return ResponseNeutral
}

func (s *Simulator) noise() float64 {
	return s.rng.NormFloat64() * jitterSigma
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
