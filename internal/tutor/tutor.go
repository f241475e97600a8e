// Package tutor implements the adaptive teaching controller: a tabular
// Q-learning agent over discretized learner traits, plus the glue that turns
// real user feedback into learning signal.
package tutor

import (
	"math/rand/v2"

	"github.com/ankitray/sensei/internal/student"
)

// Config holds the Q-learning hyperparameters.
type Config struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64
	Buckets      int
}

// DefaultConfig returns the hyperparameters the controller ships with.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.1,
		Discount:     0.95,
		Epsilon:      0.12,
		Buckets:      5,
	}
}

// StateKey is a discretized learner state: bucket indices for mastery,
// frustration, and engagement.
type StateKey [3]int

// Tutor is a tabular Q-learning agent. Epsilon is mutable state, not
// configuration: training decays it. Not safe for concurrent use.
type Tutor struct {
	cfg     Config
	Epsilon float64

	q   map[StateKey]map[string]float64
	rng *rand.Rand
}

// New creates a controller with an empty Q-table.
func New(cfg Config, rng *rand.Rand) *Tutor {
	return &Tutor{
		cfg:     cfg,
		Epsilon: cfg.Epsilon,
		q:       make(map[StateKey]map[string]float64),
		rng:     rng,
	}
}

// NewSeeded creates a deterministic controller.
func NewSeeded(cfg Config, seed uint64) *Tutor {
	return New(cfg, rand.New(rand.NewPCG(seed, seed)))
}

// Config returns the hyperparameters the controller was built with.
func (t *Tutor) Config() Config {
	return t.cfg
}

// States returns the number of states the Q-table has visited.
func (t *Tutor) States() int {
	return len(t.q)
}

// Discretize maps continuous traits in [0, 1] to bucket indices. Inputs are
// clamped just below 1 so the top of the range lands in the last bucket.
func (t *Tutor) Discretize(mastery, frustration, engagement float64) StateKey {
	return StateKey{
		t.bucket(mastery),
		t.bucket(frustration),
		t.bucket(engagement),
	}
}

func (t *Tutor) bucket(x float64) int {
	if x < 0 {
		x = 0
	}
	if x > 0.9999 {
		x = 0.9999
	}
	return int(x * float64(t.cfg.Buckets))
}

func (t *Tutor) ensure(s StateKey) map[string]float64 {
	row, ok := t.q[s]
	if !ok {
		row = make(map[string]float64, len(student.Actions))
		for _, a := range student.Actions {
			row[a] = 0
		}
		t.q[s] = row
	}
	return row
}

// ChooseAction picks the next action epsilon-greedily: with probability
// Epsilon a uniform random action, otherwise a uniform choice among the
// actions tied for the highest Q-value.
func (t *Tutor) ChooseAction(s StateKey) string {
	row := t.ensure(s)
	if t.rng.Float64() < t.Epsilon {
		return student.Actions[t.rng.IntN(len(student.Actions))]
	}

	best := []string{}
	max := 0.0
	// Canonical action order keeps the tie set deterministic for a fixed rng.
	for i, a := range student.Actions {
		v := row[a]
		if i == 0 || v > max {
			max = v
			best = best[:0]
		}
		if v == max {
			best = append(best, a)
		}
	}
	return best[t.rng.IntN(len(best))]
}

// GreedyAction returns the highest-valued action for s without exploration.
// When every Q-value is still zero it falls back to a uniform random pick.
func (t *Tutor) GreedyAction(s StateKey) string {
	row := t.ensure(s)
	allZero := true
	for _, v := range row {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return student.Actions[t.rng.IntN(len(student.Actions))]
	}

	best := student.Actions[0]
	for _, a := range student.Actions[1:] {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}

// Update applies the Q-learning rule:
//
//	Q(s,a) += α · (r + γ · max Q(s',·) − Q(s,a))
func (t *Tutor) Update(s StateKey, action string, reward float64, next StateKey) {
	row := t.ensure(s)
	nextRow := t.ensure(next)

	maxNext := 0.0
	for i, a := range student.Actions {
		if v := nextRow[a]; i == 0 || v > maxNext {
			maxNext = v
		}
	}

	cur := row[action]
	row[action] = cur + t.cfg.LearningRate*(reward+t.cfg.Discount*maxNext-cur)
}

// Q returns the current Q-value for (s, action).
func (t *Tutor) Q(s StateKey, action string) float64 {
	return t.ensure(s)[action]
}

// Reward scores one interaction. Positive responses earn a flat bonus,
// frustration and boredom are penalized, and the learner's current
// engagement and mastery shade the result. A learner past the frustration
// ceiling or below the engagement floor incurs a catastrophic penalty.
func Reward(s *student.Simulator, resp student.Response) float64 {
	r := 0.0
	switch resp {
	case student.ResponseSuccess, student.ResponseImproved, student.ResponseEngaged:
		r += 10
	case student.ResponseFrustrated:
		r -= 12
	case student.ResponseBored:
		r -= 6
	}

	r += s.Engagement * 3
	r += s.Mastery * 5

	if s.Frustration > 0.9 || s.Engagement < 0.15 {
		r -= 50
	}
	return r
}
