package tutor

import "github.com/ankitray/sensei/internal/student"

// Starting difficulty for every simulated episode.
const initialDifficulty = 0.3

// Epsilon decay applied after each training episode, floored at 0.01.
const (
	epsilonDecay = 0.9995
	epsilonFloor = 0.01
)

// EpisodeStats summarizes one training episode.
type EpisodeStats struct {
	Episode          int
	FinalMastery     float64
	FinalFrustration float64
	TotalReward      float64

	// Epsilon is the exploration rate after this episode's decay.
	Epsilon float64
}

// EvalResult is the terminal learner condition of one greedy evaluation
// episode.
type EvalResult struct {
	Mastery     float64
	Frustration float64
}

// Train runs Q-learning against the student simulator for the given number
// of episodes. Each episode uses a fresh learner seeded from the base seed
// so runs are reproducible. Episodes end early once the learner is either
// past saving or effectively done.
func Train(t *Tutor, episodes, stepsPerEpisode int, seed uint64) []EpisodeStats {
	stats := make([]EpisodeStats, 0, episodes)

	for ep := 0; ep < episodes; ep++ {
		sim := student.NewSeeded(seed + uint64(ep))
		difficulty := initialDifficulty
		total := 0.0

		for step := 0; step < stepsPerEpisode; step++ {
			state := t.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
			action := t.ChooseAction(state)
			resp := sim.Respond(action, difficulty)

			switch action {
			case student.ActionIncreaseDifficulty:
				difficulty = min(1.0, difficulty+0.08)
			case student.ActionDecreaseDifficulty:
				difficulty = max(0.0, difficulty-0.08)
			}

			reward := Reward(sim, resp)
			next := t.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
			t.Update(state, action, reward, next)
			total += reward

			if sim.Frustration > 0.98 || sim.Mastery > 0.995 {
				break
			}
		}

		if t.Epsilon > epsilonFloor {
			t.Epsilon *= epsilonDecay
		}

		stats = append(stats, EpisodeStats{
			Episode:          ep,
			FinalMastery:     sim.Mastery,
			FinalFrustration: sim.Frustration,
			TotalReward:      total,
			Epsilon:          t.Epsilon,
		})
	}

	return stats
}

// EvaluatePolicy runs greedy episodes without learning and reports the
// terminal learner condition of each.
func EvaluatePolicy(t *Tutor, episodes, steps int, seed uint64) []EvalResult {
	results := make([]EvalResult, 0, episodes)

	for ep := 0; ep < episodes; ep++ {
		sim := student.NewSeeded(seed + 1000 + uint64(ep))
		difficulty := initialDifficulty

		for step := 0; step < steps; step++ {
			state := t.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
			action := t.GreedyAction(state)
			sim.Respond(action, difficulty)

			switch action {
			case student.ActionIncreaseDifficulty:
				difficulty = min(1.0, difficulty+0.08)
			case student.ActionDecreaseDifficulty:
				difficulty = max(0.0, difficulty-0.08)
			}

			if sim.Frustration > 0.98 {
				break
			}
		}

		results = append(results, EvalResult{
			Mastery:     sim.Mastery,
			Frustration: sim.Frustration,
		})
	}

	return results
}

// AverageReward returns the mean total reward over the last n episodes of
// stats, or over all of them when fewer exist.
func AverageReward(stats []EpisodeStats, n int) float64 {
	if len(stats) == 0 {
		return 0
	}
	if n <= 0 || n > len(stats) {
		n = len(stats)
	}
	sum := 0.0
	for _, s := range stats[len(stats)-n:] {
		sum += s.TotalReward
	}
	return sum / float64(n)
}
