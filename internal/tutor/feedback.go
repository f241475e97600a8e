package tutor

import (
	"strings"

	"github.com/ankitray/sensei/internal/student"
)

// DifficultyToLevel maps a continuous difficulty in [0, 1] to a coarse
// level label.
func DifficultyToLevel(diff float64) string {
	switch {
	case diff < 0.33:
		return "easy"
	case diff < 0.66:
		return "medium"
	default:
		return "hard"
	}
}

// ApplyActionToDifficulty shifts the current difficulty according to the
// chosen action, clamped to [0, 1]. Style switches and revisions nudge it
// only slightly.
func ApplyActionToDifficulty(action string, cur float64) float64 {
	switch action {
	case student.ActionIncreaseDifficulty:
		return min(1.0, cur+0.08)
	case student.ActionDecreaseDifficulty:
		return max(0.0, cur-0.08)
	case student.ActionSwitchStyle:
		return min(1.0, cur+0.02)
	case student.ActionOfferRevision:
		return max(0.0, cur-0.04)
	}
	return cur
}

// Signals carries whatever the UI learned from the user's last answer.
// Nil pointer fields mean the signal was not observed.
type Signals struct {
	Correct   *bool
	TimeSpent *float64
	Feedback  string
}

// InferResponse maps user-provided signals to a response label when no
// simulated reaction is available. Known correctness wins; otherwise the
// textual feedback and time spent are read heuristically.
func InferResponse(sig Signals) student.Response {
	if sig.Correct != nil {
		if *sig.Correct {
			return student.ResponseSuccess
		}
		if strings.Contains(strings.ToLower(sig.Feedback), "hard") {
			return student.ResponseFrustrated
		}
		if sig.TimeSpent != nil && *sig.TimeSpent > 45 {
			return student.ResponseFrustrated
		}
		return student.ResponseBored
	}

	if sig.Feedback != "" {
		fb := strings.ToLower(sig.Feedback)
		switch {
		case strings.Contains(fb, "hard"):
			return student.ResponseFrustrated
		case strings.Contains(fb, "easy"):
			return student.ResponseBored
		case strings.Contains(fb, "unclear"):
			return student.ResponseConfused
		default:
			return student.ResponseImproved
		}
	}
	return student.ResponseNeutral
}

// StepResult is the outcome of one feedback-driven controller step.
type StepResult struct {
	Response       student.Response
	Reward         float64
	NextAction     string
	NextDifficulty float64
	NextLevel      string
	CurrentState   StateKey
	NextState      StateKey
}

// StepFromFeedback advances the controller one interaction. When a previous
// action is known the learner model reacts to it and the Q-table is updated;
// otherwise the response is inferred from the raw signals and no update
// happens. Either way the next action and difficulty are chosen for the UI.
func StepFromFeedback(t *Tutor, sim *student.Simulator, lastAction string, lastState *StateKey, currentDiff float64, sig Signals) StepResult {
	var resp student.Response
	if lastAction != "" {
		resp = sim.Respond(lastAction, currentDiff)
	} else {
		resp = InferResponse(sig)
	}

	reward := Reward(sim, resp)
	if sig.Correct != nil {
		if *sig.Correct {
			reward += 5
		} else {
			reward -= 2
		}
	}
	if sig.TimeSpent != nil && *sig.TimeSpent > 120 {
		reward -= 3
	}

	next := t.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
	if lastState != nil && lastAction != "" {
		t.Update(*lastState, lastAction, reward, next)
	}

	cur := t.Discretize(sim.Mastery, sim.Frustration, sim.Engagement)
	action := t.ChooseAction(cur)
	nextDiff := ApplyActionToDifficulty(action, currentDiff)

	return StepResult{
		Response:       resp,
		Reward:         reward,
		NextAction:     action,
		NextDifficulty: nextDiff,
		NextLevel:      DifficultyToLevel(nextDiff),
		CurrentState:   cur,
		NextState:      next,
	}
}
