package emotion

import (
	"fmt"
	"math"
)

// TableEstimator maps discretized evidence straight to a posterior column of
// a conditional probability table. The table has one column per combination
// of correctness (2), time bucket (3), and feedback (3); the column index is
// C + 2T + 6F.
type TableEstimator struct {
	cpt [5][18]float64
}

// Distributions over the five states for each of the 18 evidence
// combinations. Columns are ordered by C + 2T + 6F.
var defaultCPT = [5][18]float64{
	{0.95, 0.40, 0.85, 0.30, 0.70, 0.20, 0.80, 0.30, 0.75, 0.25, 0.60, 0.15, 0.60, 0.10, 0.40, 0.05, 0.10, 0.01},
	{0.05, 0.30, 0.10, 0.35, 0.15, 0.30, 0.15, 0.40, 0.20, 0.40, 0.25, 0.30, 0.25, 0.30, 0.40, 0.25, 0.40, 0.05},
	{0.00, 0.20, 0.05, 0.25, 0.10, 0.30, 0.05, 0.20, 0.05, 0.25, 0.10, 0.30, 0.10, 0.40, 0.15, 0.50, 0.30, 0.15},
	{0.00, 0.10, 0.00, 0.08, 0.05, 0.10, 0.00, 0.05, 0.00, 0.08, 0.05, 0.15, 0.05, 0.15, 0.05, 0.15, 0.15, 0.35},
	{0.00, 0.00, 0.00, 0.02, 0.00, 0.10, 0.00, 0.05, 0.00, 0.02, 0.00, 0.10, 0.00, 0.05, 0.00, 0.05, 0.05, 0.44},
}

// NewTableEstimator builds an estimator over the built-in table after
// verifying every column is a probability distribution.
func NewTableEstimator() (*TableEstimator, error) {
	e := &TableEstimator{cpt: defaultCPT}
	for col := 0; col < 18; col++ {
		sum := 0.0
		for row := 0; row < 5; row++ {
			sum += e.cpt[row][col]
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return nil, fmt.Errorf("cpt column %d sums to %g, want 1", col, sum)
		}
	}
	return e, nil
}

// Infer discretizes the evidence and returns the matching table column as
// the posterior.
func (e *TableEstimator) Infer(ev Evidence) Result {
	col := evidenceIndex(ev)

	var r Result
	for row := 0; row < 5; row++ {
		r.Posterior[row] = e.cpt[row][col]
	}
	best := argmax(r.Posterior)
	r.State = States[best]
	r.Confidence = r.Posterior[best]
	return r
}

// evidenceIndex maps evidence to its CPT column. Time buckets: short under
// 10s, medium under 30s, long otherwise.
func evidenceIndex(ev Evidence) int {
	c := 1
	if ev.Correct {
		c = 0
	}
	t := 2
	switch {
	case ev.TimeSec < 10:
		t = 0
	case ev.TimeSec < 30:
		t = 1
	}
	return c + 2*t + 6*feedbackIndex(ev.Feedback)
}
