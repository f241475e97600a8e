package emotion

import "math"

// GaussianEstimator performs full Bayesian inference instead of a table
// lookup. Correctness and feedback use discrete likelihoods; response time
// uses a per-state Gaussian, so nearby times shade the posterior instead of
// snapping to a bucket.
type GaussianEstimator struct {
	priors    [5]float64
	pCorrect  [5][2]float64 // columns: correct, incorrect
	pFeedback [5][3]float64 // columns: too easy, just right, too hard
	timeMu    [5]float64
	timeSigma [5]float64
}

// NewGaussianEstimator returns an estimator with the built-in priors and
// likelihoods. Rows follow States order.
func NewGaussianEstimator() *GaussianEstimator {
	return &GaussianEstimator{
		priors: [5]float64{0.25, 0.30, 0.20, 0.15, 0.10},
		pCorrect: [5][2]float64{
			{0.90, 0.10},
			{0.80, 0.20},
			{0.60, 0.40},
			{0.40, 0.60},
			{0.30, 0.70},
		},
		pFeedback: [5][3]float64{
			{0.70, 0.25, 0.05},
			{0.50, 0.40, 0.10},
			{0.20, 0.50, 0.30},
			{0.10, 0.40, 0.50},
			{0.05, 0.30, 0.65},
		},
		timeMu:    [5]float64{5, 10, 18, 30, 40},
		timeSigma: [5]float64{3, 5, 6, 8, 10},
	}
}

// Infer computes the normalized posterior
//
//	P(e | evidence) ∝ P(e) · P(correct | e) · P(feedback | e) · N(time; μe, σe)
//
// and returns its MAP estimate.
func (g *GaussianEstimator) Infer(ev Evidence) Result {
	cIdx := 1
	if ev.Correct {
		cIdx = 0
	}
	fIdx := feedbackIndex(ev.Feedback)

	var unnorm [5]float64
	total := 0.0
	for i := 0; i < 5; i++ {
		unnorm[i] = g.priors[i] *
			g.pCorrect[i][cIdx] *
			g.pFeedback[i][fIdx] *
			gaussianPDF(ev.TimeSec, g.timeMu[i], g.timeSigma[i])
		total += unnorm[i]
	}

	var r Result
	if total == 0 {
		// Every time likelihood underflowed; the evidence carries no
		// information, so fall back to the prior.
		r.Posterior = g.priors
	} else {
		for i := 0; i < 5; i++ {
			r.Posterior[i] = unnorm[i] / total
		}
	}
	best := argmax(r.Posterior)
	r.State = States[best]
	r.Confidence = r.Posterior[best]
	return r
}

func gaussianPDF(x, mu, sigma float64) float64 {
	d := x - mu
	return math.Exp(-d*d/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}
