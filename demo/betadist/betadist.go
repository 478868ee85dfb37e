// Package betadist samples the Beta distribution by envelope rejection.
// It demonstrates AcceptReject on a numeric target: uniform candidates on
// the unit interval are kept with probability proportional to the Beta
// density, so the survivors follow Beta(alpha, beta) exactly.
package betadist

import (
	"math"

	"github.com/shipq/proptest"
)

// New returns a generator of Beta(alpha, beta) variates on [0, 1). Each
// draw takes a candidate x and an acceptance coin u, both uniform, and
// keeps x when u scaled by the density peak falls under density(x).
// Requires alpha >= 1 and beta >= 1 so the density is bounded; outside
// that range the envelope has no finite peak.
func New(alpha, beta float64) proptest.Gen[float64] {
	if alpha < 1 || beta < 1 {
		panic("betadist: alpha and beta must be >= 1")
	}

	peak := densityPeak(alpha, beta)
	candidates := proptest.Zip(
		proptest.ChooseFloat64(0, 1),
		proptest.ChooseFloat64(0, 1),
	)
	accepted := proptest.AcceptReject(candidates, func(p proptest.Pair[float64, float64]) bool {
		return p.Second*peak < density(p.First, alpha, beta)
	})
	return proptest.Map(accepted, func(p proptest.Pair[float64, float64]) float64 {
		return p.First
	})
}

// Mean returns the analytic mean alpha / (alpha + beta).
func Mean(alpha, beta float64) float64 {
	return alpha / (alpha + beta)
}

// density is the unnormalized Beta density x^(alpha-1) * (1-x)^(beta-1).
// Normalization cancels out of the accept ratio, so it is never computed.
func density(x, alpha, beta float64) float64 {
	return math.Pow(x, alpha-1) * math.Pow(1-x, beta-1)
}

// densityPeak is the density at the mode (alpha-1) / (alpha+beta-2). The
// flat Beta(1, 1) case has no single mode and peaks at 1 everywhere.
func densityPeak(alpha, beta float64) float64 {
	if alpha == 1 && beta == 1 {
		return 1
	}
	mode := (alpha - 1) / (alpha + beta - 2)
	return density(mode, alpha, beta)
}
