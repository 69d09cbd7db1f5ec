package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed z-value for a confidence level given in
// percent.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// WilsonInterval bounds the true win rate given wins out of n games at the
// given confidence (percent). With no games the interval is [0, 1].
func WilsonInterval(wins, n int, confidence float64) (lo, hi float64) {
	if n <= 0 {
		return 0, 1
	}
	z := ZVal(confidence)
	p := float64(wins) / float64(n)
	nf := float64(n)
	denom := 1 + z*z/nf
	centre := (p + z*z/(2*nf)) / denom
	margin := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// RollingWinRate returns, for each episode, the fraction of wins among the
// last window scored episodes. Discarded episodes repeat the previous rate.
func RollingWinRate(episodes []EpisodeMetric, window int) []float64 {
	if window <= 0 {
		window = 1
	}
	rates := make([]float64, len(episodes))
	var recent []bool
	wins := 0
	prev := 0.0
	for i, e := range episodes {
		if e.Discarded {
			rates[i] = prev
			continue
		}
		recent = append(recent, e.Won)
		if e.Won {
			wins++
		}
		if len(recent) > window {
			if recent[0] {
				wins--
			}
			recent = recent[1:]
		}
		prev = float64(wins) / float64(len(recent))
		rates[i] = prev
	}
	return rates
}
