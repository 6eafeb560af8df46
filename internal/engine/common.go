package engine

import "math"

// depletionEpsilon absorbs float noise when deciding whether a remaining
// budget component is effectively zero.
const depletionEpsilon = 1e-6

// PercentOfTarget returns consumed/target as an integer percentage clamped
// to [0,100]. A zero or non-finite target yields 0, never NaN or Inf.
func PercentOfTarget(consumed, target float64) int {
	if target <= 0 || !isFinite(target) || !isFinite(consumed) {
		return 0
	}
	pct := consumed / target * 100
	if !isFinite(pct) || pct <= 0 {
		return 0
	}
	if pct >= 100 {
		return 100
	}
	return int(math.Round(pct))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func floorAtZero(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
