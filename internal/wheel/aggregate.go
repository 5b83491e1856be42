package wheel

import (
	"math"
	"strconv"
)

// ComputeAggregate derives the rounded mean and tier of a score set.
// The mean is sum/NumQuestions rounded half away from zero to one decimal.
// With integer ratings and ten questions the quotient is always a whole number
// of tenths, so rounding never changes a reachable mean.
func ComputeAggregate(s ScoreSet) Aggregate {
	mean := roundTenth(float64(s.Sum()) / NumQuestions)
	return Aggregate{Mean: mean, Tier: Classify(mean)}
}

// Classify maps a rounded mean onto a tier. Boundaries belong to the lower tier:
// mean <= 4.0 is Critical, mean <= 7.0 is Developing, anything above is High Performance.
func Classify(mean float64) Tier {
	// compare in tenths so 4.0 and 7.0 stay on the boundary
	tenths := int(math.Round(mean * 10))
	switch {
	case tenths <= 40:
		return TierCritical
	case tenths <= 70:
		return TierDeveloping
	default:
		return TierHighPerformance
	}
}

// FormatMean renders a mean with exactly one fractional digit.
func FormatMean(mean float64) string {
	return strconv.FormatFloat(mean, 'f', 1, 64)
}

// Summarize turns an Aggregate into its text-ready form.
func Summarize(a Aggregate) Summary {
	return Summary{
		Mean:     a.Mean,
		MeanText: FormatMean(a.Mean),
		Tier:     a.Tier,
		Label:    a.Tier.Label(),
		Class:    a.Tier.Class(),
	}
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
