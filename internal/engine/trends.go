package engine

import (
	"sort"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

type KetosisStatus string

const (
	KetosisOptimal    KetosisStatus = "optimal"    // 0-10g
	KetosisGood       KetosisStatus = "good"       // 10-20g
	KetosisBorderline KetosisStatus = "borderline" // 20-30g
	KetosisUnlikely   KetosisStatus = "unlikely"   // 30-50g
	KetosisOut        KetosisStatus = "out"        // 50g+
	KetosisUnknown    KetosisStatus = "unknown"    // no observations
)

// KetosisStatusForNetCarbs maps a day's net carbs onto the 5-level ordinal.
func KetosisStatusForNetCarbs(netCarbsG float64) KetosisStatus {
	switch {
	case netCarbsG <= 10:
		return KetosisOptimal
	case netCarbsG <= 20:
		return KetosisGood
	case netCarbsG <= 30:
		return KetosisBorderline
	case netCarbsG <= 50:
		return KetosisUnlikely
	default:
		return KetosisOut
	}
}

// ketosisProbabilityAnchors pin the probability at each band edge; values
// between anchors interpolate linearly, so the curve is continuous and
// strictly decreasing across band boundaries.
var ketosisProbabilityAnchors = []struct {
	netCarbsG   float64
	probability float64
}{
	{0, 0.97},
	{10, 0.85},
	{20, 0.65},
	{30, 0.40},
	{50, 0.15},
	{100, 0.02},
}

// KetosisProbability estimates the likelihood of being in ketosis after a
// day at the given net-carb level. Monotonically decreasing, always within
// (0,1).
func KetosisProbability(netCarbsG float64) float64 {
	anchors := ketosisProbabilityAnchors
	if netCarbsG <= anchors[0].netCarbsG {
		return anchors[0].probability
	}
	last := anchors[len(anchors)-1]
	if netCarbsG >= last.netCarbsG {
		return last.probability
	}
	for i := 1; i < len(anchors); i++ {
		if netCarbsG > anchors[i].netCarbsG {
			continue
		}
		lo, hi := anchors[i-1], anchors[i]
		span := hi.netCarbsG - lo.netCarbsG
		t := (netCarbsG - lo.netCarbsG) / span
		return lo.probability + t*(hi.probability-lo.probability)
	}
	return last.probability
}

type DayTrend struct {
	Date         string        `json:"date"`
	NetCarbsG    float64       `json:"net_carbs_g"`
	KetoFriendly bool          `json:"keto_friendly"`
	Status       KetosisStatus `json:"status"`
	Probability  float64       `json:"probability"`
}

type TrendReport struct {
	WindowDays             int           `json:"window_days"`
	Trends                 []DayTrend    `json:"trends"`
	CurrentStreak          int           `json:"current_streak"`
	PeriodAverageNetCarbsG float64       `json:"period_avg_net_carbs_g"`
	KetosisStatus          KetosisStatus `json:"ketosis_status"`
	KetosisProbability     float64       `json:"ketosis_probability"`
	WeekOverWeekDeltaG     float64       `json:"week_over_week_delta_g"`
	Direction              string        `json:"direction"`
}

const trendDirectionDeadbandG = 0.5

// AnalyzeTrends derives streak, averages, and ketosis analytics from an
// archived daily net-carb series. Days at or under the threshold count as
// keto-friendly. A zero-observation window degrades to zero-valued
// aggregates, never NaN.
func AnalyzeTrends(observations []model.DailyNetCarbObservation, thresholdG float64, windowDays int) TrendReport {
	if thresholdG <= 0 || !isFinite(thresholdG) {
		thresholdG = KetoCarbCeilingG
	}

	series := make([]model.DailyNetCarbObservation, len(observations))
	copy(series, observations)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	report := TrendReport{
		WindowDays:    windowDays,
		Trends:        make([]DayTrend, 0, len(series)),
		KetosisStatus: KetosisUnknown,
		Direction:     "steady",
	}
	if len(series) == 0 {
		return report
	}

	latest := series[len(series)-1]
	report.KetosisStatus = KetosisStatusForNetCarbs(latest.NetCarbsG)
	report.KetosisProbability = KetosisProbability(latest.NetCarbsG)

	windowed := windowObservations(series, windowDays)
	sum := 0.0
	for _, obs := range windowed {
		report.Trends = append(report.Trends, DayTrend{
			Date:         obs.Date,
			NetCarbsG:    obs.NetCarbsG,
			KetoFriendly: obs.NetCarbsG <= thresholdG,
			Status:       KetosisStatusForNetCarbs(obs.NetCarbsG),
			Probability:  KetosisProbability(obs.NetCarbsG),
		})
		sum += obs.NetCarbsG
	}
	if len(windowed) > 0 {
		report.PeriodAverageNetCarbsG = sum / float64(len(windowed))
	}

	// Streak walks the whole archive backward from the most recent day,
	// not just the requested window.
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].NetCarbsG > thresholdG {
			break
		}
		report.CurrentStreak++
	}

	report.WeekOverWeekDeltaG, report.Direction = weekOverWeek(series)
	return report
}

// windowObservations keeps the observations within windowDays calendar days
// of the latest archived date. windowDays <= 0 keeps everything.
func windowObservations(series []model.DailyNetCarbObservation, windowDays int) []model.DailyNetCarbObservation {
	if windowDays <= 0 || len(series) == 0 {
		return series
	}
	latest, err := time.Parse("2006-01-02", series[len(series)-1].Date)
	if err != nil {
		// Malformed latest date: fall back to counting observations.
		if len(series) > windowDays {
			return series[len(series)-windowDays:]
		}
		return series
	}
	cutoff := latest.AddDate(0, 0, -(windowDays - 1)).Format("2006-01-02")
	for i := range series {
		if series[i].Date >= cutoff {
			return series[i:]
		}
	}
	return series[:0]
}

// weekOverWeek compares the mean of the latest 7 calendar days against the
// preceding 7. Lower net carbs is better, so a negative delta reads as
// improving. The result is directional messaging only, not a threshold.
func weekOverWeek(series []model.DailyNetCarbObservation) (float64, string) {
	if len(series) == 0 {
		return 0, "steady"
	}
	latest, err := time.Parse("2006-01-02", series[len(series)-1].Date)
	if err != nil {
		return 0, "steady"
	}
	recentCutoff := latest.AddDate(0, 0, -6).Format("2006-01-02")
	previousCutoff := latest.AddDate(0, 0, -13).Format("2006-01-02")

	var recentSum, previousSum float64
	var recentCount, previousCount int
	for _, obs := range series {
		switch {
		case obs.Date >= recentCutoff:
			recentSum += obs.NetCarbsG
			recentCount++
		case obs.Date >= previousCutoff:
			previousSum += obs.NetCarbsG
			previousCount++
		}
	}
	if recentCount == 0 || previousCount == 0 {
		return 0, "steady"
	}

	delta := recentSum/float64(recentCount) - previousSum/float64(previousCount)
	switch {
	case delta <= -trendDirectionDeadbandG:
		return delta, "improving"
	case delta >= trendDirectionDeadbandG:
		return delta, "worsening"
	default:
		return delta, "steady"
	}
}
