package engine_test

import (
	"strings"
	"testing"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

func hasWarning(advice engine.Advice, kind engine.WarningKind) bool {
	for _, w := range advice.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func TestAdviseCarbCeilingExceededFiresAtAnyHour(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 1800, ProteinG: 120, CarbsG: 20, FatG: 150}
	consumed := engine.DailyConsumption{Calories: 600, ProteinG: 30, NetCarbsG: 25, FatG: 40}

	for _, hour := range []int{8, 13, 22} {
		advice := engine.Advise(targets, consumed, hour)
		if !hasWarning(advice, engine.WarnCarbCeilingExceeded) {
			t.Fatalf("hour %d: expected carb ceiling warning", hour)
		}
		for _, w := range advice.Warnings {
			if w.Kind == engine.WarnCarbCeilingExceeded && w.Severity != engine.SeverityCritical {
				t.Fatalf("carb ceiling overage must be critical, got %s", w.Severity)
			}
		}
	}
}

func TestAdviseApproachingCarbCeilingSuppressedInMorning(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 1800, ProteinG: 120, CarbsG: 20, FatG: 150}
	// 90% of ceiling: approaching, not exceeded.
	consumed := engine.DailyConsumption{Calories: 500, ProteinG: 30, NetCarbsG: 18, FatG: 40}

	morning := engine.Advise(targets, consumed, 9)
	if hasWarning(morning, engine.WarnCarbCeilingNear) {
		t.Fatalf("approaching-ceiling warning must not fire at hour 9")
	}
	evening := engine.Advise(targets, consumed, 20)
	if !hasWarning(evening, engine.WarnCarbCeilingNear) {
		t.Fatalf("approaching-ceiling warning expected at hour 20")
	}
}

func TestAdviseTimeOfDaySuppressionContract(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 1800, ProteinG: 120, CarbsG: 20, FatG: 150}

	// Under 80% of the carb target at hour 9: nothing carb-related fires.
	calm := engine.DailyConsumption{Calories: 300, ProteinG: 20, NetCarbsG: 10, FatG: 25}
	advice := engine.Advise(targets, calm, 9)
	if hasWarning(advice, engine.WarnCarbCeilingExceeded) || hasWarning(advice, engine.WarnCarbCeilingNear) {
		t.Fatalf("no carb warning expected at hour 9 under 80%%: %+v", advice.Warnings)
	}

	// Same macros but over 110% at hour 20 must warn.
	over := engine.DailyConsumption{Calories: 900, ProteinG: 60, NetCarbsG: 23, FatG: 70}
	advice = engine.Advise(targets, over, 20)
	if !hasWarning(advice, engine.WarnCarbCeilingExceeded) {
		t.Fatalf("carb overage warning expected at hour 20")
	}
}

func TestAdviseFatProteinRatioOnlyWithLimitedOpportunity(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 2000, ProteinG: 130, CarbsG: 20, FatG: 160}
	// Fat 40g (360 kcal) vs protein 90g (360 kcal): ratio 1.0 < 1.2.
	consumed := engine.DailyConsumption{Calories: 800, ProteinG: 90, NetCarbsG: 5, FatG: 40}

	// Hour 9: three meals left, plenty of time to correct.
	if hasWarning(engine.Advise(targets, consumed, 9), engine.WarnFatProteinRatioLow) {
		t.Fatalf("ratio warning must not fire in the morning")
	}
	// Hour 13: two meals left and past noon.
	if !hasWarning(engine.Advise(targets, consumed, 13), engine.WarnFatProteinRatioLow) {
		t.Fatalf("ratio warning expected at hour 13")
	}
}

func TestAdviseProjectedFatShortfallIncludesGramsNeeded(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 2000, ProteinG: 130, CarbsG: 20, FatG: 160}
	// 30g of fat by 15:00 projects to 48g, far below 70% of 160g.
	consumed := engine.DailyConsumption{Calories: 700, ProteinG: 60, NetCarbsG: 5, FatG: 30}

	advice := engine.Advise(targets, consumed, 15)
	found := false
	for _, w := range advice.Warnings {
		if w.Kind == engine.WarnFatShortfall {
			found = true
			if !strings.Contains(w.Message, "130g") {
				t.Fatalf("shortfall message should state 130g still needed, got %q", w.Message)
			}
		}
	}
	if !found {
		t.Fatalf("expected projected fat shortfall warning: %+v", advice.Warnings)
	}

	// Same numbers at hour 10 stay quiet: the day can still catch up.
	if hasWarning(engine.Advise(targets, consumed, 10), engine.WarnFatShortfall) {
		t.Fatalf("shortfall warning must not fire before hour 14")
	}
}

func TestAdviseEarlyDayLowIntakeIsNotAWarning(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 1800, ProteinG: 120, CarbsG: 20, FatG: 150}
	consumed := engine.DailyConsumption{Calories: 90, ProteinG: 5, NetCarbsG: 1, FatG: 7}
	advice := engine.Advise(targets, consumed, 8)
	if len(advice.Warnings) != 0 {
		t.Fatalf("low morning intake is normal, got warnings %+v", advice.Warnings)
	}
}

func TestAdviseFocusPrioritizesLargestOpenAxis(t *testing.T) {
	t.Parallel()
	targets := model.MacroTargets{Calories: 1800, ProteinG: 120, CarbsG: 20, FatG: 150}

	// Fat nearly untouched, protein nearly done.
	fatHeavyDay := engine.DailyConsumption{Calories: 500, ProteinG: 110, NetCarbsG: 5, FatG: 10}
	if focus := engine.Advise(targets, fatHeavyDay, 13).Focus; focus.Area != engine.FocusFat {
		t.Fatalf("expected fat focus, got %+v", focus)
	}

	// Protein untouched, fat nearly done.
	proteinDay := engine.DailyConsumption{Calories: 1400, ProteinG: 10, NetCarbsG: 5, FatG: 145}
	if focus := engine.Advise(targets, proteinDay, 13).Focus; focus.Area != engine.FocusProtein {
		t.Fatalf("expected protein focus, got %+v", focus)
	}

	// Everything met.
	doneDay := engine.DailyConsumption{Calories: 1800, ProteinG: 120, NetCarbsG: 20, FatG: 150}
	if focus := engine.Advise(targets, doneDay, 19).Focus; focus.Area != engine.FocusDone {
		t.Fatalf("expected done focus, got %+v", focus)
	}

	// Over the carb ceiling overrides everything else.
	carbDay := engine.DailyConsumption{Calories: 800, ProteinG: 40, NetCarbsG: 27, FatG: 50}
	if focus := engine.Advise(targets, carbDay, 13).Focus; focus.Area != engine.FocusCarbs {
		t.Fatalf("expected carbs focus, got %+v", focus)
	}
}

func TestMealsRemainingBuckets(t *testing.T) {
	t.Parallel()
	cases := []struct {
		hour int
		want float64
	}{
		{0, 3}, {9, 3}, {10, 2}, {14, 2}, {15, 1}, {20, 1}, {21, 0.5}, {23, 0.5},
	}
	for _, tc := range cases {
		if got := engine.MealsRemaining(tc.hour); got != tc.want {
			t.Fatalf("hour %d: expected %.1f meals remaining, got %.1f", tc.hour, tc.want, got)
		}
	}
}
