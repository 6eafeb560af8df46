package engine

import (
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

type WarningSeverity string

const (
	SeverityInfo     WarningSeverity = "info"
	SeverityWarning  WarningSeverity = "warning"
	SeverityCritical WarningSeverity = "critical"
)

type WarningKind string

const (
	WarnCarbCeilingExceeded WarningKind = "carb_ceiling_exceeded"
	WarnCarbCeilingNear     WarningKind = "carb_ceiling_near"
	WarnFatProteinRatioLow  WarningKind = "fat_protein_ratio_low"
	WarnProteinExcess       WarningKind = "protein_excess"
	WarnFatShortfall        WarningKind = "fat_shortfall_projected"
)

type Warning struct {
	Kind     WarningKind     `json:"kind"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

type FocusArea string

const (
	FocusFat     FocusArea = "fat"
	FocusProtein FocusArea = "protein"
	FocusCarbs   FocusArea = "carbs"
	FocusDone    FocusArea = "done"
)

// Focus is the single best-next recommendation for the rest of the day.
type Focus struct {
	Area      FocusArea `json:"area"`
	Title     string    `json:"title"`
	Rationale string    `json:"rationale"`
}

type Advice struct {
	Warnings []Warning `json:"warnings"`
	Focus    Focus     `json:"focus"`
}

// MealsRemaining infers eating opportunities left in the day from the wall
// clock. Late evening still counts a half opportunity (a snack).
func MealsRemaining(hour int) float64 {
	switch {
	case hour < 10:
		return 3
	case hour < 15:
		return 2
	case hour < 21:
		return 1
	default:
		return 0.5
	}
}

// Advise evaluates the day's pace against the targets at the given local
// hour (0-23). Identical numbers at 9 AM and 9 PM produce different
// guidance: a warning only fires when a threshold is crossed AND there is
// still opportunity left in the day to act on it. Early-day low intake is
// never a warning.
func Advise(targets model.MacroTargets, consumed DailyConsumption, hour int) Advice {
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	mealsLeft := MealsRemaining(hour)

	warnings := make([]Warning, 0, 4)

	if targets.CarbsG > 0 && consumed.NetCarbsG > targets.CarbsG*1.1 {
		warnings = append(warnings, Warning{
			Kind:     WarnCarbCeilingExceeded,
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("Net carbs at %.1fg, over your %.0fg ceiling. Keep remaining meals carb-free.", consumed.NetCarbsG, targets.CarbsG),
		})
	} else if targets.CarbsG > 0 && consumed.NetCarbsG > targets.CarbsG*0.8 && hour >= 12 {
		warnings = append(warnings, Warning{
			Kind:     WarnCarbCeilingNear,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Net carbs at %.1fg of your %.0fg ceiling. Only %.1fg of room left today.", consumed.NetCarbsG, targets.CarbsG, floorAtZero(targets.CarbsG-consumed.NetCarbsG)),
		})
	}

	fatCalories := consumed.FatG * fatKcalPerG
	proteinCalories := consumed.ProteinG * proteinKcalPerG
	if fatCalories > 0 && proteinCalories > 0 && fatCalories/proteinCalories < 1.2 && hour >= 12 && mealsLeft <= 2 {
		warnings = append(warnings, Warning{
			Kind:     WarnFatProteinRatioLow,
			Severity: SeverityWarning,
			Message:  "Fat-to-protein ratio is low for ketosis. Favor fattier foods in your remaining meals.",
		})
	}

	if targets.ProteinG > 0 && consumed.ProteinG > targets.ProteinG*1.3 && hour >= 12 {
		warnings = append(warnings, Warning{
			Kind:     WarnProteinExcess,
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Protein at %.0fg, well past your %.0fg target. Excess protein can slow ketosis.", consumed.ProteinG, targets.ProteinG),
		})
	}

	// Projected end-of-day fat, extrapolated linearly from the current pace.
	hoursElapsed := float64(hour)
	if hoursElapsed < 1 {
		hoursElapsed = 1
	}
	hoursRemaining := 24 - hoursElapsed
	projectedFat := consumed.FatG + (consumed.FatG/hoursElapsed)*hoursRemaining
	if targets.FatG > 0 && projectedFat < targets.FatG*0.7 && hour >= 14 && mealsLeft >= 1 {
		warnings = append(warnings, Warning{
			Kind:     WarnFatShortfall,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("On pace to finish short on fat. You still need %.0fg to hit your target.", floorAtZero(targets.FatG-consumed.FatG)),
		})
	}

	return Advice{
		Warnings: warnings,
		Focus:    pickFocus(targets, consumed),
	}
}

// pickFocus chooses the macro to prioritize next from the relative room
// left on each axis. Carbs never become a focus to fill; they are a ceiling.
func pickFocus(targets model.MacroTargets, consumed DailyConsumption) Focus {
	remaining := RemainingBudget{
		Calories: floorAtZero(targets.Calories - consumed.Calories),
		ProteinG: floorAtZero(targets.ProteinG - consumed.ProteinG),
		CarbsG:   floorAtZero(targets.CarbsG - consumed.NetCarbsG),
		FatG:     floorAtZero(targets.FatG - consumed.FatG),
	}

	if remaining.IsDepleted() {
		return Focus{
			Area:      FocusDone,
			Title:     "Goals met",
			Rationale: "You have hit today's macro targets. No more food needed.",
		}
	}

	if targets.CarbsG > 0 && consumed.NetCarbsG > targets.CarbsG {
		return Focus{
			Area:      FocusCarbs,
			Title:     "Keep carbs at zero",
			Rationale: fmt.Sprintf("You are %.1fg over the net-carb ceiling. Choose zero-carb options for the rest of the day.", consumed.NetCarbsG-targets.CarbsG),
		}
	}

	fatShare := shareRemaining(remaining.FatG, targets.FatG)
	proteinShare := shareRemaining(remaining.ProteinG, targets.ProteinG)

	// Fat wins ties: it is the axis a ketogenic day most often under-fills.
	if fatShare >= proteinShare {
		return Focus{
			Area:      FocusFat,
			Title:     "Prioritize fat",
			Rationale: fmt.Sprintf("%.0fg of fat remaining, your largest open target. Reach for fat-dense foods next.", remaining.FatG),
		}
	}
	return Focus{
		Area:      FocusProtein,
		Title:     "Prioritize protein",
		Rationale: fmt.Sprintf("%.0fg of protein remaining. A protein-forward meal fits best next.", remaining.ProteinG),
	}
}

func shareRemaining(remaining, target float64) float64 {
	if target <= 0 || !isFinite(target) {
		return 0
	}
	return remaining / target
}
