package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

type MacroFit int

const (
	FitPoor MacroFit = iota
	FitFair
	FitGood
	FitExcellent
)

func (f MacroFit) String() string {
	switch f {
	case FitExcellent:
		return "excellent"
	case FitGood:
		return "good"
	case FitFair:
		return "fair"
	default:
		return "poor"
	}
}

// SuggestionFilter narrows the catalog before scoring. Zero values pass
// everything; set fields are AND-combined.
type SuggestionFilter struct {
	Category           model.MealCategory
	MaxPrepTimeMinutes int
	Difficulty         model.MealDifficulty
}

type Suggestion struct {
	Meal model.MealCandidate `json:"meal"`
	Fit  MacroFit            `json:"fit"`
	// RecommendedFocus carries the current focus title when this meal
	// specifically serves it (the badge on suggestion rows). Empty otherwise.
	RecommendedFocus string `json:"recommended_focus,omitempty"`
}

const (
	// Fat gets extra headroom: it is the most flexible axis in a ketogenic
	// budget.
	fatAxisTolerance = 1.15

	// A meal must use at least this share of the remaining calories to earn
	// the top label. A near-zero-macro meal never exceeds the budget, but it
	// is not an excellent fit either.
	minBudgetUseShare = 0.15

	defaultSuggestionLimit = 10
)

// SuggestMeals scores and ranks catalog entries against the remaining
// budget. A depleted budget returns no suggestions: goals met means no more
// food. Candidates with all-zero nutrition are treated as malformed catalog
// data and skipped.
func SuggestMeals(remaining RemainingBudget, catalog []model.MealCandidate, filter SuggestionFilter, focus *Focus, limit int) []Suggestion {
	out := make([]Suggestion, 0, len(catalog))
	if remaining.IsDepleted() {
		return out
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	for _, meal := range catalog {
		if !matchesFilter(meal, filter) {
			continue
		}
		if meal.Nutrition.IsZero() {
			continue
		}
		out = append(out, Suggestion{
			Meal:             meal,
			Fit:              scoreMealFit(remaining, meal.Nutrition),
			RecommendedFocus: focusBadge(focus, meal.Nutrition),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fit != out[j].Fit {
			return out[i].Fit > out[j].Fit
		}
		di := distanceToRemaining(remaining, out[i].Meal.Nutrition)
		dj := distanceToRemaining(remaining, out[j].Meal.Nutrition)
		if di != dj {
			return di < dj
		}
		if out[i].Meal.PrepTimeMinutes != out[j].Meal.PrepTimeMinutes {
			return out[i].Meal.PrepTimeMinutes < out[j].Meal.PrepTimeMinutes
		}
		return strings.ToLower(out[i].Meal.Name) < strings.ToLower(out[j].Meal.Name)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesFilter(meal model.MealCandidate, f SuggestionFilter) bool {
	if f.Category != "" && meal.Category != f.Category {
		return false
	}
	if f.MaxPrepTimeMinutes > 0 && meal.PrepTimeMinutes > f.MaxPrepTimeMinutes {
		return false
	}
	if f.Difficulty != "" && meal.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// scoreMealFit counts how many axes the candidate fits within the remaining
// budget. Exact thresholds are tunable; the label ordering and the
// conservative bias (downgrade, never upgrade, on doubt) are the contract.
func scoreMealFit(remaining RemainingBudget, n model.NutritionAmount) MacroFit {
	axisFits := 0
	if n.ProteinG <= remaining.ProteinG {
		axisFits++
	}
	if n.NetCarbsG() <= remaining.CarbsG {
		axisFits++
	}
	if n.FatG <= remaining.FatG*fatAxisTolerance {
		axisFits++
	}
	if n.Calories <= remaining.Calories {
		axisFits++
	}

	var fit MacroFit
	switch axisFits {
	case 4:
		fit = FitExcellent
	case 3:
		fit = FitGood
	case 2:
		fit = FitFair
	default:
		fit = FitPoor
	}
	if fit == FitExcellent && remaining.Calories > 0 && n.Calories < remaining.Calories*minBudgetUseShare {
		fit = FitGood
	}
	return fit
}

// distanceToRemaining measures how closely a candidate matches the open
// budget; smaller is a tighter match. Calories are scaled down so gram axes
// and the kcal axis weigh comparably.
func distanceToRemaining(remaining RemainingBudget, n model.NutritionAmount) float64 {
	return math.Abs(remaining.ProteinG-n.ProteinG) +
		math.Abs(remaining.CarbsG-n.NetCarbsG()) +
		math.Abs(remaining.FatG-n.FatG) +
		math.Abs(remaining.Calories-n.Calories)/10
}

// focusBadge attaches the current focus title when the candidate is dense
// in the macro the focus asks for.
func focusBadge(focus *Focus, n model.NutritionAmount) string {
	if focus == nil {
		return ""
	}
	totalKcal := n.ProteinG*proteinKcalPerG + n.NetCarbsG()*carbKcalPerG + n.FatG*fatKcalPerG
	if totalKcal <= 0 {
		return ""
	}
	switch focus.Area {
	case FocusFat:
		if n.FatG*fatKcalPerG/totalKcal >= 0.60 {
			return focus.Title
		}
	case FocusProtein:
		if n.ProteinG*proteinKcalPerG/totalKcal >= 0.40 {
			return focus.Title
		}
	case FocusCarbs:
		if n.NetCarbsG() <= 1 {
			return focus.Title
		}
	}
	return ""
}
