package engine

import "github.com/ozzzik/KetoMacroTracker-sub000/internal/model"

// DailyConsumption aggregates all logged entries for one calendar day.
// Carbs are tracked net, not total: fiber and sugar alcohols are subtracted
// per entry before summing so the subtraction stays food-local.
type DailyConsumption struct {
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	NetCarbsG float64 `json:"net_carbs_g"`
	FatG      float64 `json:"fat_g"`
}

// RemainingBudget is targets minus consumed, component-wise, floored at 0.
type RemainingBudget struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// IsDepleted reports whether every component is effectively zero, meaning
// the day's goals are already met.
func (r RemainingBudget) IsDepleted() bool {
	return r.Calories <= depletionEpsilon &&
		r.ProteinG <= depletionEpsilon &&
		r.CarbsG <= depletionEpsilon &&
		r.FatG <= depletionEpsilon
}

// ComputeConsumption sums today's entries (servings x per-serving amounts)
// and derives the remaining budget against the targets.
func ComputeConsumption(targets model.MacroTargets, entries []model.LoggedEntry) (DailyConsumption, RemainingBudget) {
	var consumed DailyConsumption
	for _, e := range entries {
		servings := e.Servings
		if servings <= 0 || !isFinite(servings) {
			continue
		}
		consumed.Calories += servings * e.Food.Calories
		consumed.ProteinG += servings * e.Food.ProteinG
		consumed.NetCarbsG += servings * e.Food.NetCarbsG()
		consumed.FatG += servings * e.Food.FatG
	}

	remaining := RemainingBudget{
		Calories: floorAtZero(targets.Calories - consumed.Calories),
		ProteinG: floorAtZero(targets.ProteinG - consumed.ProteinG),
		CarbsG:   floorAtZero(targets.CarbsG - consumed.NetCarbsG),
		FatG:     floorAtZero(targets.FatG - consumed.FatG),
	}
	return consumed, remaining
}
