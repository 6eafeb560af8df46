package engine

import (
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

const (
	lbToKg = 0.453592

	// KetoCarbCeilingG is the daily net-carb ceiling. It is pinned rather
	// than derived from the profile: the protocol is carbohydrate-restricted
	// by definition.
	KetoCarbCeilingG = 20.0

	proteinKcalPerG = 4.0
	carbKcalPerG    = 4.0
	fatKcalPerG     = 9.0
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// proteinPerKgByActivity rises with activity; more training volume means
// more protein per kg of body weight.
var proteinPerKgByActivity = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.5,
	model.ActivityLight:      1.7,
	model.ActivityModerate:   1.9,
	model.ActivityActive:     2.1,
	model.ActivityVeryActive: 2.3,
}

var goalCalorieMultipliers = map[model.GoalType]float64{
	model.GoalLose:     0.80,
	model.GoalMaintain: 1.0,
	model.GoalGain:     1.15,
}

var goalProteinAdjustmentPerKg = map[model.GoalType]float64{
	model.GoalLose:     0.2,
	model.GoalMaintain: 0,
	model.GoalGain:     0.1,
}

// ComputeTargets converts a profile into daily macro targets via a
// BMR -> TDEE -> macro-split pipeline (Mifflin-St Jeor). Unknown enum values
// fall back to the moderate/maintain defaults; only a non-positive weight,
// height, or age is an error.
func ComputeTargets(p model.Profile) (model.MacroTargets, error) {
	if p.WeightLb <= 0 {
		return model.MacroTargets{}, fmt.Errorf("weight must be > 0")
	}
	if p.HeightCm <= 0 {
		return model.MacroTargets{}, fmt.Errorf("height must be > 0")
	}
	if p.Age <= 0 {
		return model.MacroTargets{}, fmt.Errorf("age must be > 0")
	}

	kg := p.WeightLb * lbToKg

	bmr := 10*kg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == model.SexFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	activityMult, ok := activityMultipliers[p.Activity]
	if !ok {
		activityMult = activityMultipliers[model.ActivityModerate]
	}
	tdee := bmr * activityMult

	goalMult, ok := goalCalorieMultipliers[p.Goal]
	if !ok {
		goalMult = goalCalorieMultipliers[model.GoalMaintain]
	}
	calories := tdee * goalMult

	proteinPerKg, ok := proteinPerKgByActivity[p.Activity]
	if !ok {
		proteinPerKg = proteinPerKgByActivity[model.ActivityModerate]
	}
	proteinPerKg += goalProteinAdjustmentPerKg[p.Goal]
	protein := kg * proteinPerKg

	carbs := KetoCarbCeilingG

	// Fat absorbs the caloric remainder after protein and carbs, standard
	// for a ketogenic split.
	fat := floorAtZero((calories - protein*proteinKcalPerG - carbs*carbKcalPerG) / fatKcalPerG)

	return model.MacroTargets{
		Calories: floorAtZero(calories),
		ProteinG: floorAtZero(protein),
		CarbsG:   carbs,
		FatG:     fat,
	}, nil
}
