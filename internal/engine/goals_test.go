package engine_test

import (
	"math"
	"testing"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

func TestComputeTargetsModeratelyActiveMaleMaintain(t *testing.T) {
	t.Parallel()
	// 70 kg expressed in pounds so the kg conversion round-trips.
	p := model.Profile{
		WeightLb: 70 / 0.453592,
		HeightCm: 170,
		Age:      30,
		Sex:      model.SexMale,
		Activity: model.ActivityModerate,
		Goal:     model.GoalMaintain,
	}
	targets, err := engine.ComputeTargets(p)
	if err != nil {
		t.Fatalf("compute targets: %v", err)
	}
	// BMR 1578.5, TDEE 2446.675, protein 70*1.9, fat fills the remainder.
	if math.Abs(targets.Calories-2446.675) > 0.1 {
		t.Fatalf("expected ~2446.675 kcal, got %.3f", targets.Calories)
	}
	if math.Abs(targets.ProteinG-133) > 0.05 {
		t.Fatalf("expected ~133g protein, got %.3f", targets.ProteinG)
	}
	if targets.CarbsG != 20 {
		t.Fatalf("expected pinned 20g carbs, got %.3f", targets.CarbsG)
	}
	if math.Abs(targets.FatG-203.86) > 0.05 {
		t.Fatalf("expected ~203.86g fat, got %.3f", targets.FatG)
	}
}

func TestComputeTargetsFemaleUsesFemaleConstant(t *testing.T) {
	t.Parallel()
	base := model.Profile{
		WeightLb: 150,
		HeightCm: 165,
		Age:      28,
		Activity: model.ActivitySedentary,
		Goal:     model.GoalMaintain,
	}
	male := base
	male.Sex = model.SexMale
	female := base
	female.Sex = model.SexFemale

	maleTargets, err := engine.ComputeTargets(male)
	if err != nil {
		t.Fatalf("male targets: %v", err)
	}
	femaleTargets, err := engine.ComputeTargets(female)
	if err != nil {
		t.Fatalf("female targets: %v", err)
	}
	// BMR differs by 166 kcal (+5 vs -161), scaled by the 1.2 multiplier.
	diff := maleTargets.Calories - femaleTargets.Calories
	if math.Abs(diff-166*1.2) > 0.01 {
		t.Fatalf("expected calorie gap %.2f, got %.2f", 166*1.2, diff)
	}
}

func TestComputeTargetsGoalMultipliers(t *testing.T) {
	t.Parallel()
	base := model.Profile{
		WeightLb: 180,
		HeightCm: 178,
		Age:      35,
		Sex:      model.SexMale,
		Activity: model.ActivityActive,
	}
	cases := []struct {
		goal model.GoalType
		mult float64
	}{
		{model.GoalLose, 0.80},
		{model.GoalMaintain, 1.0},
		{model.GoalGain, 1.15},
	}
	maintain := base
	maintain.Goal = model.GoalMaintain
	ref, err := engine.ComputeTargets(maintain)
	if err != nil {
		t.Fatalf("reference targets: %v", err)
	}
	for _, tc := range cases {
		p := base
		p.Goal = tc.goal
		got, err := engine.ComputeTargets(p)
		if err != nil {
			t.Fatalf("targets for goal %s: %v", tc.goal, err)
		}
		want := ref.Calories * tc.mult
		if math.Abs(got.Calories-want) > 0.01 {
			t.Fatalf("goal %s: expected %.2f kcal, got %.2f", tc.goal, want, got.Calories)
		}
	}
}

func TestComputeTargetsUnknownEnumsFallBackToModerateDefaults(t *testing.T) {
	t.Parallel()
	known := model.Profile{
		WeightLb: 160,
		HeightCm: 172,
		Age:      40,
		Sex:      model.SexMale,
		Activity: model.ActivityModerate,
		Goal:     model.GoalMaintain,
	}
	unknown := known
	unknown.Activity = model.ActivityLevel("couch_surfer")
	unknown.Goal = model.GoalType("bulk")

	want, err := engine.ComputeTargets(known)
	if err != nil {
		t.Fatalf("known targets: %v", err)
	}
	got, err := engine.ComputeTargets(unknown)
	if err != nil {
		t.Fatalf("unknown enums should not error: %v", err)
	}
	if got != want {
		t.Fatalf("expected moderate/maintain fallback %+v, got %+v", want, got)
	}
}

func TestComputeTargetsRejectsInvalidProfile(t *testing.T) {
	t.Parallel()
	valid := model.Profile{
		WeightLb: 160,
		HeightCm: 172,
		Age:      40,
		Sex:      model.SexMale,
		Activity: model.ActivityModerate,
		Goal:     model.GoalMaintain,
	}
	cases := []struct {
		name   string
		mutate func(*model.Profile)
	}{
		{"zero weight", func(p *model.Profile) { p.WeightLb = 0 }},
		{"negative height", func(p *model.Profile) { p.HeightCm = -170 }},
		{"zero age", func(p *model.Profile) { p.Age = 0 }},
	}
	for _, tc := range cases {
		p := valid
		tc.mutate(&p)
		if _, err := engine.ComputeTargets(p); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestComputeTargetsAllOutputsFinite(t *testing.T) {
	t.Parallel()
	// A tiny profile where protein+carb calories exceed total calories; fat
	// must floor at zero rather than go negative.
	p := model.Profile{
		WeightLb: 70,
		HeightCm: 100,
		Age:      100,
		Sex:      model.SexFemale,
		Activity: model.ActivitySedentary,
		Goal:     model.GoalLose,
	}
	targets, err := engine.ComputeTargets(p)
	if err != nil {
		t.Fatalf("compute targets: %v", err)
	}
	for name, v := range map[string]float64{
		"calories": targets.Calories,
		"protein":  targets.ProteinG,
		"carbs":    targets.CarbsG,
		"fat":      targets.FatG,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("%s must be finite and >= 0, got %v", name, v)
		}
	}
}
