package model

import (
	"fmt"
	"strings"
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// Profile is a read-only snapshot of the user's body and goal settings.
// Target computation treats it as immutable per call.
type Profile struct {
	WeightLb float64
	HeightCm float64
	Age      int
	Sex      Sex
	Activity ActivityLevel
	Goal     GoalType
}

type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ServingBasis is the quantity/unit a food record states its nutrition
// against, e.g. 100 g or 1 cup.
type ServingBasis struct {
	Quantity float64
	Unit     string
}

// NutritionAmount holds macros per one serving basis.
type NutritionAmount struct {
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	TotalCarbsG    float64 `json:"total_carbs_g"`
	FiberG         float64 `json:"fiber_g"`
	SugarAlcoholsG float64 `json:"sugar_alcohols_g"`
	FatG           float64 `json:"fat_g"`
}

// NetCarbsG subtracts fiber and sugar alcohols from total carbs, floored
// at zero. This is the quantity the ketogenic protocol constrains.
func (n NutritionAmount) NetCarbsG() float64 {
	net := n.TotalCarbsG - n.FiberG - n.SugarAlcoholsG
	if net < 0 {
		return 0
	}
	return net
}

func (n NutritionAmount) IsZero() bool {
	return n.Calories == 0 && n.ProteinG == 0 && n.TotalCarbsG == 0 &&
		n.FiberG == 0 && n.SugarAlcoholsG == 0 && n.FatG == 0
}

type LoggedEntry struct {
	ID         int64
	Name       string
	Food       NutritionAmount
	Serving    ServingBasis
	Servings   float64
	ConsumedAt time.Time
}

type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnack     MealCategory = "snack"
)

type MealDifficulty string

const (
	DifficultyEasy   MealDifficulty = "easy"
	DifficultyMedium MealDifficulty = "medium"
	DifficultyHard   MealDifficulty = "hard"
)

// MealCandidate is a catalog entry the suggestion engine scores against the
// remaining budget. Seeded defaults and user-authored customs are treated
// identically.
type MealCandidate struct {
	ID              int64
	Name            string
	Category        MealCategory
	Nutrition       NutritionAmount
	PrepTimeMinutes int
	Difficulty      MealDifficulty
	IsCustom        bool
	CreatedAt       time.Time
}

// DailyNetCarbObservation is one archived day of net carbs, unique per date
// (YYYY-MM-DD), ordered ascending when supplied as a series.
type DailyNetCarbObservation struct {
	Date      string  `json:"date"`
	NetCarbsG float64 `json:"net_carbs_g"`
}

func ParseSex(raw string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(raw))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("invalid sex %q (use male or female)", raw)
	}
}

func ParseActivityLevel(raw string) (ActivityLevel, error) {
	switch ActivityLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case ActivitySedentary:
		return ActivitySedentary, nil
	case ActivityLight:
		return ActivityLight, nil
	case ActivityModerate:
		return ActivityModerate, nil
	case ActivityActive:
		return ActivityActive, nil
	case ActivityVeryActive:
		return ActivityVeryActive, nil
	default:
		return "", fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active, very_active)", raw)
	}
}

func ParseGoalType(raw string) (GoalType, error) {
	switch GoalType(strings.ToLower(strings.TrimSpace(raw))) {
	case GoalLose:
		return GoalLose, nil
	case GoalMaintain:
		return GoalMaintain, nil
	case GoalGain:
		return GoalGain, nil
	default:
		return "", fmt.Errorf("invalid goal %q (use lose, maintain, gain)", raw)
	}
}

func ParseMealCategory(raw string) (MealCategory, error) {
	switch MealCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case MealBreakfast:
		return MealBreakfast, nil
	case MealLunch:
		return MealLunch, nil
	case MealDinner:
		return MealDinner, nil
	case MealSnack:
		return MealSnack, nil
	default:
		return "", fmt.Errorf("invalid meal category %q (use breakfast, lunch, dinner, snack)", raw)
	}
}

func ParseMealDifficulty(raw string) (MealDifficulty, error) {
	switch MealDifficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q (use easy, medium, hard)", raw)
	}
}
