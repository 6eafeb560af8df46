package engine

import (
	"fmt"
	"strings"
)

// servingUnitGrams maps supported units to gram-equivalents. Volume units
// are approximated at water density, which is the convention food databases
// use when a record lacks a density.
var servingUnitGrams = map[string]float64{
	"g":     1,
	"kg":    1000,
	"oz":    28.349523125,
	"lb":    453.59237,
	"lbs":   453.59237,
	"ml":    1,
	"l":     1000,
	"tsp":   4.92892159375,
	"tbsp":  14.78676478125,
	"cup":   236.5882365,
	"fl-oz": 29.5735295625,
}

// ScaleServing computes the multiplier to apply to a food's per-serving
// nutrition given the amount/unit the user entered and the serving basis
// the food stores. Unknown units deliberately degrade to an identity (1:1)
// conversion instead of rejecting the entry: losing a log line is worse for
// a food-logging flow than an approximate one, and the degradation is
// visible in the stored serving count.
func ScaleServing(amount float64, unit string, servingQuantity float64, servingUnit string) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be > 0")
	}
	if servingQuantity <= 0 {
		return 0, fmt.Errorf("serving quantity must be > 0")
	}

	from := normalizeServingUnit(unit)
	to := normalizeServingUnit(servingUnit)

	// Same unit, the identity "serving" unit, or anything unrecognized:
	// a straight ratio of the raw quantities.
	if from == to || from == "serving" || to == "serving" {
		return amount / servingQuantity, nil
	}
	fromGrams, okFrom := servingUnitGrams[from]
	toGrams, okTo := servingUnitGrams[to]
	if !okFrom || !okTo {
		return amount / servingQuantity, nil
	}

	return (amount * fromGrams) / (servingQuantity * toGrams), nil
}

func normalizeServingUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	switch u {
	case "serving", "servings", "":
		return "serving"
	case "floz", "fl oz":
		return "fl-oz"
	}
	return u
}
