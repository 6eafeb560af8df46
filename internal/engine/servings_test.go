package engine_test

import (
	"math"
	"testing"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
)

func TestScaleServingSameUnitIsStraightRatio(t *testing.T) {
	t.Parallel()
	got, err := engine.ScaleServing(100, "g", 100, "g")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("expected multiplier 1.0, got %.4f", got)
	}

	got, err = engine.ScaleServing(150, "g", 100, "g")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("expected multiplier 1.5, got %.4f", got)
	}
}

func TestScaleServingCrossUnitConvertsThroughGrams(t *testing.T) {
	t.Parallel()
	got, err := engine.ScaleServing(1, "lb", 100, "g")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-4.536) > 0.001 {
		t.Fatalf("expected ~4.536, got %.4f", got)
	}

	// 1 cup against a 100 ml basis.
	got, err = engine.ScaleServing(1, "cup", 100, "ml")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-2.3659) > 0.001 {
		t.Fatalf("expected ~2.366, got %.4f", got)
	}
}

func TestScaleServingUnitNamesAreCaseInsensitive(t *testing.T) {
	t.Parallel()
	got, err := engine.ScaleServing(2, " OZ ", 1, "oz")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("expected 2, got %.4f", got)
	}
}

func TestScaleServingServingsUnitIsIdentity(t *testing.T) {
	t.Parallel()
	got, err := engine.ScaleServing(3, "servings", 1, "serving")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-3) > 1e-9 {
		t.Fatalf("expected 3, got %.4f", got)
	}
}

func TestScaleServingUnknownUnitsDegradeToIdentity(t *testing.T) {
	t.Parallel()
	// Lenient degradation: an unrecognized unit scales as a raw quantity
	// ratio instead of rejecting the entry.
	got, err := engine.ScaleServing(2, "slices", 1, "slice")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("expected identity ratio 2, got %.4f", got)
	}

	got, err = engine.ScaleServing(50, "whatever", 100, "g")
	if err != nil {
		t.Fatalf("scale serving: %v", err)
	}
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected identity ratio 0.5, got %.4f", got)
	}
}

func TestScaleServingRejectsInvalidBasis(t *testing.T) {
	t.Parallel()
	if _, err := engine.ScaleServing(0, "g", 100, "g"); err == nil {
		t.Fatalf("expected error for non-positive amount")
	}
	if _, err := engine.ScaleServing(100, "g", 0, "g"); err == nil {
		t.Fatalf("expected error for non-positive serving quantity")
	}
	if _, err := engine.ScaleServing(-1, "g", -5, "g"); err == nil {
		t.Fatalf("expected error for negative inputs")
	}
}
