package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

// DayStatus is the full picture for one day: targets, consumption, remaining
// budget, progress percentages and time-of-day advice.
type DayStatus struct {
	Date       string
	Targets    model.MacroTargets
	Consumed   engine.DailyConsumption
	Remaining  engine.RemainingBudget
	CaloriePct int
	ProteinPct int
	CarbPct    int
	FatPct     int
	Advice     engine.Advice
	EntryCount int
}

// DayStatusAt computes the status as of the given wall clock. The hour drives
// warning suppression and the projected-fat advice.
func DayStatusAt(db *sql.DB, at time.Time) (DayStatus, error) {
	profile, err := LoadProfile(db)
	if err != nil {
		return DayStatus{}, err
	}
	if profile == nil {
		return DayStatus{}, fmt.Errorf("no profile set (run 'ketomacro profile set' first)")
	}

	targets, err := engine.ComputeTargets(*profile)
	if err != nil {
		return DayStatus{}, err
	}

	date := at.Format("2006-01-02")
	entries, err := ListEntriesForDay(db, date)
	if err != nil {
		return DayStatus{}, err
	}

	consumed, remaining := engine.ComputeConsumption(targets, entries)

	return DayStatus{
		Date:       date,
		Targets:    targets,
		Consumed:   consumed,
		Remaining:  remaining,
		CaloriePct: engine.PercentOfTarget(consumed.Calories, targets.Calories),
		ProteinPct: engine.PercentOfTarget(consumed.ProteinG, targets.ProteinG),
		CarbPct:    engine.PercentOfTarget(consumed.NetCarbsG, targets.CarbsG),
		FatPct:     engine.PercentOfTarget(consumed.FatG, targets.FatG),
		Advice:     engine.Advise(targets, consumed, at.Hour()),
		EntryCount: len(entries),
	}, nil
}
