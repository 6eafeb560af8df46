package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

// ArchiveDay rolls the day's logged entries into a single net-carb
// observation. Re-archiving a day replaces the previous value, so it is safe
// to run again after late edits.
func ArchiveDay(db *sql.DB, date string) (model.DailyNetCarbObservation, error) {
	normalized, err := normalizeDate(date)
	if err != nil {
		return model.DailyNetCarbObservation{}, err
	}

	entries, err := ListEntriesForDay(db, normalized)
	if err != nil {
		return model.DailyNetCarbObservation{}, err
	}

	var netCarbs float64
	for _, e := range entries {
		if e.Servings <= 0 {
			continue
		}
		netCarbs += e.Food.NetCarbsG() * e.Servings
	}

	_, err = db.Exec(`
INSERT INTO daily_net_carbs(date, net_carbs_g, archived_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(date) DO UPDATE SET net_carbs_g=excluded.net_carbs_g, archived_at=excluded.archived_at
`, normalized, netCarbs)
	if err != nil {
		return model.DailyNetCarbObservation{}, fmt.Errorf("archive day %s: %w", normalized, err)
	}

	return model.DailyNetCarbObservation{Date: normalized, NetCarbsG: netCarbs}, nil
}

// ListObservations returns all archived daily net-carb totals, oldest first.
func ListObservations(db *sql.DB) ([]model.DailyNetCarbObservation, error) {
	rows, err := db.Query(`SELECT date, net_carbs_g FROM daily_net_carbs ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	defer rows.Close()

	var observations []model.DailyNetCarbObservation
	for rows.Next() {
		var o model.DailyNetCarbObservation
		if err := rows.Scan(&o.Date, &o.NetCarbsG); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return observations, nil
}

// TrendReport analyzes the archived history. Today's entries are archived
// first so the report always includes the current day.
func TrendReport(db *sql.DB, windowDays int) (engine.TrendReport, error) {
	if _, err := ArchiveDay(db, time.Now().Format("2006-01-02")); err != nil {
		return engine.TrendReport{}, err
	}
	observations, err := ListObservations(db)
	if err != nil {
		return engine.TrendReport{}, err
	}
	threshold := configFloat(db, ConfigKetoThresholdG, engine.KetoCarbCeilingG)
	return engine.AnalyzeTrends(observations, threshold, windowDays), nil
}
