package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

// LogFoodInput describes one consumed food. Nutrition is per serving basis
// (ServingQuantity of ServingUnit). The amount eaten is given either directly
// as Servings or as Amount+Unit to be converted against the basis.
type LogFoodInput struct {
	Name            string
	Nutrition       model.NutritionAmount
	ServingQuantity float64
	ServingUnit     string
	Servings        float64
	Amount          float64
	Unit            string
	ConsumedAt      time.Time
}

func LogFood(db *sql.DB, in LogFoodInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Nutrition.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.Nutrition.ProteinG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("carbs", in.Nutrition.TotalCarbsG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fiber", in.Nutrition.FiberG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("sugar alcohols", in.Nutrition.SugarAlcoholsG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fat", in.Nutrition.FatG); err != nil {
		return 0, err
	}

	servingQuantity := in.ServingQuantity
	if servingQuantity == 0 {
		servingQuantity = 1
	}
	if servingQuantity < 0 {
		return 0, fmt.Errorf("serving quantity must be > 0")
	}
	servingUnit := strings.TrimSpace(in.ServingUnit)
	if servingUnit == "" {
		servingUnit = "serving"
	}

	servings := in.Servings
	switch {
	case servings > 0 && in.Amount > 0:
		return 0, fmt.Errorf("give either --servings or --amount, not both")
	case servings > 0:
		// use as-is
	case in.Amount > 0:
		scaled, err := engine.ScaleServing(in.Amount, in.Unit, servingQuantity, servingUnit)
		if err != nil {
			return 0, err
		}
		servings = scaled
	default:
		servings = 1
	}

	consumedAt := in.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO entries(name, calories, protein_g, total_carbs_g, fiber_g, sugar_alcohols_g, fat_g, serving_quantity, serving_unit, servings, consumed_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, name, in.Nutrition.Calories, in.Nutrition.ProteinG, in.Nutrition.TotalCarbsG,
		in.Nutrition.FiberG, in.Nutrition.SugarAlcoholsG, in.Nutrition.FatG,
		servingQuantity, servingUnit, servings, consumedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("log food: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get logged food id: %w", err)
	}
	return id, nil
}

// ListEntriesForDay returns the entries consumed on a local calendar day,
// oldest first. An empty date means today.
func ListEntriesForDay(db *sql.DB, date string) ([]model.LoggedEntry, error) {
	start, end, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
SELECT id, name, calories, protein_g, total_carbs_g, fiber_g, sugar_alcohols_g, fat_g, serving_quantity, serving_unit, servings, consumed_at
FROM entries
WHERE consumed_at >= ? AND consumed_at < ?
ORDER BY consumed_at ASC, id ASC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.LoggedEntry
	for rows.Next() {
		var e model.LoggedEntry
		var consumedAt string
		if err := rows.Scan(&e.ID, &e.Name,
			&e.Food.Calories, &e.Food.ProteinG, &e.Food.TotalCarbsG,
			&e.Food.FiberG, &e.Food.SugarAlcoholsG, &e.Food.FatG,
			&e.Serving.Quantity, &e.Serving.Unit, &e.Servings, &consumedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, consumedAt)
		if err != nil {
			return nil, fmt.Errorf("parse entry timestamp: %w", err)
		}
		e.ConsumedAt = ts
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func DeleteEntry(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d not found", id)
	}
	return nil
}
