package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

type AddMealInput struct {
	Name            string
	Category        string
	Nutrition       model.NutritionAmount
	PrepTimeMinutes int
	Difficulty      string
}

func AddMeal(db *sql.DB, in AddMealInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, fmt.Errorf("meal name is required")
	}
	category, err := model.ParseMealCategory(in.Category)
	if err != nil {
		return 0, err
	}
	difficulty := model.DifficultyEasy
	if strings.TrimSpace(in.Difficulty) != "" {
		difficulty, err = model.ParseMealDifficulty(in.Difficulty)
		if err != nil {
			return 0, err
		}
	}
	if in.PrepTimeMinutes < 0 {
		return 0, fmt.Errorf("prep time must be >= 0")
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

	res, err := db.Exec(`
INSERT INTO meals(name, category, calories, protein_g, total_carbs_g, fiber_g, sugar_alcohols_g, fat_g, prep_time_min, difficulty, is_custom)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
`, name, string(category), in.Nutrition.Calories, in.Nutrition.ProteinG,
		in.Nutrition.TotalCarbsG, in.Nutrition.FiberG, in.Nutrition.SugarAlcoholsG,
		in.Nutrition.FatG, in.PrepTimeMinutes, string(difficulty))
	if err != nil {
		return 0, fmt.Errorf("add meal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get meal id: %w", err)
	}
	return id, nil
}

// MealFilter narrows the catalog. Zero values mean no constraint.
type MealFilter struct {
	Category           string
	MaxPrepTimeMinutes int
	Difficulty         string
}

func ListMeals(db *sql.DB, filter MealFilter) ([]model.MealCandidate, error) {
	query := `
SELECT id, name, category, calories, protein_g, total_carbs_g, fiber_g, sugar_alcohols_g, fat_g, prep_time_min, difficulty, is_custom, created_at
FROM meals
WHERE 1 = 1`
	var args []any

	if strings.TrimSpace(filter.Category) != "" {
		category, err := model.ParseMealCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		query += ` AND category = ?`
		args = append(args, string(category))
	}
	if filter.MaxPrepTimeMinutes > 0 {
		query += ` AND prep_time_min <= ?`
		args = append(args, filter.MaxPrepTimeMinutes)
	}
	if strings.TrimSpace(filter.Difficulty) != "" {
		difficulty, err := model.ParseMealDifficulty(filter.Difficulty)
		if err != nil {
			return nil, err
		}
		query += ` AND difficulty = ?`
		args = append(args, string(difficulty))
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var meals []model.MealCandidate
	for rows.Next() {
		var m model.MealCandidate
		var category, difficulty, createdAt string
		var isCustom int
		if err := rows.Scan(&m.ID, &m.Name, &category,
			&m.Nutrition.Calories, &m.Nutrition.ProteinG, &m.Nutrition.TotalCarbsG,
			&m.Nutrition.FiberG, &m.Nutrition.SugarAlcoholsG, &m.Nutrition.FatG,
			&m.PrepTimeMinutes, &difficulty, &isCustom, &createdAt); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.Category = model.MealCategory(category)
		m.Difficulty = model.MealDifficulty(difficulty)
		m.IsCustom = isCustom != 0
		if ts, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			m.CreatedAt = ts
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}
