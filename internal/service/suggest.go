package service

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

const defaultSuggestLimit = 10

// SuggestMealsAt ranks catalog meals against what is left of today's budget.
// A limit of 0 uses the configured (or default) suggestion limit.
func SuggestMealsAt(db *sql.DB, at time.Time, filter MealFilter, limit int) ([]engine.Suggestion, engine.Focus, error) {
	status, err := DayStatusAt(db, at)
	if err != nil {
		return nil, engine.Focus{}, err
	}

	engineFilter := engine.SuggestionFilter{MaxPrepTimeMinutes: filter.MaxPrepTimeMinutes}
	if strings.TrimSpace(filter.Category) != "" {
		category, err := model.ParseMealCategory(filter.Category)
		if err != nil {
			return nil, engine.Focus{}, err
		}
		engineFilter.Category = category
	}
	if strings.TrimSpace(filter.Difficulty) != "" {
		difficulty, err := model.ParseMealDifficulty(filter.Difficulty)
		if err != nil {
			return nil, engine.Focus{}, err
		}
		engineFilter.Difficulty = difficulty
	}

	// Filtering happens again inside the scorer; listing everything keeps the
	// catalog read simple and lets the scorer own the matching rules.
	catalog, err := ListMeals(db, MealFilter{})
	if err != nil {
		return nil, engine.Focus{}, err
	}

	if limit <= 0 {
		limit = configInt(db, ConfigSuggestLimit, defaultSuggestLimit)
	}

	focus := status.Advice.Focus
	suggestions := engine.SuggestMeals(status.Remaining, catalog, engineFilter, &focus, limit)
	return suggestions, focus, nil
}
