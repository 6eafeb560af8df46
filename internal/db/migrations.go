package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  weight_lb REAL NOT NULL CHECK(weight_lb > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  age INTEGER NOT NULL CHECK(age > 0),
  sex TEXT NOT NULL,
  activity_level TEXT NOT NULL,
  goal TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  calories REAL NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  total_carbs_g REAL NOT NULL CHECK(total_carbs_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0 CHECK(fiber_g >= 0),
  sugar_alcohols_g REAL NOT NULL DEFAULT 0 CHECK(sugar_alcohols_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  serving_quantity REAL NOT NULL CHECK(serving_quantity > 0),
  serving_unit TEXT NOT NULL,
  servings REAL NOT NULL CHECK(servings > 0),
  consumed_at DATETIME NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_entries_consumed_at ON entries(consumed_at);

CREATE TABLE IF NOT EXISTS meals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL,
  calories REAL NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  total_carbs_g REAL NOT NULL CHECK(total_carbs_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0 CHECK(fiber_g >= 0),
  sugar_alcohols_g REAL NOT NULL DEFAULT 0 CHECK(sugar_alcohols_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  prep_time_min INTEGER NOT NULL DEFAULT 0 CHECK(prep_time_min >= 0),
  difficulty TEXT NOT NULL DEFAULT 'easy',
  is_custom INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_meals_category ON meals(category);

CREATE TABLE IF NOT EXISTS daily_net_carbs (
  date TEXT PRIMARY KEY,
  net_carbs_g REAL NOT NULL CHECK(net_carbs_g >= 0),
  archived_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

// defaultMeals seed the suggestion catalog so a fresh install has something
// to rank. Users can add customs alongside; the scorer treats both the same.
var defaultMeals = []struct {
	name                          string
	category                      string
	calories, protein, totalCarbs float64
	fiber, sugarAlcohols, fat     float64
	prepMin                       int
	difficulty                    string
}{
	{"Bacon and eggs", "breakfast", 450, 22, 2, 0, 0, 38, 15, "easy"},
	{"Avocado egg bowl", "breakfast", 420, 18, 12, 8, 0, 36, 10, "easy"},
	{"Keto coffee", "breakfast", 230, 1, 0, 0, 0, 25, 5, "easy"},
	{"Chicken caesar salad (no croutons)", "lunch", 480, 38, 8, 3, 0, 32, 15, "easy"},
	{"Tuna avocado boats", "lunch", 390, 28, 10, 7, 0, 28, 10, "easy"},
	{"Cobb salad", "lunch", 520, 34, 9, 4, 0, 38, 20, "medium"},
	{"Ribeye with garlic butter", "dinner", 650, 45, 2, 0, 0, 52, 25, "medium"},
	{"Salmon with asparagus", "dinner", 540, 42, 8, 4, 0, 36, 25, "medium"},
	{"Zucchini noodle alfredo", "dinner", 470, 18, 12, 4, 0, 40, 30, "medium"},
	{"Pork belly with greens", "dinner", 700, 30, 6, 3, 0, 62, 40, "hard"},
	{"Macadamia nuts", "snack", 200, 2, 4, 2, 0, 21, 0, "easy"},
	{"Cheese and olives", "snack", 180, 9, 3, 1, 0, 15, 2, "easy"},
	{"Sugar-free fat bomb", "snack", 160, 2, 6, 1, 4, 15, 5, "easy"},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, meal := range defaultMeals {
		if _, err := db.Exec(`
INSERT OR IGNORE INTO meals(name, category, calories, protein_g, total_carbs_g, fiber_g, sugar_alcohols_g, fat_g, prep_time_min, difficulty, is_custom)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
`, meal.name, meal.category, meal.calories, meal.protein, meal.totalCarbs, meal.fiber, meal.sugarAlcohols, meal.fat, meal.prepMin, meal.difficulty); err != nil {
			return fmt.Errorf("seed default meal %s: %w", meal.name, err)
		}
	}

	return nil
}
