package service

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
)

type SaveProfileInput struct {
	WeightLb      float64
	HeightCm      float64
	Age           int
	Sex           string
	ActivityLevel string
	Goal          string
}

// SaveProfile upserts the single profile row. The engine treats the profile
// as a read-only snapshot; this store owns its lifecycle.
func SaveProfile(db *sql.DB, in SaveProfileInput) error {
	if err := validatePositiveFloat("weight", in.WeightLb); err != nil {
		return err
	}
	if err := validatePositiveFloat("height", in.HeightCm); err != nil {
		return err
	}
	if err := validatePositiveInt("age", in.Age); err != nil {
		return err
	}
	sex, err := model.ParseSex(in.Sex)
	if err != nil {
		return err
	}
	activity, err := model.ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return err
	}
	goal, err := model.ParseGoalType(in.Goal)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO profile(id, weight_lb, height_cm, age, sex, activity_level, goal, updated_at)
VALUES(1, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  weight_lb=excluded.weight_lb,
  height_cm=excluded.height_cm,
  age=excluded.age,
  sex=excluded.sex,
  activity_level=excluded.activity_level,
  goal=excluded.goal,
  updated_at=excluded.updated_at
`, in.WeightLb, in.HeightCm, in.Age, string(sex), string(activity), string(goal))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile, or nil when none has been set.
func LoadProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	var sex, activity, goal string
	err := db.QueryRow(`
SELECT weight_lb, height_cm, age, sex, activity_level, goal
FROM profile
WHERE id = 1
`).Scan(&p.WeightLb, &p.HeightCm, &p.Age, &sex, &activity, &goal)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Sex = model.Sex(sex)
	p.Activity = model.ActivityLevel(activity)
	p.Goal = model.GoalType(goal)
	return &p, nil
}
