package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// App config keys. Values are stored as strings and parsed on read.
const (
	ConfigKetoThresholdG = "keto_threshold_g"
	ConfigSuggestLimit   = "suggest_limit"
)

var knownConfigKeys = map[string]string{
	ConfigKetoThresholdG: "net carb ceiling in grams used for streaks and ketosis status",
	ConfigSuggestLimit:   "maximum number of meal suggestions to show",
}

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(key)
	if _, ok := knownConfigKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	switch key {
	case ConfigKetoThresholdG:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a number > 0", key)
		}
	case ConfigSuggestLimit:
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be an integer > 0", key)
		}
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %s: %w", key, err)
	}
	return nil
}

// GetConfig returns the stored value, or "" when unset.
func GetConfig(db *sql.DB, key string) (string, error) {
	key = strings.TrimSpace(key)
	if _, ok := knownConfigKeys[key]; !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get config %s: %w", key, err)
	}
	return value, nil
}

type ConfigItem struct {
	Key         string
	Value       string
	Description string
}

// ListConfig returns every known key with its current value ("" when unset).
func ListConfig(db *sql.DB) ([]ConfigItem, error) {
	items := make([]ConfigItem, 0, len(knownConfigKeys))
	for _, key := range []string{ConfigKetoThresholdG, ConfigSuggestLimit} {
		value, err := GetConfig(db, key)
		if err != nil {
			return nil, err
		}
		items = append(items, ConfigItem{Key: key, Value: value, Description: knownConfigKeys[key]})
	}
	return items, nil
}

func configFloat(db *sql.DB, key string, fallback float64) float64 {
	value, err := GetConfig(db, key)
	if err != nil || value == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func configInt(db *sql.DB, key string, fallback int) int {
	value, err := GetConfig(db, key)
	if err != nil || value == "" {
		return fallback
	}
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
