package service

import (
	"fmt"
	"strings"
	"time"
)

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// normalizeDate trims and validates a YYYY-MM-DD date, defaulting to today.
func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// dayBounds returns the RFC3339 start (inclusive) and end (exclusive) of a
// local calendar day.
func dayBounds(date string) (string, string, error) {
	normalized, err := normalizeDate(date)
	if err != nil {
		return "", "", err
	}
	start, err := time.ParseInLocation("2006-01-02", normalized, time.Local)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	end := start.AddDate(0, 0, 1)
	return start.Format(time.RFC3339), end.Format(time.RFC3339), nil
}
