package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/db"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ketomacro.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func saveTestProfile(t *testing.T, sqldb *sql.DB) {
	t.Helper()

	err := service.SaveProfile(sqldb, service.SaveProfileInput{
		WeightLb:      180,
		HeightCm:      175,
		Age:           35,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "maintain",
	})
	if err != nil {
		t.Fatalf("save test profile: %v", err)
	}
}
