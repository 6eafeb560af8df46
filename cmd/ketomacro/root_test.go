package ketomacro

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ketomacro.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestProfileSetThenToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ketomacro.db")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "profile", "set",
		"--weight", "180", "--height", "175", "--age", "35",
		"--sex", "male", "--activity", "moderate", "--goal", "maintain"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile set: %v", err)
	}
	if !strings.Contains(buf.String(), "Daily targets:") {
		t.Fatalf("expected computed targets in output, got %q", buf.String())
	}

	buf.Reset()
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "today"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("today: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Targets:", "Consumed:", "Remaining:", "Focus:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in today output, got %q", want, out)
		}
	}
}

func TestSuggestUsesSeededCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ketomacro.db")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "profile", "set",
		"--weight", "160", "--height", "165", "--age", "40",
		"--sex", "female", "--activity", "light", "--goal", "lose"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile set: %v", err)
	}

	buf.Reset()
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "suggest", "--limit", "3"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(buf.String(), "FIT") {
		t.Fatalf("expected suggestion table, got %q", buf.String())
	}
}
