package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/quickview/internal/report"
	"github.com/pdiddy/quickview/internal/session"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("quickview %s: %v", strings.Join(args, " "), err)
	}
	return buf.String()
}

func TestAnalyzeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	ledger := filepath.Join(dir, "history.db")

	out := execute(t, "analyze",
		"--export-dir", dir,
		"--format", "json",
		"--markdown",
		"--history-db", ledger)

	if !strings.Contains(out, "Total citations:    9808") {
		t.Errorf("missing citation total:\n%s", out)
	}
	if !strings.Contains(out, "High-impact papers") {
		t.Errorf("missing high-impact section:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "alignment_research_analysis.json"))
	if err != nil {
		t.Fatalf("export missing: %v", err)
	}
	var doc report.AnalysisSummary
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	if doc.PapersAnalyzed != 6 || doc.TotalCitations != 9808 {
		t.Errorf("export scalars = %d papers / %d citations, want 6 / 9808",
			doc.PapersAnalyzed, doc.TotalCitations)
	}

	if _, err := os.Stat(filepath.Join(dir, "alignment_research_analysis.md")); err != nil {
		t.Errorf("markdown report missing: %v", err)
	}

	store, err := session.Open(ledger)
	if err != nil {
		t.Fatalf("opening ledger: %v", err)
	}
	defer store.Close()
	runs, err := store.Recent(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Command != "analyze" {
		t.Errorf("ledger runs = %+v, want one analyze run", runs)
	}
}

func TestGuideEndToEnd(t *testing.T) {
	dir := t.TempDir()

	out := execute(t, "guide", "--export-dir", dir, "--seed", "42")

	for _, want := range []string{
		"AI CAPABILITY HIERARCHY",
		"INTELLIGENCE GROWTH SIMULATION",
		"AI SAFETY CHALLENGES",
		"AI SAFETY KNOWLEDGE CHECK",
		"Final score:",
		"SESSION SUMMARY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "agi_safety_session_data.json"))
	if err != nil {
		t.Fatalf("session export missing: %v", err)
	}
	var doc report.GuideSession
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("session export not valid JSON: %v", err)
	}
	if len(doc.GrowthScenarios) != 3 {
		t.Errorf("scenarios = %d, want 3", len(doc.GrowthScenarios))
	}
	if doc.SessionID < 1000 || doc.SessionID > 9999 {
		t.Errorf("session ID = %d, want 1000..9999", doc.SessionID)
	}
}

func TestGuideHonorsEnvConfig(t *testing.T) {
	t.Setenv("QUICKVIEW_YEARS", "5")

	out := execute(t, "guide", "--export-dir", t.TempDir(), "--seed", "42")

	// A five-year projection from 2025 ends at 2029.
	if !strings.Contains(out, "2029 level:") {
		t.Error("projection missing final year 2029")
	}
	if strings.Contains(out, "2030 level:") {
		t.Error("projection ran past the configured five years")
	}
}

func TestGuideRejectsNonPositiveYears(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"guide", "--years", "0", "--export-dir", t.TempDir()})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("guide --years 0 should fail")
	}
}

func TestDemoDeterministicWithSeed(t *testing.T) {
	first := execute(t, "demo", "--seed", "7")
	second := execute(t, "demo", "--seed", "7")

	// The timestamp line differs; the data lines must not.
	if dataLines(first) != dataLines(second) {
		t.Errorf("same seed produced different samples:\n%s\nvs\n%s", first, second)
	}
	if !strings.Contains(first, "Sum of squares 1-10: 385") {
		t.Errorf("wrong sum of squares:\n%s", first)
	}
}

func dataLines(out string) string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Current time:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
