package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickview/internal/stats"
	"github.com/pdiddy/quickview/pkg/types"
)

func sampleSummary() AnalysisSummary {
	return AnalysisSummary{
		AnalysisDate:        time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		PapersAnalyzed:      6,
		TotalCitations:      9808,
		YearRange:           "2016-2022",
		Citations:           types.CitationSummary{Total: 9808, Mean: 1634.67, Median: 1173, Quartile75: 2947, Min: 521, Max: 3247},
		HighImpactThreshold: 2947,
		TopConcepts: []stats.TermCount{
			{Term: "alignment", Count: 12},
			{Term: "safety", Count: 9},
		},
		EvidenceTypes: map[string]int{"Large-Scale Studies": 2},
		MostCited:     MostCitedPaper{Title: "Training Language Models to Follow Instructions with Human Feedback", Citations: 3247, Year: 2022},
	}
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(dir, AnalysisFile, types.ExportJSON, sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alignment_research_analysis.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got AnalysisSummary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 6, got.PapersAnalyzed)
	assert.Equal(t, "2016-2022", got.YearRange)
	assert.Equal(t, 3247, got.MostCited.Citations)
}

func TestExportYAML(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(dir, AnalysisFile, types.ExportYAML, sampleSummary())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got AnalysisSummary
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 9808, got.TotalCitations)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export(t.TempDir(), AnalysisFile, "toml", sampleSummary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Export(dir, SessionFile, types.ExportJSON, GuideSession{SessionID: 1234})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "agi_safety_session_data.json", entries[0].Name())
}

func TestMarkdownReport(t *testing.T) {
	summary := sampleSummary()
	papers := []types.Paper{
		{Title: "Concrete Problems in AI Safety", Year: 2016, Venue: "arXiv preprint", Citations: 2847, Category: types.CategoryFoundational},
	}

	var buf bytes.Buffer
	r := MarkdownReport{Summary: summary, Papers: papers, HighImpact: papers}
	require.NoError(t, r.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Alignment Research Analysis")
	assert.Contains(t, out, "## Citation Statistics")
	assert.Contains(t, out, "Concrete Problems in AI Safety")
	assert.Contains(t, out, "alignment: 12 mentions")
}
