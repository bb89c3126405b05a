// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analyzer and guide output to a writer and
// exports the per-run structured summary documents.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quickview/internal/projection"
	"github.com/pdiddy/quickview/internal/stats"
	"github.com/pdiddy/quickview/pkg/types"
)

// AnalysisFile and SessionFile are the export document names, written
// under the configured export directory.
const (
	AnalysisFile = "alignment_research_analysis"
	SessionFile  = "agi_safety_session_data"
)

// MostCitedPaper is the most-cited record's identifying fields as they
// appear in the analysis export.
type MostCitedPaper struct {
	Title     string `json:"title" yaml:"title"`
	Citations int    `json:"citations" yaml:"citations"`
	Year      int    `json:"year" yaml:"year"`
}

// AnalysisSummary is the structured document the analyzer writes after a
// run. It carries the same scalars the run printed.
type AnalysisSummary struct {
	AnalysisDate        time.Time             `json:"analysis_date" yaml:"analysis_date"`
	PapersAnalyzed      int                   `json:"papers_analyzed" yaml:"papers_analyzed"`
	TotalCitations      int                   `json:"total_citations" yaml:"total_citations"`
	YearRange           string                `json:"year_range" yaml:"year_range"`
	Citations           types.CitationSummary `json:"citation_summary" yaml:"citation_summary"`
	HighImpactThreshold float64               `json:"high_impact_threshold" yaml:"high_impact_threshold"`
	TopConcepts         []stats.TermCount     `json:"top_concepts" yaml:"top_concepts"`
	EvidenceTypes       map[string]int        `json:"evidence_types" yaml:"evidence_types"`
	MostCited           MostCitedPaper        `json:"most_cited_paper" yaml:"most_cited_paper"`
}

// ScenarioMilestones pairs a scenario name with its threshold crossings.
type ScenarioMilestones struct {
	Scenario   string                 `json:"scenario" yaml:"scenario"`
	Milestones []projection.Milestone `json:"milestones" yaml:"milestones"`
	FinalLevel float64                `json:"final_level" yaml:"final_level"`
}

// GuideSession is the structured document the guide writes after a run.
type GuideSession struct {
	GeneratedAt      time.Time            `json:"generated_at" yaml:"generated_at"`
	AITypes          []string             `json:"ai_types" yaml:"ai_types"`
	GrowthScenarios  []ScenarioMilestones `json:"growth_scenarios" yaml:"growth_scenarios"`
	SafetyChallenges []string             `json:"safety_challenges" yaml:"safety_challenges"`
	QuizScore        int                  `json:"quiz_score" yaml:"quiz_score"`
	QuizQuestions    int                  `json:"quiz_questions" yaml:"quiz_questions"`
	SessionID        int                  `json:"session_id" yaml:"session_id"`
}

// Export marshals doc in the requested format and writes it to
// dir/name.<ext> in a single atomic step: the document is staged in a
// temp file and renamed into place, so a reader never observes a
// partial write. It returns the final path.
func Export(dir, name string, format types.ExportFormat, doc any) (string, error) {
	var data []byte
	var err error
	switch format {
	case types.ExportYAML:
		data, err = yaml.Marshal(doc)
	case types.ExportJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling %s export: %w", format, err)
	}

	path := filepath.Join(dir, name+"."+string(format))
	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("staging export: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publishing export: %w", err)
	}
	return path, nil
}
