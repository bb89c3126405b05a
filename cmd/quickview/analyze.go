// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quickview/internal/papers"
	"github.com/pdiddy/quickview/internal/report"
	"github.com/pdiddy/quickview/internal/session"
	"github.com/pdiddy/quickview/internal/stats"
	"github.com/pdiddy/quickview/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the curated alignment research paper set",
	Long: `Analyze runs descriptive statistics over the curated set of fundamental
alignment papers: publication trends by year, citation impact with a
75th-percentile high-impact cut, concept frequency across abstracts and
contributions, methodology and evidence classification, and a research
timeline. The run ends with a structured summary document on disk.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("export-dir", ".", "directory the summary document is written to")
	analyzeCmd.Flags().String("format", "json", "export document format: json or yaml")
	analyzeCmd.Flags().Bool("markdown", false, "also write a Markdown report next to the export")
	analyzeCmd.Flags().String("history-db", "", "optional SQLite ledger recording this run")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeConfig(cmd *cobra.Command) types.AnalyzeConfig {
	markdown, _ := cmd.Flags().GetBool("markdown")
	return types.AnalyzeConfig{
		ExportDir: stringSetting(cmd, "export-dir", "export_dir"),
		Format:    types.ExportFormat(stringSetting(cmd, "format", "format")),
		Markdown:  markdown,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := analyzeConfig(cmd)
	w := cmd.OutOrStdout()
	started := time.Now()

	curated := papers.Curated()

	report.Banner(w, "AI ALIGNMENT RESEARCH PAPER ANALYZER")
	fmt.Fprintf(w, "Loaded %d fundamental alignment papers\n", len(curated))
	fmt.Fprintf(w, "Generated: %s\n", started.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, "Analysis based on peer-reviewed publications; citation data approximate.")

	report.Trends(w, papers.TrendsByYear(curated))

	summary, err := stats.Summarize(papers.Citations(curated))
	if err != nil {
		return fmt.Errorf("summarizing citations: %w", err)
	}
	highImpact := stats.HighImpact(curated, summary.Quartile75)
	report.CitationStats(w, summary, highImpact)

	concepts := stats.FrequencyCount(papers.ConceptTerms(), papers.Corpus(curated))
	report.Concepts(w, concepts, papers.CategoryCounts(curated))

	evidence := papers.EvidenceCounts(curated)
	report.Methodology(w, papers.MethodologyCounts(curated), papers.MethodClassCounts(curated), evidence)

	report.Timeline(w, papers.Timeline(curated))

	mostCited, _ := papers.MostCited(curated)
	doc := report.AnalysisSummary{
		AnalysisDate:        started,
		PapersAnalyzed:      len(curated),
		TotalCitations:      summary.Total,
		YearRange:           papers.YearRange(curated),
		Citations:           summary,
		HighImpactThreshold: summary.Quartile75,
		TopConcepts:         topConcepts(concepts, 5),
		EvidenceTypes:       evidence,
		MostCited: report.MostCitedPaper{
			Title:     mostCited.Title,
			Citations: mostCited.Citations,
			Year:      mostCited.Year,
		},
	}
	report.AnalysisOverview(w, doc, len(papers.Recent(curated, 2020)), len(papers.Venues(curated)))

	path, err := report.Export(cfg.ExportDir, report.AnalysisFile, cfg.Format, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nAnalysis data exported to: %s\n", path)

	if cfg.Markdown {
		mdPath := filepath.Join(cfg.ExportDir, report.AnalysisFile+".md")
		if err := writeMarkdownReport(mdPath, doc, curated, highImpact); err != nil {
			return err
		}
		fmt.Fprintf(w, "Markdown report written to: %s\n", mdPath)
	}

	recordRun(cmd, session.Run{
		StartedAt:      started,
		Command:        "analyze",
		PapersAnalyzed: len(curated),
		TotalCitations: summary.Total,
	})

	return nil
}

func writeMarkdownReport(path string, doc report.AnalysisSummary, curated, highImpact []types.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating markdown report: %w", err)
	}
	r := report.MarkdownReport{Summary: doc, Papers: curated, HighImpact: highImpact}
	if err := r.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return f.Close()
}

// topConcepts keeps the n highest-count terms; the input is already
// ordered by descending count.
func topConcepts(concepts []stats.TermCount, n int) []stats.TermCount {
	if len(concepts) > n {
		return concepts[:n]
	}
	return concepts
}

// recordRun appends the run to the optional history ledger. A ledger
// failure is reported as a warning; the analysis itself already succeeded.
func recordRun(cmd *cobra.Command, run session.Run) {
	path := stringSetting(cmd, "history-db", "history_db")
	if path == "" {
		return
	}

	store, err := session.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history ledger: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
