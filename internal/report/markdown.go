// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/pdiddy/quickview/pkg/types"
)

// MarkdownReport writes the analyzer results as a Markdown document for
// documentation and sharing.
type MarkdownReport struct {
	Summary    AnalysisSummary
	Papers     []types.Paper
	HighImpact []types.Paper
}

// Write renders the report to w.
func (r MarkdownReport) Write(w io.Writer) error {
	md := markdown.NewMarkdown(w)

	md.H1("Alignment Research Analysis")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", r.Summary.AnalysisDate.Format("2006-01-02 15:04:05 MST")},
			{"Papers analyzed", strconv.Itoa(r.Summary.PapersAnalyzed)},
			{"Time period", r.Summary.YearRange},
			{"Total citations", strconv.Itoa(r.Summary.TotalCitations)},
		},
	})
	md.PlainText("")

	md.H2("Curated Papers")
	rows := make([][]string, 0, len(r.Papers))
	for _, p := range r.Papers {
		rows = append(rows, []string{
			p.Title,
			strconv.Itoa(p.Year),
			p.Venue,
			strconv.Itoa(p.Citations),
			string(p.Category),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Title", "Year", "Venue", "Citations", "Category"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Citation Statistics")
	s := r.Summary.Citations
	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Total", strconv.Itoa(s.Total)},
			{"Mean", fmt.Sprintf("%.1f", s.Mean)},
			{"Median", fmt.Sprintf("%.1f", s.Median)},
			{"75th percentile", fmt.Sprintf("%.1f", s.Quartile75)},
			{"Min", strconv.Itoa(s.Min)},
			{"Max", strconv.Itoa(s.Max)},
		},
	})
	md.PlainText("")

	md.H2("High-Impact Papers")
	md.PlainTextf("Papers at or above the 75th-percentile threshold (%.0f citations):", r.Summary.HighImpactThreshold)
	items := make([]string, 0, len(r.HighImpact))
	for _, p := range r.HighImpact {
		items = append(items, fmt.Sprintf("%s (%d) - %d citations", p.Title, p.Year, p.Citations))
	}
	md.BulletList(items...)
	md.PlainText("")

	md.H2("Top Concepts")
	concepts := make([]string, 0, len(r.Summary.TopConcepts))
	for _, c := range r.Summary.TopConcepts {
		concepts = append(concepts, fmt.Sprintf("%s: %d mentions", c.Term, c.Count))
	}
	md.BulletList(concepts...)

	return md.Build()
}
