// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/quickview/internal/guide"
	"github.com/pdiddy/quickview/internal/papers"
	"github.com/pdiddy/quickview/internal/projection"
	"github.com/pdiddy/quickview/internal/stats"
	"github.com/pdiddy/quickview/pkg/types"
)

// Banner prints the top-of-run title block.
func Banner(w io.Writer, title string) {
	line := strings.Repeat("=", 62)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "   %s\n", title)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}

// Section prints a section heading with a dashed underline.
func Section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

// Hierarchy prints the AI capability hierarchy.
func Hierarchy(w io.Writer, hierarchy []guide.AIType) {
	Section(w, "AI CAPABILITY HIERARCHY")
	for i, t := range hierarchy {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, t.Name)
		fmt.Fprintf(w, "   What:     %s\n", t.Description)
		fmt.Fprintf(w, "   Examples: %s\n", strings.Join(t.Examples, ", "))
		fmt.Fprintf(w, "   Status:   %s\n", t.Status)
	}
	fmt.Fprintln(w, "\nKey insight: the gap between each level could be enormous.")
}

// milestoneLabel names a threshold in guide terms.
func milestoneLabel(threshold float64) string {
	switch threshold {
	case projection.HumanLevel:
		return "Human-level (AGI)"
	case projection.SuperintelligenceLevel:
		return "Superintelligence"
	}
	return fmt.Sprintf("Level %.0f", threshold)
}

// Projection prints one scenario's curve summary: description, milestone
// years, and the final projected level.
func Projection(w io.Writer, sc types.GrowthScenario, points []types.ProjectionPoint, milestones []projection.Milestone) {
	fmt.Fprintf(w, "%s scenario: %s\n", sc.Name(), sc.Description)
	for _, m := range milestones {
		fmt.Fprintf(w, "   %s: ~%d\n", milestoneLabel(m.Threshold), m.Year)
	}
	final := points[len(points)-1]
	if final.Level > 100000 {
		fmt.Fprintf(w, "   %d level: %.0f (beyond comprehension)\n", final.Year, final.Level)
	} else {
		fmt.Fprintf(w, "   %d level: %.0f\n", final.Year, final.Level)
	}
	fmt.Fprintln(w)
}

// Progress prints the research-area progress projection at each horizon.
func Progress(w io.Writer, areas []projection.ResearchArea, startYear int, horizons []int) {
	Section(w, "AI SAFETY vs CAPABILITY TIMELINE")
	fmt.Fprintf(w, "Current status (%d):\n", startYear)
	for _, a := range areas {
		fmt.Fprintf(w, "   %-20s %5.1f%% developed\n", a.Name, a.Progress)
	}
	for _, h := range horizons {
		fmt.Fprintf(w, "\nYear %d:\n", startYear+h)
		for _, a := range areas {
			fmt.Fprintf(w, "   %-20s %5.1f%%\n", a.Name, a.ProjectProgress(h))
		}
	}
	fmt.Fprintln(w, "\nTimeline analysis:")
	fmt.Fprintln(w, "   AI capabilities are advancing faster than safety research.")
	fmt.Fprintln(w, "   Goal: ensure safety research stays ahead of capabilities.")
}

// Challenges prints the safety challenge list.
func Challenges(w io.Writer, challenges []guide.Challenge) {
	Section(w, "AI SAFETY CHALLENGES")
	for i, c := range challenges {
		fmt.Fprintf(w, "%d. %s\n", i+1, c.Name)
		fmt.Fprintf(w, "   What:       %s\n", c.Description)
		fmt.Fprintf(w, "   Example:    %s\n", c.Example)
		fmt.Fprintf(w, "   Difficulty: %s\n", c.Difficulty)
		fmt.Fprintf(w, "   Research:   %s\n\n", c.ResearchStatus)
	}
}

// Recommendations prints the per-stakeholder recommendations.
func Recommendations(w io.Writer, recs []guide.Recommendation) {
	Section(w, "AI SAFETY RECOMMENDATIONS")
	for _, r := range recs {
		fmt.Fprintf(w, "\n%s:\n", r.Stakeholder)
		for i, item := range r.Items {
			fmt.Fprintf(w, "   %d. %s\n", i+1, item)
		}
	}
}

// Quiz prints the simulated knowledge check.
func Quiz(w io.Writer, result guide.QuizResult) {
	Section(w, "AI SAFETY KNOWLEDGE CHECK")
	fmt.Fprintln(w, "Simulated run: answers are picked at random, not read from input.")
	fmt.Fprintln(w)
	for i, a := range result.Answers {
		fmt.Fprintf(w, "Question %d: %s\n", i+1, a.Question.Prompt)
		for _, opt := range a.Question.Options {
			fmt.Fprintf(w, "   %s\n", opt)
		}
		fmt.Fprintf(w, "   Simulated answer: %s\n", a.Chosen)
		if a.Correct {
			fmt.Fprintln(w, "   Correct!")
		} else {
			fmt.Fprintf(w, "   Incorrect. The correct answer is %s.\n", a.Question.Correct)
		}
		fmt.Fprintf(w, "   Explanation: %s\n\n", a.Question.Explanation)
	}
	fmt.Fprintf(w, "Final score: %d/%d\n", result.Score, len(result.Answers))
	fmt.Fprintln(w, guide.Verdict(result.Score, len(result.Answers)))
}

// Resources prints the further-learning resource list.
func Resources(w io.Writer, categories []guide.ResourceCategory) {
	Section(w, "FURTHER LEARNING RESOURCES")
	for _, cat := range categories {
		fmt.Fprintf(w, "\n%s:\n", cat.Name)
		for _, item := range cat.Items {
			fmt.Fprintf(w, "   - %s\n", item)
		}
	}
}

// Trends prints publications and impact grouped by year.
func Trends(w io.Writer, trends []papers.YearTrend) {
	Section(w, "RESEARCH TREND ANALYSIS")
	fmt.Fprintln(w, "Publications and impact by year:")
	for _, tr := range trends {
		fmt.Fprintf(w, "   %d: %d papers, %d total citations (avg: %.0f)\n",
			tr.Year, len(tr.Papers), tr.TotalCitations, tr.MeanCitations)
		for _, p := range tr.Papers {
			fmt.Fprintf(w, "      - %s (%d citations)\n", p.Title, p.Citations)
		}
	}
}

// CitationStats prints the descriptive statistics and the high-impact
// papers at or above the 75th-percentile threshold.
func CitationStats(w io.Writer, summary types.CitationSummary, highImpact []types.Paper) {
	Section(w, "CITATION IMPACT ANALYSIS")
	fmt.Fprintf(w, "   Total citations:    %d\n", summary.Total)
	fmt.Fprintf(w, "   Average per paper:  %.1f\n", summary.Mean)
	fmt.Fprintf(w, "   Median citations:   %.1f\n", summary.Median)
	fmt.Fprintf(w, "   Citation range:     %d - %d\n", summary.Min, summary.Max)

	fmt.Fprintf(w, "\nHigh-impact papers (>= %.0f citations):\n", summary.Quartile75)
	for _, p := range highImpact {
		fmt.Fprintf(w, "   - %s (%d) - %d citations\n", p.Title, p.Year, p.Citations)
		fmt.Fprintf(w, "     Category: %s | Venue: %s\n", p.Category, p.Venue)
	}
}

// Concepts prints the term frequency analysis and category distribution.
func Concepts(w io.Writer, concepts []stats.TermCount, categories []papers.NamedCount) {
	Section(w, "KEY CONCEPT ANALYSIS")
	fmt.Fprintln(w, "Concept frequency:")
	for _, c := range concepts {
		fmt.Fprintf(w, "   - %s: %d mentions\n", c.Term, c.Count)
	}
	fmt.Fprintln(w, "\nResearch area distribution:")
	for _, c := range categories {
		fmt.Fprintf(w, "   - %s: %d papers\n", strings.ReplaceAll(c.Name, "_", " "), c.Count)
	}
}

// Methodology prints the per-method tallies, the coarse methodology
// classes, and the evidence buckets.
func Methodology(w io.Writer, counts []papers.NamedCount, classes map[papers.MethodClass]int, evidence map[string]int) {
	Section(w, "METHODOLOGICAL APPROACH ANALYSIS")
	for _, c := range counts {
		fmt.Fprintf(w, "   - %s: %d papers\n", c.Name, c.Count)
	}
	fmt.Fprintln(w, "\nMethodology categories:")
	fmt.Fprintf(w, "   Empirical studies:    %d papers\n", classes[papers.MethodEmpirical])
	fmt.Fprintf(w, "   Theoretical analysis: %d papers\n", classes[papers.MethodTheoretical])
	fmt.Fprintf(w, "   Experimental work:    %d papers\n", classes[papers.MethodExperimental])

	fmt.Fprintln(w, "\nEvidence quality assessment:")
	for _, kind := range papers.EvidenceKinds {
		if n := evidence[kind]; n > 0 {
			fmt.Fprintf(w, "   - %s: %d papers\n", kind, n)
		}
	}
}

// Timeline prints the research milestone timeline.
func Timeline(w io.Writer, ordered []types.Paper) {
	Section(w, "ALIGNMENT RESEARCH TIMELINE")
	for _, p := range ordered {
		authors := p.Authors
		suffix := ""
		if len(authors) > 2 {
			authors = authors[:2]
			suffix = " et al."
		}
		fmt.Fprintf(w, "\n   %d: %s\n", p.Year, p.Title)
		fmt.Fprintf(w, "        Authors:  %s%s\n", strings.Join(authors, ", "), suffix)
		fmt.Fprintf(w, "        Impact:   %d citations\n", p.Citations)
		if len(p.KeyContributions) > 0 {
			fmt.Fprintf(w, "        Key contribution: %s\n", p.KeyContributions[0])
		}
		if p.Influence != "" {
			fmt.Fprintf(w, "        Influence: %s\n", p.Influence)
		}
	}
}

// AnalysisOverview prints the closing dataset summary.
func AnalysisOverview(w io.Writer, summary AnalysisSummary, recentCount, venueCount int) {
	Section(w, "RESEARCH SUMMARY REPORT")
	fmt.Fprintf(w, "   Papers analyzed:  %d\n", summary.PapersAnalyzed)
	fmt.Fprintf(w, "   Time period:      %s\n", summary.YearRange)
	fmt.Fprintf(w, "   Total citations:  %d\n", summary.TotalCitations)
	fmt.Fprintf(w, "   Average citations: %.1f\n", summary.Citations.Mean)
	fmt.Fprintf(w, "\n   Most cited: %q (%d citations)\n", summary.MostCited.Title, summary.MostCited.Citations)
	fmt.Fprintf(w, "   Recent papers (2020+): %d\n", recentCount)
	fmt.Fprintf(w, "   Publication venues: %d\n", venueCount)
}
