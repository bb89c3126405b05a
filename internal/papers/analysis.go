// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/quickview/pkg/types"
)

// YearTrend aggregates the papers published in one year.
type YearTrend struct {
	Year           int           `json:"year" yaml:"year"`
	Papers         []types.Paper `json:"papers" yaml:"papers"`
	TotalCitations int           `json:"total_citations" yaml:"total_citations"`
	MeanCitations  float64       `json:"mean_citations" yaml:"mean_citations"`
}

// TrendsByYear groups papers by publication year, ascending.
func TrendsByYear(papers []types.Paper) []YearTrend {
	byYear := make(map[int][]types.Paper)
	for _, p := range papers {
		byYear[p.Year] = append(byYear[p.Year], p)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	trends := make([]YearTrend, 0, len(years))
	for _, y := range years {
		group := byYear[y]
		total := 0
		for _, p := range group {
			total += p.Citations
		}
		trends = append(trends, YearTrend{
			Year:           y,
			Papers:         group,
			TotalCitations: total,
			MeanCitations:  float64(total) / float64(len(group)),
		})
	}
	return trends
}

// NamedCount pairs a label with how many papers it covers.
type NamedCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// MethodologyCounts tallies papers per methodology string, ordered by
// descending count with ties in first-encountered order.
func MethodologyCounts(papers []types.Paper) []NamedCount {
	return countBy(papers, func(p types.Paper) string { return p.Methodology })
}

// CategoryCounts tallies papers per research category, ordered by
// descending count with ties in first-encountered order.
func CategoryCounts(papers []types.Paper) []NamedCount {
	return countBy(papers, func(p types.Paper) string { return string(p.Category) })
}

func countBy(papers []types.Paper, key func(types.Paper) string) []NamedCount {
	index := make(map[string]int)
	var counts []NamedCount
	for _, p := range papers {
		k := key(p)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, NamedCount{Name: k, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// MethodClass buckets a paper's methodology into a coarse approach type.
type MethodClass string

const (
	MethodEmpirical    MethodClass = "empirical"
	MethodTheoretical  MethodClass = "theoretical"
	MethodExperimental MethodClass = "experimental"
)

// ClassifyMethodology assigns a paper's methodology string to the first
// matching class: empirical terms win over theoretical, theoretical over
// experimental. Returns false when no class matches.
func ClassifyMethodology(methodology string) (MethodClass, bool) {
	m := strings.ToLower(methodology)
	switch {
	case strings.Contains(m, "empirical") || strings.Contains(m, "evaluation") || strings.Contains(m, "study"):
		return MethodEmpirical, true
	case strings.Contains(m, "theoretical") || strings.Contains(m, "analysis"):
		return MethodTheoretical, true
	case strings.Contains(m, "experimental") || strings.Contains(m, "testing"):
		return MethodExperimental, true
	}
	return "", false
}

// MethodClassCounts tallies papers per coarse methodology class.
func MethodClassCounts(papers []types.Paper) map[MethodClass]int {
	counts := make(map[MethodClass]int)
	for _, p := range papers {
		if class, ok := ClassifyMethodology(p.Methodology); ok {
			counts[class]++
		}
	}
	return counts
}

// EvidenceKinds lists the evidence-quality buckets in report order.
var EvidenceKinds = []string{
	"Human Evaluation",
	"Controlled Experiments",
	"Large-Scale Studies",
	"Mathematical Proofs",
	"Case Studies",
}

// EvidenceCounts classifies each paper's empirical-evidence description
// into zero or more evidence-quality buckets. A paper can count toward
// several buckets.
func EvidenceCounts(papers []types.Paper) map[string]int {
	counts := make(map[string]int)
	for _, p := range papers {
		e := strings.ToLower(p.EmpiricalEvidence)
		if e == "" {
			continue
		}
		if strings.Contains(e, "human") && strings.Contains(e, "evaluation") {
			counts["Human Evaluation"]++
		}
		if strings.Contains(e, "controlled") || strings.Contains(e, "experiment") {
			counts["Controlled Experiments"]++
		}
		if strings.Contains(e, "large-scale") || strings.Contains(e, "systematic") {
			counts["Large-Scale Studies"]++
		}
		if strings.Contains(e, "proof") || strings.Contains(e, "mathematical") {
			counts["Mathematical Proofs"]++
		}
		if strings.Contains(e, "case") && strings.Contains(e, "study") {
			counts["Case Studies"]++
		}
	}
	return counts
}

// Timeline returns the papers ordered for the milestone timeline: by year
// ascending, then citation count descending within a year.
func Timeline(papers []types.Paper) []types.Paper {
	out := make([]types.Paper, len(papers))
	copy(out, papers)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Citations > out[j].Citations
	})
	return out
}

// MostCited returns the paper with the highest citation count. The second
// return is false for an empty set.
func MostCited(papers []types.Paper) (types.Paper, bool) {
	if len(papers) == 0 {
		return types.Paper{}, false
	}
	best := papers[0]
	for _, p := range papers[1:] {
		if p.Citations > best.Citations {
			best = p
		}
	}
	return best, true
}

// Recent returns the papers published in or after the given year.
func Recent(papers []types.Paper, sinceYear int) []types.Paper {
	var out []types.Paper
	for _, p := range papers {
		if p.Year >= sinceYear {
			out = append(out, p)
		}
	}
	return out
}

// Venues returns the distinct publication venues, in table order.
func Venues(papers []types.Paper) []string {
	seen := make(map[string]bool)
	var venues []string
	for _, p := range papers {
		v := p.Venue
		if v == "" {
			v = "Unknown"
		}
		if !seen[v] {
			seen[v] = true
			venues = append(venues, v)
		}
	}
	return venues
}

// YearRange formats the span of publication years (e.g. "2016-2022").
// Empty input yields an empty string.
func YearRange(papers []types.Paper) string {
	if len(papers) == 0 {
		return ""
	}
	min, max := papers[0].Year, papers[0].Year
	for _, p := range papers[1:] {
		if p.Year < min {
			min = p.Year
		}
		if p.Year > max {
			max = p.Year
		}
	}
	return fmt.Sprintf("%d-%d", min, max)
}
