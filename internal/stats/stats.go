// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes descriptive statistics over citation counts and
// term frequencies over paper text. All functions are pure: same input,
// same output, no hidden state.
package stats

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/quickview/pkg/types"
)

// ErrEmptyInput is returned when statistics are requested over no data.
var ErrEmptyInput = errors.New("empty input")

// Summarize computes descriptive statistics over a collection of
// non-negative citation counts. It returns ErrEmptyInput for an empty
// collection.
func Summarize(values []int) (types.CitationSummary, error) {
	if len(values) == 0 {
		return types.CitationSummary{}, ErrEmptyInput
	}

	sorted := make([]float64, len(values))
	total := 0
	for i, v := range values {
		sorted[i] = float64(v)
		total += v
	}
	sort.Float64s(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return types.CitationSummary{
		Total:      total,
		Mean:       float64(total) / float64(n),
		Median:     median,
		Quartile75: Quantile(sorted, 0.75),
		Min:        int(sorted[0]),
		Max:        int(sorted[n-1]),
	}, nil
}

// Quantile returns the p-quantile of an ascending-sorted collection using
// linear interpolation between ranks (the exclusive method: rank h is
// (n+1)*p on a one-based scale). Where the pure exclusive method would
// extrapolate beyond the data — ranks below 1 or above n — the result is
// clamped to the observed minimum or maximum instead, so extreme p never
// yields a value outside the collection. The input must be sorted and
// non-empty.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := float64(n+1) * p
	if h <= 1 {
		return sorted[0]
	}
	if h >= float64(n) {
		return sorted[n-1]
	}
	j := int(math.Floor(h))
	g := h - float64(j)
	return sorted[j-1] + g*(sorted[j]-sorted[j-1])
}

// HighImpact returns the papers whose citation count is at or above the
// threshold, ordered by citation count descending. Papers with equal
// counts keep their original relative order.
func HighImpact(papers []types.Paper, threshold float64) []types.Paper {
	var out []types.Paper
	for _, p := range papers {
		if float64(p.Citations) >= threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Citations > out[j].Citations
	})
	return out
}

// TermCount pairs a term with its total occurrence count across a corpus.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// FrequencyCount counts case-insensitive substring occurrences of each
// term across all corpus entries. Terms that never occur are omitted.
// The result is ordered by descending count; terms with equal counts keep
// the order in which they were supplied.
func FrequencyCount(terms []string, corpus []string) []TermCount {
	lowered := make([]string, len(corpus))
	for i, text := range corpus {
		lowered[i] = strings.ToLower(text)
	}

	var counts []TermCount
	for _, term := range terms {
		needle := strings.ToLower(term)
		total := 0
		for _, text := range lowered {
			total += strings.Count(text, needle)
		}
		if total > 0 {
			counts = append(counts, TermCount{Term: term, Count: total})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
