// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationSummary holds descriptive statistics over a collection of
// citation counts. It is derived on demand and never persisted as state.
type CitationSummary struct {
	// Total is the sum of all citation counts.
	Total int `json:"total" yaml:"total"`

	// Mean is Total divided by the number of papers.
	Mean float64 `json:"mean" yaml:"mean"`

	// Median is the middle element, or the average of the two middle
	// elements for even-sized collections.
	Median float64 `json:"median" yaml:"median"`

	// Quartile75 is the 75th-percentile threshold, computed by linear
	// interpolation between ranks of the ascending sort.
	Quartile75 float64 `json:"quartile_75" yaml:"quartile_75"`

	// Min is the smallest citation count.
	Min int `json:"min" yaml:"min"`

	// Max is the largest citation count.
	Max int `json:"max" yaml:"max"`
}
