// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared domain types for quickview: curated paper
// records, growth scenarios, projection points, and stage configuration.
package types

// Category classifies a paper by research area within the curated set.
type Category string

const (
	CategoryFoundational     Category = "foundational"
	CategoryTechnicalMethods Category = "technical_methods"
	CategoryInterpretability Category = "interpretability"
)

// Paper holds the curated metadata for one alignment research paper.
// Records are literal data loaded once at startup and never mutated.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order. Long author lists
	// end with an "et al." entry, matching the published citation form.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// ArxivID is the arXiv identifier (e.g. "1606.06565"). Empty for
	// papers published outside arXiv.
	ArxivID string `json:"arxiv,omitempty" yaml:"arxiv,omitempty"`

	// Venue is the journal, conference, or preprint server.
	Venue string `json:"venue" yaml:"venue"`

	// Citations is the approximate citation count, used as the impact
	// proxy for all aggregate statistics.
	Citations int `json:"citations" yaml:"citations"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// KeyContributions lists the paper's main contributions.
	KeyContributions []string `json:"key_contributions" yaml:"key_contributions"`

	// Methodology describes the research method in one line.
	Methodology string `json:"methodology" yaml:"methodology"`

	// EmpiricalEvidence describes the evidence supporting the paper's claims.
	EmpiricalEvidence string `json:"empirical_evidence" yaml:"empirical_evidence"`

	// Influence summarizes the paper's effect on the field.
	Influence string `json:"influence" yaml:"influence"`

	// Category is the research area the paper belongs to.
	Category Category `json:"category" yaml:"category"`
}
