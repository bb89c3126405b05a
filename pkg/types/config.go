// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportFormat selects the structured export document format.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// AnalyzeConfig holds settings for the paper analyzer command.
type AnalyzeConfig struct {
	// ExportDir is the directory the summary document is written to.
	ExportDir string `json:"export_dir" yaml:"export_dir"`

	// Format selects the export document format: json or yaml.
	Format ExportFormat `json:"format" yaml:"format"`

	// Markdown enables the additional Markdown report file.
	Markdown bool `json:"markdown" yaml:"markdown"`
}

// GuideConfig holds settings for the safety guide command.
type GuideConfig struct {
	// ExportDir is the directory the session document is written to.
	ExportDir string `json:"export_dir" yaml:"export_dir"`

	// StartYear is the first year of the growth projection (default 2025).
	StartYear int `json:"start_year" yaml:"start_year"`

	// Years is the projection length in years (default 26, i.e. through 2050).
	Years int `json:"years" yaml:"years"`

	// Seed seeds the quiz and session-ID generator. Zero means derive the
	// seed from the current time.
	Seed int64 `json:"seed" yaml:"seed"`
}
