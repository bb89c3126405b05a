// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScenarioKind identifies one of the closed set of growth models. Code
// that dispatches on the kind must handle every constant and reject
// anything else.
type ScenarioKind string

const (
	ScenarioGradual      ScenarioKind = "gradual"
	ScenarioAccelerating ScenarioKind = "accelerating"
	ScenarioExplosive    ScenarioKind = "explosive"
)

// GrowthScenario pairs a growth model with its parameters. Each scenario
// carries its own base rate so callers never branch on loose strings.
type GrowthScenario struct {
	// Kind selects the growth formula.
	Kind ScenarioKind `json:"kind" yaml:"kind"`

	// BaseRate is the per-year multiplier the formula applies.
	BaseRate float64 `json:"base_rate" yaml:"base_rate"`

	// Description is the one-line explanation shown in the guide output.
	Description string `json:"description" yaml:"description"`
}

// Name returns the display name of the scenario.
func (s GrowthScenario) Name() string {
	switch s.Kind {
	case ScenarioGradual:
		return "Gradual"
	case ScenarioAccelerating:
		return "Accelerating"
	case ScenarioExplosive:
		return "Explosive"
	}
	return string(s.Kind)
}

// DefaultScenarios returns the three growth scenarios used by the guide.
func DefaultScenarios() []GrowthScenario {
	return []GrowthScenario{
		{Kind: ScenarioGradual, BaseRate: 1.02, Description: "Steady 2% annual improvement"},
		{Kind: ScenarioAccelerating, BaseRate: 1.05, Description: "Accelerating improvement (5% then faster)"},
		{Kind: ScenarioExplosive, BaseRate: 1.1, Description: "Explosive growth after breakthrough"},
	}
}

// ProjectionPoint is one year of a projected capability curve.
type ProjectionPoint struct {
	// Year is the calendar year of the projection.
	Year int `json:"year" yaml:"year"`

	// Level is the projected capability level on the human-normalized
	// scale (human = 100, current AI = 50).
	Level float64 `json:"level" yaml:"level"`
}
