// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package projection

// maxProgress is the ceiling of the research-progress scale.
const maxProgress = 100.0

// ResearchArea models the development state of one research field for the
// safety-versus-capability timeline comparison.
type ResearchArea struct {
	// Name is the display name of the field.
	Name string `json:"name" yaml:"name"`

	// Progress is the current development level in percent.
	Progress float64 `json:"progress" yaml:"progress"`

	// AnnualRate is the nominal yearly gain in percentage points, before
	// the diminishing-returns adjustment.
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate"`
}

// DefaultAreas returns the research areas tracked by the guide.
func DefaultAreas() []ResearchArea {
	return []ResearchArea{
		{Name: "AI Capabilities", Progress: 85, AnnualRate: 12},
		{Name: "AI Safety Research", Progress: 35, AnnualRate: 8},
		{Name: "AI Governance", Progress: 25, AnnualRate: 5},
		{Name: "Public Awareness", Progress: 40, AnnualRate: 7},
	}
}

// ProjectProgress advances the area's progress by the given number of
// years under a sigmoid-style model: each year's gain is the annual rate
// scaled by the remaining headroom, so growth slows as the area
// approaches 100%. The result never exceeds 100.
func (a ResearchArea) ProjectProgress(years int) float64 {
	p := a.Progress
	for i := 0; i < years; i++ {
		remaining := maxProgress - p
		p += a.AnnualRate * (remaining / maxProgress)
		if p > maxProgress {
			p = maxProgress
		}
	}
	return p
}
