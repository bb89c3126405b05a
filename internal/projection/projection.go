// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package projection computes deterministic capability growth curves and
// milestone crossings for the guide's intelligence-growth simulation.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdiddy/quickview/pkg/types"
)

// ErrInvalidArgument is returned for a non-positive year count or an
// unrecognized scenario kind.
var ErrInvalidArgument = errors.New("invalid argument")

// Baseline is the assumed current AI capability level on the
// human-normalized scale (human = 100).
const Baseline = 50.0

// Milestone thresholds on the human-normalized scale.
const (
	HumanLevel             = 100.0
	SuperintelligenceLevel = 1000.0
)

// explosiveSwitch is the year offset where the Explosive scenario moves
// from the slow pre-breakthrough rate to the scenario's base rate. The
// curve is continuous at the switch: the slow regime's level at offset 10
// is the fast regime's starting point.
const explosiveSwitch = 10

// preBreakthroughRate is the Explosive scenario's growth rate before the
// regime switch.
const preBreakthroughRate = 1.03

// Project computes the capability level for each year offset in
// [0, years) under the given scenario, starting at startYear. Points are
// strictly increasing in year. It returns ErrInvalidArgument when years
// is not positive or the scenario kind is unknown.
func Project(sc types.GrowthScenario, startYear, years int) ([]types.ProjectionPoint, error) {
	if years <= 0 {
		return nil, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidArgument, years)
	}

	points := make([]types.ProjectionPoint, years)
	for i := 0; i < years; i++ {
		level, err := levelAt(sc, i)
		if err != nil {
			return nil, err
		}
		points[i] = types.ProjectionPoint{Year: startYear + i, Level: level}
	}
	return points, nil
}

// levelAt evaluates the scenario formula at year offset i.
func levelAt(sc types.GrowthScenario, i int) (float64, error) {
	fi := float64(i)
	switch sc.Kind {
	case types.ScenarioGradual:
		return Baseline * math.Pow(sc.BaseRate, fi), nil
	case types.ScenarioAccelerating:
		// The exponent's acceleration factor grows linearly with the offset.
		return Baseline * math.Pow(sc.BaseRate, fi*(1+0.02*fi)), nil
	case types.ScenarioExplosive:
		if i < explosiveSwitch {
			return Baseline * math.Pow(preBreakthroughRate, fi), nil
		}
		slow := Baseline * math.Pow(preBreakthroughRate, explosiveSwitch)
		return slow * math.Pow(sc.BaseRate, fi-explosiveSwitch), nil
	}
	return 0, fmt.Errorf("%w: unknown scenario kind %q", ErrInvalidArgument, sc.Kind)
}

// Milestone records the first year a projected curve crosses a threshold.
type Milestone struct {
	// Threshold is the capability level that was crossed.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Year is the calendar year of the crossing.
	Year int `json:"year" yaml:"year"`
}

// Milestones scans the curve for the first crossing of each threshold: the
// previous point is below the threshold and the current point is at or
// above it. A curve that starts at or above a threshold never crosses it,
// so no milestone is reported for that threshold.
func Milestones(points []types.ProjectionPoint, thresholds ...float64) []Milestone {
	var found []Milestone
	for _, t := range thresholds {
		for i := 1; i < len(points); i++ {
			if points[i-1].Level < t && points[i].Level >= t {
				found = append(found, Milestone{Threshold: t, Year: points[i].Year})
				break
			}
		}
	}
	return found
}
