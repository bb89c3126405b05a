// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quickview/internal/guide"
	"github.com/pdiddy/quickview/internal/projection"
	"github.com/pdiddy/quickview/internal/report"
	"github.com/pdiddy/quickview/internal/session"
	"github.com/pdiddy/quickview/pkg/types"
)

// progressHorizons are the year offsets shown in the safety-versus-
// capability timeline.
var progressHorizons = []int{5, 10, 15, 20}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Walk through AGI, ASI, and AI safety concepts",
	Long: `Guide prints an educational walkthrough of AI safety: the capability
hierarchy from narrow AI to superintelligence, intelligence-growth
projections under three scenarios with AGI/ASI milestone years, the open
safety challenges, a safety-versus-capability research timeline,
stakeholder recommendations, a simulated knowledge check, and further
learning resources. The run ends with a session document on disk.

The quiz and session ID come from a seedable generator; pass --seed for
a reproducible run.`,
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().Int("start-year", 2025, "first year of the growth projection")
	guideCmd.Flags().Int("years", 26, "projection length in years")
	guideCmd.Flags().Int64("seed", 0, "random seed for the quiz and session ID (0 = time-based)")
	guideCmd.Flags().String("export-dir", ".", "directory the session document is written to")
	guideCmd.Flags().String("format", "json", "export document format: json or yaml")
	guideCmd.Flags().String("history-db", "", "optional SQLite ledger recording this run")

	rootCmd.AddCommand(guideCmd)
}

func guideConfig(cmd *cobra.Command) types.GuideConfig {
	return types.GuideConfig{
		ExportDir: stringSetting(cmd, "export-dir", "export_dir"),
		StartYear: intSetting(cmd, "start-year", "start_year"),
		Years:     intSetting(cmd, "years", "years"),
		Seed:      int64Setting(cmd, "seed", "seed"),
	}
}

func runGuide(cmd *cobra.Command, args []string) error {
	cfg := guideConfig(cmd)
	w := cmd.OutOrStdout()
	started := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = started.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	report.Banner(w, "AGI & AI SAFETY GUIDE FOR BEGINNERS")
	fmt.Fprintln(w, "Learn about: AGI, ASI, Alignment, Safety Research")
	fmt.Fprintf(w, "Generated: %s\n", started.Format("2006-01-02 15:04:05"))

	hierarchy := guide.Hierarchy()
	report.Hierarchy(w, hierarchy)

	report.Section(w, "INTELLIGENCE GROWTH SIMULATION")
	fmt.Fprintln(w, "Intelligence level projections (Human = 100, Current AI = 50)")
	fmt.Fprintln(w)

	scenarios := types.DefaultScenarios()
	curves := make([]report.ScenarioMilestones, 0, len(scenarios))
	for _, sc := range scenarios {
		points, err := projection.Project(sc, cfg.StartYear, cfg.Years)
		if err != nil {
			return fmt.Errorf("projecting %s scenario: %w", sc.Name(), err)
		}
		milestones := projection.Milestones(points,
			projection.HumanLevel, projection.SuperintelligenceLevel)
		report.Projection(w, sc, points, milestones)
		curves = append(curves, report.ScenarioMilestones{
			Scenario:   sc.Name(),
			Milestones: milestones,
			FinalLevel: points[len(points)-1].Level,
		})
	}

	challenges := guide.Challenges()
	report.Challenges(w, challenges)

	report.Progress(w, projection.DefaultAreas(), cfg.StartYear, progressHorizons)

	report.Recommendations(w, guide.Recommendations())

	quiz := guide.RunQuiz(guide.Questions(), rng)
	report.Quiz(w, quiz)

	report.Resources(w, guide.Resources())

	report.Section(w, "SESSION SUMMARY")
	fmt.Fprintf(w, "   AI types covered:   %d\n", len(hierarchy))
	fmt.Fprintf(w, "   Growth scenarios:   %d\n", len(scenarios))
	fmt.Fprintf(w, "   Safety challenges:  %d\n", len(challenges))
	fmt.Fprintf(w, "   Quiz questions:     %d\n", len(quiz.Answers))

	doc := report.GuideSession{
		GeneratedAt:      started,
		AITypes:          names(hierarchy, func(t guide.AIType) string { return t.Name }),
		GrowthScenarios:  curves,
		SafetyChallenges: names(challenges, func(c guide.Challenge) string { return c.Name }),
		QuizScore:        quiz.Score,
		QuizQuestions:    len(quiz.Answers),
		SessionID:        1000 + rng.Intn(9000),
	}

	format := types.ExportFormat(stringSetting(cmd, "format", "format"))
	path, err := report.Export(cfg.ExportDir, report.SessionFile, format, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nSession data exported to: %s\n", path)

	recordRun(cmd, session.Run{
		StartedAt: started,
		Command:   "guide",
		Scenarios: len(scenarios),
	})

	return nil
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = name(item)
	}
	return out
}
