// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a small arithmetic demonstration",
	Long: `Demo prints a seedable random sample with its sum and average, plus the
sum of squares 1..10. It exists as the smallest possible end-to-end check
of the quickview output pipeline.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Int64("seed", 0, "random seed for the sample (0 = time-based)")
	demoCmd.Flags().Int("count", 10, "sample size")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetInt64("seed")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	now := time.Now()
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "quickview demo")
	fmt.Fprintln(w, "==============")
	fmt.Fprintf(w, "Current time: %s\n", now.Format("2006-01-02 15:04:05"))

	data := make([]int, count)
	sum := 0
	for i := range data {
		data[i] = rng.Intn(100) + 1
		sum += data[i]
	}
	fmt.Fprintf(w, "Random data: %v\n", data)
	fmt.Fprintf(w, "Sum: %d\n", sum)
	fmt.Fprintf(w, "Average: %.2f\n", float64(sum)/float64(count))

	squares := 0
	for i := 1; i <= 10; i++ {
		squares += i * i
	}
	fmt.Fprintf(w, "Sum of squares 1-10: %d\n", squares)

	return nil
}
