package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/quickview/pkg/types"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   types.CitationSummary
	}{
		{
			name:   "three values",
			values: []int{10, 20, 30},
			want: types.CitationSummary{
				Total: 60, Mean: 20, Median: 20, Quartile75: 30, Min: 10, Max: 30,
			},
		},
		{
			name:   "single value",
			values: []int{42},
			want: types.CitationSummary{
				Total: 42, Mean: 42, Median: 42, Quartile75: 42, Min: 42, Max: 42,
			},
		},
		{
			name:   "even count averages the middle pair",
			values: []int{1, 2, 3, 4},
			want: types.CitationSummary{
				Total: 10, Mean: 2.5, Median: 2.5, Quartile75: 3.75, Min: 1, Max: 4,
			},
		},
		{
			name:   "curated citation counts",
			values: []int{2847, 521, 890, 1456, 3247, 847},
			want: types.CitationSummary{
				Total:      9808,
				Mean:       9808.0 / 6.0,
				Median:     (890 + 1456) / 2.0,
				Quartile75: 2947, // 2847 + 0.25*(3247-2847)
				Min:        521,
				Max:        3247,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.values)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Summarize(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestSummarizeIsPure(t *testing.T) {
	values := []int{521, 3247, 890}
	first, err := Summarize(values)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Summarize(values)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated Summarize diverged: %+v vs %+v", first, second)
	}
	if values[0] != 521 || values[1] != 3247 || values[2] != 890 {
		t.Errorf("Summarize mutated its input: %v", values)
	}
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"interior rank interpolates", []float64{1, 2, 3, 4}, 0.75, 3.75},
		{"rank below first clamps to min", []float64{5, 10}, 0.1, 5},
		{"rank above last clamps to max", []float64{5, 10}, 0.9, 10},
		{"single element", []float64{7}, 0.75, 7},
		{"median via quantile", []float64{1, 2, 3}, 0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestHighImpact(t *testing.T) {
	papers := []types.Paper{
		{Title: "A", Citations: 2847},
		{Title: "B", Citations: 521},
		{Title: "C", Citations: 890},
		{Title: "D", Citations: 1456},
		{Title: "E", Citations: 3247},
		{Title: "F", Citations: 847},
	}

	got := HighImpact(papers, 1000)
	want := []int{3247, 2847, 1456}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Citations != w {
			t.Errorf("got[%d].Citations = %d, want %d", i, got[i].Citations, w)
		}
	}
}

func TestHighImpactStableTies(t *testing.T) {
	papers := []types.Paper{
		{Title: "first", Citations: 100},
		{Title: "second", Citations: 100},
		{Title: "low", Citations: 1},
	}

	got := HighImpact(papers, 50)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("equal counts reordered: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestFrequencyCount(t *testing.T) {
	corpus := []string{"AI alignment research", "Safety first, alignment second"}

	got := FrequencyCount([]string{"alignment", "safety"}, corpus)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != (TermCount{Term: "alignment", Count: 2}) {
		t.Errorf("got[0] = %+v, want alignment:2", got[0])
	}
	if got[1] != (TermCount{Term: "safety", Count: 1}) {
		t.Errorf("got[1] = %+v, want safety:1", got[1])
	}
}

func TestFrequencyCountOmitsZero(t *testing.T) {
	got := FrequencyCount([]string{"oversight"}, []string{"nothing relevant here"})
	if len(got) != 0 {
		t.Errorf("zero-count term not omitted: %+v", got)
	}
}

func TestFrequencyCountTieKeepsSuppliedOrder(t *testing.T) {
	corpus := []string{"debate and oversight"}
	got := FrequencyCount([]string{"debate", "oversight"}, corpus)
	if len(got) != 2 || got[0].Term != "debate" || got[1].Term != "oversight" {
		t.Errorf("tie order not preserved: %+v", got)
	}
}

func TestFrequencyCountSubstringNotWordBoundary(t *testing.T) {
	// "scalable" should match inside "unscalable": plain substring count.
	got := FrequencyCount([]string{"scalable"}, []string{"an unscalable approach"})
	if len(got) != 1 || got[0].Count != 1 {
		t.Errorf("substring match failed: %+v", got)
	}
}
