package guide

import (
	"math/rand"
	"testing"
)

func TestRunQuizDeterministicWithSeed(t *testing.T) {
	questions := Questions()

	first := RunQuiz(questions, rand.New(rand.NewSource(42)))
	second := RunQuiz(questions, rand.New(rand.NewSource(42)))

	if first.Score != second.Score {
		t.Errorf("same seed gave different scores: %d vs %d", first.Score, second.Score)
	}
	for i := range first.Answers {
		if first.Answers[i].Chosen != second.Answers[i].Chosen {
			t.Errorf("answer %d diverged: %q vs %q", i, first.Answers[i].Chosen, second.Answers[i].Chosen)
		}
	}
}

func TestRunQuizScoresMatchAnswers(t *testing.T) {
	questions := Questions()
	result := RunQuiz(questions, rand.New(rand.NewSource(7)))

	if len(result.Answers) != len(questions) {
		t.Fatalf("answers = %d, want %d", len(result.Answers), len(questions))
	}
	recount := 0
	for _, a := range result.Answers {
		if a.Correct != (a.Chosen == a.Question.Correct) {
			t.Errorf("answer correctness inconsistent: %+v", a)
		}
		if a.Correct {
			recount++
		}
	}
	if recount != result.Score {
		t.Errorf("score = %d, recount = %d", result.Score, recount)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name         string
		score, total int
		want         string
	}{
		{"perfect", 3, 3, "Excellent! You have a great understanding of AI safety basics!"},
		{"half", 2, 3, "Good job! You have a solid foundation in AI safety concepts."},
		{"poor", 0, 3, "Keep learning! AI safety is a complex but important field."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verdict(tt.score, tt.total); got != tt.want {
				t.Errorf("Verdict(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
			}
		})
	}
}

func TestContentTables(t *testing.T) {
	if got := len(Hierarchy()); got != 3 {
		t.Errorf("Hierarchy() = %d entries, want 3", got)
	}
	if got := len(Challenges()); got != 5 {
		t.Errorf("Challenges() = %d entries, want 5", got)
	}
	if got := len(Recommendations()); got != 4 {
		t.Errorf("Recommendations() = %d stakeholders, want 4", got)
	}
	if got := len(Resources()); got != 4 {
		t.Errorf("Resources() = %d categories, want 4", got)
	}
	for _, q := range Questions() {
		if len(q.Options) != 4 {
			t.Errorf("%q: options = %d, want 4", q.Prompt, len(q.Options))
		}
		if q.Correct == "" || q.Explanation == "" {
			t.Errorf("%q: missing answer key or explanation", q.Prompt)
		}
	}
}
