// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import "math/rand"

// Question is one multiple-choice quiz question. Options carry their
// letter prefix ("A) ...") and Correct names the right letter.
type Question struct {
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Options     []string `json:"options" yaml:"options"`
	Correct     string   `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// Questions returns the knowledge-check questions.
func Questions() []Question {
	return []Question{
		{
			Prompt: "What is the 'alignment problem' in AI safety?",
			Options: []string{
				"A) Making AI systems run faster",
				"B) Ensuring AI systems pursue intended goals",
				"C) Aligning AI hardware components",
				"D) Synchronizing multiple AI systems",
			},
			Correct:     "B",
			Explanation: "The alignment problem focuses on ensuring AI systems do what we actually want them to do, not just what we literally ask for.",
		},
		{
			Prompt: "What does AGI stand for?",
			Options: []string{
				"A) Advanced Graphics Intelligence",
				"B) Artificial General Intelligence",
				"C) Automated Goal Implementation",
				"D) Augmented Gaming Interface",
			},
			Correct:     "B",
			Explanation: "AGI (Artificial General Intelligence) refers to AI that matches human cognitive abilities across all domains.",
		},
		{
			Prompt: "Why is AI interpretability important for safety?",
			Options: []string{
				"A) It makes AI run faster",
				"B) It reduces computational costs",
				"C) It helps us understand AI decision-making",
				"D) It improves user interfaces",
			},
			Correct:     "C",
			Explanation: "Interpretability helps us understand how AI systems make decisions, which is crucial for ensuring they're safe and trustworthy.",
		},
	}
}

// Answer records one simulated quiz answer.
type Answer struct {
	Question Question `json:"question" yaml:"question"`
	Chosen   string   `json:"chosen" yaml:"chosen"`
	Correct  bool     `json:"correct" yaml:"correct"`
}

// QuizResult holds the outcome of a simulated quiz run.
type QuizResult struct {
	Answers []Answer `json:"answers" yaml:"answers"`
	Score   int      `json:"score" yaml:"score"`
}

// letters are the answer choices a simulated participant picks from.
var letters = []string{"A", "B", "C", "D"}

// RunQuiz simulates answering every question by picking a uniformly
// random letter from the injected generator. The generator is the only
// source of randomness, so a fixed seed reproduces the run exactly.
func RunQuiz(questions []Question, rng *rand.Rand) QuizResult {
	result := QuizResult{Answers: make([]Answer, 0, len(questions))}
	for _, q := range questions {
		chosen := letters[rng.Intn(len(letters))]
		correct := chosen == q.Correct
		if correct {
			result.Score++
		}
		result.Answers = append(result.Answers, Answer{
			Question: q,
			Chosen:   chosen,
			Correct:  correct,
		})
	}
	return result
}

// Verdict grades a score against the number of questions, mirroring the
// guide's closing message tiers.
func Verdict(score, total int) string {
	switch {
	case total > 0 && score == total:
		return "Excellent! You have a great understanding of AI safety basics!"
	case score >= total/2:
		return "Good job! You have a solid foundation in AI safety concepts."
	default:
		return "Keep learning! AI safety is a complex but important field."
	}
}
