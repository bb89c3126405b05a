// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers carries the curated alignment-research paper table and
// the aggregations the analyzer runs over it. The table is literal data:
// loaded once, passed explicitly, never mutated.
package papers

import "github.com/pdiddy/quickview/pkg/types"

// Curated returns the curated set of fundamental alignment papers,
// ordered by category. Citation counts are approximate as of 2024.
func Curated() []types.Paper {
	return []types.Paper{
		{
			Title:     "Concrete Problems in AI Safety",
			Authors:   []string{"Dario Amodei", "Chris Olah", "Jacob Steinhardt", "Paul Christiano", "John Schulman", "Dan Mané"},
			Year:      2016,
			ArxivID:   "1606.06565",
			Venue:     "arXiv preprint",
			Citations: 2847,
			Abstract: "Identifies five practical safety problems in AI systems that can be studied " +
				"empirically today: avoiding negative side effects, avoiding reward hacking, scalable " +
				"oversight, safe exploration, and robustness to distributional shift.",
			KeyContributions: []string{
				"Formalized five concrete safety problems",
				"Shifted focus from theoretical to empirical safety research",
				"Provided testable problem definitions",
			},
			Methodology:       "Literature review and problem formulation",
			EmpiricalEvidence: "Provided examples and potential solutions for each problem category",
			Influence:         "Established research agenda adopted by major AI labs",
			Category:          types.CategoryFoundational,
		},
		{
			Title:     "AI Alignment via Debate",
			Authors:   []string{"Geoffrey Irving", "Paul Christiano", "Dario Amodei"},
			Year:      2018,
			ArxivID:   "1805.00899",
			Venue:     "arXiv preprint",
			Citations: 521,
			Abstract: "Proposes using adversarial debate between AI systems to help humans evaluate " +
				"complex AI outputs, potentially solving the scalable oversight problem.",
			KeyContributions: []string{
				"Introduced debate as scalable oversight mechanism",
				"Formalized debate game theoretically",
				"Provided empirical testing framework",
			},
			Methodology:       "Game-theoretic analysis with empirical validation",
			EmpiricalEvidence: "Tested on MNIST classification and reading comprehension tasks",
			Influence:         "Inspired follow-up empirical studies and industry applications",
			Category:          types.CategoryFoundational,
		},
		{
			Title:     "Constitutional AI: Harmlessness from AI Feedback",
			Authors:   []string{"Yuntao Bai", "Andy Jones", "Kamal Ndousse", "Amanda Askell", "et al."},
			Year:      2022,
			ArxivID:   "2212.08073",
			Venue:     "arXiv preprint",
			Citations: 890,
			Abstract: "Introduces Constitutional AI (CAI), a method for training AI systems to be " +
				"harmless using AI feedback guided by a set of constitutional principles, reducing " +
				"dependence on human feedback.",
			KeyContributions: []string{
				"Demonstrated AI feedback for alignment",
				"Reduced human feedback requirements",
				"Showed scalability of constitutional training",
			},
			Methodology:       "Two-stage training: supervised learning on self-critiques, then RLAIF",
			EmpiricalEvidence: "Systematic evaluation showing improved harmlessness with maintained helpfulness",
			Influence:         "Widely adopted approach in industry alignment research",
			Category:          types.CategoryFoundational,
		},
		{
			Title:     "Learning to Summarize from Human Feedback",
			Authors:   []string{"Nisan Stiennon", "Long Ouyang", "Jeffrey Wu", "Daniel M. Ziegler", "et al."},
			Year:      2020,
			ArxivID:   "2009.01325",
			Venue:     "NeurIPS 2020",
			Citations: 1456,
			Abstract: "Shows how to use human feedback to train neural networks to summarize text, " +
				"establishing RLHF as a viable technique for complex language tasks.",
			KeyContributions: []string{
				"First large-scale demonstration of RLHF for language",
				"Showed human preference learning effectiveness",
				"Established RLHF methodology",
			},
			Methodology:       "Comparative study with human evaluation and automatic metrics",
			EmpiricalEvidence: "Human evaluators preferred RLHF summaries over supervised baselines",
			Influence:         "Foundation for InstructGPT, ChatGPT, and subsequent aligned models",
			Category:          types.CategoryTechnicalMethods,
		},
		{
			Title:     "Training Language Models to Follow Instructions with Human Feedback",
			Authors:   []string{"Long Ouyang", "Jeffrey Wu", "Xu Jiang", "Diogo Almeida", "et al."},
			Year:      2022,
			ArxivID:   "2203.02155",
			Venue:     "NeurIPS 2022",
			Citations: 3247,
			Abstract: "Demonstrates how RLHF can make language models more helpful, harmless, and " +
				"honest. Shows that 1.3B parameter InstructGPT model outputs are preferred by humans " +
				"over 175B parameter GPT-3.",
			KeyContributions: []string{
				"Scaled RLHF to large language models",
				"Demonstrated alignment without capability loss",
				"Established three-step RLHF process",
			},
			Methodology:       "Large-scale human evaluation with statistical analysis",
			EmpiricalEvidence: "Systematic preference studies across multiple domains",
			Influence:         "Became standard approach for training aligned language models",
			Category:          types.CategoryTechnicalMethods,
		},
		{
			Title:     "Zoom In: An Introduction to Circuits",
			Authors:   []string{"Chris Olah", "Nick Cammarata", "Ludwig Schubert", "Gabriel Goh", "et al."},
			Year:      2020,
			Venue:     "Distill",
			Citations: 847,
			Abstract: "Introduces the circuits hypothesis: neural networks learn by developing " +
				"meaningful algorithms, implemented through the connections between neurons, which " +
				"can be reverse-engineered and understood.",
			KeyContributions: []string{
				"Formalized circuits hypothesis for interpretability",
				"Demonstrated systematic feature analysis methods",
				"Provided tools for mechanistic understanding",
			},
			Methodology:       "Feature visualization, activation analysis, and ablation studies",
			EmpiricalEvidence: "Identified interpretable circuits in vision models",
			Influence:         "Launched mechanistic interpretability as major research direction",
			Category:          types.CategoryInterpretability,
		},
	}
}

// ConceptTerms is the vocabulary scanned for in abstracts and key
// contributions during concept frequency analysis.
func ConceptTerms() []string {
	return []string{
		"alignment", "safety", "human feedback", "RLHF", "oversight", "interpretability",
		"robustness", "reward hacking", "side effects", "constitutional", "debate",
		"preference learning", "scalable", "harmlessness", "helpfulness",
	}
}

// Corpus returns the analyzable text of the papers: every abstract
// followed by every key contribution, in table order.
func Corpus(papers []types.Paper) []string {
	var corpus []string
	for _, p := range papers {
		corpus = append(corpus, p.Abstract)
		corpus = append(corpus, p.KeyContributions...)
	}
	return corpus
}

// Citations extracts the citation counts in table order.
func Citations(papers []types.Paper) []int {
	counts := make([]int, len(papers))
	for i, p := range papers {
		counts[i] = p.Citations
	}
	return counts
}
