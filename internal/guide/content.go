// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide carries the educational content tables for the AGI safety
// guide: the capability hierarchy, safety challenges, stakeholder
// recommendations, learning resources, and the knowledge-check quiz.
// All tables are literal data, loaded once and never mutated.
package guide

// AIType describes one level of the AI capability hierarchy.
type AIType struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Examples    []string `json:"examples" yaml:"examples"`
	Status      string   `json:"status" yaml:"status"`
}

// Hierarchy returns the ANI → AGI → ASI capability progression.
func Hierarchy() []AIType {
	return []AIType{
		{
			Name:        "ANI (Artificial Narrow Intelligence)",
			Description: "AI that excels at specific tasks",
			Examples:    []string{"Chess engines", "Language models", "Image recognition", "Recommendation systems"},
			Status:      "We are here now (2025)",
		},
		{
			Name:        "AGI (Artificial General Intelligence)",
			Description: "AI that matches human cognitive abilities across all domains",
			Examples:    []string{"Scientific reasoning", "Creative problem solving", "Social intelligence", "Learning any skill"},
			Status:      "Estimated: 2030s-2040s (uncertain)",
		},
		{
			Name:        "ASI (Artificial Superintelligence)",
			Description: "AI that far exceeds human intelligence in all areas",
			Examples:    []string{"Beyond human comprehension", "Solving complex global challenges", "Scientific breakthroughs", "Recursive self-improvement"},
			Status:      "Timeline: Highly uncertain, possibly soon after AGI",
		},
	}
}

// Challenge describes one open AI safety problem.
type Challenge struct {
	Name           string `json:"name" yaml:"name"`
	Description    string `json:"description" yaml:"description"`
	Example        string `json:"example" yaml:"example"`
	Difficulty     string `json:"difficulty" yaml:"difficulty"`
	ResearchStatus string `json:"research_status" yaml:"research_status"`
}

// Challenges returns the safety challenges covered by the guide.
func Challenges() []Challenge {
	return []Challenge{
		{
			Name:           "Alignment Problem",
			Description:    "Ensuring AI systems pursue intended goals",
			Example:        "An AI told to 'make humans happy' might forcibly drug everyone",
			Difficulty:     "Extremely Hard",
			ResearchStatus: "Active research area",
		},
		{
			Name:           "Value Learning",
			Description:    "Teaching AI systems human values and ethics",
			Example:        "How do we encode complex moral reasoning into AI?",
			Difficulty:     "Very Hard",
			ResearchStatus: "Foundational research",
		},
		{
			Name:           "Interpretability",
			Description:    "Understanding how AI systems make decisions",
			Example:        "Why did the AI recommend this medical treatment?",
			Difficulty:     "Hard",
			ResearchStatus: "Rapid progress",
		},
		{
			Name:           "Robustness",
			Description:    "AI systems behaving safely in new situations",
			Example:        "Self-driving car encountering unprecedented road conditions",
			Difficulty:     "Hard",
			ResearchStatus: "Industry focus",
		},
		{
			Name:           "Control Problem",
			Description:    "Maintaining human control over advanced AI systems",
			Example:        "How do we shut down a superintelligent AI if needed?",
			Difficulty:     "Unknown",
			ResearchStatus: "Theoretical research",
		},
	}
}

// Recommendation groups practical advice for one stakeholder.
type Recommendation struct {
	Stakeholder string   `json:"stakeholder" yaml:"stakeholder"`
	Items       []string `json:"items" yaml:"items"`
}

// Recommendations returns the per-stakeholder safety recommendations.
func Recommendations() []Recommendation {
	return []Recommendation{
		{
			Stakeholder: "Students & Researchers",
			Items: []string{
				"Study both AI capabilities and AI safety/alignment",
				"Contribute to interpretability and robustness research",
				"Participate in AI safety conferences and workshops",
				"Consider interdisciplinary approaches (psychology, philosophy, etc.)",
			},
		},
		{
			Stakeholder: "AI Companies",
			Items: []string{
				"Invest significantly in safety research alongside capability research",
				"Implement responsible disclosure practices for AI capabilities",
				"Collaborate with safety researchers and share findings",
				"Develop internal safety evaluation protocols",
			},
		},
		{
			Stakeholder: "Policymakers",
			Items: []string{
				"Fund AI safety research through government grants",
				"Develop adaptive regulatory frameworks for AI",
				"Foster international cooperation on AI governance",
				"Ensure diverse voices in AI policy discussions",
			},
		},
		{
			Stakeholder: "General Public",
			Items: []string{
				"Learn about AI capabilities and limitations",
				"Support organizations working on AI safety",
				"Engage in public discourse about AI's future",
				"Vote for leaders who take AI safety seriously",
			},
		},
	}
}

// ResourceCategory groups further-learning material under one heading.
type ResourceCategory struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// Resources returns the further-learning resource list.
func Resources() []ResourceCategory {
	return []ResourceCategory{
		{
			Name: "Essential Books",
			Items: []string{
				"Superintelligence by Nick Bostrom",
				"Human Compatible by Stuart Russell",
				"The Alignment Problem by Brian Christian",
				"Life 3.0 by Max Tegmark",
			},
		},
		{
			Name: "Organizations",
			Items: []string{
				"Anthropic (Constitutional AI research)",
				"OpenAI (AI safety and alignment)",
				"DeepMind Safety Team",
				"Future of Humanity Institute",
				"Machine Intelligence Research Institute",
				"Center for AI Safety",
			},
		},
		{
			Name: "Online Courses",
			Items: []string{
				"AI Safety Fundamentals (by various organizations)",
				"Superintelligence course (MIT)",
				"AI Ethics courses (Stanford, etc.)",
			},
		},
		{
			Name: "Regular Reading",
			Items: []string{
				"AI Alignment Forum",
				"LessWrong (AI safety posts)",
				"AI safety newsletters",
				"Research papers on arxiv.org",
			},
		},
	}
}
