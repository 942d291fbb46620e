// Package prompt builds the instruction text sent to the text-generation
// providers. Builders are pure functions of their parameters; content
// depth scales with class level through fixed band tables.
package prompt

// CountRange bounds how many items of a kind the model may produce.
type CountRange struct {
	Min int
	Max int
}

// DepthConfig controls structure size and vocabulary for a class level.
type DepthConfig struct {
	MainTopics    CountRange
	SubTopics     CountRange
	KeyPoints     CountRange
	LanguageLevel string
	Terminology   string
}

// DepthForClass returns the depth configuration for a class level using
// three bands: classes 1-3, 4-6 and 7 upward. Counts never decrease as
// the band increases.
func DepthForClass(level int) DepthConfig {
	switch {
	case level <= 3:
		return DepthConfig{
			MainTopics:    CountRange{2, 3},
			SubTopics:     CountRange{1, 2},
			KeyPoints:     CountRange{1, 2},
			LanguageLevel: "very simple sentences of 8-10 words",
			Terminology:   "everyday words only, no technical terms",
		}
	case level <= 6:
		return DepthConfig{
			MainTopics:    CountRange{3, 4},
			SubTopics:     CountRange{2, 3},
			KeyPoints:     CountRange{2, 3},
			LanguageLevel: "clear sentences with moderate detail",
			Terminology:   "basic subject terms, each introduced with a simple definition",
		}
	default:
		return DepthConfig{
			MainTopics:    CountRange{4, 6},
			SubTopics:     CountRange{3, 4},
			KeyPoints:     CountRange{3, 4},
			LanguageLevel: "detailed, well-structured explanations",
			Terminology:   "standard subject terminology with precise definitions",
		}
	}
}

// QuestionPlan fixes the quiz composition for a class level.
type QuestionPlan struct {
	Total          int
	MultipleChoice int
	TrueFalse      int
	ShortAnswer    int
}

// QuestionPlanForClass returns the deterministic question counts per band:
// classes 1-3 get 6 questions, 4-6 get 10, 7 upward get 14.
func QuestionPlanForClass(level int) QuestionPlan {
	switch {
	case level <= 3:
		return QuestionPlan{Total: 6, MultipleChoice: 3, TrueFalse: 2, ShortAnswer: 1}
	case level <= 6:
		return QuestionPlan{Total: 10, MultipleChoice: 5, TrueFalse: 3, ShortAnswer: 2}
	default:
		return QuestionPlan{Total: 14, MultipleChoice: 7, TrueFalse: 4, ShortAnswer: 3}
	}
}

// ActivityGuidance controls vocabulary and scope for SEL/STEM activities.
// Activities use their own four-band table (classes 1-2, 3-5, 6-8, 9+),
// separate from the three-band tables above.
type ActivityGuidance struct {
	Vocabulary      string
	DurationMinutes CountRange
	StepCount       CountRange
	Complexity      string
}

// ActivityGuidanceForClass returns the four-band activity guidance.
func ActivityGuidanceForClass(level int) ActivityGuidance {
	switch {
	case level <= 2:
		return ActivityGuidance{
			Vocabulary:      "playful, concrete words a 6-7 year old knows",
			DurationMinutes: CountRange{10, 20},
			StepCount:       CountRange{3, 4},
			Complexity:      "single-step actions with lots of movement and drawing",
		}
	case level <= 5:
		return ActivityGuidance{
			Vocabulary:      "simple words with one or two new terms explained",
			DurationMinutes: CountRange{20, 30},
			StepCount:       CountRange{4, 6},
			Complexity:      "short sequences the class can follow together",
		}
	case level <= 8:
		return ActivityGuidance{
			Vocabulary:      "grade-appropriate subject vocabulary",
			DurationMinutes: CountRange{30, 45},
			StepCount:       CountRange{5, 7},
			Complexity:      "multi-step investigation with recorded observations",
		}
	default:
		return ActivityGuidance{
			Vocabulary:      "full subject terminology",
			DurationMinutes: CountRange{40, 60},
			StepCount:       CountRange{6, 8},
			Complexity:      "open-ended inquiry with analysis and presentation of results",
		}
	}
}
