package prompt

import (
	"fmt"
	"strings"
)

// QuizParams parameterizes both quiz builders. Exactly one of SummaryJSON
// and ChapterText is set: the quiz is built either from an existing
// summary or straight from raw chapter text.
type QuizParams struct {
	ChapterName string
	ClassLevel  int
	Subject     string
	Language    string
	SummaryJSON string
	ChapterText string
}

// BuildQuizPrompt builds the quiz prompt from a generated summary.
func BuildQuizPrompt(p QuizParams) string {
	return buildQuizPrompt(p, "CHAPTER SUMMARY JSON:\n"+p.SummaryJSON)
}

// BuildChapterQuizPrompt builds the quiz prompt from raw chapter text.
func BuildChapterQuizPrompt(p QuizParams) string {
	return buildQuizPrompt(p, "CHAPTER TEXT:\n"+p.ChapterText)
}

func buildQuizPrompt(p QuizParams, source string) string {
	plan := QuestionPlanForClass(p.ClassLevel)
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Create a quiz on %q (subject: %s) for class %d students.\n\n", p.ChapterName, p.Subject, p.ClassLevel)
	fmt.Fprintf(&b, "Produce EXACTLY %d questions: %d multiple-choice, %d true-false, %d short-answer. Not one more, not one fewer.\n\n",
		plan.Total, plan.MultipleChoice, plan.TrueFalse, plan.ShortAnswer)

	if IsMathSubject(p.Subject) {
		writeMathPolicy(&b)
	} else {
		writeConceptPolicy(&b)
	}

	b.WriteString(`Use exactly this JSON shape:
{
  "questions": [
    {"id": "q1", "type": "multiple-choice", "question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0, "explanation": "..."},
    {"id": "q2", "type": "true-false", "question": "...", "correctAnswer": "true", "explanation": "..."},
    {"id": "q3", "type": "short-answer", "question": "...", "correctAnswer": "...", "explanation": "..."}
  ]
}
Rules: every multiple-choice question has exactly 4 options and "correctAnswer" is the option index 0-3. True-false answers are the string "true" or "false". Short answers are one or two words or a number.
`)
	b.WriteString("\n")
	b.WriteString(source)
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}

// Math gets calculation and word problems only; everything else gets
// conceptual questions. This is a hard binary switch, not a blend.
func writeMathPolicy(b *strings.Builder) {
	b.WriteString(`SUBJECT POLICY (mathematics): every question must require an actual calculation or the solving of a word problem. Purely definitional questions ("What is addition?") are FORBIDDEN.
Good examples:
- "Ravi has 24 mangoes and shares them equally among 6 friends. How many mangoes does each friend get?"
- "What is 7 x 8?"
Bad examples (do not produce):
- "What do we call the answer of a multiplication?"
- "Define a fraction."

`)
}

func writeConceptPolicy(b *strings.Builder) {
	b.WriteString(`SUBJECT POLICY: questions must test understanding, reasoning and application of the chapter's ideas, not rote recall of isolated facts.
Good examples:
- "Why do plants need sunlight to make food?"
- "What would happen to the water cycle if there were no evaporation?"
Bad examples (do not produce):
- "In which chapter does photosynthesis appear?"

`)
}
