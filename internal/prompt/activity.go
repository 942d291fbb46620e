package prompt

import (
	"fmt"
	"strings"
)

// ActivityParams parameterizes the SEL/STEM activity builder.
type ActivityParams struct {
	ClassLevel   int
	Subject      string
	ActivityType string // "solo" or "group"
	Language     string
}

// BuildActivityPrompt builds the classroom activity prompt using the
// four-band activity guidance table.
func BuildActivityPrompt(p ActivityParams) string {
	g := ActivityGuidanceForClass(p.ClassLevel)
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Design one %s classroom activity for class %d that blends social-emotional learning with %s.\n\n",
		p.ActivityType, p.ClassLevel, p.Subject)
	fmt.Fprintf(&b, "Vocabulary: %s.\nComplexity: %s.\nDuration: %d-%d minutes.\nInstruction steps: %d-%d.\n\n",
		g.Vocabulary, g.Complexity,
		g.DurationMinutes.Min, g.DurationMinutes.Max,
		g.StepCount.Min, g.StepCount.Max)
	b.WriteString(`The activity must name 2-3 SEL focus skills (for example empathy, collaboration, self-awareness), connect the subject to the real world, and use only materials commonly found in a classroom.

`)
	fmt.Fprintf(&b, `Use exactly this JSON shape:
{
  "classLevel": %d,
  "subject": %q,
  "activityType": %q,
  "title": "...",
  "selFocus": ["..."],
  "realWorldConnection": "...",
  "materials": ["..."],
  "duration": "... minutes",
  "instructions": {"setup": "...", "steps": ["..."], "reflection": "..."},
  "learningObjectives": ["..."],
  "assessmentCriteria": ["..."],
  "extensions": ["..."]
}`, p.ClassLevel, p.Subject, p.ActivityType)
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}
