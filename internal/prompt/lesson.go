package prompt

import (
	"fmt"
	"strings"
)

// LessonPlanParams parameterizes the lesson plan builder.
type LessonPlanParams struct {
	Board           string
	ClassLevel      int
	Subject         string
	Topic           string
	TotalMinutes    int
	DesiredLectures int
	TeachingStyle   string // e.g. "nep", "traditional"
	Language        string
}

// BuildLessonPlanPrompt builds the multi-lecture plan prompt. The lecture
// count is repeated imperatively several times because the provider offers
// no structural output guarantee; the pipeline re-checks the count on the
// parsed result regardless.
func BuildLessonPlanPrompt(p LessonPlanParams) string {
	d := DepthForClass(p.ClassLevel)
	perLecture := 0
	if p.DesiredLectures > 0 {
		perLecture = p.TotalMinutes / p.DesiredLectures
	}

	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Plan how to teach %q (%s, class %d, %s board) across multiple lectures.\n\n",
		p.Topic, p.Subject, p.ClassLevel, p.Board)
	fmt.Fprintf(&b, "Total teaching time: %d minutes. Teaching style: %s.\n\n", p.TotalMinutes, p.TeachingStyle)
	fmt.Fprintf(&b, "Produce EXACTLY %d lectures. The \"lectures\" array must contain EXACTLY %d entries. Do not merge lectures, do not add extra lectures: EXACTLY %d.\n",
		p.DesiredLectures, p.DesiredLectures, p.DesiredLectures)
	fmt.Fprintf(&b, "Each lecture is roughly %d minutes and the durations must add up to about %d minutes.\n\n", perLecture, p.TotalMinutes)

	b.WriteString(`Lecture sequencing rules:
- Lecture 1 has "hasRecap": false and no recapContent.
- Every later lecture has "hasRecap": true with a 2-3 sentence recapContent of the previous lecture.
`)
	fmt.Fprintf(&b, "- Lecture %d is the final one: set \"isActivityLecture\": true and make it recap and synthesize the whole chapter through a class activity.\n\n", p.DesiredLectures)

	b.WriteString(`Each lecture carries a six-card teach pack:
- todaysPlan: one-line agenda for the lecture
- start: a hook or question to open the class
- explain: the core explanation, step by step
- do: a hands-on or written exercise
- talk: a discussion prompt for pairs or the class
- check: a quick comprehension check
All six fields are required in every lecture.

`)
	fmt.Fprintf(&b, "Pitch the content at this level: %s. Vocabulary: %s.\n\n", d.LanguageLevel, d.Terminology)

	fmt.Fprintf(&b, `Use exactly this JSON shape:
{
  "board": %q,
  "classLevel": %d,
  "subject": %q,
  "topic": %q,
  "totalMinutes": %d,
  "totalLectures": %d,
  "lectures": [
    {
      "lectureNumber": 1,
      "title": "...",
      "duration": %d,
      "topics": ["..."],
      "complexity": "...",
      "hasRecap": false,
      "teachPackCards": {"todaysPlan": "...", "start": "...", "explain": "...", "do": "...", "talk": "...", "check": "..."},
      "isActivityLecture": false
    }
  ],
  "homework": "...",
  "parentMessage": "...",
  "teachingPace": "..."
}`, p.Board, p.ClassLevel, p.Subject, p.Topic, p.TotalMinutes, p.DesiredLectures, perLecture)
	fmt.Fprintf(&b, "\n\nRemember: EXACTLY %d lectures.\n\n", p.DesiredLectures)
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}
