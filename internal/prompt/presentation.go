package prompt

import (
	"fmt"
	"strings"
)

// PresentationParams parameterizes the slide deck builder. StartContent
// and ExplainContent come from the lecture's teach pack cards.
type PresentationParams struct {
	LectureNumber  int
	LectureTitle   string
	Topic          string
	ClassLevel     int
	Language       string
	StartContent   string
	ExplainContent string
}

// BuildPresentationPrompt builds the slide deck prompt. The deck follows a
// fixed role skeleton: a title slide, hook slides derived from the start
// card, explanation slides derived from the explain card, then summary and
// practice slides.
func BuildPresentationPrompt(p PresentationParams) string {
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Create presentation slides for lecture %d (%q) on %q for class %d students.\n\n",
		p.LectureNumber, p.LectureTitle, p.Topic, p.ClassLevel)
	b.WriteString("Produce between 8 and 10 slides, no fewer and no more.\n\n")
	b.WriteString(`Slide roles, in order:
1. Title slide: lecture title and topic.
2-3. Hook slides built from the lesson opening below.
4-7. Explanation slides built from the core explanation below, one idea per slide.
8+. A summary slide and one or two practice/question slides.

Each slide has a short title, 3-5 bullet points of content, and an
"imagePrompt": a one-sentence English description of a simple, friendly
classroom illustration for the slide.

`)
	b.WriteString("LESSON OPENING:\n")
	b.WriteString(p.StartContent)
	b.WriteString("\n\nCORE EXPLANATION:\n")
	b.WriteString(p.ExplainContent)
	b.WriteString("\n\n")
	b.WriteString(`Use exactly this JSON shape:
{
  "slides": [
    {"slideNumber": 1, "title": "...", "content": "bullet one\nbullet two", "imagePrompt": "..."}
  ]
}`)
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}
