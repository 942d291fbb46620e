package prompt

import (
	"fmt"
	"strings"
)

// SummaryParams parameterizes the chapter summary builders.
type SummaryParams struct {
	ChapterName string
	ChapterText string // empty in topic-only mode
	ClassLevel  int
	Language    string
}

// BuildSummaryPrompt builds the content-mode summary prompt: the model
// summarizes the supplied chapter text into the fixed topic tree.
func BuildSummaryPrompt(p SummaryParams) string {
	d := DepthForClass(p.ClassLevel)
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You are an experienced school teacher preparing a chapter summary for class %d students.\n", p.ClassLevel)
	fmt.Fprintf(&b, "Chapter name: %s\n\n", p.ChapterName)
	b.WriteString("Summarize the chapter text below into a structured topic tree.\n\n")
	writeSummaryShape(&b, p.ChapterName, p.ClassLevel, d)
	fmt.Fprintf(&b, "\nWriting style: %s. Vocabulary: %s.\n", d.LanguageLevel, d.Terminology)
	b.WriteString("\nCHAPTER TEXT:\n")
	b.WriteString(p.ChapterText)
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}

// BuildTopicSummaryPrompt builds the topic-only summary prompt, used when
// the teacher gives just a chapter name and the model writes the content
// from its own knowledge.
func BuildTopicSummaryPrompt(p SummaryParams) string {
	d := DepthForClass(p.ClassLevel)
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You are an experienced school teacher preparing a chapter summary for class %d students.\n", p.ClassLevel)
	fmt.Fprintf(&b, "Topic: %s\n\n", p.ChapterName)
	fmt.Fprintf(&b, "Write a complete, curriculum-appropriate summary of %q for class %d from your own knowledge.\n\n", p.ChapterName, p.ClassLevel)
	writeSummaryShape(&b, p.ChapterName, p.ClassLevel, d)
	fmt.Fprintf(&b, "\nWriting style: %s. Vocabulary: %s.\n\n", d.LanguageLevel, d.Terminology)
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}

func writeSummaryShape(b *strings.Builder, chapterName string, classLevel int, d DepthConfig) {
	fmt.Fprintf(b, "Produce %d-%d main topics. Each main topic has %d-%d sub-topics. Each sub-topic has %d-%d key points.\n",
		d.MainTopics.Min, d.MainTopics.Max,
		d.SubTopics.Min, d.SubTopics.Max,
		d.KeyPoints.Min, d.KeyPoints.Max)
	b.WriteString("Every key point has a short \"point\" phrase and a one or two sentence \"description\".\n\n")
	b.WriteString("Use exactly this JSON shape:\n")
	fmt.Fprintf(b, `{
  "chapterName": %q,
  "classLevel": %d,
  "mainTopics": [
    {
      "name": "...",
      "subTopics": [
        {
          "name": "...",
          "keyPoints": [
            {"point": "...", "description": "..."}
          ]
        }
      ]
    }
  ]
}`, chapterName, classLevel)
	b.WriteString("\n")
}
