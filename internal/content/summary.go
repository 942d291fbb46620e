// Package content defines the typed results produced by the generation
// pipelines: chapter summaries, mind maps, quizzes, lesson plans,
// presentations and SEL/STEM activities. All values are immutable once
// produced, except presentation slides when an image is attached.
package content

import "fmt"

// KeyPoint is a single teachable point inside a sub-topic.
type KeyPoint struct {
	Point       string `json:"point"`
	Description string `json:"description"`
}

// SubTopic groups key points under a named heading.
type SubTopic struct {
	Name      string     `json:"name"`
	KeyPoints []KeyPoint `json:"keyPoints"`
}

// MainTopic is a top-level section of a chapter summary.
type MainTopic struct {
	Name      string     `json:"name"`
	SubTopics []SubTopic `json:"subTopics"`
}

// SummaryStructure is the tree produced by the summary pipeline.
type SummaryStructure struct {
	ChapterName string      `json:"chapterName"`
	ClassLevel  int         `json:"classLevel"`
	MainTopics  []MainTopic `json:"mainTopics"`
}

// Validate checks the tree invariants: at least one main topic, every main
// topic has at least one sub-topic, every sub-topic at least one key point.
func (s *SummaryStructure) Validate() error {
	if len(s.MainTopics) == 0 {
		return fmt.Errorf("summary has no main topics")
	}
	for i, mt := range s.MainTopics {
		if mt.Name == "" {
			return fmt.Errorf("main topic %d has no name", i+1)
		}
		if len(mt.SubTopics) == 0 {
			return fmt.Errorf("main topic %q has no sub-topics", mt.Name)
		}
		for _, st := range mt.SubTopics {
			if len(st.KeyPoints) == 0 {
				return fmt.Errorf("sub-topic %q has no key points", st.Name)
			}
		}
	}
	return nil
}
