package content

import (
	"encoding/json"
	"fmt"
	"time"
)

// Content type tags used in the saved-content envelope.
const (
	TypeSummary      = "summary"
	TypeMindMap      = "mindmap"
	TypeQuiz         = "quiz"
	TypeLessonPlan   = "lesson-plan"
	TypePresentation = "presentation"
	TypeActivity     = "activity"
)

// ContentMetadata carries the fields used for listing and filtering saved
// content without deserializing the full payload.
type ContentMetadata struct {
	ChapterName string    `json:"chapterName,omitempty"`
	ClassLevel  int       `json:"classLevel,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Board       string    `json:"board,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SavedContent is the opaque envelope persisted by the content store. Data
// is stored verbatim; the store never interprets it.
type SavedContent struct {
	Key      string          `json:"key,omitempty"`
	Type     string          `json:"type"`
	Metadata ContentMetadata `json:"metadata"`
	Data     json.RawMessage `json:"data"`
}

// Validate checks the envelope carries a known type tag and a payload.
func (c *SavedContent) Validate() error {
	switch c.Type {
	case TypeSummary, TypeMindMap, TypeQuiz, TypeLessonPlan, TypePresentation, TypeActivity:
	default:
		return fmt.Errorf("unknown content type %q", c.Type)
	}
	if len(c.Data) == 0 {
		return fmt.Errorf("content has no data")
	}
	return nil
}
