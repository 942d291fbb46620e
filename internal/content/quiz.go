package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// QuestionType discriminates the quiz question union.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	ShortAnswer    QuestionType = "short-answer"
)

// Answer holds either an option index (multiple choice) or answer text
// (true/false and short answer). The JSON form mirrors what the model
// returns: a number for multiple choice, a string otherwise.
type Answer struct {
	Index   int
	Text    string
	IsIndex bool
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsIndex {
		return json.Marshal(a.Index)
	}
	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		a.Index = n
		a.IsIndex = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("answer must be a number or a string: %w", err)
	}
	// A quoted number stays text here. Only the question type can tell a
	// multiple-choice index "2" apart from a short answer "56", so the
	// coercion happens in QuizQuestion.Validate.
	a.Text = s
	return nil
}

// QuizQuestion is one question in a generated quiz.
type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer Answer       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
}

// Validate enforces the per-type shape rules.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	switch q.Type {
	case MultipleChoice:
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple-choice question needs exactly 4 options, got %d", len(q.Options))
		}
		// Some models return the option index as a quoted number.
		if !q.CorrectAnswer.IsIndex {
			if n, err := strconv.Atoi(strings.TrimSpace(q.CorrectAnswer.Text)); err == nil {
				q.CorrectAnswer = Answer{Index: n, IsIndex: true}
			}
		}
		if !q.CorrectAnswer.IsIndex || q.CorrectAnswer.Index < 0 || q.CorrectAnswer.Index > 3 {
			return fmt.Errorf("multiple-choice answer must be an index in [0,3]")
		}
	case TrueFalse:
		if q.CorrectAnswer.IsIndex || (q.CorrectAnswer.Text != "true" && q.CorrectAnswer.Text != "false") {
			return fmt.Errorf("true-false answer must be %q or %q", "true", "false")
		}
	case ShortAnswer:
		if q.CorrectAnswer.IsIndex || q.CorrectAnswer.Text == "" {
			return fmt.Errorf("short-answer question needs a non-empty answer string")
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}

// Quiz is a generated set of questions for a chapter.
type Quiz struct {
	ID          string         `json:"id"`
	ChapterName string         `json:"chapterName"`
	ClassLevel  int            `json:"classLevel"`
	Questions   []QuizQuestion `json:"questions"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// Validate checks every question's shape.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
