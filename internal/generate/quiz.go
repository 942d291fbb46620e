package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// quizPayload is the wire shape the model returns.
type quizPayload struct {
	Questions []content.QuizQuestion `json:"questions"`
}

// GenerateQuiz builds a quiz from a generated summary. An empty lang
// triggers detection from the summary's first main topic.
func (s *Service) GenerateQuiz(ctx context.Context, summary *content.SummaryStructure, subject, lang string) (*content.Quiz, error) {
	if lang == "" {
		sample := summary.ChapterName
		if len(summary.MainTopics) > 0 {
			sample = summary.MainTopics[0].Name
		}
		lang = s.detector.Detect(ctx, sample).Language
	}

	promptText := prompt.BuildQuizPrompt(prompt.QuizParams{
		ChapterName: summary.ChapterName,
		ClassLevel:  summary.ClassLevel,
		Subject:     subject,
		Language:    lang,
		SummaryJSON: summaryJSON(summary),
	})
	return s.runQuiz(ctx, promptText, summary.ChapterName, summary.ClassLevel)
}

// GenerateQuizFromChapter builds a quiz straight from raw chapter text,
// skipping the summary step.
func (s *Service) GenerateQuizFromChapter(ctx context.Context, chapterText, chapterName string, classLevel int, subject string) (*content.Quiz, error) {
	det := s.detector.Detect(ctx, chapterText)

	promptText := prompt.BuildChapterQuizPrompt(prompt.QuizParams{
		ChapterName: chapterName,
		ClassLevel:  classLevel,
		Subject:     subject,
		Language:    det.Language,
		ChapterText: chapterText,
	})
	return s.runQuiz(ctx, promptText, chapterName, classLevel)
}

func (s *Service) runQuiz(ctx context.Context, promptText, chapterName string, classLevel int) (*content.Quiz, error) {
	result, err := s.invokers[FeatureQuiz].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	var payload quizPayload
	if err := normalize.Normalize(result.Text, normalize.QuizSchema, &payload); err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	quiz := &content.Quiz{
		ID:          s.newID(),
		ChapterName: chapterName,
		ClassLevel:  classLevel,
		Questions:   payload.Questions,
		GeneratedAt: s.now(),
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}

	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", &ValidationError{Feature: FeatureQuiz, Reason: err.Error()})
	}

	// The count instruction lives only in the prompt; a short quiz is
	// still usable, so log instead of rejecting.
	if plan := prompt.QuestionPlanForClass(classLevel); len(quiz.Questions) != plan.Total {
		slog.Warn("quiz question count differs from plan",
			"chapter", chapterName,
			"got", len(quiz.Questions),
			"want", plan.Total,
		)
	}

	slog.Info("quiz generated",
		"chapter", chapterName,
		"class", classLevel,
		"questions", len(quiz.Questions),
		"provider", result.Provider,
	)
	return quiz, nil
}
