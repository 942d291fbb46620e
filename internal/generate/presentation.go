package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// PresentationRequest is the caller's input to the presentation pipeline.
// StartContent and ExplainContent come from the lecture's teach pack.
type PresentationRequest struct {
	LectureNumber  int    `json:"lectureNumber"`
	LectureTitle   string `json:"lectureTitle"`
	Topic          string `json:"topic"`
	ClassLevel     int    `json:"classLevel"`
	Language       string `json:"language,omitempty"`
	StartContent   string `json:"startContent"`
	ExplainContent string `json:"explainContent"`
}

// presentationPayload is the wire shape the model returns.
type presentationPayload struct {
	Slides []content.PPTSlide `json:"slides"`
}

// GeneratePresentation produces a slide deck for one lecture. The 8-10
// slide bound is a hard post-condition: a deck outside it is rejected with
// a descriptive error, never trimmed or padded. Slides start without
// images; the image client attaches them afterwards.
func (s *Service) GeneratePresentation(ctx context.Context, req PresentationRequest) (*content.LecturePresentation, error) {
	lang := req.Language
	if lang == "" {
		lang = s.detector.Detect(ctx, req.ExplainContent+"\n"+req.StartContent).Language
	}

	promptText := prompt.BuildPresentationPrompt(prompt.PresentationParams{
		LectureNumber:  req.LectureNumber,
		LectureTitle:   req.LectureTitle,
		Topic:          req.Topic,
		ClassLevel:     req.ClassLevel,
		Language:       lang,
		StartContent:   req.StartContent,
		ExplainContent: req.ExplainContent,
	})

	result, err := s.invokers[FeatureLesson].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presentation: %w", err)
	}

	var payload presentationPayload
	if err := normalize.Normalize(result.Text, normalize.PresentationSchema, &payload); err != nil {
		return nil, fmt.Errorf("failed to generate presentation: %w", err)
	}

	if n := len(payload.Slides); n < content.MinSlides || n > content.MaxSlides {
		return nil, fmt.Errorf("failed to generate presentation: %w", &ValidationError{
			Feature: FeaturePresentation,
			Reason:  fmt.Sprintf("model produced %d slides, expected between %d and %d", n, content.MinSlides, content.MaxSlides),
		})
	}

	pres := &content.LecturePresentation{
		ID:            s.newID(),
		LectureNumber: req.LectureNumber,
		Slides:        payload.Slides,
		TotalSlides:   len(payload.Slides),
	}
	for i := range pres.Slides {
		pres.Slides[i].SlideNumber = i + 1
		pres.Slides[i].ImageURL = ""
		pres.Slides[i].HasImage = false
	}

	if err := pres.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate presentation: %w", &ValidationError{Feature: FeaturePresentation, Reason: err.Error()})
	}

	slog.Info("presentation generated",
		"lecture", req.LectureNumber,
		"slides", pres.TotalSlides,
		"provider", result.Provider,
	)
	return pres, nil
}
