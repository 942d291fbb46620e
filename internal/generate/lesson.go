package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// LessonPlanRequest is the caller's input to the lesson plan pipeline.
type LessonPlanRequest struct {
	Board           string `json:"board"`
	ClassLevel      int    `json:"classLevel"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	TotalMinutes    int    `json:"totalMinutes"`
	DesiredLectures int    `json:"desiredLectures"`
	TeachingStyle   string `json:"teachingStyle"`
	Language        string `json:"language,omitempty"`
}

// lessonPayload is the wire shape the model returns.
type lessonPayload struct {
	Lectures      []content.Lecture `json:"lectures"`
	Homework      string            `json:"homework"`
	ParentMessage string            `json:"parentMessage"`
	TeachingPace  string            `json:"teachingPace"`
}

// GenerateLessonPlan produces a multi-lecture plan. The lecture count is
// re-checked on the parsed result and a mismatch is rejected outright; the
// prompt instruction alone carries no structural guarantee. Missing teach
// pack card fields are backfilled with empty strings because display code
// reads all six cards unconditionally.
func (s *Service) GenerateLessonPlan(ctx context.Context, req LessonPlanRequest) (*content.LessonPlan, error) {
	if req.DesiredLectures < 1 {
		return nil, fmt.Errorf("failed to generate lesson plan: desired lecture count must be at least 1")
	}

	lang := req.Language
	var defaulted bool
	if lang == "" {
		det := s.detector.Detect(ctx, req.Topic)
		lang, defaulted = det.Language, det.Defaulted
	}

	promptText := prompt.BuildLessonPlanPrompt(prompt.LessonPlanParams{
		Board:           req.Board,
		ClassLevel:      req.ClassLevel,
		Subject:         req.Subject,
		Topic:           req.Topic,
		TotalMinutes:    req.TotalMinutes,
		DesiredLectures: req.DesiredLectures,
		TeachingStyle:   req.TeachingStyle,
		Language:        lang,
	})

	result, err := s.invokers[FeatureLesson].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lesson plan: %w", err)
	}

	var payload lessonPayload
	if err := normalize.Normalize(result.Text, normalize.LessonPlanSchema, &payload); err != nil {
		return nil, fmt.Errorf("failed to generate lesson plan: %w", err)
	}

	if len(payload.Lectures) != req.DesiredLectures {
		return nil, fmt.Errorf("failed to generate lesson plan: %w", &ValidationError{
			Feature: FeatureLesson,
			Reason:  fmt.Sprintf("model produced %d lectures, requested %d", len(payload.Lectures), req.DesiredLectures),
		})
	}

	plan := &content.LessonPlan{
		ID:            s.newID(),
		Board:         req.Board,
		ClassLevel:    req.ClassLevel,
		Subject:       req.Subject,
		Topic:         req.Topic,
		TotalMinutes:  req.TotalMinutes,
		TotalLectures: req.DesiredLectures,
		Lectures:      payload.Lectures,
		Homework:      payload.Homework,
		ParentMessage: payload.ParentMessage,
		TeachingPace:  payload.TeachingPace,
		Language:      lang,
	}
	normalizeLectures(plan)

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate lesson plan: %w", &ValidationError{Feature: FeatureLesson, Reason: err.Error()})
	}

	slog.Info("lesson plan generated",
		"topic", req.Topic,
		"class", req.ClassLevel,
		"lectures", len(plan.Lectures),
		"language", lang,
		"defaulted_language", defaulted,
		"provider", result.Provider,
	)
	return plan, nil
}

// normalizeLectures fixes sequencing fields the model routinely gets
// wrong: lecture numbering, recap flags, and the final activity flag.
// Recap content the model wrote is kept.
func normalizeLectures(plan *content.LessonPlan) {
	n := len(plan.Lectures)
	for i := range plan.Lectures {
		lec := &plan.Lectures[i]
		lec.LectureNumber = i + 1
		lec.HasRecap = i > 0
		if i == 0 {
			lec.RecapContent = ""
		}
		lec.IsActivityLecture = i == n-1
	}
}
