package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/language"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// ActivityRequest is the caller's input to the SEL/STEM activity pipeline.
type ActivityRequest struct {
	ClassLevel   int    `json:"classLevel"`
	Subject      string `json:"subject"`
	ActivityType string `json:"activityType"`
	Language     string `json:"language,omitempty"`
}

// GenerateActivity produces a SEL/STEM classroom activity. Activities use
// their own four-band class guidance, separate from the three-band tables
// of the other pipelines.
func (s *Service) GenerateActivity(ctx context.Context, req ActivityRequest) (*content.SELSTEMActivity, error) {
	if req.ActivityType != string(content.SoloActivity) && req.ActivityType != string(content.GroupActivity) {
		return nil, fmt.Errorf("failed to generate activity: activity type must be %q or %q", content.SoloActivity, content.GroupActivity)
	}

	lang := req.Language
	if lang == "" {
		lang = language.DefaultLanguage
	}

	promptText := prompt.BuildActivityPrompt(prompt.ActivityParams{
		ClassLevel:   req.ClassLevel,
		Subject:      req.Subject,
		ActivityType: req.ActivityType,
		Language:     lang,
	})

	result, err := s.invokers[FeatureActivity].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity: %w", err)
	}

	var activity content.SELSTEMActivity
	if err := normalize.Normalize(result.Text, normalize.ActivitySchema, &activity); err != nil {
		return nil, fmt.Errorf("failed to generate activity: %w", err)
	}

	activity.ID = s.newID()
	activity.ClassLevel = req.ClassLevel
	activity.Subject = req.Subject
	activity.ActivityType = content.ActivityType(req.ActivityType)

	if err := activity.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate activity: %w", &ValidationError{Feature: FeatureActivity, Reason: err.Error()})
	}

	slog.Info("activity generated",
		"class", req.ClassLevel,
		"subject", req.Subject,
		"type", req.ActivityType,
		"provider", result.Provider,
	)
	return &activity, nil
}
