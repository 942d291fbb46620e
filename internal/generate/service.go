// Package generate implements the content generation pipelines. Each one
// composes language detection, prompt building, the dual-provider invoker
// and response normalization into one typed result; pipelines share no
// mutable state and are safe to run concurrently.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/learnwithai/backend/internal/ai"
	"github.com/learnwithai/backend/internal/language"
)

// Feature names a generation pipeline; each feature may run against its
// own provider credentials.
type Feature string

const (
	FeatureSummary  Feature = "summary"
	FeatureMindMap  Feature = "mindmap"
	FeatureQuiz     Feature = "quiz"
	FeatureLesson   Feature = "lesson"
	FeatureActivity Feature = "activity"

	// FeaturePresentation tags presentation errors. The pipeline has no
	// credentials of its own; it invokes through the lesson feature.
	FeaturePresentation Feature = "presentation"
)

// Features lists every generation feature.
var Features = []Feature{FeatureSummary, FeatureMindMap, FeatureQuiz, FeatureLesson, FeatureActivity}

// Invoker is the slice of ai.Invoker the pipelines need.
type Invoker interface {
	Invoke(ctx context.Context, promptText string) (ai.Result, error)
}

// Detector is the slice of language.Detector the pipelines need.
type Detector interface {
	Detect(ctx context.Context, sample string) language.Detection
}

// ValidationError reports a semantic failure in an otherwise
// well-formed model response.
type ValidationError struct {
	Feature Feature
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s output invalid: %s", e.Feature, e.Reason)
}

// Service runs the generation pipelines.
type Service struct {
	invokers map[Feature]Invoker
	detector Detector
	now      func() time.Time
	newID    func() string
}

// ServiceConfig holds Service dependencies. Every feature must have an
// invoker; missing credentials are a startup error, not a runtime one.
type ServiceConfig struct {
	Invokers map[Feature]Invoker
	Detector Detector
	Now      func() time.Time
	NewID    func() string
}

// NewService creates the generation service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Detector == nil {
		return nil, fmt.Errorf("detector is required")
	}
	for _, f := range Features {
		if cfg.Invokers[f] == nil {
			return nil, fmt.Errorf("no invoker configured for feature %q", f)
		}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Service{
		invokers: cfg.Invokers,
		detector: cfg.Detector,
		now:      now,
		newID:    newID,
	}, nil
}
