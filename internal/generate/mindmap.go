package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// GenerateMindMap derives a mind map from a generated summary. This is a
// separate model call, not a structural transformation: the detected
// language comes from the summary's own text so the map matches it.
func (s *Service) GenerateMindMap(ctx context.Context, summary *content.SummaryStructure) (*content.MindMapData, error) {
	sample := summary.ChapterName
	if len(summary.MainTopics) > 0 {
		sample = summary.MainTopics[0].Name
	}
	det := s.detector.Detect(ctx, sample)

	promptText := prompt.BuildMindMapPrompt(prompt.MindMapParams{
		ChapterName: summary.ChapterName,
		ClassLevel:  summary.ClassLevel,
		Language:    det.Language,
		SummaryJSON: summaryJSON(summary),
	})

	result, err := s.invokers[FeatureMindMap].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mind map: %w", err)
	}

	var mindMap content.MindMapData
	if err := normalize.Normalize(result.Text, normalize.MindMapSchema, &mindMap); err != nil {
		return nil, fmt.Errorf("failed to generate mind map: %w", err)
	}

	if err := mindMap.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate mind map: %w", &ValidationError{Feature: FeatureMindMap, Reason: err.Error()})
	}

	slog.Info("mind map generated",
		"chapter", summary.ChapterName,
		"nodes", mindMap.NodeCount(),
		"provider", result.Provider,
	)
	return &mindMap, nil
}
