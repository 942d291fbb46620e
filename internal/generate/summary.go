package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/normalize"
	"github.com/learnwithai/backend/internal/prompt"
)

// GenerateSummary produces a chapter summary tree. With empty chapterText
// it runs in topic-only mode: the model writes the content from the
// chapter name alone.
func (s *Service) GenerateSummary(ctx context.Context, chapterText string, classLevel int, chapterName string) (*content.SummaryStructure, error) {
	topicOnly := strings.TrimSpace(chapterText) == ""

	sample := chapterText
	if topicOnly {
		sample = chapterName
	}
	det := s.detector.Detect(ctx, sample)

	params := prompt.SummaryParams{
		ChapterName: chapterName,
		ChapterText: chapterText,
		ClassLevel:  classLevel,
		Language:    det.Language,
	}
	var promptText string
	if topicOnly {
		promptText = prompt.BuildTopicSummaryPrompt(params)
	} else {
		promptText = prompt.BuildSummaryPrompt(params)
	}

	result, err := s.invokers[FeatureSummary].Invoke(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	var summary content.SummaryStructure
	if err := normalize.Normalize(result.Text, normalize.SummarySchema, &summary); err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	// Caller-supplied identity wins over whatever the model echoed back.
	summary.ChapterName = chapterName
	summary.ClassLevel = classLevel

	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", &ValidationError{Feature: FeatureSummary, Reason: err.Error()})
	}

	slog.Info("summary generated",
		"chapter", chapterName,
		"class", classLevel,
		"topic_only", topicOnly,
		"language", det.Language,
		"defaulted_language", det.Defaulted,
		"provider", result.Provider,
	)
	return &summary, nil
}

// CompleteResult pairs a summary with its derived mind map.
type CompleteResult struct {
	Summary *content.SummaryStructure `json:"summary"`
	MindMap *content.MindMapData      `json:"mindMap"`
}

// GenerateComplete runs the summary pipeline and then the mind map
// pipeline. Strictly sequential: the mind map prompt embeds the summary's
// JSON, so there is nothing to parallelize.
func (s *Service) GenerateComplete(ctx context.Context, chapterText string, classLevel int, chapterName string) (*CompleteResult, error) {
	summary, err := s.GenerateSummary(ctx, chapterText, classLevel, chapterName)
	if err != nil {
		return nil, err
	}
	mindMap, err := s.GenerateMindMap(ctx, summary)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{Summary: summary, MindMap: mindMap}, nil
}

func summaryJSON(summary *content.SummaryStructure) string {
	b, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(b)
}
