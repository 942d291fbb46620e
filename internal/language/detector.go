// Package language detects the dominant natural language of input text
// through a short model call. Detection is best-effort: it never blocks a
// pipeline, it defaults to English instead of failing.
package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/learnwithai/backend/internal/ai"
)

// DefaultLanguage is returned whenever detection cannot run or fails.
const DefaultLanguage = "English"

// sampleLimit caps what is sent to the model; the opening of a chapter is
// enough to classify it.
const sampleLimit = 500

// Detection is the detector's result. Defaulted distinguishes a confident
// model answer from the safe fallback, with Reason explaining the default.
type Detection struct {
	Language  string
	Defaulted bool
	Reason    string
}

// Invoker is the slice of ai.Invoker the detector needs.
type Invoker interface {
	Invoke(ctx context.Context, promptText string) (ai.Result, error)
}

// Detector classifies text language via the provider chain.
type Detector struct {
	invoker Invoker
}

// NewDetector creates a detector backed by the given invoker.
func NewDetector(invoker Invoker) *Detector {
	return &Detector{invoker: invoker}
}

// Detect classifies the sample's language. Provider failure on both the
// primary and fallback paths yields the English default, never an error.
func (d *Detector) Detect(ctx context.Context, sample string) Detection {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return Detection{Language: DefaultLanguage, Defaulted: true, Reason: "empty sample"}
	}

	runes := []rune(sample)
	if len(runes) > sampleLimit {
		sample = string(runes[:sampleLimit])
	}

	promptText := fmt.Sprintf(
		"What language is the following text written in? Reply with ONLY the language name in English, one word if possible, nothing else.\n\nTEXT:\n%s",
		sample)

	result, err := d.invoker.Invoke(ctx, promptText)
	if err != nil {
		slog.Warn("language detection failed, defaulting", "error", err)
		return Detection{Language: DefaultLanguage, Defaulted: true, Reason: err.Error()}
	}

	name := CanonicalName(result.Text)
	if name == "" {
		return Detection{Language: DefaultLanguage, Defaulted: true, Reason: "unrecognized reply"}
	}
	return Detection{Language: name}
}

// Languages the app's users commonly teach in. The model's reply is
// matched against their English display names; anything else is kept
// as-is after title casing.
var knownTags = []language.Tag{
	language.MustParse("en"),
	language.MustParse("hi"),
	language.MustParse("mr"),
	language.MustParse("ta"),
	language.MustParse("te"),
	language.MustParse("kn"),
	language.MustParse("bn"),
	language.MustParse("gu"),
	language.MustParse("pa"),
	language.MustParse("ur"),
	language.MustParse("ml"),
	language.MustParse("es"),
	language.MustParse("fr"),
	language.MustParse("de"),
}

// CanonicalName normalizes a model reply like "hindi" or "Hindi." into a
// display name ("Hindi"). An empty reply canonicalizes to "".
func CanonicalName(reply string) string {
	reply = strings.TrimSpace(reply)
	if i := strings.IndexByte(reply, '\n'); i >= 0 {
		reply = reply[:i]
	}
	reply = strings.Trim(reply, ".,!\"' ")
	if reply == "" {
		return ""
	}

	namer := display.English.Tags()
	for _, tag := range knownTags {
		if strings.EqualFold(namer.Name(tag), reply) {
			return namer.Name(tag)
		}
	}
	return cases.Title(language.English).String(strings.ToLower(reply))
}
