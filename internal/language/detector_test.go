package language

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/learnwithai/backend/internal/ai"
)

type stubInvoker struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubInvoker) Invoke(_ context.Context, promptText string) (ai.Result, error) {
	s.lastPrompt = promptText
	if s.err != nil {
		return ai.Result{}, s.err
	}
	return ai.Result{Provider: "mock", Text: s.reply}, nil
}

func TestDetect(t *testing.T) {
	inv := &stubInvoker{reply: "Hindi"}
	d := NewDetector(inv)

	got := d.Detect(t.Context(), "पानी का चक्र एक प्राकृतिक प्रक्रिया है।")
	if got.Language != "Hindi" || got.Defaulted {
		t.Errorf("Detect() = %+v, want Hindi not defaulted", got)
	}
}

func TestDetect_EmptySample(t *testing.T) {
	inv := &stubInvoker{reply: "should not be called"}
	d := NewDetector(inv)

	got := d.Detect(t.Context(), "   ")
	if got.Language != DefaultLanguage || !got.Defaulted {
		t.Errorf("Detect(empty) = %+v, want English default", got)
	}
	if inv.lastPrompt != "" {
		t.Error("empty sample still reached the provider")
	}
}

func TestDetect_ProvidersDown(t *testing.T) {
	inv := &stubInvoker{err: errors.New("both providers failed")}
	d := NewDetector(inv)

	got := d.Detect(t.Context(), "some chapter text")
	if got.Language != DefaultLanguage || !got.Defaulted {
		t.Errorf("Detect() = %+v, want English default on provider failure", got)
	}
	if got.Reason == "" {
		t.Error("defaulted detection carries no reason")
	}
}

func TestDetect_TruncatesSample(t *testing.T) {
	inv := &stubInvoker{reply: "English"}
	d := NewDetector(inv)

	long := strings.Repeat("word ", 400)
	d.Detect(t.Context(), long)

	if len([]rune(inv.lastPrompt)) > sampleLimit+200 {
		t.Errorf("prompt length %d runes, sample was not truncated", len([]rune(inv.lastPrompt)))
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hindi", "Hindi"},
		{"hindi", "Hindi"},
		{"HINDI.", "Hindi"},
		{"  marathi\nsecond line", "Marathi"},
		{"english", "English"},
		{"Tamil!", "Tamil"},
		{"bengali", "Bengali"},
		{"klingon", "Klingon"}, // unknown names pass through title-cased
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
