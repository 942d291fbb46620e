package prompt

import (
	"fmt"
	"strings"
)

// languageRule is the hard language constraint embedded at both the start
// and the end of every prompt. The repetition is deliberate: long prompts
// make models drift back to English, and a single instruction at the top
// is not enough to hold the output language.
func languageRule(lang string) string {
	return fmt.Sprintf(
		"CRITICAL LANGUAGE RULE: the output must be 100%% in %s. Do not translate to any other language. Do not mix languages. Every string value in the JSON must be in %s.",
		lang, lang)
}

// IsMathSubject reports whether the subject should get calculation-based
// questions. It fuzzy-matches "math" in English and the Hindi subject
// name.
func IsMathSubject(subject string) bool {
	s := strings.ToLower(subject)
	return strings.Contains(s, "math") || strings.Contains(subject, "गणित")
}

// jsonOnlyRule asks for bare JSON. Fence stripping downstream still
// handles models that ignore it.
const jsonOnlyRule = "Return ONLY valid JSON. No markdown, no code fences, no commentary before or after the JSON object."
