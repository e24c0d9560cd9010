// Package parser recovers structured execution fields from raw model
// replies. Each backend variant has its own grammar; both are driven
// purely by literal text contracts shared with the prompt builder, so
// they are tested against captured transcripts rather than live calls.
package parser

import (
	"regexp"
	"strings"
	"sync"

	"llmpad/internal/prompt"
)

var (
	anyFenceRe = regexp.MustCompile("(?s)" + prompt.Fence + `([a-zA-Z0-9_+-]*)[ \t]*\n(.*?)\n?` + prompt.Fence)

	fenceCache   = map[string]*regexp.Regexp{}
	fenceCacheMu sync.Mutex
)

// fenceRe returns the pattern matching a fenced block tagged with the
// given language.
func fenceRe(language string) *regexp.Regexp {
	fenceCacheMu.Lock()
	defer fenceCacheMu.Unlock()
	re, ok := fenceCache[language]
	if !ok {
		re = regexp.MustCompile("(?s)" + prompt.Fence + regexp.QuoteMeta(language) + `[ \t]*\n(.*?)\n?` + prompt.Fence)
		fenceCache[language] = re
	}
	return re
}

// ExtractFence returns the body of the first fenced code block tagged
// with language. An empty language matches any fence, tagged or not.
func ExtractFence(text, language string) (string, bool) {
	if language == "" {
		m := anyFenceRe.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return m[2], true
	}
	m := fenceRe(language).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripFence removes one wrapping fence pair (with optional language
// tag) from text, returning the inner body untouched. Text that is not
// a single fenced block comes back unchanged.
func StripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, prompt.Fence) || !strings.HasSuffix(trimmed, prompt.Fence) {
		return text
	}
	m := anyFenceRe.FindStringSubmatch(trimmed)
	if m == nil || len(m[0]) != len(trimmed) {
		return text
	}
	return m[2]
}
