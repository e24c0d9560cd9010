// Package detect guesses the language of an editor buffer using the
// chroma lexer analysers. It only ever suggests languages the
// playground's selector offers.
package detect

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"llmpad/pkg"
)

// chroma names its lexers for display; map the few that differ from
// the selector tags.
var nameOverrides = map[string]string{
	"c++": "cpp",
}

// Detector scores a buffer against every known lexer. MinChars guards
// against flapping on tiny inputs: below it no result is ever
// returned, whatever the confidence.
type Detector struct {
	MinChars   int
	Confidence float64
}

// Detect returns the best-scoring selector language for text, or false
// when the input is too short or nothing clears the confidence bar.
func (d Detector) Detect(text string) (string, bool) {
	if len(strings.TrimSpace(text)) < d.MinChars {
		return "", false
	}

	known := make(map[string]bool, len(pkg.Languages))
	for _, lang := range pkg.Languages {
		known[lang] = true
	}

	bestLang := ""
	bestScore := 0.0
	for _, lexer := range lexers.GlobalLexerRegistry.Lexers {
		analyser, ok := lexer.(chroma.Analyser)
		if !ok {
			continue
		}
		lang := strings.ToLower(lexer.Config().Name)
		if mapped, ok := nameOverrides[lang]; ok {
			lang = mapped
		}
		if !known[lang] {
			continue
		}
		if score := float64(analyser.AnalyseText(text)); score > bestScore {
			bestLang, bestScore = lang, score
		}
	}

	if bestScore < d.Confidence || bestLang == "" {
		return "", false
	}
	return bestLang, true
}
