package detect

import "testing"

const goSnippet = `package main

import "fmt"

func main() {
	fmt.Println("hello world")
}
`

func TestDetectIgnoresShortInput(t *testing.T) {
	d := Detector{MinChars: 20, Confidence: 0}

	// Unmistakably Go, but under the length floor.
	if lang, ok := d.Detect("func main() {}"); ok {
		t.Errorf("short input should never detect, got %q", lang)
	}
	if _, ok := d.Detect("   \n\t  "); ok {
		t.Error("whitespace-only input should never detect")
	}
}

func TestDetectRespectsConfidenceThreshold(t *testing.T) {
	// Analyser scores are capped at 1.0, so an impossible threshold
	// must suppress every result.
	d := Detector{MinChars: 20, Confidence: 1.5}
	if lang, ok := d.Detect(goSnippet); ok {
		t.Errorf("threshold above 1.0 should suppress detection, got %q", lang)
	}
}

func TestDetectOnlySuggestsSelectorLanguages(t *testing.T) {
	d := Detector{MinChars: 20, Confidence: 0.01}

	lang, ok := d.Detect(goSnippet)
	if !ok {
		// The chroma analysers are heuristic; no answer is acceptable,
		// a wrong answer is not.
		return
	}
	if lang != "go" {
		t.Errorf("detected %q for a Go snippet", lang)
	}
}
