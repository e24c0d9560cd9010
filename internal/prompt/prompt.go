package prompt

import (
	"fmt"
	"strings"
)

// The heading and fence markers are contract surface: the response
// grammars match them verbatim, so changing them breaks extraction.
const (
	// TestResultsHeading is the literal heading the model is told to
	// put its test report under.
	TestResultsHeading = "### Test Results"

	// Fence delimits code blocks in both directions: prompts embed
	// source inside it and grammars strip it from suggestions.
	Fence = "```"
)

const executionTemplate = `You are a code execution and review assistant. Follow the numbered instructions exactly and nothing else.

1. Execute the following {language} code and report everything it prints to standard output. If execution fails, report the error output instead.

{fence}{language}
{code}
{fence}

{test_instructions}{review_step}. Review the code for correctness, clarity and idiomatic style, and briefly summarize your findings.

{suggest_step}. Only if the review warrants changes, provide an improved version of the complete code in a single fenced code block tagged {language}. Do not emit any other fenced code block.
`

const testInstructionsTemplate = `2. Run the unit tests below against the code and report the results under the exact heading "{heading}". Begin that section with a summary line "Passed: <passed>/<total>", followed by one line per test: "PASS: <test name>" or "FAIL: <test name>: <reason>".

{fence}{language}
{tests}
{fence}

`

const formatTemplate = `You are a code formatter. Reformat the following {language} code according to {style_guide}. Do not change its logic, names or behavior in any way.

{fence}{language}
{code}
{fence}

Return only the reformatted code in a single fenced code block tagged {language}, with no commentary before or after it.
`

const markdownReviewTemplate = `You are a technical writing reviewer. Review the following Markdown document for clarity, structure, grammar and tone.

{fence}markdown
{text}
{fence}

Return a single fenced code block tagged markdown containing an improved version of the document. Do not emit anything outside that block.
`

// styleGuides maps a language tag to the style guide the formatting
// prompt names. Unlisted languages fall back to a generic label.
var styleGuides = map[string]string{
	"python":     "PEP 8",
	"go":         "gofmt conventions",
	"javascript": "the Prettier default style",
	"typescript": "the Prettier default style",
	"rust":       "rustfmt conventions",
	"java":       "the Google Java Style Guide",
	"c":          "the LLVM coding standards",
	"cpp":        "the LLVM coding standards",
	"ruby":       "the community Ruby Style Guide",
}

// StyleGuide returns the style-guide label used in formatting prompts
// for the given language.
func StyleGuide(language string) string {
	if guide, ok := styleGuides[language]; ok {
		return guide
	}
	return fmt.Sprintf("the most widely accepted community style guide for %s", language)
}

// ExecutionPrompt builds the execute-and-review instruction string.
// When tests is blank the test instructions are omitted entirely, not
// left as an empty section, so the remaining steps renumber.
func ExecutionPrompt(language, code, tests string) string {
	hasTests := strings.TrimSpace(tests) != ""

	testInstructions := ""
	reviewStep, suggestStep := "2", "3"
	if hasTests {
		testInstructions = strings.NewReplacer(
			"{heading}", TestResultsHeading,
			"{fence}", Fence,
			"{language}", language,
			"{tests}", tests,
		).Replace(testInstructionsTemplate)
		reviewStep, suggestStep = "3", "4"
	}

	return strings.NewReplacer(
		"{test_instructions}", testInstructions,
		"{review_step}", reviewStep,
		"{suggest_step}", suggestStep,
		"{fence}", Fence,
		"{language}", language,
		"{code}", code,
	).Replace(executionTemplate)
}

// FormatPrompt builds the reformat-only instruction string.
func FormatPrompt(language, code string) string {
	return strings.NewReplacer(
		"{style_guide}", StyleGuide(language),
		"{fence}", Fence,
		"{language}", language,
		"{code}", code,
	).Replace(formatTemplate)
}

// MarkdownReviewPrompt builds the prose-review instruction string.
func MarkdownReviewPrompt(text string) string {
	return strings.NewReplacer(
		"{fence}", Fence,
		"{text}", text,
	).Replace(markdownReviewTemplate)
}
