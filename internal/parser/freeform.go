package parser

import (
	"strings"

	"github.com/bytedance/sonic"

	"llmpad/pkg"
)

// JSONGrammar handles the freeform backend: the reply body is expected
// to be a JSON object with stdout/stderr/suggestion/testResults keys.
// Missing keys default to empty strings. Models that wrap the object
// in prose get one more chance via fenced-block extraction before the
// grammar gives up and returns an empty response.
type JSONGrammar struct{}

func (JSONGrammar) Parse(reply pkg.Reply, language string) pkg.ExecutionResponse {
	text := strings.TrimSpace(reply.Text)

	if out, ok := decodeResponse(text); ok {
		return out
	}
	if body, ok := ExtractFence(text, "json"); ok {
		if out, ok := decodeResponse(body); ok {
			return out
		}
	}
	if body, ok := ExtractFence(text, ""); ok {
		if out, ok := decodeResponse(body); ok {
			return out
		}
	}
	return pkg.ExecutionResponse{}
}

func decodeResponse(body string) (pkg.ExecutionResponse, bool) {
	var out pkg.ExecutionResponse
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") {
		return out, false
	}
	if err := sonic.UnmarshalString(body, &out); err != nil {
		return pkg.ExecutionResponse{}, false
	}
	return out, true
}
