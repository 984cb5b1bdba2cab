package llm

import (
	"encoding/json"
	"strings"

	"github.com/codeboxhq/codebox/internal/model"
)

// anthropicEnvelope is the Anthropic messages response shape. Only the fields
// needed for text extraction are declared.
type anthropicEnvelope struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// openAIEnvelope is the OpenAI chat completions response shape.
type openAIEnvelope struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// coerce turns a raw provider response body into a recognition result.
// fallbackText (the original input) is substituted whenever the model's code
// field is empty, so the result's code is never empty unless the input was.
func coerce(body []byte, provider model.ProviderKind, fallbackText string) (model.RecognitionResult, error) {
	text, err := envelopeText(body, provider)
	if err != nil {
		return model.RecognitionResult{}, err
	}

	extracted := extractJSON(text)

	var payload map[string]any
	if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
		return model.RecognitionResult{}, &MalformedResponseError{Reason: "model output is not a JSON object"}
	}

	code := strings.TrimSpace(stringField(payload, "code"))
	if code == "" {
		code = fallbackText
	}

	return model.RecognitionResult{
		Category:       model.ParseCategory(stringField(payload, "type")),
		Code:           code,
		Platform:       stringField(payload, "platform"),
		StationName:    stringField(payload, "stationName"),
		StationAddress: stringField(payload, "stationAddress"),
	}, nil
}

// envelopeText pulls the model's generated text out of the provider envelope.
// A missing field resolves to an empty string; only a body that is not JSON
// at all is an error.
func envelopeText(body []byte, provider model.ProviderKind) (string, error) {
	if provider == model.ProviderAnthropic {
		var envelope anthropicEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return "", &MalformedResponseError{Reason: "provider envelope is not JSON"}
		}
		if len(envelope.Content) == 0 {
			return "", nil
		}
		return envelope.Content[0].Text, nil
	}

	var envelope openAIEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &MalformedResponseError{Reason: "provider envelope is not JSON"}
	}
	if len(envelope.Choices) == 0 {
		return "", nil
	}
	return envelope.Choices[0].Message.Content, nil
}

// extractJSON locates a JSON object inside free-form model output. Three
// stages, each a fallback for the previous: a ```json fenced block, the
// substring from the first '{' to the last '}', then the raw text unchanged.
// Unrelated braces in surrounding prose can defeat the middle stage; that is
// an accepted limitation of best-effort extraction.
func extractJSON(text string) string {
	if start := strings.Index(text, "```json\n"); start >= 0 {
		rest := text[start+len("```json\n"):]
		if end := strings.Index(rest, "\n```"); end >= 0 {
			return rest[:end]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	return text
}

// stringField returns the named field when it is a JSON string, else "".
func stringField(payload map[string]any, key string) string {
	if value, ok := payload[key].(string); ok {
		return value
	}
	return ""
}
