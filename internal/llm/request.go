package llm

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/codeboxhq/codebox/internal/model"
)

// maxOutputTokens caps the model's reply regardless of provider.
const maxOutputTokens = 512

const anthropicVersion = "2023-06-01"

// request is a fully built provider request, ready for transport.
type request struct {
	Headers map[string]string
	Body    map[string]any
	URL     string
}

// buildRequest assembles the endpoint, headers, and JSON body for one
// recognition call against the given backend.
func buildRequest(input model.Input, backend model.Backend) (request, error) {
	base := strings.TrimSpace(backend.BaseURL)
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return request{}, fmt.Errorf("backend %q has no base URL", backend.Name)
	}

	req := request{
		Headers: map[string]string{"Content-Type": "application/json"},
	}

	if backend.Provider == model.ProviderAnthropic {
		req.URL = base + "/v1/messages"
		req.Headers["x-api-key"] = backend.APIKey
		req.Headers["anthropic-version"] = anthropicVersion
	} else {
		req.URL = base + "/chat/completions"
		req.Headers["Authorization"] = "Bearer " + backend.APIKey
	}

	req.Body = map[string]any{
		"model":      backend.Model,
		"messages":   []map[string]any{{"role": "user", "content": messageContent(input, backend.Provider)}},
		"max_tokens": maxOutputTokens,
	}

	return req, nil
}

// messageContent builds the user message content: a plain prompt string for
// text input, or the provider's multimodal content-part list for image input.
func messageContent(input model.Input, provider model.ProviderKind) any {
	if !input.IsImage() {
		return extractionPrompt(input.Text)
	}

	mimeType := input.ImageMIME
	if mimeType == "" {
		mimeType = "image/png"
	}
	encoded := base64.StdEncoding.EncodeToString(input.Image)

	if provider == model.ProviderAnthropic {
		return []map[string]any{
			{
				"type": "image",
				"source": map[string]any{
					"type":       "base64",
					"media_type": mimeType,
					"data":       encoded,
				},
			},
			{"type": "text", "text": imageExtractionPrompt()},
		}
	}

	return []map[string]any{
		{"type": "text", "text": imageExtractionPrompt()},
		{
			"type": "image_url",
			"image_url": map[string]any{
				"url": fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
			},
		},
	}
}
