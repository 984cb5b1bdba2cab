package llm

import (
	"encoding/json"
	"testing"

	"github.com/codeboxhq/codebox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAIBody wraps model output text in an OpenAI chat completions envelope.
func openAIBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

// anthropicBody wraps model output text in an Anthropic messages envelope.
func anthropicBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": content},
		},
	})
	require.NoError(t, err)
	return body
}

func TestCoerce(t *testing.T) {
	cleanJSON := `{"type":"取件码","code":"AB1234","platform":"丰巢","stationName":"小区东门驿站","stationAddress":"幸福路12号"}`

	tests := []struct {
		name     string
		content  string
		fallback string
		want     model.RecognitionResult
	}{
		{
			name:    "clean JSON object",
			content: cleanJSON,
			want: model.RecognitionResult{
				Category:       model.CategoryPickup,
				Code:           "AB1234",
				Platform:       "丰巢",
				StationName:    "小区东门驿站",
				StationAddress: "幸福路12号",
			},
		},
		{
			name:    "JSON in fenced code block",
			content: "```json\n" + cleanJSON + "\n```",
			want: model.RecognitionResult{
				Category:       model.CategoryPickup,
				Code:           "AB1234",
				Platform:       "丰巢",
				StationName:    "小区东门驿站",
				StationAddress: "幸福路12号",
			},
		},
		{
			name:    "JSON bare in surrounding prose",
			content: "好的，提取结果如下：" + cleanJSON + " 希望对你有帮助。",
			want: model.RecognitionResult{
				Category:       model.CategoryPickup,
				Code:           "AB1234",
				Platform:       "丰巢",
				StationName:    "小区东门驿站",
				StationAddress: "幸福路12号",
			},
		},
		{
			name:     "empty code falls back to original text",
			content:  "```json\n{\"type\":\"验证码\",\"code\":\"\"}\n```",
			fallback: "原文本",
			want: model.RecognitionResult{
				Category: model.CategoryVerification,
				Code:     "原文本",
			},
		},
		{
			name:     "whitespace code falls back to original text",
			content:  `{"type":"验证码","code":"   "}`,
			fallback: "原文本",
			want: model.RecognitionResult{
				Category: model.CategoryVerification,
				Code:     "原文本",
			},
		},
		{
			name:     "unknown type defaults to other",
			content:  `{"type":"快递单号","code":"SF123456"}`,
			fallback: "x",
			want: model.RecognitionResult{
				Category: model.CategoryOther,
				Code:     "SF123456",
			},
		},
		{
			name:     "missing type defaults to other",
			content:  `{"code":"9981"}`,
			fallback: "x",
			want: model.RecognitionResult{
				Category: model.CategoryOther,
				Code:     "9981",
			},
		},
		{
			name:     "null optional fields are absent",
			content:  `{"type":"验证码","code":"583920","platform":null,"stationName":null}`,
			fallback: "x",
			want: model.RecognitionResult{
				Category: model.CategoryVerification,
				Code:     "583920",
			},
		},
		{
			name:     "non-string optional fields are absent",
			content:  `{"type":"取件码","code":"AB1234","platform":42,"stationName":["x"]}`,
			fallback: "x",
			want: model.RecognitionResult{
				Category: model.CategoryPickup,
				Code:     "AB1234",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" openai", func(t *testing.T) {
			got, err := coerce(openAIBody(t, tt.content), model.ProviderOpenAI, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
		t.Run(tt.name+" anthropic", func(t *testing.T) {
			got, err := coerce(anthropicBody(t, tt.content), model.ProviderAnthropic, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceMalformed(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		provider model.ProviderKind
	}{
		{
			name:     "envelope is not JSON",
			body:     []byte("upstream proxy error"),
			provider: model.ProviderOpenAI,
		},
		{
			name:     "model output is prose without JSON",
			body:     openAIBody(t, "抱歉，我无法提取任何信息。"),
			provider: model.ProviderOpenAI,
		},
		{
			name:     "model output is a bare value",
			body:     anthropicBody(t, "583920"),
			provider: model.ProviderAnthropic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coerce(tt.body, tt.provider, "fallback")
			require.Error(t, err)
			var malformed *MalformedResponseError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestCoerceEmptyEnvelope(t *testing.T) {
	// A missing envelope field extracts as empty text, and empty text carries
	// no JSON object, so coercion fails as malformed rather than panicking.
	_, err := coerce([]byte(`{"choices":[]}`), model.ProviderOpenAI, "x")
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)

	_, err = coerce([]byte(`{"content":[]}`), model.ProviderAnthropic, "x")
	require.ErrorAs(t, err, &malformed)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "already clean is untouched",
			text: `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced block wins over braces",
			text: "前言 ```json\n{\"a\":1}\n``` 后记 {无关}",
			want: `{"a":1}`,
		},
		{
			name: "unclosed fence falls through to braces",
			text: "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "first brace to last brace",
			text: `导语 {"a":{"b":2}} 结尾`,
			want: `{"a":{"b":2}}`,
		},
		{
			name: "no braces returns raw text",
			text: "没有任何对象",
			want: "没有任何对象",
		},
		{
			name: "closing brace before opening returns raw text",
			text: "} 之后才有 {",
			want: "} 之后才有 {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.text))
		})
	}
}
