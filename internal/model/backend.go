package model

// ProviderKind identifies the wire protocol a backend speaks.
type ProviderKind string

const (
	// ProviderOpenAI speaks the OpenAI chat completions protocol.
	ProviderOpenAI ProviderKind = "openai"
	// ProviderAnthropic speaks the Anthropic messages protocol.
	ProviderAnthropic ProviderKind = "anthropic"
	// ProviderCustom is any OpenAI-compatible endpoint with its own base URL.
	ProviderCustom ProviderKind = "custom"
)

// Backend describes a configured remote AI endpoint. It is passed by value
// into the recognition engine per call; the engine never persists or mutates
// it, and APIKey must never appear in logs or error messages.
type Backend struct {
	Name     string
	Provider ProviderKind
	Model    string
	APIKey   string
	BaseURL  string
}
