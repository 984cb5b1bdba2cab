package config

import (
	"fmt"
	"strings"

	"github.com/codeboxhq/codebox/internal/model"
	"github.com/spf13/viper"
)

// backendEntry mirrors one element of the `backends` config list.
type backendEntry struct {
	Name     string `mapstructure:"name"`
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

// defaultBaseURLs per provider, applied when a backend omits base_url.
var defaultBaseURLs = map[model.ProviderKind]string{
	model.ProviderOpenAI:    "https://api.openai.com/v1",
	model.ProviderAnthropic: "https://api.anthropic.com",
}

// Backends returns all configured AI backends.
func Backends() ([]model.Backend, error) {
	var entries []backendEntry
	if err := viper.UnmarshalKey("backends", &entries); err != nil {
		return nil, fmt.Errorf("failed to parse backends config: %w", err)
	}

	backends := make([]model.Backend, 0, len(entries))
	for _, entry := range entries {
		provider, err := parseProvider(entry.Provider)
		if err != nil {
			return nil, fmt.Errorf("backend %q: %w", entry.Name, err)
		}
		baseURL := entry.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURLs[provider]
		}
		backends = append(backends, model.Backend{
			Name:     entry.Name,
			Provider: provider,
			Model:    entry.Model,
			APIKey:   entry.APIKey,
			BaseURL:  baseURL,
		})
	}
	return backends, nil
}

// FindBackend looks up a configured backend by name.
func FindBackend(name string) (*model.Backend, error) {
	backends, err := Backends()
	if err != nil {
		return nil, err
	}
	for i := range backends {
		if backends[i].Name == name {
			return &backends[i], nil
		}
	}
	return nil, fmt.Errorf("backend %q is not configured", name)
}

// ActiveBackend returns the backend named by recognition.active_backend, or
// nil when none is set.
func ActiveBackend() (*model.Backend, error) {
	name := viper.GetString("recognition.active_backend")
	if name == "" {
		return nil, nil
	}
	return FindBackend(name)
}

// Couriers returns the courier token list for the pickup rule, honoring the
// recognition.couriers override.
func Couriers(defaults []string) []string {
	if couriers := viper.GetStringSlice("recognition.couriers"); len(couriers) > 0 {
		return couriers
	}
	return defaults
}

func parseProvider(raw string) (model.ProviderKind, error) {
	switch model.ProviderKind(strings.ToLower(raw)) {
	case model.ProviderOpenAI:
		return model.ProviderOpenAI, nil
	case model.ProviderAnthropic:
		return model.ProviderAnthropic, nil
	case model.ProviderCustom, "":
		return model.ProviderCustom, nil
	default:
		return "", fmt.Errorf("unsupported provider %q", raw)
	}
}
