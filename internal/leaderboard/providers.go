// internal/leaderboard/providers.go
package leaderboard

import (
	"regexp"
	"strings"
)

// Provider is the display form of a model vendor.
type Provider struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
}

var providerKeyPattern = regexp.MustCompile(`[^a-z0-9-]`)

var knownProviders = map[string]Provider{
	"open-ai": {
		Key:     "open-ai",
		Name:    "OpenAI",
		IconURL: "https://cdn.jsdelivr.net/gh/simple-icons/simple-icons@v9/icons/openai.svg",
	},
	"anthropic": {
		Key:     "anthropic",
		Name:    "Anthropic",
		IconURL: "https://cdn.brandfetch.io/idmJWF3N06/theme/dark/symbol.svg",
	},
	"google": {
		Key:     "google",
		Name:    "Google",
		IconURL: "https://upload.wikimedia.org/wikipedia/commons/c/c1/Google_%22G%22_logo.svg",
	},
	"xai": {
		Key:     "xai",
		Name:    "xAI",
		IconURL: "https://cdn.brandfetch.io/iddjpnb3_W/theme/dark/logo.svg",
	},
}

// ProviderKey normalizes a raw provider string: lowercase with everything
// outside a-z, 0-9 and '-' removed.
func ProviderKey(raw string) string {
	return providerKeyPattern.ReplaceAllString(strings.ToLower(raw), "")
}

// LookupProvider resolves a raw provider string. Unknown providers keep the
// raw string as their name and have no icon; an empty one is "Unknown".
func LookupProvider(raw string) Provider {
	if strings.TrimSpace(raw) == "" {
		return Provider{Name: "Unknown"}
	}
	key := ProviderKey(raw)
	if p, ok := knownProviders[key]; ok {
		return p
	}
	return Provider{Key: key, Name: raw}
}
