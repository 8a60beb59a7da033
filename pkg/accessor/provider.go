package accessor

import "net/http"

// Provider reports the current client identification string.
// Implementations must be read-only and cheap: Get calls UserAgent on every invocation.
type Provider interface {
	UserAgent() string
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() string

// UserAgent calls f().
func (f ProviderFunc) UserAgent() string { return f() }

// Static returns a provider that always reports ua.
func Static(ua string) Provider {
	return ProviderFunc(func() string { return ua })
}

// RequestProvider reads the User-Agent header of r on every call, so header
// rewrites made after the provider was created are observed.
func RequestProvider(r *http.Request) Provider {
	return ProviderFunc(func() string {
		if r == nil {
			return ""
		}
		return r.UserAgent()
	})
}
