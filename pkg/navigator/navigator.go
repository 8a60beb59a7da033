// Package navigator exposes the browser host's navigator.userAgent as an
// accessor.Provider.
//
// Under GOOS=js GOARCH=wasm the value is read from the JavaScript global on
// every call. On every other target there is no navigator and the provider
// reports the empty string, which the structured accessor turns into an
// all-absent record.
package navigator

import "github.com/dmitrymomot/uakit/pkg/accessor"

// Provider returns a provider backed by navigator.userAgent.
func Provider() accessor.Provider {
	return accessor.ProviderFunc(UserAgent)
}

// Available reports whether a navigator object is reachable from this process.
func Available() bool {
	return available()
}

// UserAgent returns the current navigator.userAgent, or "" when unavailable.
func UserAgent() string {
	return userAgent()
}
