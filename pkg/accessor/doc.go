// Package accessor provides a memoized, per-component accessor for the
// client's user agent string.
//
// The ambient string comes from an injected Provider rather than a global,
// so the accessor works the same under a browser host (see package
// navigator), inside an HTTP request (RequestProvider, Middleware plus
// ContextProvider), or in a test (Static, ProviderFunc).
//
// Two variants share one cache implementation:
//
//   - NewRaw returns the ambient string itself, byte for byte.
//   - NewParsed decomposes it into a *useragent.Info through a
//     useragent.Decomposer.
//
// Every Get reads the provider. When the string equals the one seen on the
// previous call the cached value is returned unchanged, so callers can
// compare results by identity to detect changes. Otherwise the value is
// derived again and replaces the cache wholesale.
//
// The structured variant never fails: empty or unrecognised strings, decomposer
// errors and decomposer panics all yield a record whose fields are empty except
// FullString.
//
// # Usage
//
//	acc := accessor.NewParsed(accessor.ContextProvider(ctx), useragent.Parser{})
//	info := acc.Get()
//	if info.IsMobile() {
//	    // render the compact layout
//	}
package accessor
