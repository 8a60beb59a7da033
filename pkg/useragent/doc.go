// Package useragent defines the structured user agent record (Info) and the
// Decomposer contract that turns a raw User-Agent string into it.
//
// It also ships Parser, a dependency-light keyword decomposition engine.
// Parser identifies:
//   - Browser – Chrome, Safari, Firefox, Edge, Opera, Samsung Browser, …
//   - Engine – Blink, WebKit, Gecko, Trident, EdgeHTML, Presto
//   - Operating system – Windows, macOS, iOS, Android, Linux, Chrome OS, …
//   - Device – type (mobile, tablet, smarttv, console, bot), vendor and model
//   - CPU architecture – amd64, ia32, arm64, arm, ppc
//
// Anything the string does not reveal is left as an empty string. No field
// ever holds a placeholder such as "unknown", so callers can tell a detected
// value from a missing one. Conventional desktop browsers report no device at
// all.
//
// # Architecture
//
// Parse orchestrates dedicated parsers, each in its own file: device.go,
// os.go, browser.go, engine.go and cpu.go. Keyword sets are checked before
// regular expressions so common strings resolve with plain look-ups.
// Constants live in constants.go and sentinel errors in errors.go.
//
// Other engines plug in through the Decomposer interface; see the surfer and
// mssola sub-packages.
//
// # Usage
//
//	info, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // ErrEmptyUserAgent or ErrMalformedUserAgent; info is still usable
//	}
//
//	log.Printf("client=%s", info.ShortIdentifier())
//
//	if info.IsMobile() {
//	    // serve mobile-optimised assets
//	}
//
// # Error Handling
//
// Parse may return ErrEmptyUserAgent and ErrMalformedUserAgent. Both come
// with a well-formed record whose undetected fields are empty.
package useragent
