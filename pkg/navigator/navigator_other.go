//go:build !(js && wasm)

package navigator

func available() bool { return false }

func userAgent() string { return "" }
