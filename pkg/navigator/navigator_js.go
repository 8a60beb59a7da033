//go:build js && wasm

package navigator

import "syscall/js"

func navigatorObject() (js.Value, bool) {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return js.Value{}, false
	}
	return nav, true
}

func available() bool {
	_, ok := navigatorObject()
	return ok
}

func userAgent() string {
	nav, ok := navigatorObject()
	if !ok {
		return ""
	}
	ua := nav.Get("userAgent")
	if ua.Type() != js.TypeString {
		return ""
	}
	return ua.String()
}
