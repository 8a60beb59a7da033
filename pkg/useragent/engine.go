package useragent

import (
	"regexp"
	"strings"
)

var (
	edgeHTMLVersion = regexp.MustCompile(`edge/([\d.]+)`)
	tridentVersion  = regexp.MustCompile(`trident/([\d.]+)`)
	prestoVersion   = regexp.MustCompile(`presto/([\d.]+)`)
	blinkVersion    = regexp.MustCompile(`(?:chrome|chromium)/([\d.]+)`)
	webKitVersion   = regexp.MustCompile(`applewebkit/([\d.]+)`)
	geckoVersion    = regexp.MustCompile(`rv:([\d.]+)`)
)

// ParseEngine detects the rendering engine in ua.
func ParseEngine(ua string) Engine {
	return parseEngine(strings.ToLower(ua))
}

// parseEngine checks the legacy engines first: their strings also carry
// WebKit or Gecko compatibility tokens.
func parseEngine(lowerUA string) Engine {
	switch {
	case strings.Contains(lowerUA, "edge/"):
		return Engine{Name: EngineEdgeHTML, Version: firstMatch(lowerUA, edgeHTMLVersion)}
	case strings.Contains(lowerUA, "trident/"):
		return Engine{Name: EngineTrident, Version: firstMatch(lowerUA, tridentVersion)}
	case strings.Contains(lowerUA, "presto/"):
		return Engine{Name: EnginePresto, Version: firstMatch(lowerUA, prestoVersion)}
	case strings.Contains(lowerUA, "applewebkit/"):
		// Chromium forked WebKit into Blink but kept the AppleWebKit token.
		// Chrome on iOS (CriOS) is still WebKit.
		if strings.Contains(lowerUA, "chrome/") || strings.Contains(lowerUA, "chromium/") {
			return Engine{Name: EngineBlink, Version: firstMatch(lowerUA, blinkVersion)}
		}
		return Engine{Name: EngineWebKit, Version: firstMatch(lowerUA, webKitVersion)}
	case strings.Contains(lowerUA, "gecko/"):
		return Engine{Name: EngineGecko, Version: firstMatch(lowerUA, geckoVersion)}
	}
	return Engine{}
}
