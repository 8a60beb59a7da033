package useragent

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info is the structured decomposition of a user agent string.
// Fields that could not be detected are empty strings, never placeholders.
type Info struct {
	// FullString is the raw input the record was derived from.
	FullString string `json:"full_string"`

	Browser Browser `json:"browser"`
	Engine  Engine  `json:"engine"`
	OS      OS      `json:"os"`
	Device  Device  `json:"device"`
	CPU     CPU     `json:"cpu"`
}

// Browser identifies the client application.
type Browser struct {
	Name         string `json:"name,omitempty"`
	FullVersion  string `json:"full_version,omitempty"`
	MajorVersion string `json:"major_version,omitempty"`
}

// Engine identifies the rendering engine. Several browsers share one engine.
type Engine struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// OS identifies the operating system.
type OS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Device is populated only when the string carries device signals.
// Conventional desktops leave every field empty.
type Device struct {
	Model  string `json:"model,omitempty"`
	Type   string `json:"type,omitempty"`
	Vendor string `json:"vendor,omitempty"`
}

// IsZero reports whether no device information was detected.
func (d Device) IsZero() bool { return d == Device{} }

// CPU holds the processor architecture when the string reveals it.
type CPU struct {
	Architecture string `json:"architecture,omitempty"`
}

// Decomposer turns a raw user agent string into a structured record.
// Implementations must be pure: the same input always yields the same output.
type Decomposer interface {
	Decompose(raw string) (Info, error)
}

// DecomposerFunc adapts a plain function to the Decomposer interface.
type DecomposerFunc func(raw string) (Info, error)

// Decompose calls f(raw).
func (f DecomposerFunc) Decompose(raw string) (Info, error) { return f(raw) }

// Parser is the built-in keyword decomposition engine. The zero value is ready to use.
type Parser struct{}

// Decompose implements Decomposer using Parse.
func (Parser) Decompose(raw string) (Info, error) { return Parse(raw) }

// Empty returns the all-absent record for raw.
func Empty(raw string) *Info {
	return &Info{FullString: raw}
}

// String returns the raw user agent string
func (i Info) String() string { return i.FullString }

// IsZero reports whether nothing was detected in the source string.
func (i Info) IsZero() bool {
	return i.Browser == Browser{} &&
		i.Engine == Engine{} &&
		i.OS == OS{} &&
		i.Device.IsZero() &&
		i.CPU == CPU{}
}

// IsBot returns true if the user agent is a crawler
func (i Info) IsBot() bool { return i.Device.Type == DeviceTypeBot }

// IsMobile returns true if the user agent is a phone
func (i Info) IsMobile() bool { return i.Device.Type == DeviceTypeMobile }

// IsTablet returns true if the user agent is a tablet
func (i Info) IsTablet() bool { return i.Device.Type == DeviceTypeTablet }

// IsDesktop returns true for a desktop operating system without device signals.
func (i Info) IsDesktop() bool {
	if !i.Device.IsZero() {
		return false
	}
	switch i.OS.Name {
	case OSWindows, OSMacOS, OSLinux, OSChromeOS:
		return true
	}
	return false
}

// Well-known crawlers checked in order before falling back to pattern extraction
var botNames = []struct{ keyword, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "Yandexbot"},
	{"baiduspider", "Baiduspider"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook"},
	{"linkedinbot", "Linkedinbot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "Telegrambot"},
	{"adsbot", "AdsBot"},
}

// Common bot name patterns compiled only once
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

var botVersionPattern = regexp.MustCompile(`(?i)(?:bot|spider|crawler|hit)/([\d.]+)`)

// extractBotName returns the crawler name, or an empty string when it can't be told.
func extractBotName(userAgent, lowerUA string) string {
	for _, bot := range botNames {
		if strings.Contains(lowerUA, bot.keyword) {
			return bot.name
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(userAgent); len(matches) > 1 {
			return title.String(strings.ToLower(matches[1]))
		}
	}
	return ""
}

// formatBrowserVersion formats the browser version to a reasonable length
func formatBrowserVersion(version string) string {
	if version == "" {
		return "?"
	}
	if strings.Contains(version, ".") && len(version) > 10 {
		return strings.TrimSuffix(version[:10], ".")
	}
	return version
}

// ShortIdentifier returns a short human-readable label for logs and session lists.
// Format: Browser/Version (OS, device) or Bot: Name for crawlers.
func (i Info) ShortIdentifier() string {
	if i.IsBot() {
		if i.Browser.Name == "" {
			return "Bot: Unknown"
		}
		return "Bot: " + i.Browser.Name
	}

	device := i.Device.Type
	if device == "" {
		device = "desktop"
	}

	switch {
	case i.Browser.Name == "" && i.OS.Name == "":
		return "Unknown device"
	case i.Browser.Name == "":
		return fmt.Sprintf("%s %s", i.OS.Name, device)
	case i.OS.Name == "":
		return fmt.Sprintf("%s/%s (Unknown OS)", i.Browser.Name, formatBrowserVersion(i.Browser.FullVersion))
	}
	return fmt.Sprintf("%s/%s (%s, %s)",
		i.Browser.Name, formatBrowserVersion(i.Browser.FullVersion), i.OS.Name, device)
}

// Parse decomposes a user agent string into an Info record.
// The record is always well-formed; the error only reports why it may be empty.
func Parse(ua string) (Info, error) {
	info := Info{FullString: ua}
	if strings.TrimSpace(ua) == "" {
		return info, ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)

	info.Device = parseDevice(ua, lowerUA)
	info.OS = parseOS(lowerUA)
	info.Engine = parseEngine(lowerUA)
	info.CPU = parseCPU(lowerUA)

	if info.Device.Type == DeviceTypeBot {
		info.Browser.Name = extractBotName(ua, lowerUA)
		info.Browser.FullVersion = firstMatch(lowerUA, botVersionPattern)
		info.Browser.MajorVersion = majorVersion(info.Browser.FullVersion)
	} else {
		info.Browser = parseBrowser(lowerUA)
	}

	if info.IsZero() {
		return info, ErrMalformedUserAgent
	}
	return info, nil
}

// majorVersion returns the leading numeric component of a dotted version.
func majorVersion(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}
