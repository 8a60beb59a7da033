package useragent

import (
	"regexp"
	"strings"
)

// BrowserPattern defines a pattern for detecting a browser
type BrowserPattern struct {
	Name      string
	Keywords  []string
	Excludes  []string
	AnyOf     bool
	Regex     *regexp.Regexp
	OrderHint int
}

// firstMatch returns the first capture group of regex, capped at 20 characters.
func firstMatch(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		if len(version) > 20 {
			version = version[:20]
		}
		return strings.TrimSuffix(version, ".")
	}
	return ""
}

// matches checks if the lower-cased UA string satisfies the pattern
func (p BrowserPattern) matches(lowerUA string) bool {
	if p.AnyOf {
		for _, keyword := range p.Keywords {
			if strings.Contains(lowerUA, keyword) {
				return true
			}
		}
		return false
	}

	for _, keyword := range p.Keywords {
		if !strings.Contains(lowerUA, keyword) {
			return false
		}
	}
	for _, exclude := range p.Excludes {
		if strings.Contains(lowerUA, exclude) {
			return false
		}
	}
	return true
}

// Browser detection patterns. Branded Chromium builds must precede Chrome,
// and Chrome must precede Safari since both tokens appear in Chrome strings.
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserEdge,
		Keywords:  []string{"edg/", "edge/", "edga/", "edgios/"},
		AnyOf:     true,
		Regex:     regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserSamsung,
		Keywords:  []string{"samsungbrowser"},
		Regex:     regexp.MustCompile(`samsungbrowser/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserUC,
		Keywords:  []string{"ucbrowser"},
		Regex:     regexp.MustCompile(`ucbrowser/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserQQ,
		Keywords:  []string{"qqbrowser"},
		Regex:     regexp.MustCompile(`qqbrowser/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserHuawei,
		Keywords:  []string{"huaweibrowser"},
		Regex:     regexp.MustCompile(`huaweibrowser/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserVivo,
		Keywords:  []string{"vivobrowser"},
		Regex:     regexp.MustCompile(`vivobrowser/([\d.]+)`),
		OrderHint: 60,
	},
	{
		Name:      BrowserMIUI,
		Keywords:  []string{"miuibrowser"},
		Regex:     regexp.MustCompile(`miuibrowser/([\d.]+)`),
		OrderHint: 70,
	},
	{
		Name:      BrowserYandex,
		Keywords:  []string{"yabrowser", "yandexbrowser"},
		AnyOf:     true,
		Regex:     regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserVivaldi,
		Keywords:  []string{"vivaldi"},
		Regex:     regexp.MustCompile(`vivaldi/([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserBrave,
		Keywords:  []string{"brave"},
		Regex:     regexp.MustCompile(`brave/([\d.]+)`),
		OrderHint: 100,
	},
	{
		Name:      BrowserOpera,
		Keywords:  []string{"opr/", "opera"},
		AnyOf:     true,
		Regex:     regexp.MustCompile(`(?:opr|opera)[/ ]([\d.]+)`),
		OrderHint: 110,
	},
	{
		Name:      BrowserChrome,
		Keywords:  []string{"chrome/", "crios/", "chromium/"},
		AnyOf:     true,
		Regex:     regexp.MustCompile(`(?:chrome|crios|chromium)/([\d.]+)`),
		OrderHint: 120,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  []string{"firefox/", "fxios/"},
		AnyOf:     true,
		Regex:     regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
		OrderHint: 130,
	},
	{
		Name:      BrowserSafari,
		Keywords:  []string{"safari/"},
		Excludes:  []string{"chrome", "android"},
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 140,
	},
	{
		Name:      BrowserIE,
		Keywords:  []string{"msie "},
		Regex:     regexp.MustCompile(`msie ([\d.]+)`),
		OrderHint: 150,
	},
}

// ParseBrowser detects the browser name and version in ua.
func ParseBrowser(ua string) Browser {
	return parseBrowser(strings.ToLower(ua))
}

func parseBrowser(lowerUA string) Browser {
	// IE 11 dropped the MSIE token and only carries Trident with rv:
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		version := firstMatch(lowerUA, ieRevisionPattern)
		return Browser{Name: BrowserIE, FullVersion: version, MajorVersion: majorVersion(version)}
	}

	for _, pattern := range browserPatterns {
		if pattern.matches(lowerUA) {
			version := firstMatch(lowerUA, pattern.Regex)
			return Browser{
				Name:         pattern.Name,
				FullVersion:  version,
				MajorVersion: majorVersion(version),
			}
		}
	}

	return Browser{}
}

var ieRevisionPattern = regexp.MustCompile(`rv:([\d.]+)`)
