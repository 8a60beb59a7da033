package useragent

import (
	"regexp"
	"strings"
)

// OS detection keyword sets
var (
	iOSKeywords       = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords     = newKeywordSet("macintosh", "mac os x")
	harmonyOSKeywords = newKeywordSet("harmonyos")
	fireOSKeywords    = newKeywordSet("kindle", "silk/", "kftt", "kfjwi")
	chromeOSKeywords  = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords     = newKeywordSet("linux", "ubuntu", "debian", "fedora", "x11")
)

var (
	windowsNTVersion    = regexp.MustCompile(`windows nt ([\d.]+)`)
	windowsPhoneVersion = regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`)
	iOSVersion          = regexp.MustCompile(`os ([\d_]+) like mac os x`)
	macOSVersion        = regexp.MustCompile(`mac os x ([\d_.]+)`)
	androidVersion      = regexp.MustCompile(`android ([\d.]+)`)
	harmonyOSVersion    = regexp.MustCompile(`harmonyos[ /]?([\d.]+)`)
	chromeOSVersion     = regexp.MustCompile(`cros \S+ ([\d.]+)`)
)

// Windows marketing names keyed by NT kernel version
var windowsReleases = map[string]string{
	"10.0": "10",
	"6.4":  "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.2":  "XP",
	"5.1":  "XP",
	"5.0":  "2000",
}

// ParseOS detects the operating system name and version in ua.
func ParseOS(ua string) OS {
	return parseOS(strings.ToLower(ua))
}

// parseOS checks Windows first since it dominates desktop traffic, then the
// mobile systems whose strings also mention desktop tokens.
func parseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OS{}
	}

	if strings.Contains(lowerUA, "windows phone") {
		return OS{Name: OSWindowsPhone, Version: firstMatch(lowerUA, windowsPhoneVersion)}
	}

	if strings.Contains(lowerUA, "windows") {
		version := firstMatch(lowerUA, windowsNTVersion)
		if release, ok := windowsReleases[version]; ok {
			version = release
		}
		return OS{Name: OSWindows, Version: version}
	}

	if iOSKeywords.contains(lowerUA) {
		return OS{Name: OSiOS, Version: dotted(firstMatch(lowerUA, iOSVersion))}
	}

	if macOSKeywords.contains(lowerUA) {
		return OS{Name: OSMacOS, Version: dotted(firstMatch(lowerUA, macOSVersion))}
	}

	// HarmonyOS strings often carry an Android token as well
	if harmonyOSKeywords.contains(lowerUA) {
		return OS{Name: OSHarmonyOS, Version: firstMatch(lowerUA, harmonyOSVersion)}
	}

	if fireOSKeywords.contains(lowerUA) {
		return OS{Name: OSFireOS}
	}

	if strings.Contains(lowerUA, "android") {
		return OS{Name: OSAndroid, Version: firstMatch(lowerUA, androidVersion)}
	}

	if chromeOSKeywords.contains(lowerUA) {
		return OS{Name: OSChromeOS, Version: firstMatch(lowerUA, chromeOSVersion)}
	}

	if linuxKeywords.contains(lowerUA) {
		return OS{Name: OSLinux}
	}

	return OS{}
}

// dotted normalizes Apple's underscore-separated versions.
func dotted(version string) string {
	return strings.ReplaceAll(version, "_", ".")
}
