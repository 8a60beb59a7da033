package useragent

import (
	"regexp"
	"strings"
)

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type.
// Bot detection includes social media crawlers and monitoring tools.
var (
	botKeywords     = newKeywordSet("spider", "crawler", "archiver", "lighthouse", "slurp", "facebookexternalhit", "whatsapp", "camo asset", "validator", "fetcher", "scraper", "headlesschrome")
	tvKeywords      = newKeywordSet("smart-tv", "smarttv", "googletv", "android tv", "appletv", "apple tv", "webos", "tizen", "crkey", "bravia", "hbbtv")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk/", "kftt", "kfjwi")
	mobileKeywords  = newKeywordSet("mobile", "windows phone", "iemobile", "blackberry", "bb10", "nokia", "opera mini")
)

// Vendor detection by common model prefixes, checked in order
var vendorKeywords = []struct {
	vendor   string
	keywords keywordSet
}{
	{VendorSamsung, newKeywordSet("samsung", "sm-", "gt-", "galaxy")},
	{VendorHuawei, newKeywordSet("huawei", "hwa-", "honor", "mediapad", "agassi")},
	{VendorXiaomi, newKeywordSet("xiaomi", "redmi", "miui", "poco")},
	{VendorOppo, newKeywordSet("oppo", "cph1", "cph2")},
	{VendorVivo, newKeywordSet("vivo", "viv-")},
	{VendorGoogle, newKeywordSet("pixel", "nexus", "crkey")},
	{VendorAmazon, newKeywordSet("kindle", "silk/", "kftt", "kfjwi", "aft")},
	{VendorSony, newKeywordSet("playstation", "bravia")},
	{VendorMicrosoft, newKeywordSet("xbox", "lumia")},
	{VendorNintendo, newKeywordSet("nintendo", "wiiu")},
}

var (
	// "bot" must end a product or URL token: "googlebot/2.1", "bot.html",
	// "slackbot-linkexpanding". Handset names such as "CUBOT P50" are followed by a space.
	botToken = regexp.MustCompile(`bot(?:[/;).\-]|$)`)

	// Android places the model after the OS version, optionally after a locale.
	androidModel = regexp.MustCompile(`Android [\d.]+;(?: [a-zA-Z]{2}[-_][a-zA-Z]{2};)? ([^;)]+?)(?: Build/[^;)]*)?[;)]`)
	consoleModel = regexp.MustCompile(`(?i)(playstation \w+|xbox(?: one| series [xs])?|nintendo \w+)`)
)

// ParseDevice detects device type, vendor, and model in ua.
// Desktop browsers yield the zero Device.
func ParseDevice(ua string) Device {
	return parseDevice(ua, strings.ToLower(ua))
}

// parseDevice classifies devices using fast string matching.
// Order matters: Apple devices first, then crawlers, then Android logic, then fallbacks.
func parseDevice(ua, lowerUA string) Device {
	if lowerUA == "" {
		return Device{}
	}

	switch {
	case strings.Contains(lowerUA, "ipad"):
		return Device{Type: DeviceTypeTablet, Vendor: VendorApple, Model: "iPad"}
	case strings.Contains(lowerUA, "iphone"):
		return Device{Type: DeviceTypeMobile, Vendor: VendorApple, Model: "iPhone"}
	case strings.Contains(lowerUA, "ipod"):
		return Device{Type: DeviceTypeMobile, Vendor: VendorApple, Model: "iPod"}
	}

	if botToken.MatchString(lowerUA) || botKeywords.contains(lowerUA) {
		return Device{Type: DeviceTypeBot}
	}

	if tvKeywords.contains(lowerUA) {
		return Device{Type: DeviceTypeSmartTV, Vendor: detectVendor(lowerUA)}
	}

	if consoleKeywords.contains(lowerUA) {
		return Device{
			Type:   DeviceTypeConsole,
			Vendor: detectVendor(lowerUA),
			Model:  firstMatch(ua, consoleModel),
		}
	}

	// Android tablets omit 'Mobile' keyword, unlike phones
	if strings.Contains(lowerUA, "android") {
		device := Device{
			Type:   DeviceTypeMobile,
			Vendor: detectVendor(lowerUA),
			Model:  firstMatch(ua, androidModel),
		}
		if !strings.Contains(lowerUA, "mobile") || tabletKeywords.contains(lowerUA) {
			device.Type = DeviceTypeTablet
		}
		return device
	}

	if tabletKeywords.contains(lowerUA) {
		return Device{Type: DeviceTypeTablet, Vendor: detectVendor(lowerUA)}
	}

	if mobileKeywords.contains(lowerUA) {
		return Device{Type: DeviceTypeMobile, Vendor: detectVendor(lowerUA)}
	}

	// Windows tablets require special detection before desktop fallback
	if strings.Contains(lowerUA, "windows") && strings.Contains(lowerUA, "touch") &&
		!strings.Contains(lowerUA, "windows phone") {
		return Device{Type: DeviceTypeTablet, Vendor: VendorMicrosoft}
	}

	return Device{}
}

func detectVendor(lowerUA string) string {
	for _, v := range vendorKeywords {
		if v.keywords.contains(lowerUA) {
			return v.vendor
		}
	}
	return ""
}
