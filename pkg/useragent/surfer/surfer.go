// Package surfer adapts github.com/avct/uasurfer to the useragent.Decomposer contract.
//
// uasurfer classifies browser, operating system and device class but does
// not report rendering engines or CPU architectures, so those fields are
// always empty in records produced here.
package surfer

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Decomposer implements useragent.Decomposer on top of uasurfer.
// The zero value is ready to use.
type Decomposer struct{}

// New returns a uasurfer-backed decomposer.
func New() Decomposer { return Decomposer{} }

// Decompose parses raw with uasurfer and maps the result onto useragent.Info.
func (Decomposer) Decompose(raw string) (useragent.Info, error) {
	info := useragent.Info{FullString: raw}
	if strings.TrimSpace(raw) == "" {
		return info, useragent.ErrEmptyUserAgent
	}

	ua := uasurfer.Parse(raw)

	if ua.Browser.Name != uasurfer.BrowserUnknown {
		info.Browser = useragent.Browser{
			Name:         browserName(ua.Browser.Name),
			FullVersion:  fullVersion(ua.Browser.Version),
			MajorVersion: majorVersion(ua.Browser.Version),
		}
	}

	if ua.OS.Name != uasurfer.OSUnknown {
		info.OS = useragent.OS{
			Name:    osName(ua.OS.Name),
			Version: fullVersion(ua.OS.Version),
		}
	}

	info.Device = device(ua)

	if info.IsZero() {
		return info, useragent.ErrMalformedUserAgent
	}
	return info, nil
}

func browserName(name uasurfer.BrowserName) string {
	switch name {
	case uasurfer.BrowserChrome:
		return useragent.BrowserChrome
	case uasurfer.BrowserSafari:
		return useragent.BrowserSafari
	case uasurfer.BrowserFirefox:
		return useragent.BrowserFirefox
	case uasurfer.BrowserIE:
		return useragent.BrowserIE
	case uasurfer.BrowserOpera:
		return useragent.BrowserOpera
	}
	return strings.TrimPrefix(name.String(), "Browser")
}

func osName(name uasurfer.OSName) string {
	switch name {
	case uasurfer.OSWindows:
		return useragent.OSWindows
	case uasurfer.OSWindowsPhone:
		return useragent.OSWindowsPhone
	case uasurfer.OSMacOSX:
		return useragent.OSMacOS
	case uasurfer.OSiOS:
		return useragent.OSiOS
	case uasurfer.OSAndroid:
		return useragent.OSAndroid
	case uasurfer.OSChromeOS:
		return useragent.OSChromeOS
	case uasurfer.OSLinux:
		return useragent.OSLinux
	}
	return strings.TrimPrefix(name.String(), "OS")
}

// device reports crawlers as bots and leaves computers empty,
// matching the conventional-desktop rule of the record.
func device(ua *uasurfer.UserAgent) useragent.Device {
	if ua.IsBot() {
		return useragent.Device{Type: useragent.DeviceTypeBot}
	}

	switch ua.DeviceType {
	case uasurfer.DevicePhone:
		return useragent.Device{Type: useragent.DeviceTypeMobile, Vendor: vendor(ua)}
	case uasurfer.DeviceTablet:
		return useragent.Device{Type: useragent.DeviceTypeTablet, Vendor: vendor(ua)}
	case uasurfer.DeviceTV:
		return useragent.Device{Type: useragent.DeviceTypeSmartTV}
	case uasurfer.DeviceConsole:
		return useragent.Device{Type: useragent.DeviceTypeConsole}
	case uasurfer.DeviceWearable:
		return useragent.Device{Type: "wearable"}
	}
	return useragent.Device{}
}

// vendor is only knowable for Apple hardware from uasurfer's platform enum.
func vendor(ua *uasurfer.UserAgent) string {
	switch ua.OS.Platform {
	case uasurfer.PlatformiPhone, uasurfer.PlatformiPad, uasurfer.PlatformiPod:
		return useragent.VendorApple
	}
	return ""
}

func fullVersion(v uasurfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func majorVersion(v uasurfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v.Major)
}
