// Package mssola adapts github.com/mssola/useragent to the useragent.Decomposer contract.
//
// mssola reports the first product token as the browser name for strings it
// cannot classify. Browser fields are therefore kept only when mssola also
// recognised a rendering engine or flagged the string as a crawler.
package mssola

import (
	"strings"

	ua "github.com/mssola/useragent"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Decomposer implements useragent.Decomposer on top of mssola/useragent.
// The zero value is ready to use.
type Decomposer struct{}

// New returns a mssola-backed decomposer.
func New() Decomposer { return Decomposer{} }

// Decompose parses raw with mssola/useragent and maps the result onto useragent.Info.
func (Decomposer) Decompose(raw string) (useragent.Info, error) {
	info := useragent.Info{FullString: raw}
	if strings.TrimSpace(raw) == "" {
		return info, useragent.ErrEmptyUserAgent
	}

	parsed := ua.New(raw)

	engineName, engineVersion := parsed.Engine()
	if name := engine(engineName, raw); name != "" {
		info.Engine = useragent.Engine{Name: name, Version: engineVersion}
	}

	if info.Engine.Name != "" || parsed.Bot() {
		name, version := parsed.Browser()
		info.Browser = useragent.Browser{
			Name:         name,
			FullVersion:  version,
			MajorVersion: majorVersion(version),
		}
	}

	info.OS = operatingSystem(parsed)
	info.Device = device(parsed, info.OS.Name, raw)

	if info.IsZero() {
		return info, useragent.ErrMalformedUserAgent
	}
	return info, nil
}

// engine maps mssola's engine token onto the shared names. Unrecognised
// tokens, which mssola takes from arbitrary second products, become absent.
func engine(name, raw string) string {
	switch name {
	case "AppleWebKit":
		if strings.Contains(raw, "Chrome/") || strings.Contains(raw, "Chromium/") {
			return useragent.EngineBlink
		}
		return useragent.EngineWebKit
	case "Gecko":
		return useragent.EngineGecko
	case "Trident":
		return useragent.EngineTrident
	case "EdgeHTML":
		return useragent.EngineEdgeHTML
	case "Presto":
		return useragent.EnginePresto
	}
	return ""
}

func operatingSystem(parsed *ua.UserAgent) useragent.OS {
	info := parsed.OSInfo()
	switch parsed.Platform() {
	case "iPhone", "iPad", "iPod":
		// mssola leaves "OS" from "CPU OS 16_5" as the name on iPads.
		return useragent.OS{Name: useragent.OSiOS, Version: info.Version}
	}

	name := osName(info.Name)
	if name == "" {
		return useragent.OS{}
	}
	return useragent.OS{Name: name, Version: info.Version}
}

// osName folds mssola's descriptive names into the shared vocabulary.
func osName(name string) string {
	switch {
	case name == "":
		return ""
	case strings.HasPrefix(name, "Windows Phone"):
		return useragent.OSWindowsPhone
	case strings.HasPrefix(name, "Windows"):
		return useragent.OSWindows
	case strings.Contains(name, "iPhone"), strings.Contains(name, "iPad"), strings.Contains(name, "iOS"):
		return useragent.OSiOS
	case strings.HasPrefix(name, "Mac OS"), strings.HasPrefix(name, "Intel Mac OS"):
		return useragent.OSMacOS
	case strings.HasPrefix(name, "Android"):
		return useragent.OSAndroid
	case strings.HasPrefix(name, "CrOS"):
		return useragent.OSChromeOS
	}
	return name
}

func device(parsed *ua.UserAgent, family, raw string) useragent.Device {
	switch {
	case parsed.Bot():
		return useragent.Device{Type: useragent.DeviceTypeBot}
	case parsed.Platform() == "iPad":
		return useragent.Device{Type: useragent.DeviceTypeTablet, Vendor: useragent.VendorApple, Model: "iPad"}
	case parsed.Platform() == "iPhone", parsed.Platform() == "iPod":
		return useragent.Device{Type: useragent.DeviceTypeMobile, Vendor: useragent.VendorApple, Model: parsed.Platform()}
	case !parsed.Mobile():
		return useragent.Device{}
	}

	d := useragent.Device{Type: useragent.DeviceTypeMobile, Model: parsed.Model()}
	// Android tablets omit the Mobile token that phones carry.
	if family == useragent.OSAndroid && !strings.Contains(raw, "Mobile") {
		d.Type = useragent.DeviceTypeTablet
	}
	return d
}

func majorVersion(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}
