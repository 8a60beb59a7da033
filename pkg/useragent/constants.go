package useragent

// Device types. Conventional desktops report no device type at all.
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeSmartTV identifies smart TVs and streaming devices
	DeviceTypeSmartTV = "smarttv"

	// DeviceTypeConsole identifies gaming consoles
	DeviceTypeConsole = "console"
)

// Device vendors
const (
	VendorApple     = "Apple"
	VendorSamsung   = "Samsung"
	VendorHuawei    = "Huawei"
	VendorXiaomi    = "Xiaomi"
	VendorOppo      = "OPPO"
	VendorVivo      = "Vivo"
	VendorGoogle    = "Google"
	VendorAmazon    = "Amazon"
	VendorMicrosoft = "Microsoft"
	VendorSony      = "Sony"
	VendorNintendo  = "Nintendo"
)

// Browser names
const (
	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserEdge    = "Edge"
	BrowserOpera   = "Opera"
	BrowserIE      = "IE"
	BrowserSamsung = "Samsung Browser"
	BrowserUC      = "UCBrowser"
	BrowserQQ      = "QQBrowser"
	BrowserHuawei  = "Huawei Browser"
	BrowserVivo    = "Vivo Browser"
	BrowserMIUI    = "MIUI Browser"
	BrowserBrave   = "Brave"
	BrowserVivaldi = "Vivaldi"
	BrowserYandex  = "Yandex"
)

// Rendering engines
const (
	EngineBlink    = "Blink"
	EngineWebKit   = "WebKit"
	EngineGecko    = "Gecko"
	EngineTrident  = "Trident"
	EngineEdgeHTML = "EdgeHTML"
	EnginePresto   = "Presto"
)

// Operating system names
const (
	OSWindows      = "Windows"
	OSWindowsPhone = "Windows Phone"
	OSMacOS        = "macOS"
	OSiOS          = "iOS"
	OSAndroid      = "Android"
	OSLinux        = "Linux"
	OSChromeOS     = "Chrome OS"
	OSHarmonyOS    = "HarmonyOS"
	OSFireOS       = "Fire OS"
)

// CPU architectures
const (
	ArchAMD64 = "amd64"
	ArchIA32  = "ia32"
	ArchARM64 = "arm64"
	ArchARM   = "arm"
	ArchPPC   = "ppc"
)
