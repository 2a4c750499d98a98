package grid

// Resolver normalizes externally reported browser and platform names into
// the canonical identifiers used by the local target list. Both tables are
// fixed at construction; lookups are pure. An unknown raw name resolves to
// "" — callers treat that as "no match possible", never as a wildcard.
type Resolver struct {
	browserNames  map[string]string
	platformNames map[string]string
}

// NewResolver builds a resolver from explicit tables. Tests and config
// overlays supply their own maps; nil maps are treated as empty.
func NewResolver(browserNames, platformNames map[string]string) *Resolver {
	if browserNames == nil {
		browserNames = map[string]string{}
	}
	if platformNames == nil {
		platformNames = map[string]string{}
	}
	return &Resolver{browserNames: browserNames, platformNames: platformNames}
}

// DefaultResolver returns a resolver loaded with the built-in tables for
// the remote browser cloud's naming scheme.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultBrowserNames(), DefaultPlatformNames())
}

// Resolve maps raw names to canonical ones. Either return value is "" when
// the corresponding raw name is unknown.
func (r *Resolver) Resolve(rawBrowser, rawPlatform string) (browser, platform string) {
	return r.browserNames[rawBrowser], r.platformNames[rawPlatform]
}

// DefaultBrowserNames maps the identifiers the remote cloud reports to the
// names targets are declared with.
func DefaultBrowserNames() map[string]string {
	return map[string]string{
		"googlechrome":      "Chrome",
		"chrome":            "Chrome",
		"Chrome":            "Chrome",
		"firefox":           "Firefox",
		"ff":                "Firefox",
		"Firefox":           "Firefox",
		"internet explorer": "Internet Explorer",
		"Internet Explorer": "Internet Explorer",
		"iexplore":          "Internet Explorer",
		"ie":                "Internet Explorer",
		"microsoftedge":     "Edge",
		"edge":              "Edge",
		"Edge":              "Edge",
		"safari":            "Safari",
		"Safari":            "Safari",
		"opera":             "Opera",
		"Opera":             "Opera",
		"iphone":            "iPhone",
		"iPhone":            "iPhone",
		"ipad":              "iPad",
		"iPad":              "iPad",
		"android":           "Android",
		"Android":           "Android",
	}
}

// DefaultPlatformNames maps reported OS names to the platform identifiers
// the cloud actually schedules on. Windows marketing names in particular
// diverge from the server SKUs behind them.
func DefaultPlatformNames() map[string]string {
	return map[string]string{
		"Windows 10":   "Windows 10",
		"Windows 8.1":  "Windows 8.1",
		"Windows 8":    "Windows 2012",
		"Windows 7":    "Windows 2008",
		"Windows XP":   "Windows 2003",
		"Windows 2012": "Windows 2012",
		"Windows 2008": "Windows 2008",
		"Windows 2003": "Windows 2003",
		"OS X 10.11":   "OS X 10.11",
		"OS X 10.10":   "OS X 10.10",
		"OS X 10.9":    "OS X 10.9",
		"macOS":        "OS X 10.11",
		"Linux":        "Linux",
	}
}
