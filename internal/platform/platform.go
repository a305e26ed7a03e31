package platform

import (
	"sort"
	"strings"
)

const (
	urlPrefix = "https://"
	urlSuffix = ".sbgenomics.com"
)

// Platform describes a named deployment of the Seven Bridges API,
// identified by its base URL.
type Platform struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	DevTokenURL string `json:"dev_token_url"`
}

// registry maps exact API base URLs to display metadata. Callers that
// branch on platform identity depend on these values verbatim.
var registry = map[string]Platform{
	"https://api.sbgenomics.com": {
		URL:         "https://api.sbgenomics.com",
		Name:        "Seven Bridges",
		ShortName:   "SBG",
		DevTokenURL: "https://igor.sbgenomics.com/developer#token",
	},
	"https://eu-api.sbgenomics.com": {
		URL:         "https://eu-api.sbgenomics.com",
		Name:        "Seven Bridges (EU)",
		ShortName:   "SBG-EU",
		DevTokenURL: "https://eu.sbgenomics.com/developer#token",
	},
	"https://api.sevenbridges.cn": {
		URL:         "https://api.sevenbridges.cn",
		Name:        "Seven Bridges (China)",
		ShortName:   "SBG-CN",
		DevTokenURL: "https://cn.sevenbridges.cn/developer#token",
	},
	"https://cgc-api.sbgenomics.com": {
		URL:         "https://cgc-api.sbgenomics.com",
		Name:        "Cancer Genomics Cloud",
		ShortName:   "CGC",
		DevTokenURL: "https://cgc.sbgenomics.com/developer#token",
	},
	"https://cavatica-api.sbgenomics.com": {
		URL:         "https://cavatica-api.sbgenomics.com",
		Name:        "Cavatica",
		ShortName:   "CAVATICA",
		DevTokenURL: "https://cavatica.sbgenomics.com/developer#token",
	},
	"https://f4c-api.sbgenomics.com": {
		URL:         "https://f4c-api.sbgenomics.com",
		Name:        "Fair4Cures",
		ShortName:   "F4C",
		DevTokenURL: "https://f4c.sbgenomics.com/developer#token",
	},
}

// Lookup returns the registered platform for an exact base URL.
func Lookup(url string) (Platform, bool) {
	p, ok := registry[url]
	return p, ok
}

// All returns every registered platform, ordered by URL for stable output.
func All() []Platform {
	platforms := make([]Platform, 0, len(registry))
	for _, p := range registry {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].URL < platforms[j].URL
	})
	return platforms
}

// Subdomain extracts the host segment between the "https://" prefix and
// the ".sbgenomics.com" suffix. This is a best-effort fixed-offset slice
// assuming the known suffix length: URLs with a different suffix yield a
// substring that is not a real subdomain rather than an error. Offsets are
// clamped, so short inputs return a truncated result instead of panicking.
func Subdomain(url string) string {
	start := len(urlPrefix)
	if start > len(url) {
		start = len(url)
	}
	end := len(url) - len(urlSuffix)
	if end < start {
		end = start
	}
	return url[start:end]
}

// ShortName returns the registered short name for a URL, falling back to
// the subdomain for unregistered platforms.
func ShortName(url string) string {
	if p, ok := registry[url]; ok {
		return p.ShortName
	}
	return fallbackLabel(url)
}

// Label returns the registered display name for a URL, falling back to
// the subdomain for unregistered platforms.
func Label(url string) string {
	if p, ok := registry[url]; ok {
		return p.Name
	}
	return fallbackLabel(url)
}

// fallbackLabel derives a display label from the subdomain. Internal
// "vayu" staging hosts carry extra dotted environment segments, so any
// subdomain containing "vayu" is truncated at the first dot.
func fallbackLabel(url string) string {
	sub := Subdomain(url)
	if !strings.Contains(sub, "vayu") {
		return sub
	}
	return strings.SplitN(sub, ".", 2)[0]
}
