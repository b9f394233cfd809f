// Package offline implements the asset cache that keeps the editor usable
// without a connection. Requests are classified per URL: inference traffic
// is never cached, pinned external origins are served cache-first, and
// everything else is served stale-while-revalidate.
package offline

import (
	"net/url"
	"strings"
)

// Policy is the caching strategy applied to one request.
type Policy int

const (
	// NetworkOnly bypasses the cache entirely.
	NetworkOnly Policy = iota
	// CacheFirst serves a hit immediately and only fetches on a miss.
	CacheFirst
	// StaleWhileRevalidate serves a hit immediately and refreshes it in the
	// background.
	StaleWhileRevalidate
)

func (p Policy) String() string {
	switch p {
	case NetworkOnly:
		return "network-only"
	case CacheFirst:
		return "cache-first"
	default:
		return "stale-while-revalidate"
	}
}

// inferenceHost carries generated content; caching it would replay old
// completions.
const inferenceHost = "generativelanguage.googleapis.com"

// externalOrigins are the pinned CDN prefixes (fonts, styles, script
// bundles) served cache-first.
var externalOrigins = []string{
	"https://cdn.tailwindcss.com",
	"https://fonts.googleapis.com",
	"https://fonts.gstatic.com",
	"https://aistudiocdn.com",
}

// Classify picks the policy for rawURL. Unparseable URLs go to the network.
func Classify(rawURL string) Policy {
	u, err := url.Parse(rawURL)
	if err != nil {
		return NetworkOnly
	}
	if strings.Contains(u.Hostname(), inferenceHost) {
		return NetworkOnly
	}
	for _, origin := range externalOrigins {
		if strings.HasPrefix(rawURL, origin) {
			return CacheFirst
		}
	}
	return StaleWhileRevalidate
}
