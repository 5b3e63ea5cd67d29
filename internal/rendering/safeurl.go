package rendering

import (
	"log"
	"regexp"
	"strings"
)

var (
	dangerousScheme = regexp.MustCompile(`(?i)^(javascript|data|vbscript|file|about):`)
	safeScheme      = regexp.MustCompile(`(?i)^(https?|mailto|tel|sms|ftp):`)
	wwwPrefix       = regexp.MustCompile(`(?i)^www\.`)
	bareDomain      = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.-]+\.[a-z]{2,}$`)
	httpScheme      = regexp.MustCompile(`^https?://`)
)

// SafeURL returns a link target that is safe to place in an href, or "" when the
// URL is empty or uses a scriptable scheme. Bare domains and www. hosts get https://.
// Anything else is passed through unchanged.
func SafeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}

	switch {
	case dangerousScheme.MatchString(url):
		log.Printf("[SECURITY] Blocked dangerous URL: %s", truncate(url, 50))
		return ""
	case safeScheme.MatchString(url):
		return url
	case strings.HasPrefix(url, "/"), strings.HasPrefix(url, "."):
		return url
	case wwwPrefix.MatchString(url), bareDomain.MatchString(url):
		return "https://" + url
	}

	log.Printf("[SECURITY] Uncertain URL safety: %s", truncate(url, 50))
	return url
}

// DisplayURL strips the http(s) scheme and a trailing slash for display.
func DisplayURL(url string) string {
	return strings.TrimSuffix(httpScheme.ReplaceAllString(url, ""), "/")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
