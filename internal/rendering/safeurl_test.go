package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeURL_Empty(t *testing.T) {
	assert.Equal(t, "", SafeURL(""))
	assert.Equal(t, "", SafeURL("   "))
}

func TestSafeURL_BlocksDangerousSchemes(t *testing.T) {
	for _, url := range []string{
		"javascript:alert(1)",
		"JavaScript:alert(1)",
		"data:text/html;base64,PHNjcmlwdD4=",
		"vbscript:msgbox",
		"file:///etc/passwd",
		"about:blank",
		"  javascript:void(0)",
	} {
		assert.Equal(t, "", SafeURL(url), url)
	}
}

func TestSafeURL_AllowsSafeSchemes(t *testing.T) {
	for _, url := range []string{
		"https://example.com",
		"http://example.com/path?q=1",
		"mailto:jane@example.com",
		"tel:+33123456789",
		"sms:+33123456789",
		"ftp://files.example.com",
		"HTTPS://EXAMPLE.COM",
	} {
		assert.Equal(t, url, SafeURL(url), url)
	}
}

func TestSafeURL_RelativePaths(t *testing.T) {
	assert.Equal(t, "/cv.pdf", SafeURL("/cv.pdf"))
	assert.Equal(t, "./cv.pdf", SafeURL("./cv.pdf"))
	assert.Equal(t, "../cv.pdf", SafeURL("../cv.pdf"))
}

func TestSafeURL_PromotesDomains(t *testing.T) {
	assert.Equal(t, "https://www.example.com", SafeURL("www.example.com"))
	assert.Equal(t, "https://example.com", SafeURL("example.com"))
	assert.Equal(t, "https://jane.dev", SafeURL(" jane.dev "))
}

func TestSafeURL_UncertainPassesThrough(t *testing.T) {
	assert.Equal(t, "github.com/jane", SafeURL("github.com/jane"))
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "jane.dev", DisplayURL("https://jane.dev/"))
	assert.Equal(t, "jane.dev/blog", DisplayURL("http://jane.dev/blog"))
	assert.Equal(t, "mailto:x@y.z", DisplayURL("mailto:x@y.z"))
	assert.Equal(t, "", DisplayURL(""))
}
