package editor

import (
	"regexp"
	"strings"
)

var (
	hexColorRe = regexp.MustCompile(`(?i)^#[0-9A-F]{6}$`)
	urlRe      = regexp.MustCompile(`^https?://[\w/:%#$&?()~.=+-]+$`)
)

// supportedImageFormats are the extensions the platform renders in embeds.
var supportedImageFormats = []string{"png", "jpg", "webp", "gif"}

// ValidHexColor reports whether s is a 7-character #RRGGBB color,
// case-insensitive.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// ValidURL reports whether s is an http/https URL in the restricted character
// set the editor accepts.
func ValidURL(s string) bool {
	return urlRe.MatchString(s)
}

// SupportedImageFormat reports whether the URL's file extension is one the
// platform can render. Query strings and fragments are ignored.
func SupportedImageFormat(rawURL string) bool {
	path := rawURL
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	dot := strings.LastIndex(path, ".")
	if dot < 0 || dot == len(path)-1 {
		return false
	}
	ext := strings.ToLower(path[dot+1:])
	for _, f := range supportedImageFormats {
		if ext == f {
			return true
		}
	}
	return false
}
