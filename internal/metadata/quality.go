package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

// Width thresholds applied to Google Books content URLs. Thumbnails
// below these widths render as visible pixel mush in the list view.
const (
	strictFrontCoverMinWidth = 180
	genericContentMinWidth   = 128
	retryAcceptMinWidth      = 90
)

var widthParamPattern = regexp.MustCompile(`[?&]w=(\d+)`)

// IsLowQualityCover reports whether a cover URL is a known
// low-quality thumbnail shape that should be skipped in favor of the
// next fallback tier.
func IsLowQualityCover(rawURL string) bool {
	return LowQualityReason(rawURL) != ""
}

// LowQualityReason explains why a cover URL is considered low
// quality, or returns "" when the URL is acceptable. The predicate is
// shared by the primary and alternative resolution paths so both
// reject the same thumbnails.
func LowQualityReason(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "empty cover url"
	}
	width, hasWidth := widthHint(trimmed)
	if isFrontCoverThumbnail(trimmed) {
		if hasWidth && width < strictFrontCoverMinWidth {
			return "front-cover thumbnail narrower than " + strconv.Itoa(strictFrontCoverMinWidth) + "px"
		}
		return ""
	}
	if strings.Contains(trimmed, "/books/content") && hasWidth && width < genericContentMinWidth {
		return "content image narrower than " + strconv.Itoa(genericContentMinWidth) + "px"
	}
	return ""
}

// isFrontCoverThumbnail matches the Google Books front-cover
// thumbnail shape that is almost always served tiny.
func isFrontCoverThumbnail(rawURL string) bool {
	return strings.Contains(rawURL, "books.google") &&
		strings.Contains(rawURL, "/books/content") &&
		strings.Contains(rawURL, "printsec=frontcover")
}

// widthHint extracts the explicit w= query parameter when present.
func widthHint(rawURL string) (int, bool) {
	match := widthParamPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return 0, false
	}
	width, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return width, true
}
