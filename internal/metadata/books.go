package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"shelf/internal/metadata/googlebooks"
)

// Scoring weights for matching a catalog volume against the entry
// title. Richer records win ties between equally close titles.
const (
	scoreExactTitle     = 100
	scoreContainedTitle = 50
	scorePerSharedWord  = 10
	bonusHasImage       = 20
	bonusHasAuthors     = 5
	bonusHasPublisher   = 3
	bonusHasPublishDate = 2
)

var zoomParamPattern = regexp.MustCompile(`([?&])zoom=\d+`)

// scoreVolume ranks how well a search result matches the wanted
// title. Title similarity dominates; completeness bonuses only break
// ties between similar titles.
func scoreVolume(title string, volume googlebooks.Volume) int {
	wanted := strings.ToLower(strings.TrimSpace(title))
	candidate := strings.ToLower(strings.TrimSpace(volume.VolumeInfo.Title))

	var score int
	switch {
	case candidate != "" && candidate == wanted:
		score = scoreExactTitle
	case candidate != "" && (strings.Contains(candidate, wanted) || strings.Contains(wanted, candidate)):
		score = scoreContainedTitle
	default:
		score = scorePerSharedWord * sharedWordCount(wanted, candidate)
	}

	if volume.HasImage() {
		score += bonusHasImage
	}
	if len(volume.VolumeInfo.Authors) > 0 {
		score += bonusHasAuthors
	}
	if volume.VolumeInfo.Publisher != "" {
		score += bonusHasPublisher
	}
	if volume.VolumeInfo.PublishedDate != "" {
		score += bonusHasPublishDate
	}
	return score
}

// sharedWordCount counts distinct whitespace-separated words common
// to both strings.
func sharedWordCount(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	words := map[string]bool{}
	for _, word := range strings.Fields(a) {
		words[word] = true
	}
	seen := map[string]bool{}
	count := 0
	for _, word := range strings.Fields(b) {
		if words[word] && !seen[word] {
			seen[word] = true
			count++
		}
	}
	return count
}

// selectBestVolume picks the highest-scoring candidate. Ties keep the
// first-seen volume so selection stays deterministic for a fixed
// response order.
func selectBestVolume(title string, volumes []googlebooks.Volume) (googlebooks.Volume, bool) {
	var best googlebooks.Volume
	bestScore := -1
	for _, volume := range volumes {
		if score := scoreVolume(title, volume); score > bestScore {
			best = volume
			bestScore = score
		}
	}
	return best, bestScore >= 0
}

// bestCoverFromVolume walks the volume's image links from largest to
// smallest and returns the first enhanced URL that passes the quality
// predicate. When every size is rejected it retries the single
// largest link and accepts it unless the link is explicitly tagged
// with a width under the retry floor.
func bestCoverFromVolume(volume googlebooks.Volume) (string, bool) {
	links := volume.LinksBySize()
	for _, link := range links {
		enhanced := enhanceCoverURL(link)
		if !IsLowQualityCover(enhanced) {
			return enhanced, true
		}
	}
	if len(links) > 0 {
		enhanced := enhanceCoverURL(links[0])
		if width, ok := widthHint(enhanced); !ok || width >= retryAcceptMinWidth {
			return enhanced, true
		}
	}
	return "", false
}

// enhanceCoverURL rewrites a Google Books image link for display:
// https scheme, a fixed mid-level zoom, an explicit width hint, and
// flat edge styling so the image service returns a usable scan.
func enhanceCoverURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") {
		trimmed = "https://" + strings.TrimPrefix(trimmed, "http://")
	}
	if zoomParamPattern.MatchString(trimmed) {
		trimmed = zoomParamPattern.ReplaceAllString(trimmed, "${1}zoom=2")
	}
	if !strings.Contains(trimmed, "fife=") {
		trimmed = appendQueryParam(trimmed, "fife=w800")
	}
	if strings.Contains(trimmed, "edge=curl") {
		trimmed = strings.ReplaceAll(trimmed, "edge=curl", "edge=none")
	} else if !strings.Contains(trimmed, "edge=") {
		trimmed = appendQueryParam(trimmed, "edge=none")
	}
	return trimmed
}

func appendQueryParam(rawURL, param string) string {
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + param
	}
	return rawURL + "?" + param
}

// bookEnvelope assembles the metadata envelope for a chosen volume.
func bookEnvelope(volume googlebooks.Volume, coverURL string) Envelope {
	env := DefaultEnvelope()
	env.CoverURL = coverURL
	env.Source = SourceGoogleBooks
	info := volume.VolumeInfo
	if len(info.Authors) > 0 {
		env.AdditionalInfo["authors"] = strings.Join(info.Authors, ", ")
	}
	if info.Publisher != "" {
		env.AdditionalInfo["publisher"] = info.Publisher
	}
	if info.PublishedDate != "" {
		env.AdditionalInfo["publishedDate"] = info.PublishedDate
	}
	if info.PageCount > 0 {
		env.AdditionalInfo["pageCount"] = strconv.Itoa(info.PageCount)
	}
	if len(info.Categories) > 0 {
		env.AdditionalInfo["categories"] = strings.Join(info.Categories, ", ")
	}
	return env
}
