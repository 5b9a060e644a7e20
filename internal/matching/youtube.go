package matching

import (
	"regexp"
	"strings"
)

const youtubeMarker = "youtu"

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)

// ExtractVideoID returns the bare video id from a YouTube watch or youtu.be URL.
//
// Values without "youtu" are taken to be ids already. A URL-looking value that
// matches neither shape comes back unchanged.
func ExtractVideoID(s string) string {
	if !strings.Contains(s, youtubeMarker) {
		return s
	}

	m := videoIDPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[1]
}
