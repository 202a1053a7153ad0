package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

// videoIDPatterns cover the URL shapes we accept: watch pages, embeds,
// short youtu.be links, and bare /<id> paths. A video ID is always 11
// characters of [0-9A-Za-z_-].
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:watch\?v=)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("could not extract video ID from URL")
}

// IsVideoURL is the cheap pre-check used before any network call:
// the string must mention a YouTube host at all.
func IsVideoURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

var channelIDRe = regexp.MustCompile(`/channel/(UC[0-9A-Za-z_-]{22})`)

// ParseChannelID extracts the channel ID from a /channel/UC... URL.
// Handle, /c/ and /user/ URLs carry no ID and need a page fetch to resolve.
func ParseChannelID(url string) (string, bool) {
	if m := channelIDRe.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}

// FeedURL returns the uploads RSS feed for a channel ID.
func FeedURL(channelID string) string {
	return "https://www.youtube.com/feeds/videos.xml?channel_id=" + channelID
}
