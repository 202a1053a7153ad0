package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxURLLen        = 2048 // transcripts.url VARCHAR(2048)
	MaxClientNameLen = 128  // status_checks.client_name VARCHAR(128)
)

// entryIDRe matches the UUIDs we generate for history entries.
var entryIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ErrorResponse returns the standard API error body. The message is
// mirrored into a top-level detail field, which is what clients read.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"detail": message,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoURL checks that a summarize input looks like a YouTube
// link. This mirrors the client-side pre-check: a substring test, not
// a full URL parse — ID extraction catches the rest.
func ValidateVideoURL(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "youtube_url is required"
	}
	if len(raw) > MaxURLLen {
		return "", "youtube_url is too long"
	}
	if !strings.Contains(raw, "youtube.com") && !strings.Contains(raw, "youtu.be") {
		return "", "Please enter a valid YouTube URL"
	}
	return raw, ""
}

// ValidateChannelURL checks that a channel lookup input points at YouTube.
func ValidateChannelURL(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "channel_url is required"
	}
	if len(raw) > MaxURLLen {
		return "", "channel_url is too long"
	}
	if !strings.Contains(raw, "youtube.com") {
		return "", "Please enter a valid YouTube channel URL"
	}
	return raw, ""
}

// ValidateEntryID checks that a history-entry ID is one of our UUIDs.
func ValidateEntryID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "entry id is required"
	}
	if !entryIDRe.MatchString(id) {
		return "", "entry id is malformed"
	}
	return id, ""
}

// ValidateClientName trims and truncates a status-check client name.
func ValidateClientName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "client_name is required"
	}
	if len(name) > MaxClientNameLen {
		name = name[:MaxClientNameLen]
	}
	return name, ""
}
