package journey

import (
	"fmt"
	"net/url"
	"strings"
)

const navigationTemplate = "https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s&travelmode=driving"

// FormatTime renders a minute count for display.
// The minutes word is always plural ("1 hour 1 minutes"); consumers match on that string.
func FormatTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := minutes / 60
	mins := minutes % 60

	unit := "hour"
	if hours > 1 {
		unit = "hours"
	}
	if mins > 0 {
		return fmt.Sprintf("%d %s %d minutes", hours, unit, mins)
	}
	return fmt.Sprintf("%d %s", hours, unit)
}

// NavigationLink builds a Google Maps driving directions URL for two address strings.
func NavigationLink(origin, destination string) string {
	return fmt.Sprintf(navigationTemplate, encodeComponent(origin), encodeComponent(destination))
}

// componentUnescape lists the characters url.QueryEscape encodes but
// browsers' URI component encoding leaves alone.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
