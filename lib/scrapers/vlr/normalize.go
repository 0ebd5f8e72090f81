package vlr

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
	"vlrdata-backend/lib/textutil"
)

// stat cells decorate numbers with percent signs, explicit plus signs and
// the typographic minus (U+2212)
var statCleaner = strings.NewReplacer("%", "", "+", "", "−", "-")

// ParseStatInt parses an integer stat cell, returning 0 on any failure.
func ParseStatInt(raw string) int {
	cleaned := statCleaner.Replace(textutil.CleanText(raw))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err == nil {
		return n
	}
	// a decimal shown where an integer was expected still counts
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		slog.Debug("unparsable stat cell", "raw", raw)
		return 0
	}
	return int(f)
}

// ParseStatFloat parses a float stat cell, returning 0 on any failure.
func ParseStatFloat(raw string) float64 {
	cleaned := statCleaner.Replace(textutil.CleanText(raw))
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		slog.Debug("unparsable stat cell", "raw", raw)
		return 0
	}
	return f
}

// ResolveImageURL absolutizes the protocol-relative and root-relative image
// links the site mixes freely. Empty input passes through.
func ResolveImageURL(src string) string {
	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return BaseURL + src
	default:
		return src
	}
}

const dateHeaderLayout = "Mon, January 2, 2006"

// ResolveDateHeader converts a date-header label into an ISO date relative
// to ref. Unrecognized labels fall back to ref's date; the header format has
// drifted before and a wrong-but-close date beats no match at all.
func ResolveDateHeader(label string, ref time.Time) string {
	cleaned := textutil.CleanText(label)
	lower := strings.ToLower(cleaned)

	switch lower {
	case "today":
		return ref.Format(time.DateOnly)
	case "tomorrow":
		return ref.AddDate(0, 0, 1).Format(time.DateOnly)
	}

	// list-page headers suffix the date with a relative marker
	for _, marker := range []string{" today", " tomorrow", " yesterday"} {
		if strings.HasSuffix(lower, marker) {
			cleaned = textutil.CleanText(cleaned[:len(cleaned)-len(marker)])
			break
		}
	}

	t, err := time.Parse(dateHeaderLayout, cleaned)
	if err != nil {
		slog.Debug("unrecognized date header", "label", label)
		return ref.Format(time.DateOnly)
	}
	return t.Format(time.DateOnly)
}

// ResolveTimestamp upgrades a header-derived date to an exact instant when
// the item carries a parsable UTC epoch attribute. Absence or garbage keeps
// the fallback.
func ResolveTimestamp(epochAttr string, fallback string) string {
	ts, err := strconv.ParseInt(strings.TrimSpace(epochAttr), 10, 64)
	if err != nil {
		return fallback
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
