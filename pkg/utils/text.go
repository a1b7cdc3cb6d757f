package utils

import (
	"strings"
	"time"
	"unicode"
)

// TimeLayout is the timestamp format used everywhere: local-less ISO-8601,
// always rendered in UTC.
const TimeLayout = "2006-01-02T15:04:05"

// TrimQuotes strips surrounding whitespace and double quotes, repeatedly,
// so `  "  title  "  ` comes back as `title`.
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	for len(s) > 0 && (s[0] == '"' || s[len(s)-1] == '"') {
		s = strings.TrimSpace(strings.Trim(s, `"`))
	}
	return s
}

// Sanitize makes a string safe for CSV cells and sqlite3 shell one-liners.
// Commas become the full-width "、" and quote characters become "’" so that
// naive CSV tooling never sees a field separator or an unbalanced quote
// inside a cell.
func Sanitize(s string) string {
	s = TrimQuotes(s)
	r := strings.NewReplacer(
		",", "、",
		`"`, "’",
		"'", "’",
		"`", "’",
	)
	return r.Replace(s)
}

// IsJapanese reports whether the string contains any Hiragana, Katakana or
// Han rune. Titles matching this get a romanized companion field.
func IsJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}

// MicrosToMillis converts a Firefox epoch-microseconds stamp to millis.
func MicrosToMillis(micros int64) int64 {
	return micros / 1000
}

// FormatEpochMillis renders epoch millis as "2006-01-02T15:04:05" in UTC.
func FormatEpochMillis(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(TimeLayout)
}

// ParseTimestamp parses a "2006-01-02T15:04:05" string, assumed UTC, and
// returns epoch millis.
func ParseTimestamp(s string) (int64, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.UTC().UnixMilli(), nil
}
