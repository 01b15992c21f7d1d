package views

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatusLabel turns an upper-snake status such as IN_TRANSIT into "In Transit".
func StatusLabel(s string) string {
	if s == "" {
		return "-"
	}
	words := strings.ReplaceAll(strings.ToLower(s), "_", " ")
	return cases.Title(language.English).String(words)
}

// Count formats n with thousands separators.
func Count(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Rating formats an average rating with one decimal.
func Rating(avg float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f / 5", avg)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
