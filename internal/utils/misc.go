package utils

import (
	"strings"
	"time"

	"github.com/hako/durafmt"
)

// FormatUptime renders a duration the way the console prints uptimes: the two most
// significant units up to days, e.g. "15 days 7 hours" or "3 minutes 12 seconds".
func FormatUptime(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Second {
		return "0 seconds"
	}
	return durafmt.Parse(d).LimitToUnit("days").LimitFirstN(2).String()
}

// CutPrefixFold cuts prefix from s ignoring case, keeping the remainder as written.
func CutPrefixFold(s string, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
