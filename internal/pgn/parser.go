package pgn

import (
	"regexp"
	"strings"
)

var headerRe = regexp.MustCompile(`^\[(\w+)\s+"((?:[^"\\]|\\.)*)"\]\s*$`)

// ParseHeaders extracts PGN tag pairs into a map. Escaped quotes and
// backslashes inside values are unescaped.
func ParseHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = unescape(m[2])
		}
	}
	return out
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return strings.NewReplacer(`\"`, `"`, `\\`, `\`).Replace(s)
}

var siteGameIDRe = regexp.MustCompile(`^https?://(?:[\w-]+\.)?lichess\.org/([0-9A-Za-z]{8})(?:[0-9A-Za-z]{4})?(?:/(?:white|black))?$`)

// GameIDFromSite extracts the 8 character game id from a lichess Site tag such
// as https://lichess.org/qAPyiPom. The player suffix of 12 character ids is
// dropped.
func GameIDFromSite(site string) (string, bool) {
	m := siteGameIDRe.FindStringSubmatch(strings.TrimSpace(site))
	if len(m) != 2 {
		return "", false
	}
	return m[1], true
}
