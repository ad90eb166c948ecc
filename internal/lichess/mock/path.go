package mock

import "regexp"

var exportGamePathRe = regexp.MustCompile(`^/game/export/(?P<game_id>[^/]+)$`)

// ExtractGameID returns the id segment of a /game/export/{id} path, exactly as
// it appears. Anything else, including a trailing slash, is not a match.
func ExtractGameID(path string) (string, bool) {
	m := exportGamePathRe.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[exportGamePathRe.SubexpIndex("game_id")], true
}
