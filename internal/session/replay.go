package session

import "strings"

// LastSearch finds the most recent user entry that classifies as a search.
// Unlike Classify, the query is cut after the matched mode prefix itself and
// trimmed, so "find quarterly" replays "quarterly".
func LastSearch(entries []Entry) (SearchCommand, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		user, ok := entries[i].(UserEntry)
		if !ok {
			continue
		}
		cmd, err := Classify(user.Content)
		if err != nil {
			continue
		}
		if sc, ok := cmd.(SearchCommand); ok {
			runes := []rune(user.Content)
			sc.Query = strings.TrimSpace(string(runes[len(sc.Mode)+1:]))
			return sc, true
		}
	}
	return SearchCommand{}, false
}
