package matcher

import "strings"

func (e *Entry) DisplayName() string {
	if e.Nickname != "" {
		return e.Nickname
	}
	return e.PlayerName
}

// scoreEntry rates how well a query matches an indexed player. The score only
// ranks candidates, resolution always goes through the user except for the
// single-result case.
func scoreEntry(query string, entry *Entry) float64 {
	query = strings.ToLower(query)

	best := 0.0
	for _, name := range []string{entry.PlayerName, entry.Nickname} {
		if name == "" {
			continue
		}

		if score := scoreName(query, strings.ToLower(name)); score > best {
			best = score
		}
	}

	return best
}

func scoreName(query, name string) float64 {
	switch {
	case name == query:
		return 1.0
	case strings.HasPrefix(name, query):
		return 0.9
	case strings.Contains(name, query):
		return 0.75
	}

	queryTokens := strings.Fields(query)
	if len(queryTokens) == 0 {
		return 0
	}

	nameTokens := make(map[string]bool)
	for _, token := range strings.Fields(name) {
		nameTokens[token] = true
	}

	overlap := 0
	for _, token := range queryTokens {
		if nameTokens[token] {
			overlap++
		}
	}

	if overlap == 0 {
		return 0
	}

	return 0.5 * float64(overlap) / float64(len(queryTokens))
}
