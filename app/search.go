package app

import (
	"strings"

	"github.com/skillswap/skillswap-be/model"
)

// MaxSuggestions caps how many suggestions a single query returns.
const MaxSuggestions = 8

// Search matches query as a case-insensitive substring against the
// suggestion index, in index order with no relevance scoring. On the main
// view the whole catalog is searched; in any other view matching narrows to
// the active community. Empty or whitespace-only queries return nothing.
func (n *Navigator) Search(query string) []*model.SuggestionEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	scoped := n.state.View != ViewMain && n.state.ActiveCommunity != ""

	var matches []*model.SuggestionEntry
	for _, entry := range n.store.Suggestions() {
		if scoped && entry.CommunityId != n.state.ActiveCommunity {
			continue
		}
		if !strings.Contains(strings.ToLower(entry.Label), q) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == MaxSuggestions {
			break
		}
	}
	return matches
}
