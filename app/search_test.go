package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-be/model"
)

func TestSearchJavaFromMain(t *testing.T) {
	nav := newTestNavigator(t)
	results := nav.Search("java")
	require.NotEmpty(t, results)

	var sawJavaSkill, sawJavaScript bool
	for _, entry := range results {
		assert.Contains(t, strings.ToLower(entry.Label), "java")
		assert.Equal(t, "tech", entry.CommunityId)
		if entry.SkillName == "Java" {
			sawJavaSkill = true
			assert.Equal(t, "programming", entry.SubSlug)
		}
		if entry.SkillName == "JavaScript" {
			sawJavaScript = true
		}
	}
	assert.True(t, sawJavaSkill, "expected the Java skill of tech/programming")
	assert.True(t, sawJavaScript, "substring match should also hit JavaScript")
}

func TestSearchMatchesAreSubstringsInInputOrder(t *testing.T) {
	nav := newTestNavigator(t)
	results := nav.Search("ING")
	require.NotEmpty(t, results)

	// Results keep suggestion-index order: no relevance scoring.
	suggestions := nav.store.Suggestions()
	lastIdx := -1
	for _, entry := range results {
		assert.Contains(t, strings.ToLower(entry.Label), "ing")
		idx := indexOf(suggestions, entry)
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, lastIdx)
		lastIdx = idx
	}
}

func TestSearchCapsAtEight(t *testing.T) {
	nav := newTestNavigator(t)
	// "a" matches far more than 8 labels across the catalog.
	results := nav.Search("a")
	assert.Len(t, results, MaxSuggestions)
}

func TestSearchScopesToActiveCommunity(t *testing.T) {
	nav := newTestNavigator(t)
	nav.OpenCommunity("cooking")

	for _, query := range []string{"a", "ba", "cur"} {
		for _, entry := range nav.Search(query) {
			assert.Equal(t, "cooking", entry.CommunityId, "query %q leaked outside the community", query)
		}
	}

	// Skill page view scopes the same way.
	nav.OpenSkillPage("cooking", "baking")
	for _, entry := range nav.Search("a") {
		assert.Equal(t, "cooking", entry.CommunityId)
	}
}

func TestSearchEmptyOrWhitespaceYieldsNothing(t *testing.T) {
	nav := newTestNavigator(t)
	assert.Empty(t, nav.Search(""))
	assert.Empty(t, nav.Search("   "))
	assert.Empty(t, nav.Search("\t\n"))
}

func TestSearchNoMatches(t *testing.T) {
	nav := newTestNavigator(t)
	assert.Empty(t, nav.Search("xyzzy"))
}

func indexOf(entries []*model.SuggestionEntry, target *model.SuggestionEntry) int {
	for i, entry := range entries {
		if entry == target {
			return i
		}
	}
	return -1
}
