package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-be/catalog"
)

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	return NewNavigator(catalog.NewStore(catalog.Default))
}

func TestInitialStateIsMain(t *testing.T) {
	nav := newTestNavigator(t)
	assert.Equal(t, NavigationState{View: ViewMain}, nav.State())
}

func TestOpenCommunityThenBackForEveryCommunity(t *testing.T) {
	nav := newTestNavigator(t)
	for _, c := range catalog.Default {
		nav.OpenCommunity(c.Id)
		require.Equal(t, ViewSubcategoryList, nav.State().View)
		require.Equal(t, c.Id, nav.State().ActiveCommunity)

		nav.GoBack()
		assert.Equal(t, NavigationState{View: ViewMain}, nav.State())
	}
}

func TestOpenUnknownCommunityIsNoOp(t *testing.T) {
	nav := newTestNavigator(t)
	nav.OpenCommunity("atlantis")
	assert.Equal(t, NavigationState{View: ViewMain}, nav.State())

	// Same from a non-main view: the state must not change at all.
	nav.OpenCommunity("tech")
	before := nav.State()
	nav.OpenCommunity("atlantis")
	assert.Equal(t, before, nav.State())
}

func TestOpenSkillPage(t *testing.T) {
	nav := newTestNavigator(t)

	nav.OpenSkillPage("tech", "programming")
	assert.Equal(t, NavigationState{
		View:            ViewSkillPage,
		ActiveCommunity: "tech",
		ActiveSub:       "programming",
	}, nav.State())

	// No sub slug is a meaningful request: the "all skills" variant.
	nav.OpenSkillPage("tech", "")
	assert.Equal(t, NavigationState{
		View:            ViewSkillPage,
		ActiveCommunity: "tech",
	}, nav.State())

	// An unresolved slug also degrades to the all-skills variant.
	nav.OpenSkillPage("tech", "quantum")
	assert.Equal(t, NavigationState{
		View:            ViewSkillPage,
		ActiveCommunity: "tech",
	}, nav.State())

	// Unknown community stays a no-op even with a valid-looking slug.
	before := nav.State()
	nav.OpenSkillPage("atlantis", "programming")
	assert.Equal(t, before, nav.State())
}

func TestGoBackAlwaysReturnsToMain(t *testing.T) {
	nav := newTestNavigator(t)

	nav.OpenSkillPage("cooking", "baking")
	nav.GoBack()
	assert.Equal(t, NavigationState{View: ViewMain}, nav.State())

	// Already on main: idempotent.
	nav.GoBack()
	assert.Equal(t, NavigationState{View: ViewMain}, nav.State())
}

func TestShowMainIsIdempotent(t *testing.T) {
	nav := newTestNavigator(t)
	nav.OpenCommunity("diy")
	nav.ShowMain()
	nav.ShowMain()
	assert.Equal(t, NavigationState{View: ViewMain}, nav.State())
}
