// Package app holds the client-side domain logic: the navigation state
// machine over the catalog and the scoped suggestion search.
package app

import "github.com/skillswap/skillswap-be/catalog"

type View string

const (
	ViewMain            View = "main"
	ViewSubcategoryList View = "subcategoryList"
	ViewSkillPage       View = "skillPage"
)

// NavigationState is the current position in the catalog hierarchy.
// ActiveCommunity is set only in non-main views; ActiveSub only on a skill
// page drilled into a specific subcategory (empty means "all skills").
type NavigationState struct {
	View            View
	ActiveCommunity string
	ActiveSub       string
}

// Navigator owns the navigation state. Transitions happen only through its
// methods; lookups that fail are silently ignored and leave the state
// unchanged.
type Navigator struct {
	store *catalog.Store
	state NavigationState
}

func NewNavigator(store *catalog.Store) *Navigator {
	return &Navigator{
		store: store,
		state: NavigationState{View: ViewMain},
	}
}

func (n *Navigator) State() NavigationState {
	return n.state
}

// ShowMain resets to the main card view. Idempotent.
func (n *Navigator) ShowMain() {
	n.state = NavigationState{View: ViewMain}
}

// OpenCommunity transitions to the community's subcategory list. Unknown
// ids are a no-op.
func (n *Navigator) OpenCommunity(communityId string) {
	if _, ok := n.store.Community(communityId); !ok {
		return
	}
	n.state = NavigationState{
		View:            ViewSubcategoryList,
		ActiveCommunity: communityId,
	}
}

// OpenSkillPage transitions to a community's skill page. An empty or
// unresolved subSlug renders the "all skills" variant rather than failing;
// only an unknown community is a no-op.
func (n *Navigator) OpenSkillPage(communityId, subSlug string) {
	if _, ok := n.store.Community(communityId); !ok {
		return
	}
	if subSlug != "" {
		if _, ok := n.store.Subcategory(communityId, subSlug); !ok {
			subSlug = ""
		}
	}
	n.state = NavigationState{
		View:            ViewSkillPage,
		ActiveCommunity: communityId,
		ActiveSub:       subSlug,
	}
}

// GoBack returns to main from any view. The hierarchy is only two levels
// deep below main, so there is no back stack.
func (n *Navigator) GoBack() {
	n.ShowMain()
}
