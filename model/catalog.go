package model

// Community is a top-level topic grouping. The catalog is static: loaded
// once at startup and immutable afterwards.
type Community struct {
	Id         string         `json:"id"`
	Name       string         `json:"name"`
	ColorVar   string         `json:"colorVar"`
	Emoji      string         `json:"emoji"`
	Popularity int            `json:"popularity"` // higher appears first
	Subs       []*Subcategory `json:"subs"`

	// FeedId is the numeric id the chat endpoints key their feeds by.
	FeedId int64 `json:"feedId"`
}

type Subcategory struct {
	Slug   string   `json:"slug"` // unique within its community
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SuggestionKind tags a row of the flattened search index.
type SuggestionKind string

const (
	SuggestCommunity   SuggestionKind = "community"
	SuggestSubcategory SuggestionKind = "subcategory"
	SuggestSkill       SuggestionKind = "skill"
)

// SuggestionEntry is a denormalized, searchable projection of the catalog:
// one row per community, subcategory and skill.
type SuggestionEntry struct {
	Kind        SuggestionKind `json:"type"`
	CommunityId string         `json:"id"`
	SubSlug     string         `json:"subSlug,omitempty"`
	SkillName   string         `json:"skillName,omitempty"`
	Label       string         `json:"label"`
}
