// Package catalog holds the static community → subcategory → skill tree and
// the flattened suggestion index derived from it. The store is built once at
// startup and is read-only afterwards, so lookups need no locking.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skillswap/skillswap-be/model"
)

type Store struct {
	byPopularity []*model.Community
	byId         map[string]*model.Community
	byFeedId     map[int64]*model.Community
	suggestions  []*model.SuggestionEntry
}

// NewStore builds a store from the given communities. Pass catalog.Default
// for the built-in catalog.
func NewStore(communities []*model.Community) *Store {
	sorted := make([]*model.Community, len(communities))
	copy(sorted, communities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})

	byId := make(map[string]*model.Community, len(communities))
	byFeedId := make(map[int64]*model.Community, len(communities))
	for _, c := range communities {
		byId[c.Id] = c
		byFeedId[c.FeedId] = c
	}

	return &Store{
		byPopularity: sorted,
		byId:         byId,
		byFeedId:     byFeedId,
		suggestions:  buildSuggestions(communities),
	}
}

// Communities returns all communities sorted by popularity descending.
func (s *Store) Communities() []*model.Community {
	return s.byPopularity
}

func (s *Store) Community(id string) (*model.Community, bool) {
	c, ok := s.byId[id]
	return c, ok
}

func (s *Store) CommunityByFeedId(feedId int64) (*model.Community, bool) {
	c, ok := s.byFeedId[feedId]
	return c, ok
}

// Subcategory resolves a sub slug within a community. A missing slug is not
// an error for callers rendering the "all skills" variant.
func (s *Store) Subcategory(communityId, slug string) (*model.Subcategory, bool) {
	c, ok := s.byId[communityId]
	if !ok {
		return nil, false
	}
	for _, sub := range c.Subs {
		if sub.Slug == slug {
			return sub, true
		}
	}
	return nil, false
}

// Suggestions returns the precomputed flat search index.
func (s *Store) Suggestions() []*model.SuggestionEntry {
	return s.suggestions
}

// ResolveFeedId maps a community request parameter to a feed id. It matches
// the community slug first and falls back to a case-insensitive skill name,
// so legacy links like ?community=java still land on the right feed.
func (s *Store) ResolveFeedId(param string) (int64, bool) {
	param = strings.TrimSpace(param)
	if param == "" {
		return 0, false
	}
	if c, ok := s.byId[strings.ToLower(param)]; ok {
		return c.FeedId, true
	}
	for _, c := range s.byPopularity {
		for _, sub := range c.Subs {
			for _, skill := range sub.Skills {
				if strings.EqualFold(skill, param) {
					return c.FeedId, true
				}
			}
		}
	}
	return 0, false
}

func buildSuggestions(communities []*model.Community) []*model.SuggestionEntry {
	var suggestions []*model.SuggestionEntry
	for _, c := range communities {
		suggestions = append(suggestions, &model.SuggestionEntry{
			Kind:        model.SuggestCommunity,
			CommunityId: c.Id,
			Label:       c.Name,
		})
		for _, sub := range c.Subs {
			suggestions = append(suggestions, &model.SuggestionEntry{
				Kind:        model.SuggestSubcategory,
				CommunityId: c.Id,
				SubSlug:     sub.Slug,
				Label:       fmt.Sprintf("%s — %s", sub.Name, c.Name),
			})
			for _, skill := range sub.Skills {
				suggestions = append(suggestions, &model.SuggestionEntry{
					Kind:        model.SuggestSkill,
					CommunityId: c.Id,
					SubSlug:     sub.Slug,
					SkillName:   skill,
					Label:       fmt.Sprintf("%s — %s — %s", skill, sub.Name, c.Name),
				})
			}
		}
	}
	return suggestions
}
