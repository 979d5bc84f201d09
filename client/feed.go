package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/skillswap/skillswap-be/model"
)

// FetchQuestions loads a community's feed, newest question first, with
// author names resolved. Name lookups fan out concurrently and are joined
// before returning; a failed lookup degrades to a placeholder label and
// never fails the fetch.
func (c *Client) FetchQuestions(ctx context.Context, feedId int64) ([]*model.Question, error) {
	var questions []*model.Question
	if err := c.get(ctx, fmt.Sprintf("/api/chat/%d", feedId), &questions); err != nil {
		return nil, err
	}

	// Newest first. Ids are a monotonic proxy for creation time.
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Id > questions[j].Id
	})

	c.resolveAuthorNames(ctx, questions)
	return questions, nil
}

func (c *Client) resolveAuthorNames(ctx context.Context, questions []*model.Question) {
	var g errgroup.Group
	g.SetLimit(c.lookupConcurrency)
	for _, q := range questions {
		q := q
		g.Go(func() error {
			q.Name = c.lookupName(ctx, q.UserId)
			return nil
		})
		for _, r := range q.Replies {
			r := r
			g.Go(func() error {
				r.Name = c.lookupName(ctx, r.UserId)
				return nil
			})
		}
	}
	// Lookups never return errors; they degrade to placeholders.
	g.Wait()
}

func (c *Client) lookupName(ctx context.Context, userId int64) string {
	placeholder := fmt.Sprintf("User#%d", userId)
	if userId == 0 {
		// Anonymous author; the backend has no row to resolve.
		return placeholder
	}
	if err := c.lookupLimiter.Wait(ctx); err != nil {
		return placeholder
	}
	info, err := c.ResolveName(ctx, NameLookup{UserId: userId})
	if err != nil {
		c.logger.Warn("name lookup failed", "userId", userId, "error", err)
		return placeholder
	}
	return info.Name
}

// PostQuestion submits a question. There is no optimistic insert; on
// success the caller re-fetches the feed for the canonical list.
func (c *Client) PostQuestion(ctx context.Context, feedId, userId int64, text string) error {
	if emptyText(text) {
		return ErrEmptyText
	}
	if !c.questionInFlight.acquire() {
		return ErrSubmitInFlight
	}
	defer c.questionInFlight.release()

	return c.post(ctx, "/api/chat/question", map[string]interface{}{
		"userId":       userId,
		"communityId":  feedId,
		"questionText": text,
	}, nil)
}

// PostReply submits a reply under a question; same re-fetch-after-success
// policy as PostQuestion.
func (c *Client) PostReply(ctx context.Context, questionId, userId int64, text string) error {
	if emptyText(text) {
		return ErrEmptyText
	}
	if !c.replyInFlight.acquire() {
		return ErrSubmitInFlight
	}
	defer c.replyInFlight.release()

	return c.post(ctx, "/api/chat/reply", map[string]interface{}{
		"userId":     userId,
		"questionId": questionId,
		"replyText":  text,
	}, nil)
}

// LikeReply asks the backend to increment a reply's like count. The caller
// re-fetches to pick up the authoritative count; there is no local
// optimistic increment to drift from concurrent likes.
func (c *Client) LikeReply(ctx context.Context, replyId int64) error {
	return c.post(ctx, fmt.Sprintf("/api/chat/like/%d", replyId), nil, nil)
}

// ReportReply flags a reply for moderation and returns the report
// reference. Purely informational; no feed state changes.
func (c *Client) ReportReply(ctx context.Context, replyId int64) (string, error) {
	var res struct {
		Reference string `json:"reference"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/chat/report/%d", replyId), nil, &res); err != nil {
		return "", err
	}
	return res.Reference, nil
}

// SortRepliesForDisplay orders replies by descending like count, ties in
// stored insertion order. Render-time only; the stored order is untouched
// because the sort works on a copy.
func SortRepliesForDisplay(replies []*model.Reply) []*model.Reply {
	sorted := make([]*model.Reply, len(replies))
	copy(sorted, replies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})
	return sorted
}

func emptyText(text string) bool {
	return strings.TrimSpace(text) == ""
}
