package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-be/model"
)

// feedBackend is a minimal fake of the chat endpoints.
type feedBackend struct {
	questions []*model.Question
	names     map[int64]string

	lookupCalls  atomic.Int64
	postCalls    atomic.Int64
	blockNext    atomic.Bool
	enteredPost  chan struct{}
	releasePost  chan struct{}
	rejectStatus int
	rejectBody   string
}

func (b *feedBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(b.questions)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/chat/question", func(w http.ResponseWriter, r *http.Request) {
		b.postCalls.Add(1)
		if b.blockNext.CompareAndSwap(true, false) {
			b.enteredPost <- struct{}{}
			<-b.releasePost
		}
		if b.rejectStatus != 0 {
			w.WriteHeader(b.rejectStatus)
			fmt.Fprint(w, b.rejectBody)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":10}`)
	})
	mux.HandleFunc("/api/chat/reply", func(w http.ResponseWriter, r *http.Request) {
		b.postCalls.Add(1)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":11}`)
	})
	mux.HandleFunc("/api/getName", func(w http.ResponseWriter, r *http.Request) {
		b.lookupCalls.Add(1)
		var req struct {
			UserId int64 `json:"userId"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		name, ok := b.names[req.UserId]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"success":false,"message":"User not found"}`)
			return
		}
		fmt.Fprintf(w, `{"id":%d,"name":%q}`, req.UserId, name)
	})
	return mux
}

func newFeedTest(t *testing.T, backend *feedBackend) *Client {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return New(srv.URL, WithLookupConcurrency(4))
}

func TestFetchQuestionsNewestFirstWithResolvedNames(t *testing.T) {
	backend := &feedBackend{
		questions: []*model.Question{
			{Id: 1, UserId: 5, QuestionText: "older", Replies: []*model.Reply{}},
			{Id: 2, UserId: 6, QuestionText: "newer", Replies: []*model.Reply{
				{Id: 20, QuestionId: 2, UserId: 5, ReplyText: "hi", Likes: 1},
			}},
		},
		names: map[int64]string{5: "Ada", 6: "Linus"},
	}
	c := newFeedTest(t, backend)

	questions, err := c.FetchQuestions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, int64(2), questions[0].Id)
	assert.Equal(t, int64(1), questions[1].Id)
	assert.Equal(t, "Linus", questions[0].Name)
	assert.Equal(t, "Ada", questions[1].Name)
	assert.Equal(t, "Ada", questions[0].Replies[0].Name)
}

func TestFetchQuestionsDegradesFailedLookups(t *testing.T) {
	backend := &feedBackend{
		questions: []*model.Question{
			{Id: 1, UserId: 7, QuestionText: "who am I", Replies: []*model.Reply{
				{Id: 30, QuestionId: 1, UserId: 5, ReplyText: "known", Likes: 0},
				{Id: 31, QuestionId: 1, UserId: 99, ReplyText: "unknown", Likes: 0},
			}},
		},
		names: map[int64]string{5: "Ada"},
	}
	c := newFeedTest(t, backend)

	questions, err := c.FetchQuestions(context.Background(), 1)
	require.NoError(t, err, "one failed lookup must not fail the batch")
	require.Len(t, questions, 1)

	assert.Equal(t, "User#7", questions[0].Name)
	assert.Equal(t, "Ada", questions[0].Replies[0].Name)
	assert.Equal(t, "User#99", questions[0].Replies[1].Name)
}

func TestFetchQuestionsAnonymousAuthorSkipsLookup(t *testing.T) {
	backend := &feedBackend{
		questions: []*model.Question{
			{Id: 1, UserId: 0, QuestionText: "anon", Replies: []*model.Reply{}},
		},
	}
	c := newFeedTest(t, backend)

	questions, err := c.FetchQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "User#0", questions[0].Name)
	assert.Equal(t, int64(0), backend.lookupCalls.Load())
}

func TestSortRepliesForDisplay(t *testing.T) {
	stored := []*model.Reply{
		{Id: 1, Likes: 1},
		{Id: 2, Likes: 5},
		{Id: 3, Likes: 3},
		{Id: 4, Likes: 5},
	}
	sorted := SortRepliesForDisplay(stored)

	ids := []int64{sorted[0].Id, sorted[1].Id, sorted[2].Id, sorted[3].Id}
	// Descending likes; the two 5s keep insertion order.
	assert.Equal(t, []int64{2, 4, 3, 1}, ids)

	// The stored order stays untouched.
	assert.Equal(t, int64(1), stored[0].Id)
	assert.Equal(t, int64(2), stored[1].Id)
}

func TestPostQuestionEmptyTextNeverHitsNetwork(t *testing.T) {
	backend := &feedBackend{}
	c := newFeedTest(t, backend)

	for _, text := range []string{"", "   ", "\t\n"} {
		err := c.PostQuestion(context.Background(), 1, 5, text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
	err := c.PostReply(context.Background(), 1, 5, "  ")
	assert.ErrorIs(t, err, ErrEmptyText)

	assert.Equal(t, int64(0), backend.postCalls.Load())
}

func TestPostQuestionSurfacesBackendRejection(t *testing.T) {
	backend := &feedBackend{
		rejectStatus: http.StatusBadRequest,
		rejectBody:   `{"success":false,"message":"question text is required"}`,
	}
	c := newFeedTest(t, backend)

	err := c.PostQuestion(context.Background(), 1, 5, "hello?")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "question text is required", apiErr.Message)
}

func TestPostQuestionSuppressesDoubleSubmit(t *testing.T) {
	backend := &feedBackend{
		enteredPost: make(chan struct{}),
		releasePost: make(chan struct{}),
	}
	backend.blockNext.Store(true)
	c := newFeedTest(t, backend)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- c.PostQuestion(context.Background(), 1, 5, "first")
	}()

	// Wait until the first submit is inside the backend, then try again.
	<-backend.enteredPost
	err := c.PostQuestion(context.Background(), 1, 5, "second")
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(backend.releasePost)
	require.NoError(t, <-firstDone)

	// With the first resolved, submitting works again.
	require.NoError(t, c.PostQuestion(context.Background(), 1, 5, "third"))
}

func TestLikeAndReportReply(t *testing.T) {
	mux := http.NewServeMux()
	var likeCalls, reportCalls int
	mux.HandleFunc("/api/chat/like/7", func(w http.ResponseWriter, r *http.Request) {
		likeCalls++
		fmt.Fprint(w, `{"likes":3}`)
	})
	mux.HandleFunc("/api/chat/report/7", func(w http.ResponseWriter, r *http.Request) {
		reportCalls++
		fmt.Fprint(w, `{"reference":"ab3e4d"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)

	require.NoError(t, c.LikeReply(context.Background(), 7))
	assert.Equal(t, 1, likeCalls)

	reference, err := c.ReportReply(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ab3e4d", reference)
	assert.Equal(t, 1, reportCalls)
}
