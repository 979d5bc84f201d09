package model

import "time"

// Question is a thread root in a community feed. Replies keep their stored
// insertion order; display ordering is applied by the client at render time.
type Question struct {
	Id           int64     `db:"id" json:"id"`
	UserId       int64     `db:"user_id" json:"userId"`
	CommunityId  int64     `db:"community_id" json:"communityId"`
	QuestionText string    `db:"question_text" json:"questionText"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	Replies      []*Reply  `db:"-" json:"replies"`

	// Name is filled in client-side by the getName lookups. The feed
	// endpoint itself only carries author ids.
	Name string `db:"-" json:"name,omitempty"`
}

type Reply struct {
	Id         int64     `db:"id" json:"id"`
	QuestionId int64     `db:"question_id" json:"questionId"`
	UserId     int64     `db:"user_id" json:"userId"`
	ReplyText  string    `db:"reply_text" json:"replyText"`
	Likes      int       `db:"likes" json:"likes"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	Name string `db:"-" json:"name,omitempty"`
}
