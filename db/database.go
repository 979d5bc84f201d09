package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/skillswap/skillswap-be/model"
)

// ErrNotFound is returned when a write targets a row that does not exist.
// Reads return (nil, nil) for missing rows instead.
var ErrNotFound = errors.New("not found")

type Database interface {
	ChatDatabase
	UserDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreateUser struct {
	Name         string
	Email        string
	PasswordHash string
}

type CreateQuestion struct {
	UserId       int64 // 0 posts anonymously
	CommunityId  int64
	QuestionText string
}

type CreateReply struct {
	UserId     int64
	QuestionId int64
	ReplyText  string
}

type CreateReport struct {
	ReplyId   int64
	Reference string
}

type ChatDatabase interface {
	GetQuestionsByCommunity(ctx context.Context, communityId int64) ([]*model.Question, error)
	GetQuestionById(ctx context.Context, id int64) (*model.Question, error)
	CreateQuestion(ctx context.Context, req *CreateQuestion) (questionId int64, err error)
	CreateReply(ctx context.Context, req *CreateReply) (replyId int64, err error)
	// LikeReply increments atomically and returns the post-increment count.
	LikeReply(ctx context.Context, replyId int64) (likes int, err error)
	CreateReport(ctx context.Context, req *CreateReport) (reportId int64, err error)
}

type UserDatabase interface {
	CreateUser(ctx context.Context, req *CreateUser) (userId int64, err error)
	GetUserById(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetCredentialsByEmail also returns the stored bcrypt hash for login.
	GetCredentialsByEmail(ctx context.Context, email string) (*model.User, string, error)
}
