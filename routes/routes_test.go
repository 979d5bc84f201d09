package routes

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	"github.com/skillswap/skillswap-be/db"
	"github.com/skillswap/skillswap-be/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockChatDB and mockUserDB stub the store with per-test function fields.
type mockChatDB struct {
	getQuestionsByCommunity func(ctx context.Context, communityId int64) ([]*model.Question, error)
	getQuestionById         func(ctx context.Context, id int64) (*model.Question, error)
	createQuestion          func(ctx context.Context, req *db.CreateQuestion) (int64, error)
	createReply             func(ctx context.Context, req *db.CreateReply) (int64, error)
	likeReply               func(ctx context.Context, replyId int64) (int, error)
	createReport            func(ctx context.Context, req *db.CreateReport) (int64, error)
}

func (m *mockChatDB) GetQuestionsByCommunity(ctx context.Context, communityId int64) ([]*model.Question, error) {
	return m.getQuestionsByCommunity(ctx, communityId)
}

func (m *mockChatDB) GetQuestionById(ctx context.Context, id int64) (*model.Question, error) {
	return m.getQuestionById(ctx, id)
}

func (m *mockChatDB) CreateQuestion(ctx context.Context, req *db.CreateQuestion) (int64, error) {
	return m.createQuestion(ctx, req)
}

func (m *mockChatDB) CreateReply(ctx context.Context, req *db.CreateReply) (int64, error) {
	return m.createReply(ctx, req)
}

func (m *mockChatDB) LikeReply(ctx context.Context, replyId int64) (int, error) {
	return m.likeReply(ctx, replyId)
}

func (m *mockChatDB) CreateReport(ctx context.Context, req *db.CreateReport) (int64, error) {
	return m.createReport(ctx, req)
}

type mockUserDB struct {
	createUser            func(ctx context.Context, req *db.CreateUser) (int64, error)
	getUserById           func(ctx context.Context, id int64) (*model.User, error)
	getUserByEmail        func(ctx context.Context, email string) (*model.User, error)
	getCredentialsByEmail func(ctx context.Context, email string) (*model.User, string, error)
}

func (m *mockUserDB) CreateUser(ctx context.Context, req *db.CreateUser) (int64, error) {
	return m.createUser(ctx, req)
}

func (m *mockUserDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	return m.getUserById(ctx, id)
}

func (m *mockUserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.getUserByEmail(ctx, email)
}

func (m *mockUserDB) GetCredentialsByEmail(ctx context.Context, email string) (*model.User, string, error) {
	return m.getCredentialsByEmail(ctx, email)
}

func chatRouter(chatDB db.ChatDatabase) *gin.Engine {
	r := gin.New()
	AddChatRoutes(r.Group("/api"), chatDB)
	return r
}

func authRouter(userDB db.UserDatabase) *gin.Engine {
	r := gin.New()
	AddAuthRoutes(r.Group("/api"), userDB)
	return r
}

func dupKeyErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
