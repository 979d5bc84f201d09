package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap-be/db"
	"github.com/skillswap/skillswap-be/util"
)

type chatRoutes struct {
	db db.ChatDatabase
}

func AddChatRoutes(group *gin.RouterGroup, chatDatabase db.ChatDatabase) {
	routes := chatRoutes{chatDatabase}
	chat := group.Group("/chat")
	chat.GET("/:communityId", util.HandlerWrapper(routes.getQuestions, &util.HandlerOpts{}))
	chat.POST("/question", util.HandlerWrapper(routes.postQuestion, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	chat.POST("/reply", util.HandlerWrapper(routes.postReply, &util.HandlerOpts{SuccessStatus: http.StatusCreated}))
	chat.POST("/like/:replyId", util.HandlerWrapper(routes.likeReply, &util.HandlerOpts{}))
	chat.POST("/report/:replyId", util.HandlerWrapper(routes.reportReply, &util.HandlerOpts{}))
}

// getQuestions returns the bare question array the feed contract expects,
// replies nested in insertion order.
func (cr *chatRoutes) getQuestions(c *gin.Context) (interface{}, *util.HTTPError) {
	communityId, httpErr := util.ParseId(c.Param("communityId"))
	if httpErr != nil {
		return nil, httpErr
	}
	questions, err := cr.db.GetQuestionsByCommunity(c, communityId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return questions, nil
}

type postQuestionReq struct {
	UserId       int64  `json:"userId"`
	CommunityId  int64  `json:"communityId" binding:"required"`
	QuestionText string `json:"questionText"`
}

func (cr *chatRoutes) postQuestion(c *gin.Context) (interface{}, *util.HTTPError) {
	var req postQuestionReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "question text is required",
		}
	}
	id, err := cr.db.CreateQuestion(c, &db.CreateQuestion{
		UserId:       req.UserId,
		CommunityId:  req.CommunityId,
		QuestionText: util.XSSSanitize(text),
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return gin.H{
		"id": id,
	}, nil
}

type postReplyReq struct {
	UserId     int64  `json:"userId"`
	QuestionId int64  `json:"questionId" binding:"required"`
	ReplyText  string `json:"replyText"`
}

func (cr *chatRoutes) postReply(c *gin.Context) (interface{}, *util.HTTPError) {
	var req postReplyReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	text := strings.TrimSpace(req.ReplyText)
	if text == "" {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "reply text is required",
		}
	}
	question, err := cr.db.GetQuestionById(c, req.QuestionId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	if question == nil {
		return nil, &util.HTTPError{
			Status:  http.StatusNotFound,
			Message: "question not found",
		}
	}
	id, err := cr.db.CreateReply(c, &db.CreateReply{
		UserId:     req.UserId,
		QuestionId: req.QuestionId,
		ReplyText:  util.XSSSanitize(text),
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return gin.H{
		"id": id,
	}, nil
}

func (cr *chatRoutes) likeReply(c *gin.Context) (interface{}, *util.HTTPError) {
	replyId, httpErr := util.ParseId(c.Param("replyId"))
	if httpErr != nil {
		return nil, httpErr
	}
	likes, err := cr.db.LikeReply(c, replyId)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, &util.HTTPError{
				Status:  http.StatusNotFound,
				Message: "reply not found",
			}
		}
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return gin.H{
		"likes": likes,
	}, nil
}

// reportReply records the report and hands back a reference the client can
// show the user. No feed state changes.
func (cr *chatRoutes) reportReply(c *gin.Context) (interface{}, *util.HTTPError) {
	replyId, httpErr := util.ParseId(c.Param("replyId"))
	if httpErr != nil {
		return nil, httpErr
	}
	reference := uuid.NewString()
	if _, err := cr.db.CreateReport(c, &db.CreateReport{
		ReplyId:   replyId,
		Reference: reference,
	}); err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return gin.H{
		"reference": reference,
	}, nil
}
