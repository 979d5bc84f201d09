package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-be/db"
	"github.com/skillswap/skillswap-be/util"
)

type authRoutes struct {
	db db.UserDatabase
}

func AddAuthRoutes(group *gin.RouterGroup, userDatabase db.UserDatabase) {
	routes := authRoutes{userDatabase}
	group.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))
	group.POST("/signup", util.HandlerWrapper(routes.signup, &util.HandlerOpts{}))
	group.POST("/getName", util.HandlerWrapper(routes.getName, &util.HandlerOpts{}))
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ar *authRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req loginReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	user, hash, err := ar.db.GetCredentialsByEmail(c, req.Email)
	if err != nil {
		return nil, util.BuildDbHTTPErr(c, err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, &util.HTTPError{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		}
	}
	return user, nil
}

type signupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ar *authRoutes) signup(c *gin.Context) (interface{}, *util.HTTPError) {
	var req signupReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &util.HTTPError{
			Status:  http.StatusInternalServerError,
			Message: "could not process password",
		}
	}
	id, err := ar.db.CreateUser(c, &db.CreateUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if db.IsDupKeyErr(err) {
			return nil, &util.HTTPError{
				Status:  http.StatusBadRequest,
				Message: "Email already registered",
			}
		}
		return nil, util.BuildDbHTTPErr(c, err)
	}
	return gin.H{
		"id":    id,
		"name":  req.Name,
		"email": req.Email,
	}, nil
}

// getNameReq is dual-mode: lookups come in either by email (the login flow)
// or by user id (feed author resolution).
type getNameReq struct {
	Email  string `json:"email"`
	UserId int64  `json:"userId"`
}

var userNotFoundHTTPErr = util.HTTPError{
	Status:  http.StatusNotFound,
	Message: "User not found",
}

func (ar *authRoutes) getName(c *gin.Context) (interface{}, *util.HTTPError) {
	var req getNameReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}

	switch {
	case req.Email != "":
		user, err := ar.db.GetUserByEmail(c, req.Email)
		if err != nil {
			return nil, util.BuildDbHTTPErr(c, err)
		}
		if user == nil {
			return nil, &userNotFoundHTTPErr
		}
		return nameRes(user.Id, user.Name), nil
	case req.UserId != 0:
		user, err := ar.db.GetUserById(c, req.UserId)
		if err != nil {
			return nil, util.BuildDbHTTPErr(c, err)
		}
		if user == nil {
			return nil, &userNotFoundHTTPErr
		}
		return nameRes(user.Id, user.Name), nil
	default:
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "email or userId required",
		}
	}
}

func nameRes(id int64, name string) gin.H {
	return gin.H{
		"id":     id,
		"name":   name,
		"avatar": util.Avatar(strconv.FormatInt(id, 10)),
	}
}
