package util

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-be/middleware"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var (
	DbHTTPErr = HTTPError{
		Message: "database error",
		Status:  http.StatusInternalServerError,
	}
	MalformedIdHTTPErr = HTTPError{
		Message: "id malformed",
		Status:  http.StatusBadRequest,
	}
)

func BuildDbHTTPErr(c *gin.Context, err error) *HTTPError {
	log.Println("database error occurred", "requestId="+middleware.GetRequestId(c), err)
	return &DbHTTPErr
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("malformed request body: %v", err),
	}
}

// Handler is a route handler returning either a response body or an HTTP
// error. The wrapper keeps success bodies bare (the feed contract returns
// plain arrays and objects) and renders errors in the standard envelope.
type Handler func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct {
	// SuccessStatus overrides the 200 written on success.
	SuccessStatus int
}

func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		status := opts.SuccessStatus
		if status == 0 {
			status = http.StatusOK
		}
		if data == nil {
			c.Status(status)
			return
		}
		c.JSON(status, data)
	}
}

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"success": false,
		"message": err.Message,
	})
}
