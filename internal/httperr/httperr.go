package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps a service-layer error to its HTTP status:
// NotFound 404, InvalidArgument 400, Conflict 409, Unauthorized 401,
// anything else 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	status := http.StatusInternalServerError
	code := "internal_error"

	if errors.As(err, &be) {
		code = be.Code
		switch be.Kind {
		case KindNotFound:
			status = http.StatusNotFound
		case KindInvalidArgument:
			status = http.StatusBadRequest
		case KindConflict:
			status = http.StatusConflict
		case KindUnauthorized:
			status = http.StatusUnauthorized
		}
	}

	Write(c, status, code, err.Error())
}
