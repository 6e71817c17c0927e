// Package apierror defines the JSON error body returned by every endpoint.
package apierror

import "github.com/gin-gonic/gin"

// Error codes carried in Response.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotAuthorized  = "NOT_AUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// InternalMessage is the message sent with CodeInternal.
const InternalMessage = "internal server error"

// Detail is the code and message of one error.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the {"error":{"code","message"}} body.
type Response struct {
	Error Detail `json:"error"`
}

// New builds a Response.
func New(code, message string) Response {
	return Response{Error: Detail{Code: code, Message: message}}
}

// JSON writes the error body with statusCode.
func JSON(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, New(code, message))
}

// Abort writes the error body with statusCode and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, New(code, message))
}
