package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/swimdq/internal/apierror"
)

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse = apierror.Response

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	apierror.JSON(c, statusCode, code, message)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, apierror.CodeNotFound, message, http.StatusNotFound)
}

func forbiddenResponse(c *gin.Context, message string) {
	errorResponse(c, apierror.CodeNotAuthorized, message, http.StatusForbidden)
}
