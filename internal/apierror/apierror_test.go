package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	data, err := json.Marshal(New(CodeNotFound, "Meet not found."))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Meet not found."}}`, string(data))
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var reached bool
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		Abort(c, http.StatusForbidden, CodeNotAuthorized, "nope")
	}, func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, Detail{Code: CodeNotAuthorized, Message: "nope"}, resp.Error)
}
