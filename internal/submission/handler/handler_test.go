package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/swimdq/internal/infraction"
	meetModel "github.com/festy23/swimdq/internal/meet/model"
	"github.com/festy23/swimdq/internal/submission/model"
	"github.com/festy23/swimdq/internal/submission/service"
)

// mockService keeps the draft operations real so session round trips can
// be observed, and mocks the store-backed calls.
type mockService struct {
	mock.Mock
	taxonomy *infraction.Taxonomy
}

func newMockService() *mockService {
	return &mockService{taxonomy: infraction.Default()}
}

func (m *mockService) GetSubmissionForm(ctx context.Context, meetID string) (*model.FormResponse, error) {
	args := m.Called(ctx, meetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormResponse), args.Error(1)
}

func (m *mockService) Labels(stroke string) []infraction.Label {
	return m.taxonomy.LabelsFor(stroke)
}

func (m *mockService) SelectStroke(draft *model.Draft, stroke string) error {
	if !m.taxonomy.IsStroke(stroke) {
		return model.ErrUnknownStroke
	}
	draft.SelectStroke(stroke)
	return nil
}

func (m *mockService) ToggleInfraction(draft *model.Draft, value string) (bool, error) {
	if !draft.HasStroke() {
		return false, model.ErrNoStrokeSelected
	}
	return draft.Toggle(value), nil
}

func (m *mockService) SetOtherText(draft *model.Draft, text string) {
	draft.SetOtherText(text)
}

func (m *mockService) Submit(
	ctx context.Context,
	meetID string,
	draft *model.Draft,
	req *model.SubmitRequest,
) (*model.SubmissionResponse, error) {
	args := m.Called(ctx, meetID, draft, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubmissionResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))
	h := New(svc, zap.NewNop().Sugar())
	r.GET("/submit/:meetId", h.GetForm)
	r.POST("/submit/:meetId", h.Submit)
	r.GET("/submit/:meetId/infractions", h.ListInfractions)
	r.GET("/submit/:meetId/draft", h.GetDraft)
	r.PUT("/submit/:meetId/draft/stroke", h.SelectStroke)
	r.POST("/submit/:meetId/draft/toggle", h.ToggleInfraction)
	r.PUT("/submit/:meetId/draft/other", h.SetOtherText)
	return r
}

// client replays the session cookie between requests.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func decodeDraft(t *testing.T, w *httptest.ResponseRecorder) model.DraftResponse {
	t.Helper()
	var resp model.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_GetForm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}
		svc.On("GetSubmissionForm", mock.Anything, "m1").Return(&model.FormResponse{
			Meet:    model.MeetSummary{ID: "m1", Name: "Dolphins vs Sharks - 2024-06-01"},
			Strokes: []string{"Medley", "Butterfly"},
		}, nil)

		w := c.do(t, http.MethodGet, "/submit/m1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.FormResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Dolphins vs Sharks - 2024-06-01", resp.Meet.Name)
	})

	t.Run("meet not found", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}
		svc.On("GetSubmissionForm", mock.Anything, "missing").Return(nil, meetModel.ErrMeetNotFound)

		w := c.do(t, http.MethodGet, "/submit/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
		assert.Equal(t, "Meet not found.", resp.Error.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}
		svc.On("GetSubmissionForm", mock.Anything, "m1").Return(nil, errors.New("store unreachable"))

		w := c.do(t, http.MethodGet, "/submit/m1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Error.Code)
	})
}

func TestHandler_ListInfractions(t *testing.T) {
	c := &client{router: setupRouter(newMockService())}

	t.Run("known stroke", func(t *testing.T) {
		w := c.do(t, http.MethodGet, "/submit/m1/infractions?stroke=Relays", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.InfractionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Relays", resp.Stroke)
		assert.Len(t, resp.Labels, 5)
		assert.Equal(t, "Medley", resp.Labels[0].Group)
	})

	t.Run("unknown stroke renders nothing", func(t *testing.T) {
		w := c.do(t, http.MethodGet, "/submit/m1/infractions?stroke=Sidestroke", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"stroke":"Sidestroke","labels":[]}`, w.Body.String())
	})
}

func TestHandler_DraftFlow(t *testing.T) {
	c := &client{router: setupRouter(newMockService())}

	w := c.do(t, http.MethodGet, "/submit/m1/draft", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stroke":"","selected":[],"otherText":"","labels":[]}`, w.Body.String())

	w = c.do(t, http.MethodPost, "/submit/m1/draft/toggle", `{"value":"Stroke Infraction"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{"stroke":"Breaststroke"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDraft(t, w).Labels, 16)

	c.do(t, http.MethodPost, "/submit/m1/draft/toggle", `{"value":"Kick: Alternating"}`)
	c.do(t, http.MethodPost, "/submit/m1/draft/toggle", `{"value":"Touch: No Touch"}`)
	w = c.do(t, http.MethodPut, "/submit/m1/draft/other", `{"text":" slipped "}`)
	require.Equal(t, http.StatusOK, w.Code)

	draft := decodeDraft(t, c.do(t, http.MethodGet, "/submit/m1/draft", ""))
	assert.Equal(t, "Breaststroke", draft.Stroke)
	assert.Equal(t, []string{"Kick: Alternating", "Touch: No Touch"}, draft.Selected)
	assert.Equal(t, " slipped ", draft.OtherText)

	t.Run("drafts are scoped per meet", func(t *testing.T) {
		other := decodeDraft(t, c.do(t, http.MethodGet, "/submit/m2/draft", ""))
		assert.Empty(t, other.Stroke)
		assert.Empty(t, other.Selected)
	})

	t.Run("stroke change resets draft", func(t *testing.T) {
		w := c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{"stroke":"Butterfly"}`)
		require.Equal(t, http.StatusOK, w.Code)

		draft := decodeDraft(t, w)
		assert.Equal(t, "Butterfly", draft.Stroke)
		assert.Empty(t, draft.Selected)
		assert.Empty(t, draft.OtherText)
	})

	t.Run("unknown stroke rejected", func(t *testing.T) {
		w := c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{"stroke":"Sidestroke"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
	})

	t.Run("malformed bodies rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{}`).Code)
		assert.Equal(t, http.StatusBadRequest, c.do(t, http.MethodPost, "/submit/m1/draft/toggle", `{"value":`).Code)
		assert.Equal(t, http.StatusBadRequest, c.do(t, http.MethodPut, "/submit/m1/draft/other", `[1]`).Code)
	})
}

func TestHandler_UnreadableDraftStartsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))
	r.GET("/seed", func(c *gin.Context) {
		s := sessions.Default(c)
		s.Set(draftKey, "{not json")
		_ = s.Save()
	})
	h := New(newMockService(), zap.NewNop().Sugar())
	r.GET("/submit/:meetId/draft", h.GetDraft)
	c := &client{router: r}

	c.do(t, http.MethodGet, "/seed", "")
	draft := decodeDraft(t, c.do(t, http.MethodGet, "/submit/m1/draft", ""))

	assert.Empty(t, draft.Stroke)
	assert.Empty(t, draft.Selected)
}

func TestHandler_SetOtherText_Length(t *testing.T) {
	c := &client{router: setupRouter(newMockService())}
	c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{"stroke":"Freestyle"}`)

	t.Run("longest allowed text is kept", func(t *testing.T) {
		text := strings.Repeat("é", model.MaxOtherTextLength)
		w := c.do(t, http.MethodPut, "/submit/m1/draft/other", fmt.Sprintf(`{"text":%q}`, text))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, text, decodeDraft(t, w).OtherText)
	})

	t.Run("longer text is rejected and draft untouched", func(t *testing.T) {
		text := strings.Repeat("x", 3000)
		w := c.do(t, http.MethodPut, "/submit/m1/draft/other", fmt.Sprintf(`{"text":%q}`, text))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
		assert.Equal(t, "other text must be at most 200 characters", resp.Error.Message)

		draft := decodeDraft(t, c.do(t, http.MethodGet, "/submit/m1/draft", ""))
		assert.Equal(t, "Freestyle", draft.Stroke)
	})
}

func TestHandler_DraftFollowsLatestMeet(t *testing.T) {
	c := &client{router: setupRouter(newMockService())}

	for i := 0; i < 40; i++ {
		path := fmt.Sprintf("/submit/meet-%02d/draft", i)
		w := c.do(t, http.MethodPut, path+"/stroke", `{"stroke":"Breaststroke"}`)
		require.Equal(t, http.StatusOK, w.Code, "meet %d: %s", i, w.Body.String())
		w = c.do(t, http.MethodPut, path+"/other", fmt.Sprintf(`{"text":%q}`, strings.Repeat("<", model.MaxOtherTextLength)))
		require.Equal(t, http.StatusOK, w.Code, "meet %d: %s", i, w.Body.String())
	}

	for _, l := range infraction.Default().LabelsFor("Breaststroke") {
		w := c.do(t, http.MethodPost, "/submit/meet-39/draft/toggle", fmt.Sprintf(`{"value":%q}`, l.Value))
		require.Equal(t, http.StatusOK, w.Code, "%s: %s", l.Value, w.Body.String())
	}

	latest := decodeDraft(t, c.do(t, http.MethodGet, "/submit/meet-39/draft", ""))
	assert.Equal(t, "Breaststroke", latest.Stroke)
	assert.Len(t, latest.Selected, 16)
	assert.Len(t, latest.OtherText, model.MaxOtherTextLength)

	earlier := decodeDraft(t, c.do(t, http.MethodGet, "/submit/meet-00/draft", ""))
	assert.Empty(t, earlier.Stroke)
	assert.Empty(t, earlier.OtherText)
}

const submitBody = `{
	"team": "Dolphins",
	"eventNumber": "12",
	"heatNumber": "3",
	"laneNumber": "4",
	"swimmerName": "Sam",
	"stroke": "Breaststroke",
	"officialEmail": "Jane@X.com"
}`

func TestHandler_Submit(t *testing.T) {
	t.Run("success passes session draft", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}
		c.do(t, http.MethodPut, "/submit/m1/draft/stroke", `{"stroke":"Breaststroke"}`)
		c.do(t, http.MethodPost, "/submit/m1/draft/toggle", `{"value":"Kick: Alternating"}`)

		svc.On("Submit", mock.Anything, "m1",
			mock.MatchedBy(func(d *model.Draft) bool {
				return d.Stroke == "Breaststroke" && len(d.Selected) == 1 && d.Selected[0] == "Kick: Alternating"
			}),
			mock.MatchedBy(func(r *model.SubmitRequest) bool { return r.OfficialEmail == "Jane@X.com" }),
		).Return(&model.SubmissionResponse{
			Submission: model.DQSubmission{ID: "s1", Status: model.StatusPending},
			Message:    model.SubmittedMessage,
		}, nil)

		w := c.do(t, http.MethodPost, "/submit/m1", submitBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp model.SubmissionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "DQ Submitted!", resp.Message)
		assert.Equal(t, "s1", resp.Submission.ID)
		svc.AssertExpectations(t)

		draft := decodeDraft(t, c.do(t, http.MethodGet, "/submit/m1/draft", ""))
		assert.Equal(t, []string{"Kick: Alternating"}, draft.Selected)
	})

	t.Run("incomplete body is left to the service", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}
		svc.On("Submit", mock.Anything, "m1", mock.Anything,
			mock.MatchedBy(func(r *model.SubmitRequest) bool { return r.Team == "Dolphins" && r.Stroke == "" }),
		).Return(nil, fmt.Errorf("%w: eventNumber", model.ErrMissingField))

		w := c.do(t, http.MethodPost, "/submit/m1", `{"team":"Dolphins"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := newMockService()
		c := &client{router: setupRouter(svc)}

		w := c.do(t, http.MethodPost, "/submit/m1", `{"team":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	errorCases := []struct {
		name         string
		err          error
		expectedCode int
		errorCode    string
		message      string
	}{
		{"not authorized", model.ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED", "Email not authorized to submit for this meet."},
		{"meet not found", meetModel.ErrMeetNotFound, http.StatusNotFound, "NOT_FOUND", "Meet not found."},
		{"blank field", fmt.Errorf("%w: team", model.ErrMissingField), http.StatusBadRequest, "INVALID_REQUEST", "required field is missing: team"},
		{"unknown stroke", model.ErrUnknownStroke, http.StatusBadRequest, "INVALID_REQUEST", "unknown stroke"},
		{"store failure", errors.New("write failed"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMockService()
			c := &client{router: setupRouter(svc)}
			svc.On("Submit", mock.Anything, "m1", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := c.do(t, http.MethodPost, "/submit/m1", submitBody)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.errorCode, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}
