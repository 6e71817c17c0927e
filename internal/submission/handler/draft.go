package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/festy23/swimdq/internal/submission/model"
)

// draftKey holds the session's only draft. Editing another meet's draft
// replaces it, so the cookie stays bounded however many meets are opened.
const draftKey = "dq_draft"

type sessionDraft struct {
	MeetID string      `json:"meetId"`
	Draft  model.Draft `json:"draft"`
}

// loadDraft reads the meet's draft from the session. A missing, unreadable
// or other meet's draft starts empty.
func loadDraft(c *gin.Context, meetID string) *model.Draft {
	raw, ok := sessions.Default(c).Get(draftKey).(string)
	if !ok {
		return &model.Draft{}
	}

	var stored sessionDraft
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.MeetID != meetID {
		return &model.Draft{}
	}
	return &stored.Draft
}

func saveDraft(c *gin.Context, meetID string, draft *model.Draft) error {
	data, err := json.Marshal(sessionDraft{MeetID: meetID, Draft: *draft})
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	session := sessions.Default(c)
	session.Set(draftKey, string(data))
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
