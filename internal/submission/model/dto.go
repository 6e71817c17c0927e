package model

import (
	"github.com/festy23/swimdq/internal/infraction"
	meetModel "github.com/festy23/swimdq/internal/meet/model"
)

// SubmittedMessage confirms a stored submission.
const SubmittedMessage = "DQ Submitted!"

// SubmitRequest represents the DQ form. Infractions come from the draft.
// Required fields are checked by the service once the meet is resolved.
type SubmitRequest struct {
	Team          string `json:"team"`
	EventNumber   string `json:"eventNumber"`
	HeatNumber    string `json:"heatNumber"`
	LaneNumber    string `json:"laneNumber"`
	SwimmerName   string `json:"swimmerName"`
	Stroke        string `json:"stroke"`
	OfficialEmail string `json:"officialEmail"`
	Notes         string `json:"notes"`
}

// SelectStrokeRequest chooses the draft stroke.
type SelectStrokeRequest struct {
	Stroke string `json:"stroke" binding:"required"`
}

// ToggleRequest toggles one stored infraction value.
type ToggleRequest struct {
	Value string `json:"value" binding:"required"`
}

// MaxOtherTextLength bounds the free-text infraction, in characters.
// The draft travels in a signed cookie.
const MaxOtherTextLength = 200

// OtherTextRequest sets the free-text infraction. Empty text clears it.
// The max tag mirrors MaxOtherTextLength.
type OtherTextRequest struct {
	Text string `json:"text" binding:"max=200"`
}

// MeetSummary is the part of a meet shown on the submit page.
type MeetSummary struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Date   string           `json:"date"`
	Status meetModel.Status `json:"status"`
}

// FormResponse is what the submit page needs to render.
type FormResponse struct {
	Meet    MeetSummary `json:"meet"`
	Strokes []string    `json:"strokes"`
}

// InfractionsResponse lists the labels of one stroke.
type InfractionsResponse struct {
	Stroke string             `json:"stroke"`
	Labels []infraction.Label `json:"labels"`
}

// DraftResponse is the session draft plus the labels of its stroke.
type DraftResponse struct {
	Stroke    string             `json:"stroke"`
	Selected  []string           `json:"selected"`
	OtherText string             `json:"otherText"`
	Labels    []infraction.Label `json:"labels"`
}

// SubmissionResponse confirms a stored submission.
type SubmissionResponse struct {
	Submission DQSubmission `json:"submission"`
	Message    string       `json:"message"`
}
