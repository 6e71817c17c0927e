// Package service provides business logic layer for DQ submission module.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/swimdq/internal/infraction"
	meetModel "github.com/festy23/swimdq/internal/meet/model"
	"github.com/festy23/swimdq/internal/submission/model"
	"github.com/festy23/swimdq/internal/submission/repository"
)

// MeetReader loads the meet a submission is filed against.
type MeetReader interface {
	GetByID(ctx context.Context, meetID string) (*meetModel.Meet, error)
}

// Service defines the interface for DQ submission business logic operations.
type Service interface {
	// GetSubmissionForm returns the meet summary and selectable strokes.
	GetSubmissionForm(ctx context.Context, meetID string) (*model.FormResponse, error)

	// Labels returns the infractions offered for stroke.
	Labels(stroke string) []infraction.Label

	// SelectStroke chooses the draft stroke.
	SelectStroke(draft *model.Draft, stroke string) error

	// ToggleInfraction flips one offered value in the draft and reports
	// whether it is selected afterwards.
	ToggleInfraction(draft *model.Draft, value string) (bool, error)

	// SetOtherText sets the draft free text.
	SetOtherText(draft *model.Draft, text string)

	// Submit authorizes the official against the meet and stores the DQ.
	Submit(ctx context.Context, meetID string, draft *model.Draft, req *model.SubmitRequest) (*model.SubmissionResponse, error)
}

type service struct {
	repo     repository.Repository
	meets    MeetReader
	taxonomy *infraction.Taxonomy
	logger   *zap.SugaredLogger
}

// New creates a new DQ submission service instance.
func New(repo repository.Repository, meets MeetReader, taxonomy *infraction.Taxonomy, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, meets: meets, taxonomy: taxonomy, logger: logger}
}

// GetSubmissionForm returns what the submit page renders for a meet.
func (s *service) GetSubmissionForm(ctx context.Context, meetID string) (*model.FormResponse, error) {
	meet, err := s.meets.GetByID(ctx, meetID)
	if err != nil {
		return nil, err
	}

	return &model.FormResponse{
		Meet: model.MeetSummary{
			ID:     meet.ID,
			Name:   meet.Name,
			Date:   meet.Date,
			Status: meet.Status,
		},
		Strokes: s.taxonomy.Strokes(),
	}, nil
}

// Labels returns the infractions offered for stroke.
func (s *service) Labels(stroke string) []infraction.Label {
	return s.taxonomy.LabelsFor(stroke)
}

// SelectStroke chooses a stroke known to the taxonomy.
func (s *service) SelectStroke(draft *model.Draft, stroke string) error {
	if !s.taxonomy.IsStroke(stroke) {
		return fmt.Errorf("%w: %q", model.ErrUnknownStroke, stroke)
	}
	draft.SelectStroke(stroke)
	return nil
}

// ToggleInfraction flips value when the selected stroke offers it.
func (s *service) ToggleInfraction(draft *model.Draft, value string) (bool, error) {
	if !draft.HasStroke() {
		return false, model.ErrNoStrokeSelected
	}
	if !s.taxonomy.Offers(draft.Stroke, value) {
		return false, fmt.Errorf("%w: %q", model.ErrInfractionNotOffered, value)
	}
	return draft.Toggle(value), nil
}

// SetOtherText sets the draft free text.
func (s *service) SetOtherText(draft *model.Draft, text string) {
	draft.SetOtherText(text)
}

// Submit re-reads the meet, validates the form, checks the official is
// invited and stores one pending submission. An unknown meet wins over a
// malformed form. Nothing is written when any step fails.
func (s *service) Submit(
	ctx context.Context,
	meetID string,
	draft *model.Draft,
	req *model.SubmitRequest,
) (*model.SubmissionResponse, error) {
	meet, err := s.meets.GetByID(ctx, meetID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		s.logger.Debugw("Submit validation failed", "meet_id", meetID, "error", err)
		return nil, err
	}
	if err := s.SelectStroke(draft, strings.TrimSpace(req.Stroke)); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.OfficialEmail)
	if !isInvited(meet, email) {
		s.logger.Warnw("DQ submission rejected", "meet_id", meetID, "official_email", email)
		return nil, model.ErrNotAuthorized
	}

	sub, err := s.repo.Create(ctx, &model.DQSubmission{
		MeetID:        meet.ID,
		Team:          strings.TrimSpace(req.Team),
		EventNumber:   strings.TrimSpace(req.EventNumber),
		HeatNumber:    strings.TrimSpace(req.HeatNumber),
		LaneNumber:    strings.TrimSpace(req.LaneNumber),
		SwimmerName:   strings.TrimSpace(req.SwimmerName),
		Stroke:        draft.Stroke,
		Infractions:   draft.Infractions(),
		OfficialEmail: email,
		Notes:         strings.TrimSpace(req.Notes),
		Status:        model.StatusPending,
	})
	if err != nil {
		s.logger.Errorw("Submit failed", "meet_id", meetID, "error", err)
		return nil, err
	}

	s.logger.Infow("DQ submitted",
		"meet_id", meetID,
		"submission_id", sub.ID,
		"stroke", sub.Stroke,
		"infractions", len(sub.Infractions),
	)
	return &model.SubmissionResponse{Submission: *sub, Message: model.SubmittedMessage}, nil
}

func validate(req *model.SubmitRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"team", req.Team},
		{"eventNumber", req.EventNumber},
		{"heatNumber", req.HeatNumber},
		{"laneNumber", req.LaneNumber},
		{"swimmerName", req.SwimmerName},
		{"stroke", req.Stroke},
		{"officialEmail", req.OfficialEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", model.ErrMissingField, f.name)
		}
	}
	return nil
}

func isInvited(meet *meetModel.Meet, email string) bool {
	for _, o := range meet.InvitedOfficials {
		if strings.EqualFold(strings.TrimSpace(o.Email), email) {
			return true
		}
	}
	return false
}
