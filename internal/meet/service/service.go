// Package service provides business logic layer for meet module.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/swimdq/internal/meet/links"
	"github.com/festy23/swimdq/internal/meet/model"
	"github.com/festy23/swimdq/internal/meet/repository"
)

// Service defines the interface for meet business logic operations.
type Service interface {
	// CreateMeet schedules a new active meet.
	CreateMeet(ctx context.Context, req *model.CreateMeetRequest) (*model.MeetResponse, error)

	// ListMeets returns every meet, latest scheduled and latest created first.
	ListMeets(ctx context.Context) (*model.ListMeetsResponse, error)

	// CloseMeet moves a meet to closed. Closing a closed meet is a no-op.
	CloseMeet(ctx context.Context, meetID string) (*model.MeetResponse, error)

	// SubmitQRCode renders the submit link of an existing meet as a PNG.
	SubmitQRCode(ctx context.Context, meetID string, size int) ([]byte, error)
}

type service struct {
	repo   repository.Repository
	links  *links.Builder
	logger *zap.SugaredLogger
}

// New creates a new meet service instance.
func New(repo repository.Repository, builder *links.Builder, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, links: builder, logger: logger}
}

// CreateMeet validates the form and stores the meet in one write.
func (s *service) CreateMeet(ctx context.Context, req *model.CreateMeetRequest) (*model.MeetResponse, error) {
	meet, err := newMeet(req)
	if err != nil {
		s.logger.Debugw("CreateMeet validation failed", "error", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, meet)
	if err != nil {
		s.logger.Errorw("CreateMeet failed", "name", meet.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("meet created",
		"meet_id", created.ID,
		"name", created.Name,
		"invited_officials", len(created.InvitedOfficials),
	)
	resp := model.NewMeetResponse(created, s.links.For(created))
	return &resp, nil
}

func newMeet(req *model.CreateMeetRequest) (*model.Meet, error) {
	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, model.ErrInvalidDate
	}

	home := strings.TrimSpace(req.HomeTeam)
	away := strings.TrimSpace(req.AwayTeam)
	if home == "" || away == "" {
		return nil, model.ErrInvalidTeam
	}

	head, ok := cleanOfficial(req.HeadOfficial)
	if !ok {
		return nil, model.ErrInvalidHeadOfficial
	}

	if len(req.InvitedOfficials) == 0 {
		return nil, model.ErrNoInvitedOfficials
	}
	invited := make([]model.Official, 0, len(req.InvitedOfficials))
	for _, o := range req.InvitedOfficials {
		official, ok := cleanOfficial(o)
		if !ok {
			return nil, model.ErrInvalidOfficial
		}
		invited = append(invited, official)
	}

	return &model.Meet{
		Name:             model.DisplayName(home, away, date),
		Date:             date,
		HomeTeam:         home,
		AwayTeam:         away,
		HeadOfficial:     head,
		InvitedOfficials: invited,
		Status:           model.StatusActive,
	}, nil
}

func cleanOfficial(o model.Official) (model.Official, bool) {
	o.Name = strings.TrimSpace(o.Name)
	o.Email = strings.TrimSpace(o.Email)
	return o, o.Name != "" && o.Email != ""
}

// ListMeets reads all meets and orders them for display.
func (s *service) ListMeets(ctx context.Context) (*model.ListMeetsResponse, error) {
	meets, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListMeets failed", "error", err)
		return nil, err
	}

	SortForDisplay(meets)

	resp := &model.ListMeetsResponse{
		Meets: make([]model.MeetResponse, 0, len(meets)),
		Total: len(meets),
	}
	for i := range meets {
		resp.Meets = append(resp.Meets, model.NewMeetResponse(&meets[i], s.links.For(&meets[i])))
	}
	return resp, nil
}

// SortForDisplay orders meets by date descending, then by creation time
// descending. Meets without a creation time sort last within their date.
func SortForDisplay(meets []model.Meet) {
	sort.SliceStable(meets, func(i, j int) bool {
		di, dj := meets[i].ScheduledAt(), meets[j].ScheduledAt()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return meets[i].CreatedAtOrZero().After(meets[j].CreatedAtOrZero())
	})
}

// CloseMeet closes a meet.
func (s *service) CloseMeet(ctx context.Context, meetID string) (*model.MeetResponse, error) {
	meet, err := s.repo.UpdateStatus(ctx, meetID, model.StatusClosed)
	if err != nil {
		s.logger.Errorw("CloseMeet failed", "meet_id", meetID, "error", err)
		return nil, err
	}

	s.logger.Infow("meet closed", "meet_id", meetID)
	resp := model.NewMeetResponse(meet, s.links.For(meet))
	return &resp, nil
}

// SubmitQRCode renders the submit link of a meet.
func (s *service) SubmitQRCode(ctx context.Context, meetID string, size int) ([]byte, error) {
	if _, err := s.repo.GetByID(ctx, meetID); err != nil {
		return nil, err
	}
	return s.links.SubmitQRCode(meetID, size)
}
