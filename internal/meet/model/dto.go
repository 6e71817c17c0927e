package model

import "time"

// CreateMeetRequest represents the admin form used to schedule a meet.
type CreateMeetRequest struct {
	Date             string     `json:"date" binding:"required"`
	HomeTeam         string     `json:"homeTeam" binding:"required"`
	AwayTeam         string     `json:"awayTeam" binding:"required"`
	HeadOfficial     Official   `json:"headOfficial"`
	InvitedOfficials []Official `json:"invitedOfficials" binding:"required,min=1,dive"`
}

// Links are the navigable pages of a meet.
// Submit and Review are only offered while the meet is active.
type Links struct {
	Submit string `json:"submit,omitempty"`
	Review string `json:"review,omitempty"`
	Report string `json:"report"`
}

// MeetResponse represents a meet in API responses.
type MeetResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Date             string     `json:"date"`
	HomeTeam         string     `json:"homeTeam"`
	AwayTeam         string     `json:"awayTeam"`
	HeadOfficial     Official   `json:"headOfficial"`
	InvitedOfficials []Official `json:"invitedOfficials"`
	Status           Status     `json:"status"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	Links            Links      `json:"links"`
}

// ListMeetsResponse represents the admin meet listing.
type ListMeetsResponse struct {
	Meets []MeetResponse `json:"meets"`
	Total int            `json:"total"`
}

// NewMeetResponse converts a meet and its links to the API shape.
func NewMeetResponse(m *Meet, links Links) MeetResponse {
	return MeetResponse{
		ID:               m.ID,
		Name:             m.Name,
		Date:             m.Date,
		HomeTeam:         m.HomeTeam,
		AwayTeam:         m.AwayTeam,
		HeadOfficial:     m.HeadOfficial,
		InvitedOfficials: m.InvitedOfficials,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		Links:            links,
	}
}
