// Package model provides domain models and DTOs for meet module.
package model

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a meet.
type Status string

const (
	// StatusActive is the state of a newly created meet.
	StatusActive Status = "active"
	// StatusClosed is terminal. A meet never returns to active.
	StatusClosed Status = "closed"
)

// DateLayout is the calendar date format meets are scheduled with.
const DateLayout = "2006-01-02"

// Official is a person who can officiate a meet.
// Email is matched case-insensitively when authorizing submissions.
type Official struct {
	Name  string `gorm:"column:name" json:"name" binding:"required"`
	Email string `gorm:"column:email" json:"email" binding:"required"`
}

// Meet represents a meet entity in the system.
// Matches the meets table schema.
type Meet struct {
	ID               string     `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Name             string     `gorm:"column:name;not null" json:"name"`
	Date             string     `gorm:"column:date;not null" json:"date"`
	HomeTeam         string     `gorm:"column:home_team;not null" json:"homeTeam"`
	AwayTeam         string     `gorm:"column:away_team;not null" json:"awayTeam"`
	HeadOfficial     Official   `gorm:"embedded;embeddedPrefix:head_official_" json:"headOfficial"`
	InvitedOfficials []Official `gorm:"column:invited_officials;serializer:json;not null" json:"invitedOfficials"`
	Status           Status     `gorm:"column:status;not null" json:"status"`
	CreatedAt        *time.Time `gorm:"column:created_at" json:"createdAt,omitempty"`
}

// TableName specifies the table name for GORM.
func (Meet) TableName() string {
	return "meets"
}

// DisplayName builds the "{home} vs {away} - {date}" title of a meet.
func DisplayName(homeTeam, awayTeam, date string) string {
	return fmt.Sprintf("%s vs %s - %s", homeTeam, awayTeam, date)
}

// IsActive reports whether the meet has not been closed.
func (m *Meet) IsActive() bool {
	return m.Status == StatusActive
}

// ScheduledAt parses Date. Unparseable dates yield the zero time.
func (m *Meet) ScheduledAt() time.Time {
	t, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CreatedAtOrZero returns the creation timestamp, or the zero time when the
// record has none.
func (m *Meet) CreatedAtOrZero() time.Time {
	if m.CreatedAt == nil {
		return time.Time{}
	}
	return *m.CreatedAt
}
