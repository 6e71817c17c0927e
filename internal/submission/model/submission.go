// Package model provides domain models and DTOs for DQ submission module.
package model

import "time"

// Status is the review state of a DQ submission.
type Status string

// StatusPending is the only state a submission is created in.
const StatusPending Status = "pending"

// DQSubmission represents a filed disqualification.
// Matches the dq_submissions table schema.
type DQSubmission struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	MeetID        string    `gorm:"column:meet_id;not null;index" json:"meetId"`
	Team          string    `gorm:"column:team;not null" json:"team"`
	EventNumber   string    `gorm:"column:event_number;not null" json:"eventNumber"`
	HeatNumber    string    `gorm:"column:heat_number;not null" json:"heatNumber"`
	LaneNumber    string    `gorm:"column:lane_number;not null" json:"laneNumber"`
	SwimmerName   string    `gorm:"column:swimmer_name;not null" json:"swimmerName"`
	Stroke        string    `gorm:"column:stroke;not null" json:"stroke"`
	Infractions   []string  `gorm:"column:infractions;serializer:json;not null" json:"infractions"`
	OfficialEmail string    `gorm:"column:official_email;not null" json:"officialEmail"`
	Notes         string    `gorm:"column:notes;not null" json:"notes,omitempty"`
	SubmittedAt   time.Time `gorm:"column:submitted_at;not null" json:"submittedAt"`
	Status        Status    `gorm:"column:status;not null" json:"status"`
}

// TableName specifies the table name for GORM.
func (DQSubmission) TableName() string {
	return "dq_submissions"
}
