package models

import "time"

// Achievement represents an award given by a mentor to a mentee
type Achievement struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	MentorProfileID *int64    `json:"mentorProfileId,omitempty" db:"mentor_profile_id"`
	MenteeProfileID *int64    `json:"menteeProfileId,omitempty" db:"mentee_profile_id"`
	AwardedAt       time.Time `json:"awardedAt" db:"awarded_at"`

	// Related entities
	Mentor *MentorProfile `json:"mentor,omitempty"`
	Mentee *MenteeProfile `json:"mentee,omitempty"`
}
