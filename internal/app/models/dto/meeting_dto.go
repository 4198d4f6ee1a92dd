package dto

import (
	"time"

	"github.com/campushq/mentorhub/internal/app/models"
)

// CreateMeetingRequest represents a meeting scheduling request. The
// counterpart is the other party: a mentor names the mentee and vice versa.
type CreateMeetingRequest struct {
	CounterpartID int64     `json:"counterpartId" binding:"required,min=1"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	ScheduledAt   time.Time `json:"scheduledAt" binding:"required"`
	Duration      int       `json:"duration" binding:"required,min=1"` // minutes
}

// UpdateMeetingStatusRequest represents a status transition request
type UpdateMeetingStatusRequest struct {
	Status models.MeetingStatus `json:"status" binding:"required"`
}

// MeetingResponse represents meeting information
type MeetingResponse struct {
	ID          int64     `json:"id"`
	MentorID    int64     `json:"mentorId"`
	MenteeID    int64     `json:"menteeId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status" example:"pending" enums:"pending,accepted,rejected,completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewMeetingResponse maps a meeting model to its response shape
func NewMeetingResponse(m *models.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		MentorID:    m.MentorID,
		MenteeID:    m.MenteeID,
		Title:       m.Title,
		Description: m.Description,
		ScheduledAt: m.ScheduledAt,
		Duration:    m.Duration,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// NewMeetingResponses maps a meeting slice to response shapes
func NewMeetingResponses(meetings []*models.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, NewMeetingResponse(m))
	}
	return out
}
