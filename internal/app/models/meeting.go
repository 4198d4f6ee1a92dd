package models

import "time"

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusAccepted  MeetingStatus = "accepted"
	MeetingStatusRejected  MeetingStatus = "rejected"
	MeetingStatusCompleted MeetingStatus = "completed"
)

// Valid reports whether the status is one of the known states.
func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusPending, MeetingStatusAccepted, MeetingStatusRejected, MeetingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// pending -> accepted|rejected, accepted -> completed; rejected and
// completed are terminal.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	switch s {
	case MeetingStatusPending:
		return next == MeetingStatusAccepted || next == MeetingStatusRejected
	case MeetingStatusAccepted:
		return next == MeetingStatusCompleted
	default:
		return false
	}
}

// Meeting defines the meeting model based on the 'meetings' table
type Meeting struct {
	ID          int64         `json:"id" db:"id"`
	MentorID    int64         `json:"mentorId" db:"mentor_id"`
	MenteeID    int64         `json:"menteeId" db:"mentee_id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	ScheduledAt time.Time     `json:"scheduledAt" db:"scheduled_at"`
	Duration    int           `json:"duration" db:"duration"` // minutes
	Status      MeetingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	// Related entities
	Mentor *User `json:"mentor,omitempty"`
	Mentee *User `json:"mentee,omitempty"`
}

// IsParticipant reports whether the given user is a party to the meeting.
func (m *Meeting) IsParticipant(userID int64) bool {
	return m.MentorID == userID || m.MenteeID == userID
}

// TransitionAllowedBy reports whether the given user may drive the meeting
// to next. Accepting or rejecting is the mentee's call; either party marks
// a meeting completed.
func (m *Meeting) TransitionAllowedBy(userID int64, next MeetingStatus) bool {
	switch next {
	case MeetingStatusAccepted, MeetingStatusRejected:
		return userID == m.MenteeID
	case MeetingStatusCompleted:
		return m.IsParticipant(userID)
	}
	return false
}
