package dto

import (
	"time"

	"github.com/campushq/mentorhub/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role" example:"mentor" enums:"admin,mentor,mentee"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// NewUserResponse maps a user model to its response shape
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// NewUserResponses maps a user slice to response shapes
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UpdateProfileRequest represents profile update data. The role-specific
// fields are optional; a nil field leaves the stored value unchanged, and
// fields of another role are ignored.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`

	// Mentor fields
	Room       *string `json:"room,omitempty"`
	Department *string `json:"department,omitempty"`
	Background *string `json:"background,omitempty"`
	Position   *string `json:"position,omitempty"`
	Timetable  *string `json:"timetable,omitempty"`

	// Mentee fields
	Course           *string  `json:"course,omitempty"`
	Year             *int     `json:"year,omitempty"`
	Attendance       *float64 `json:"attendance,omitempty"`
	AcademicNote     *string  `json:"academicNote,omitempty"`
	UpcomingEvent    *string  `json:"upcomingEvent,omitempty"`
	AlternateContact *string  `json:"alternateContact,omitempty"`
}

// AssignMentorRequest assigns (or clears, with null) a mentee's mentor
type AssignMentorRequest struct {
	MentorUserID *int64 `json:"mentorUserId"`
}

// ProfileResponse is the role-tagged profile payload. Exactly one of the
// role sections is set, matching Role.
type ProfileResponse struct {
	User   UserResponse       `json:"user"`
	Role   string             `json:"role" example:"mentor" enums:"admin,mentor,mentee"`
	Admin  *AdminProfileData  `json:"admin,omitempty"`
	Mentor *MentorProfileData `json:"mentor,omitempty"`
	Mentee *MenteeProfileData `json:"mentee,omitempty"`
}

// AdminProfileData represents admin-specific profile fields
type AdminProfileData struct {
	ID         int64  `json:"id"`
	Privileges string `json:"privileges"`
}

// MentorProfileData represents mentor-specific profile fields
type MentorProfileData struct {
	ID         int64  `json:"id"`
	Room       string `json:"room" example:"Room 205"`
	Department string `json:"department" example:"Computer Science"`
	Background string `json:"background" example:"PhD in AI"`
	Position   string `json:"position" example:"Professor"`
	Timetable  string `json:"timetable,omitempty"`
}

// MenteeProfileData represents mentee-specific profile fields. Mentor is
// the resolved assigned mentor, nil when no mentor is linked.
type MenteeProfileData struct {
	ID               int64              `json:"id"`
	Course           string             `json:"course" example:"B.Tech CSE"`
	Year             int                `json:"year" example:"2"`
	Attendance       float64            `json:"attendance" example:"89.5"`
	AcademicNote     string             `json:"academicNote,omitempty"`
	UpcomingEvent    string             `json:"upcomingEvent,omitempty"`
	AlternateContact string             `json:"alternateContact,omitempty"`
	Mentor           *MentorProfileData `json:"mentor,omitempty"`
	MentorUser       *UserResponse      `json:"mentorUser,omitempty"`
}

// NewMentorProfileData maps a mentor profile model to its response shape
func NewMentorProfileData(p *models.MentorProfile) *MentorProfileData {
	if p == nil {
		return nil
	}
	return &MentorProfileData{
		ID:         p.ID,
		Room:       p.Room,
		Department: p.Department,
		Background: p.Background,
		Position:   p.Position,
		Timetable:  p.Timetable,
	}
}

// NewMenteeProfileData maps a mentee profile model to its response shape
func NewMenteeProfileData(p *models.MenteeProfile) *MenteeProfileData {
	if p == nil {
		return nil
	}
	return &MenteeProfileData{
		ID:               p.ID,
		Course:           p.Course,
		Year:             p.Year,
		Attendance:       p.Attendance,
		AcademicNote:     p.AcademicNote,
		UpcomingEvent:    p.UpcomingEvent,
		AlternateContact: p.AlternateContact,
		Mentor:           NewMentorProfileData(p.Mentor),
	}
}
