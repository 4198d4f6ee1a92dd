package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"johndoe@college.edu"`           // User's email address (unique)
	Password    string     `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	Role        RoleType   `json:"role" db:"role" example:"mentor"`                          // User's role (admin, mentor or mentee)
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)
}

// AdminProfile defines the admin profile model based on the 'admin_profiles' table
type AdminProfile struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"userId" db:"user_id"`
	Privileges string `json:"privileges" db:"privileges"`
	User       *User  `json:"user,omitempty"` // Relation, no db tag
}

// MentorProfile defines the mentor profile model based on the 'mentor_profiles' table
type MentorProfile struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"userId" db:"user_id"`
	Room       string `json:"room" db:"room"`
	Department string `json:"department" db:"department"`
	Background string `json:"background" db:"background"`
	Position   string `json:"position" db:"position"`
	Timetable  string `json:"timetable" db:"timetable"`
	User       *User  `json:"user,omitempty"` // Relation, no db tag
}

// MenteeProfile defines the mentee profile model based on the 'mentee_profiles' table.
// MentorProfileID holds the mentoring relationship; nil means no mentor assigned yet.
type MenteeProfile struct {
	ID               int64          `json:"id" db:"id"`
	UserID           int64          `json:"userId" db:"user_id"`
	MentorProfileID  *int64         `json:"mentorProfileId,omitempty" db:"mentor_profile_id"`
	Course           string         `json:"course" db:"course"`
	Year             int            `json:"year" db:"year"`
	Attendance       float64        `json:"attendance" db:"attendance"` // percentage, 0-100
	AcademicNote     string         `json:"academicNote" db:"academic_note"`
	UpcomingEvent    string         `json:"upcomingEvent" db:"upcoming_event"`
	AlternateContact string         `json:"alternateContact" db:"alternate_contact"`
	User             *User          `json:"user,omitempty"`   // Relation, no db tag
	Mentor           *MentorProfile `json:"mentor,omitempty"` // Relation, no db tag
}
