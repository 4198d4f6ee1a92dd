package dto

// DashboardStats is the mentor dashboard stats block
type DashboardStats struct {
	TotalMentees       int64 `json:"total_mentees"`
	UnreadMessages     int64 `json:"unread_messages"`
	UpcomingMeetings   int64 `json:"upcoming_meetings"`
	RecentAchievements int64 `json:"recent_achievements"`
}

// MentorDashboardResponse is the composite mentor dashboard view
type MentorDashboardResponse struct {
	Profile            *MentorProfileData    `json:"profile"`
	Mentees            []MenteeProfileData   `json:"mentees"`
	UpcomingMeetings   []MeetingResponse     `json:"upcomingMeetings"`
	UnreadMessages     int64                 `json:"unreadMessages"`
	RecentAchievements []AchievementResponse `json:"recentAchievements"`
	Stats              DashboardStats        `json:"stats"`
}

// AdminDashboardResponse is the admin totals view
type AdminDashboardResponse struct {
	TotalUsers        int64          `json:"total_users"`
	TotalMentors      int64          `json:"total_mentors"`
	TotalMentees      int64          `json:"total_mentees"`
	TotalMeetings     int64          `json:"total_meetings"`
	TotalAchievements int64          `json:"total_achievements"`
	TotalMessages     int64          `json:"total_messages"`
	RecentUsers       []UserResponse `json:"recentUsers"`
}
