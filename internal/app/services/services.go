package services

// Services defined in this package:
// - AuthService: registration, login, refresh-token rotation, logout
// - ProfileService: role-dispatched profile resolution
// - UserService: role-filtered user listing and mentor assignment
// - MeetingService: scheduling and the meeting status state machine
// - MessageService: direct messages and read receipts
// - AchievementService: awarding and listing achievements
// - DashboardService: mentor and admin dashboard aggregates
