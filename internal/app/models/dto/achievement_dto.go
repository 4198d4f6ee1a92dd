package dto

import (
	"time"

	"github.com/campushq/mentorhub/internal/app/models"
)

// AwardAchievementRequest represents a mentor awarding an achievement to
// one of their mentees.
type AwardAchievementRequest struct {
	MenteeUserID int64  `json:"menteeUserId" binding:"required,min=1"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
}

// AchievementResponse represents achievement information
type AchievementResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name" example:"Top Performer"`
	Description     string    `json:"description,omitempty"`
	MentorProfileID *int64    `json:"mentorProfileId,omitempty"`
	MenteeProfileID *int64    `json:"menteeProfileId,omitempty"`
	AwardedAt       time.Time `json:"awardedAt"`
}

// NewAchievementResponse maps an achievement model to its response shape
func NewAchievementResponse(a *models.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		MentorProfileID: a.MentorProfileID,
		MenteeProfileID: a.MenteeProfileID,
		AwardedAt:       a.AwardedAt,
	}
}

// NewAchievementResponses maps an achievement slice to response shapes
func NewAchievementResponses(achievements []*models.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, NewAchievementResponse(a))
	}
	return out
}
