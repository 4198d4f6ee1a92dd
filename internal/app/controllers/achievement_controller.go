package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/services"
	"github.com/campushq/mentorhub/internal/middleware"
)

// AchievementController handles achievement operations
type AchievementController struct {
	achievementService *services.AchievementService
	logger             zerolog.Logger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService *services.AchievementService, logger zerolog.Logger) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
		logger:             logger,
	}
}

// ListAchievements returns the achievements visible to the principal
// @Summary List achievements
// @Description Admins see all achievements, mentors the ones they awarded, mentees the ones awarded to them
// @Tags achievements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AchievementResponse} "Achievements"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /achievements [get]
func (c *AchievementController) ListAchievements(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	achievements, err := c.achievementService.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: achievements})
}

// AwardAchievement records an achievement for one of the mentor's mentees
// @Summary Award an achievement
// @Description Records an achievement from the principal mentor to one of their assigned mentees
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body dto.AwardAchievementRequest true "Achievement"
// @Success 201 {object} dto.APIResponse{data=dto.AchievementResponse} "Achievement awarded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or mentee"
// @Failure 403 {object} dto.ErrorResponse "Mentor role required, or mentee belongs to another mentor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /achievements [post]
func (c *AchievementController) AwardAchievement(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.AwardAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	achievement, err := c.achievementService.Award(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: achievement})
}
