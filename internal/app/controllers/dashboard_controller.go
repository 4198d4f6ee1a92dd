package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/auth"
	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/services"
	"github.com/campushq/mentorhub/internal/middleware"
)

// DashboardController handles dashboard aggregate operations
type DashboardController struct {
	dashboardService *services.DashboardService
	authzService     *auth.AuthorizationService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(
	dashboardService *services.DashboardService,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		authzService:     authzService,
		logger:           logger,
	}
}

// MentorDashboard returns the mentor's composite dashboard view
// @Summary Mentor dashboard
// @Description Returns the mentor's profile, mentees, pending upcoming meetings, unread message count, recent achievements and stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MentorDashboardResponse} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Mentor role required"
// @Failure 404 {object} dto.ErrorResponse "Mentor profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /mentor/dashboard [get]
func (c *DashboardController) MentorDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	// The role middleware trusts the token; re-check against the database.
	if err := c.authzService.ValidateMentor(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	dashboard, err := c.dashboardService.MentorDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}

// AdminDashboard returns system-wide totals
// @Summary Admin dashboard
// @Description Returns system-wide totals and the most recent users
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboardResponse} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.authzService.ValidateAdmin(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	dashboard, err := c.dashboardService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}
