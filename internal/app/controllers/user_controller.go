package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/app/services"
	"github.com/campushq/mentorhub/internal/middleware"
)

// UserController handles profile and user listing operations
type UserController struct {
	userService    *services.UserService
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, profileService *services.ProfileService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:    userService,
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile returns the authenticated user's role-specific profile
// @Summary Get own profile
// @Description Returns the authenticated user's role-tagged profile; a mentee's assigned mentor is resolved inline
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update own profile
// @Description Updates the authenticated user's name and, for mentors and mentees, any role-specific profile fields present in the request
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// ListUsers returns the users visible to the principal
// @Summary List visible users
// @Description Admins see all users, mentors their assigned mentees, mentees their assigned mentor
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Visible users"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	users, err := c.userService.ListVisibleUsers(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// AssignMentor sets or clears a mentee's mentor link (admin only)
// @Summary Assign a mentor to a mentee
// @Description Sets (or clears, with a null mentorUserId) the mentor of the given mentee
// @Tags users
// @Accept json
// @Produce json
// @Param menteeId path int true "Mentee user ID"
// @Param request body dto.AssignMentorRequest true "Mentor assignment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or referenced user has wrong role"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Mentee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /mentees/{menteeId}/mentor [put]
func (c *UserController) AssignMentor(ctx *gin.Context) {
	menteeID, err := strconv.ParseInt(ctx.Param("menteeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentee ID")))
		return
	}

	var req dto.AssignMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.AssignMentor(ctx.Request.Context(), menteeID, req.MentorUserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("menteeUserID", menteeID).Msg("Mentor assignment updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Mentor assignment updated"}})
}
