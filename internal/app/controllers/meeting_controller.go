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

// MeetingController handles meeting operations
type MeetingController struct {
	meetingService *services.MeetingService
	logger         zerolog.Logger
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService *services.MeetingService, logger zerolog.Logger) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListMeetings returns the meetings visible to the principal
// @Summary List meetings
// @Description Returns the meetings the principal participates in, optionally filtered by status
// @Tags meetings
// @Produce json
// @Param status query string false "Status filter" Enums(pending, accepted, rejected, completed)
// @Success 200 {object} dto.APIResponse{data=[]dto.MeetingResponse} "Meetings"
// @Failure 400 {object} dto.ErrorResponse "Unknown status filter"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings [get]
func (c *MeetingController) ListMeetings(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	meetings, err := c.meetingService.List(ctx.Request.Context(), userID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: meetings})
}

// CreateMeeting schedules a meeting between the principal and a counterpart
// @Summary Schedule a meeting
// @Description Creates a pending meeting; one party must be a mentor and the other a mentee
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} dto.APIResponse{data=dto.MeetingResponse} "Meeting scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or role pairing"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	meeting, err := c.meetingService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: meeting})
}

// UpdateMeetingStatus applies a state transition to a meeting
// @Summary Update meeting status
// @Description Applies a state transition (pending to accepted/rejected by the mentee, accepted to completed by either party)
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body dto.UpdateMeetingStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.MeetingResponse} "Updated meeting"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 403 {object} dto.ErrorResponse "Transition not allowed for this party"
// @Failure 404 {object} dto.ErrorResponse "Meeting not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid state transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/status [patch]
func (c *MeetingController) UpdateMeetingStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	meetingID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid meeting ID")))
		return
	}

	var req dto.UpdateMeetingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	meeting, err := c.meetingService.UpdateStatus(ctx.Request.Context(), userID, meetingID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: meeting})
}
