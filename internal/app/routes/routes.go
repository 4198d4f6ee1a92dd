package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/mentorhub/internal/app/controllers"
	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/app/models/dto"
	"github.com/campushq/mentorhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	meetingController *controllers.MeetingController,
	messageController *controllers.MessageController,
	achievementController *controllers.AchievementController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PUT("/profile", userController.UpdateProfile)
		authenticated.GET("/users", userController.ListUsers)

		meetings := authenticated.Group("/meetings")
		{
			meetings.GET("", meetingController.ListMeetings)
			meetings.POST("", meetingController.CreateMeeting)
			meetings.PATCH("/:id/status", meetingController.UpdateMeetingStatus)
		}

		messages := authenticated.Group("/messages")
		{
			messages.GET("", messageController.ListMessages)
			messages.POST("", messageController.SendMessage)
			messages.POST("/:id/read", messageController.MarkMessageRead)
		}

		achievements := authenticated.Group("/achievements")
		{
			achievements.GET("", achievementController.ListAchievements)

			achievementsMentorProtected := achievements.Group("")
			achievementsMentorProtected.Use(authMiddleware.RoleRequired(models.RoleMentor))
			{
				achievementsMentorProtected.POST("", achievementController.AwardAchievement)
			}
		}

		mentorProtected := authenticated.Group("")
		mentorProtected.Use(authMiddleware.RoleRequired(models.RoleMentor))
		{
			mentorProtected.GET("/mentor/dashboard", dashboardController.MentorDashboard)
		}

		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/admin/dashboard", dashboardController.AdminDashboard)
			adminProtected.PUT("/mentees/:menteeId/mentor", userController.AssignMentor)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
