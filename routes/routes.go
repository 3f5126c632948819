package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EslamElkfafy/medical-app-update/authentication"
	"github.com/EslamElkfafy/medical-app-update/controllers"
)

func SetupRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()

	//onboarding routes
	r.POST("/onboarding/create-doctor", controllers.CreateDoctorProfile)
	r.POST("/onboarding/doctor/:id/bio-data", controllers.UpdateDoctorProfile)
	r.POST("/onboarding/doctor/:id/contact-data", controllers.UpdateDoctorProfile)
	r.POST("/onboarding/doctor/:id/education-data", controllers.UpdateDoctorProfile)
	r.POST("/onboarding/doctor/:id/practice-data", controllers.UpdateDoctorProfile)
	r.POST("/onboarding/doctor/:id/profile-data", controllers.UpdateDoctorProfile)
	r.POST("/onboarding/doctor/:id/additional-data", controllers.UpdateDoctorProfile)
	r.PUT("/onboarding/doctor/:id/complete", controllers.CompleteProfile)
	r.GET("/onboarding/track/:trackingNumber", controllers.GetApplicationByTrack)
	r.GET("/verify-account/:token", controllers.VerifyAccount)
	r.POST("/doctor/login", controllers.DoctorLogin)

	//doctor dashboard routes
	doctors := r.Group("/doctor")
	doctors.Use(authentication.DoctorAuthMiddleware())
	{
		doctors.GET("/profile", controllers.GetDoctorProfile)
		doctors.PATCH("/availability/:day", controllers.SaveAvailability)
		doctors.GET("/availability", controllers.GetMyAvailability)
		doctors.GET("/appointment/history", controllers.GetAppointmentHistory)
		doctors.POST("/meeting/room", controllers.CreateMeetingRoom)
	}

	//patient facing routes
	r.GET("/users/doctors/:doctor_profile_id/available-slots", controllers.GetAvailableTimeSlots)
	r.POST("/users/book/appointment", controllers.BookAppointment)
	r.POST("/meeting/token", controllers.GenerateMeetingToken)

	//AI routes
	r.POST("/chat-bot", controllers.ChatBot)
	r.POST("/analyze/:model", controllers.AnalyzeImage)

	return r
}
