package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/authentication"
	"github.com/EslamElkfafy/medical-app-update/configuration"
	"github.com/EslamElkfafy/medical-app-update/models"
	"github.com/EslamElkfafy/medical-app-update/timeslot"
)

// CreateDoctorProfile registers a new doctor and mails the verification link.
func CreateDoctorProfile(c *gin.Context) {
	var profile models.DoctorProfile

	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	// Validate profile struct fields
	if err := validate.Struct(profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	// Check if email is already in use
	var existingProfile models.DoctorProfile
	if err := configuration.DB.Where("email = ?", profile.Email).First(&existingProfile).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"Status":  "Failed",
			"Message": "Email already in use",
			"data":    "Choose another email",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Database error",
			"data":    err.Error(),
		})
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to hash password",
			"data":    err.Error(),
		})
		return
	}
	profile.Password = string(hashedPassword)

	profile.ID = uuid.NewString()
	profile.TrackingNumber = uuid.NewString()
	profile.Status = "PENDING"

	if err := configuration.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to create doctor profile",
			"data":    err.Error(),
		})
		return
	}

	// One-time verification token, consumed by the verify-account page
	token := uuid.NewString()
	if err := configuration.SetRedis("verify"+token, profile.ID, 24*time.Hour); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Redis error",
			"data":    err.Error(),
		})
		return
	}

	if err := SendVerificationEmail(profile.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to send verification email",
			"data":    err.Error(),
		})
		return
	}

	profile.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"Status":  "Success",
		"Message": "Profile created, check your email to verify the account",
		"data":    profile,
	})
}

// VerifyAccount consumes the emailed token and marks the profile verified.
func VerifyAccount(c *gin.Context) {
	token := c.Param("token")

	profileID, err := configuration.GetRedis("verify" + token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"Message": "Verification link expired or invalid",
			"data":    nil,
		})
		return
	}

	if err := configuration.DB.Model(&models.DoctorProfile{}).
		Where("id = ?", profileID).
		Update("is_email_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to verify account",
			"data":    err.Error(),
		})
		return
	}
	configuration.DelRedis("verify" + token)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Account verified successfully",
		"data":    nil,
	})
}

// DoctorLogin issues the JWT used by the dashboard.
func DoctorLogin(c *gin.Context) {
	type loginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	var profile models.DoctorProfile
	if err := configuration.DB.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"Status":  "Failed",
			"Message": "Invalid email or password",
			"data":    nil,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"Status":  "Failed",
			"Message": "Invalid email or password",
			"data":    nil,
		})
		return
	}

	if !profile.IsEmailVerified {
		c.JSON(http.StatusForbidden, gin.H{
			"Status":  "Failed",
			"Message": "Account not verified, check your email",
			"data":    nil,
		})
		return
	}

	token, err := authentication.GenerateDoctorToken(profile.Email, profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to generate token",
			"data":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Logged in successfully",
		"data":    gin.H{"token": token},
	})
}

// onboardingUpdate is the set of columns the wizard stages may patch.
type onboardingUpdate struct {
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Phone                 string     `json:"phone"`
	Gender                string     `json:"gender"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Country               string     `json:"country"`
	City                  string     `json:"city"`
	Bio                   string     `json:"bio"`
	ProfilePicture        string     `json:"profile_picture"`
	YearsOfExperience     int        `json:"years_of_experience"`
	MedicalSchool         string     `json:"medical_school"`
	GraduationYear        int        `json:"graduation_year"`
	PrimarySpecialization string     `json:"primary_specialization"`
	HospitalName          string     `json:"hospital_name"`
	HospitalAddress       string     `json:"hospital_address"`
	ServicesOffered       string     `json:"services_offered"`
	HourlyWage            int        `json:"hourly_wage"`
	EducationHistory      string     `json:"education_history"`
	Research              string     `json:"research"`
	Accomplishments       string     `json:"accomplishments"`
}

// UpdateDoctorProfile handles every wizard stage (bio, contact, education,
// practice, profile, additional data) as a partial patch of the profile row.
func UpdateDoctorProfile(c *gin.Context) {
	profileID := c.Param("id")

	var profile models.DoctorProfile
	if err := configuration.DB.Where("id = ?", profileID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"Message": "Profile Not Found",
			"data":    nil,
		})
		return
	}

	var update onboardingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	if err := configuration.DB.Model(&profile).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Profile was not updated",
			"data":    err.Error(),
		})
		return
	}

	profile.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Profile updated successfully",
		"data":    profile,
	})
}

// CompleteProfile finishes the wizard and sends the welcome email.
func CompleteProfile(c *gin.Context) {
	profileID := c.Param("id")

	var profile models.DoctorProfile
	if err := configuration.DB.Where("id = ?", profileID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"Message": "Profile Not Found",
			"data":    nil,
		})
		return
	}

	if err := SendWelcomeEmail(profile.FirstName, profile.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Failed to send welcome email",
			"data":    err.Error(),
		})
		return
	}

	if err := configuration.DB.Model(&profile).Update("status", "COMPLETED").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Profile was not updated",
			"data":    err.Error(),
		})
		return
	}

	profile.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Onboarding completed successfully",
		"data":    profile,
	})
}

// GetApplicationByTrack lets an applicant resume the wizard by tracking number.
func GetApplicationByTrack(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	var profile models.DoctorProfile
	if err := configuration.DB.Where("tracking_number = ?", trackingNumber).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"Status":  "Failed",
				"Message": "Wrong Tracking Number",
				"data":    nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Something Went wrong",
			"data":    err.Error(),
		})
		return
	}

	profile.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Profile fetched successfully",
		"data":    profile,
	})
}

// GetDoctorProfile returns the logged-in doctor's profile with the
// availability translated into the display timezone.
func GetDoctorProfile(c *gin.Context) {
	profileID, ok := c.Get("doctor_profile_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	var profile models.DoctorProfile
	if err := configuration.DB.Preload("Availability").
		Where("id = ?", profileID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"Message": "Profile Not Found",
			"data":    nil,
		})
		return
	}

	zone := c.DefaultQuery("zone", cfg.DefaultDisplayZone)
	if profile.Availability != nil {
		local, err := timeslot.Normalize(*profile.Availability, zone)
		if err != nil {
			var zoneErr *timeslot.ZoneError
			if errors.As(err, &zoneErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"Status":  "Failed",
					"Message": "Unknown timezone",
					"data":    err.Error(),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"Status":  "Failed",
				"Message": "Something went wrong",
				"data":    err.Error(),
			})
			return
		}
		profile.Availability = &local
	}

	profile.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Profile fetched successfully",
		"data":    profile,
	})
}
