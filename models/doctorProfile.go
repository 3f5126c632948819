package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DoctorProfile is filled in progressively by the onboarding wizard; each
// stage patches its own group of columns.
type DoctorProfile struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	TrackingNumber string     `json:"tracking_number" gorm:"uniqueIndex"`
	FirstName      string     `json:"first_name" validate:"required"`
	LastName       string     `json:"last_name" validate:"required"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password       string     `json:"password,omitempty" validate:"required"`
	Phone          string     `json:"phone"`
	Gender         string     `json:"gender"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Country        string     `json:"country"`
	City           string     `json:"city"`

	// Profile data
	Bio               string `json:"bio"`
	ProfilePicture    string `json:"profile_picture"`
	YearsOfExperience int    `json:"years_of_experience"`

	// Education data
	MedicalSchool         string `json:"medical_school"`
	GraduationYear        int    `json:"graduation_year"`
	PrimarySpecialization string `json:"primary_specialization"`

	// Practice data
	HospitalName    string `json:"hospital_name"`
	HospitalAddress string `json:"hospital_address"`
	ServicesOffered string `json:"services_offered"`
	HourlyWage      int    `json:"hourly_wage"`

	// Additional data
	EducationHistory string `json:"education_history"`
	Research         string `json:"research"`
	Accomplishments  string `json:"accomplishments"`

	// PENDING until the wizard completes
	Status          string `json:"status" gorm:"default:PENDING"`
	IsEmailVerified bool   `json:"is_email_verified" gorm:"default:false"`

	Availability *Availability `json:"availability,omitempty" gorm:"foreignKey:DoctorProfileID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorClaims struct {
	Id          string `json:"id"`
	DoctorEmail string `json:"email"`
	jwt.RegisteredClaims
}
