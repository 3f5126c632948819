package models

import "time"

type Appointment struct {
	AppointmentID       int       `gorm:"primaryKey"`
	DoctorProfileID     string    `json:"doctor_profile_id" gorm:"index;not null"`
	PatientName         string    `json:"patient_name" validate:"required"`
	PatientEmail        string    `json:"patient_email" validate:"required,email"`
	AppointmentDate     time.Time `json:"appointment_date"`
	AppointmentTimeSlot string    `json:"appointment_time"`
	PatientHealthIssue  string    `json:"patient_health_issue"`
	MeetingRoomID       string    `json:"meeting_room_id"`
	BookingStatus       string    `json:"booking_status" gorm:"default:confirmed"`
}
