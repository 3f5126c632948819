package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/configuration"
	"github.com/EslamElkfafy/medical-app-update/models"
	"github.com/EslamElkfafy/medical-app-update/timeslot"
)

// GetAvailableTimeSlots lists a doctor's open slots for one calendar date,
// expressed in the requested display zone.
func GetAvailableTimeSlots(c *gin.Context) {
	doctorProfileID := c.Param("doctor_profile_id")
	dateStr := c.Query("date")
	zone := c.DefaultQuery("zone", cfg.DefaultDisplayZone)

	// Parse date string into time.Time object
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	// Check if the specified date is before the current date
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}

	record, err := availabilityService.Find(doctorProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve availability"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability not found"})
		return
	}

	// The weekly schedule keys slots by day name
	day := strings.ToLower(date.Weekday().String())
	daySlots, err := timeslot.ConvertSlots(record.DaySlots(day), "UTC", zone)
	if err != nil {
		var zoneErr *timeslot.ZoneError
		if errors.As(err, &zoneErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert time slots"})
		return
	}

	// Query database for existing bookings for the doctor on the specified date
	var bookings []models.Appointment
	if err := configuration.DB.Where("doctor_profile_id = ? AND appointment_date = ? AND booking_status = ?",
		doctorProfileID, date, "confirmed").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	// Map to store booked time slots (stored in UTC)
	bookedTimeSlots := make(map[string]bool)
	for _, booking := range bookings {
		bookedTimeSlots[booking.AppointmentTimeSlot] = true
	}

	// Filter out slots that are already booked
	adjustedTimeSlots := make([]string, 0)
	for i, slot := range daySlots {
		if !bookedTimeSlots[record.DaySlots(day)[i]] {
			adjustedTimeSlots = append(adjustedTimeSlots, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Time slots fetched successfully",
		"date":                 dateStr,
		"zone":                 zone,
		"available_time_slots": adjustedTimeSlots,
	})
}

type bookAppointmentRequest struct {
	DoctorProfileID    string `json:"doctor_profile_id" validate:"required"`
	PatientName        string `json:"patient_name" validate:"required"`
	PatientEmail       string `json:"patient_email" validate:"required,email"`
	AppointmentDate    string `json:"appointment_date" validate:"required"`
	AppointmentTime    string `json:"appointment_time" validate:"required"`
	PatientHealthIssue string `json:"patient_health_issue"`
	Zone               string `json:"zone"`
}

// BookAppointment books a consultation slot and emails the confirmation PDF.
func BookAppointment(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}

	// Reduce the requested time to its canonical UTC form
	slot, err := timeslot.ToCanonical(req.AppointmentTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment time"})
		return
	}
	zone := req.Zone
	if zone == "" {
		zone = cfg.DefaultDisplayZone
	}
	utcSlots, err := timeslot.ConvertSlots([]string{slot}, zone, "UTC")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone"})
		return
	}
	utcSlot := utcSlots[0]

	// Check the doctor exists and finished onboarding
	var doctor models.DoctorProfile
	if err := configuration.DB.Where("id = ?", req.DoctorProfileID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor id not found"})
		return
	}

	// Check the slot belongs to the doctor's weekly schedule for that weekday
	record, err := availabilityService.Find(req.DoctorProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve availability"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability not found"})
		return
	}
	day := strings.ToLower(date.Weekday().String())
	if !isTimeWithinAvailableSlot(utcSlot, record.DaySlots(day)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment time slot not available"})
		return
	}

	// Reject double bookings
	var existing models.Appointment
	err = configuration.DB.Where("doctor_profile_id = ? AND appointment_date = ? AND appointment_time_slot = ? AND booking_status = ?",
		req.DoctorProfileID, date, utcSlot, "confirmed").First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot already booked"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing bookings"})
		return
	}

	booking := models.Appointment{
		DoctorProfileID:     req.DoctorProfileID,
		PatientName:         req.PatientName,
		PatientEmail:        req.PatientEmail,
		AppointmentDate:     date,
		AppointmentTimeSlot: utcSlot,
		PatientHealthIssue:  req.PatientHealthIssue,
		BookingStatus:       "confirmed",
	}
	if err := configuration.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	// Generate PDF confirmation
	displaySlot, _ := timeslot.ConvertSlots([]string{utcSlot}, "UTC", zone)
	pdfConfirmation, err := generateBookingPDF(booking, doctor, displaySlot[0], zone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF confirmation"})
		return
	}

	// Send confirmation email with the PDF attached
	err = SendBookingEmail("Your appointment is confirmed", booking.PatientEmail, "confirmation.pdf", pdfConfirmation)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"Data":    booking,
	})
}

// GetAppointmentHistory lists the logged-in doctor's appointments.
func GetAppointmentHistory(c *gin.Context) {
	profileID, ok := c.Get("doctor_profile_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	var appointments []models.Appointment
	if err := configuration.DB.Where("doctor_profile_id = ?", profileID).Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't Get appointment details",
			"details": err.Error()})
		return
	}
	if len(appointments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment list fetched successfully",
		"data":    appointments,
	})
}

// isTimeWithinAvailableSlot checks if the appointment time matches one of the
// doctor's slots for that day
func isTimeWithinAvailableSlot(appointmentTimeSlot string, availableSlots []string) bool {
	for _, slot := range availableSlots {
		if slot == appointmentTimeSlot {
			return true
		}
	}
	return false
}

// Generates the appointment confirmation PDF
func generateBookingPDF(booking models.Appointment, doctor models.DoctorProfile, displaySlot, zone string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Confirmation", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	addDetail(pdf, "Doctor Name:", doctor.FirstName+" "+doctor.LastName, true)
	addDetail(pdf, "Specialization:", doctor.PrimarySpecialization, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Patient Name:", booking.PatientName, true)
	addDetail(pdf, "Health Issue:", booking.PatientHealthIssue, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Appointment Date:", booking.AppointmentDate.Format("2006-01-02"), true)
	addDetail(pdf, "Time Slot:", fmt.Sprintf("%s (%s)", displaySlot, zone), false)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Join the video consultation from your dashboard a few minutes before the slot. Your health is all that matters!", "", "C", false)

	var pdfBuffer bytes.Buffer
	err := pdf.Output(&pdfBuffer)
	if err != nil {
		return nil, err
	}

	return pdfBuffer.Bytes(), nil
}

// addDetail adds a detail line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 12)
	}
	pdf.CellFormat(0, 10, label, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "", 1, "", false, 0, "")
}
