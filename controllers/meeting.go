package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/EslamElkfafy/medical-app-update/configuration"
	"github.com/EslamElkfafy/medical-app-update/models"
)

const hmsRoomsURL = "https://api.100ms.live/v2/rooms"

type meetingTokenRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// GenerateMeetingToken mints the client token a participant uses to join a
// consultation room on the video platform.
func GenerateMeetingToken(c *gin.Context) {
	var req meetingTokenRequest
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

	if cfg.HMSSecret == "" || cfg.HMSAccessKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing HMS API credentials"})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"access_key": cfg.HMSAccessKey,
		"room_id":    req.RoomID,
		"user_id":    req.UserName,
		"role":       req.Role,
		"type":       "app",
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.HMSSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Token generated successfully",
		"data":    gin.H{"token": token},
	})
}

type createRoomRequest struct {
	RoomName      string `json:"room_name" validate:"required"`
	AppointmentID int    `json:"appointment_id"`
}

// CreateMeetingRoom creates a consultation room on the video platform and,
// when an appointment id is given, stores the room on the booking.
func CreateMeetingRoom(c *gin.Context) {
	var req createRoomRequest
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

	if cfg.HMSSecret == "" || cfg.HMSAccessKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing HMS API credentials"})
		return
	}

	// Management token for the rooms API
	now := time.Now()
	claims := jwt.MapClaims{
		"access_key": cfg.HMSAccessKey,
		"type":       "management",
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.HMSSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate management token"})
		return
	}

	body, _ := json.Marshal(gin.H{
		"name":        req.RoomName,
		"description": "Doctor-patient Appointment Room",
		"template_id": cfg.HMSTemplateID,
	})

	httpReq, err := http.NewRequest(http.MethodPost, hmsRoomsURL, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create room"})
		return
	}
	defer resp.Body.Close()

	var roomData struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&roomData); err != nil || resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create room"})
		return
	}

	if req.AppointmentID != 0 {
		if err := configuration.DB.Model(&models.Appointment{}).
			Where("appointment_id = ?", req.AppointmentID).
			Update("meeting_room_id", roomData.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach room to appointment"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Room created successfully",
		"data":    gin.H{"room_id": roomData.ID},
	})
}
