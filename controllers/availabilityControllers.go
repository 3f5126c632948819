package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EslamElkfafy/medical-app-update/availability"
	"github.com/EslamElkfafy/medical-app-update/timeslot"
)

// saveAvailabilityRequest carries one day-editor submission. Slots arrive as
// the picker labels ("7:00 AM") or 24-hour strings, expressed in Zone when
// one is given (stored in UTC either way).
type saveAvailabilityRequest struct {
	Slots []string `json:"slots"`
	Zone  string   `json:"zone"`
}

// SaveAvailability upserts the named day of the logged-in doctor's weekly
// schedule; the one handler serves all seven day editors.
func SaveAvailability(c *gin.Context) {
	day := c.Param("day")

	profileID, ok := c.Get("doctor_profile_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	var req saveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Binding error",
			"data":    err.Error(),
		})
		return
	}

	slots := req.Slots
	if req.Zone != "" {
		// Picker labels are wall-clock times in the doctor's zone
		canonical := make([]string, 0, len(slots))
		for _, s := range slots {
			cs, err := timeslot.ToCanonical(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"Status":  "Failed",
					"Message": "Unrecognized time format",
					"data":    err.Error(),
				})
				return
			}
			canonical = append(canonical, cs)
		}
		utc, err := timeslot.ConvertSlots(canonical, req.Zone, "UTC")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"Status":  "Failed",
				"Message": "Unknown timezone",
				"data":    err.Error(),
			})
			return
		}
		slots = utc
	}

	record, status, err := availabilityService.Upsert(profileID.(string), day, slots)
	if err != nil {
		var formatErr *timeslot.FormatError
		var notFoundErr *availability.NotFoundError
		switch {
		case errors.Is(err, availability.ErrUnknownDay), errors.As(err, &formatErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"Status":  "Failed",
				"Message": "Invalid day or time slot",
				"data":    err.Error(),
			})
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, gin.H{
				"Status":  "Failed",
				"Message": "Availability not found",
				"data":    err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"Status":  "Failed",
				"Message": "Something went wrong",
				"data":    err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  status,
		"Message": "Settings Updated Successfully",
		"data":    record,
	})
}

// GetMyAvailability returns the doctor's full week in the requested zone.
func GetMyAvailability(c *gin.Context) {
	profileID, ok := c.Get("doctor_profile_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	record, err := availabilityService.Find(profileID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Status":  "Failed",
			"Message": "Something went wrong",
			"data":    err.Error(),
		})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"Message": "Availability not found",
			"data":    nil,
		})
		return
	}

	zone := c.DefaultQuery("zone", cfg.DefaultDisplayZone)
	local, err := timeslot.Normalize(*record, zone)
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

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Availability fetched successfully",
		"data":    local,
	})
}
