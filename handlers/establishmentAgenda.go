// File: handlers/establishmentAgenda.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendly/models"
	"agendly/services/scheduling"
	"agendly/utils"
)

// EstablishmentAgendaHandler returns the establishment's agenda with client
// names, the owner's management view.
func (hb *HandlerBundle) EstablishmentAgendaHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	events, err := hb.ApptSvc.EstablishmentAgenda(c.Request.Context(), estID)
	if err != nil {
		logger.Error("Failed to load establishment agenda", zap.String("establishmentId", estID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load agenda", err.Error())
		return
	}

	profile, err := hb.EstSvc.GetProfile(c.Request.Context(), estID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", err.Error())
		return
	}

	weekLoad, err := hb.ApptSvc.OccupiedWeekLoad(c.Request.Context(), estID)
	if err != nil {
		logger.Warn("Failed to count booked slots", zap.String("establishmentId", estID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"workingHours": profile.WorkingHours,
		"blockedDates": profile.BlockedDates,
		"weekLoad":     weekLoad,
	})
}

// EstablishmentCreateAppointmentHandler books a consultation slot for a
// linked client.
func (hb *HandlerBundle) EstablishmentCreateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req struct {
		ClientID string    `json:"clientId" binding:"required"`
		Start    time.Time `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := hb.ApptSvc.CreateForClient(c.Request.Context(), estID, req.ClientID, req.Start)
	if err != nil {
		logger.Warn("Appointment creation rejected",
			zap.String("establishmentId", estID),
			zap.String("clientId", req.ClientID),
			zap.Error(err))
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// EstablishmentCancelAppointmentHandler removes a slot from the agenda.
func (hb *HandlerBundle) EstablishmentCancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	appointmentID := c.Param("id")
	if err := hb.ApptSvc.Cancel(c.Request.Context(), appointmentID, models.RoleEstablishment, estID); err != nil {
		logger.Error("Failed to cancel appointment",
			zap.String("appointmentId", appointmentID),
			zap.String("establishmentId", estID),
			zap.Error(err))
		utils.JSONError(c, http.StatusForbidden, "Failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// EstablishmentSetWorkingHoursHandler stores the weekly schedule.
func (hb *HandlerBundle) EstablishmentSetWorkingHoursHandler(c *gin.Context) {
	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req scheduling.WorkingHours
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := hb.EstSvc.SetWorkingHours(c.Request.Context(), estID, req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working hours updated"})
}

// EstablishmentBlockDateHandler adds a full-day exclusion.
func (hb *HandlerBundle) EstablishmentBlockDateHandler(c *gin.Context) {
	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req struct {
		Date   string `json:"date" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := hb.EstSvc.BlockDate(c.Request.Context(), estID, req.Date, req.Reason); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "date blocked"})
}

// EstablishmentUpdateProfileHandler updates the establishment's profile.
func (hb *HandlerBundle) EstablishmentUpdateProfileHandler(c *gin.Context) {
	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req models.EstablishmentProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req.ID = estID

	updated, err := hb.EstSvc.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
