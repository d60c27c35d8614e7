// File: handlers/clientAgenda.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendly/models"
	"agendly/utils"
)

// ClientAgendaHandler returns the authenticated client's appointments as
// display events, the data behind their agenda page.
func (hb *HandlerBundle) ClientAgendaHandler(c *gin.Context) {
	logger := getLogger(c)

	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	events, err := hb.ApptSvc.ClientAgenda(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to load client agenda", zap.String("clientId", clientID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load agenda", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ClientCancelAppointmentHandler cancels one of the client's own bookings.
func (hb *HandlerBundle) ClientCancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	appointmentID := c.Param("id")
	if err := hb.ApptSvc.Cancel(c.Request.Context(), appointmentID, models.RoleClient, clientID); err != nil {
		logger.Error("Failed to cancel appointment",
			zap.String("appointmentId", appointmentID),
			zap.String("clientId", clientID),
			zap.Error(err))
		utils.JSONError(c, http.StatusForbidden, "Failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// ClientProfileHandler returns the client's own profile.
func (hb *HandlerBundle) ClientProfileHandler(c *gin.Context) {
	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	profile, err := hb.ClientSvc.GetProfile(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ClientUpdateProfileHandler updates the client's own profile.
func (hb *HandlerBundle) ClientUpdateProfileHandler(c *gin.Context) {
	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	var req models.ClientProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req.ID = clientID

	updated, err := hb.ClientSvc.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ClientRegisterFCMTokenHandler stores the device token for pushes.
func (hb *HandlerBundle) ClientRegisterFCMTokenHandler(c *gin.Context) {
	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := hb.ClientSvc.RegisterFCMToken(c.Request.Context(), clientID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token registered"})
}

// ClientNotificationsHandler lists the client's notifications, newest first.
func (hb *HandlerBundle) ClientNotificationsHandler(c *gin.Context) {
	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	notifications, err := hb.NotifSvc.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// ClientMarkNotificationReadHandler flips one notification to read.
func (hb *HandlerBundle) ClientMarkNotificationReadHandler(c *gin.Context) {
	if _, ok := hb.actorClientID(c); !ok {
		return
	}
	if err := hb.NotifSvc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Notification not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}
