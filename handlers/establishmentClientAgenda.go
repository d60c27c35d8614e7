// File: handlers/establishmentClientAgenda.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendly/utils"
)

// PublicAgendaHandler is the establishment view a visiting client sees:
// occupied slots, open slots and the blocked-day decoration data.
func (hb *HandlerBundle) PublicAgendaHandler(c *gin.Context) {
	logger := getLogger(c)

	estID := c.Param("establishmentId")
	profile, err := hb.EstSvc.GetProfile(c.Request.Context(), estID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Establishment not found", err.Error())
		return
	}
	events, err := hb.ApptSvc.PublicAgenda(c.Request.Context(), estID)
	if err != nil {
		logger.Error("Failed to load public agenda", zap.String("establishmentId", estID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load agenda", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"establishment": gin.H{
			"id":       profile.ID,
			"name":     profile.Name,
			"photoUrl": profile.PhotoURL,
			"address":  profile.Address,
		},
		"events":       events,
		"workingHours": profile.WorkingHours,
		"blockedDates": profile.BlockedDates,
	})
}

// ProposeBookingHandler starts the two-step booking: the slot is validated
// and held for the client until confirmed or expired.
func (hb *HandlerBundle) ProposeBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	var req struct {
		EstablishmentID string    `json:"establishmentId" binding:"required"`
		Start           time.Time `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	hold, err := hb.ApptSvc.ProposeBooking(c.Request.Context(), clientID, req.EstablishmentID, req.Start)
	if err != nil {
		logger.Warn("Booking proposal rejected",
			zap.String("clientId", clientID),
			zap.String("establishmentId", req.EstablishmentID),
			zap.Error(err))
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, hold)
}

// ConfirmBookingHandler finalizes a held slot.
func (hb *HandlerBundle) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	if _, ok := hb.actorClientID(c); !ok {
		return
	}
	holdID := c.Param("holdId")
	appt, err := hb.ApptSvc.ConfirmBooking(c.Request.Context(), holdID)
	if err != nil {
		logger.Warn("Booking confirmation failed", zap.String("holdId", holdID), zap.Error(err))
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// RequestLinkHandler records the client's interest in joining the
// establishment's roster.
func (hb *HandlerBundle) RequestLinkHandler(c *gin.Context) {
	clientID, ok := hb.actorClientID(c)
	if !ok {
		return
	}
	var req struct {
		EstablishmentID string `json:"establishmentId" binding:"required"`
		Message         string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := hb.ClientSvc.RequestLink(c.Request.Context(), clientID, req.EstablishmentID, req.Message); err != nil {
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "link requested"})
}
