// File: handlers/roster.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agendly/utils"
)

// RosterHandler lists the establishment's actively linked clients.
func (hb *HandlerBundle) RosterHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	entries, err := hb.EstSvc.Roster(c.Request.Context(), estID)
	if err != nil {
		logger.Error("Failed to load roster", zap.String("establishmentId", estID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load roster", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": entries})
}

// InterestsHandler lists pending link requests.
func (hb *HandlerBundle) InterestsHandler(c *gin.Context) {
	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	interests, err := hb.EstSvc.Interests(c.Request.Context(), estID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load link requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"interests": interests})
}

// AcceptInterestHandler turns a link request into an active relation.
func (hb *HandlerBundle) AcceptInterestHandler(c *gin.Context) {
	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := hb.EstSvc.AcceptInterest(c.Request.Context(), estID, req.ClientID); err != nil {
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "client linked"})
}

// EndRelationHandler unlinks a client and notifies them.
func (hb *HandlerBundle) EndRelationHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	clientID := c.Param("clientId")
	if err := hb.EstSvc.EndRelation(c.Request.Context(), estID, clientID); err != nil {
		logger.Error("Failed to end relation",
			zap.String("establishmentId", estID),
			zap.String("clientId", clientID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to end relation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "relation ended"})
}

// SendPromotionHandler sends a promotional message to one linked client or,
// when no clientId is given, to every linked client.
func (hb *HandlerBundle) SendPromotionHandler(c *gin.Context) {
	logger := getLogger(c)

	estID, ok := hb.actorEstablishmentID(c)
	if !ok {
		return
	}
	var req struct {
		ClientID string `json:"clientId"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if req.ClientID != "" {
		if err := hb.EstSvc.SendPromotion(c.Request.Context(), estID, req.ClientID, req.Message); err != nil {
			utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"sent": 1})
		return
	}

	sent, err := hb.EstSvc.SendPromotionToAll(c.Request.Context(), estID, req.Message)
	if err != nil {
		logger.Error("Bulk promotion failed", zap.String("establishmentId", estID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
