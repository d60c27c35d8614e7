// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userRepoPkg "agendly/database/repository/user"
	"agendly/services/account"
	"agendly/services/appointment"
	"agendly/services/client"
	"agendly/services/establishment"
	"agendly/services/notification"
	"agendly/services/scheduling"
	"agendly/utils"
)

// HandlerBundle groups the endpoint handlers and their service dependencies.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	AccountSvc account.AccountService
	ApptSvc    appointment.AppointmentService
	EstSvc     establishment.EstablishmentService
	ClientSvc  client.ClientService
	NotifSvc   notification.NotificationService
}

// actorClientID resolves the authenticated user's client profile. Aborts
// with an error response when the profile cannot be resolved.
func (hb *HandlerBundle) actorClientID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return "", false
	}
	profile, err := hb.ClientSvc.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Client profile not found", err.Error())
		return "", false
	}
	return profile.ID, true
}

// actorEstablishmentID resolves the authenticated user's establishment
// profile.
func (hb *HandlerBundle) actorEstablishmentID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return "", false
	}
	profile, err := hb.EstSvc.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Establishment profile not found", err.Error())
		return "", false
	}
	return profile.ID, true
}

// respondSchedulingError maps feasibility rejections to 422 with their code
// so pages can show the exact message; everything else is a plain error.
func respondSchedulingError(c *gin.Context, err error) {
	if rej := scheduling.AsRejection(err); rej != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": rej.Message,
			"code":  rej.Code,
		})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Request failed", err.Error())
}
