// File: handlers/storage.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"agendly/models"
	"agendly/utils"
)

// UploadPhotoHandler stores a profile photo for the authenticated actor.
// The file lands in a temp path first, then goes to the media store.
func (hb *HandlerBundle) UploadPhotoHandler(c *gin.Context) {
	role := c.GetString("role")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}
	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	var url string
	switch role {
	case models.RoleClient:
		clientID, ok := hb.actorClientID(c)
		if !ok {
			return
		}
		url, err = hb.ClientSvc.UploadPhoto(c.Request.Context(), clientID, tempFilePath)
	case models.RoleEstablishment:
		estID, ok := hb.actorEstablishmentID(c)
		if !ok {
			return
		}
		url, err = hb.EstSvc.UploadPhoto(c.Request.Context(), estID, tempFilePath)
	default:
		utils.JSONError(c, http.StatusForbidden, "Unknown role", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload photo", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
