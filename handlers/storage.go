package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"gramzo/services/storage"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler exposes the image upload endpoint backing the listing and
// market image fields.
type StorageHandler struct {
	Svc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

// allowedFolders defines permitted upload destinations.
var allowedFolders = map[string]bool{
	"listings": true,
	"market":   true,
}

func (h *StorageHandler) Upload(c *gin.Context) {
	folder := c.DefaultPostForm("folder", "listings")
	if !allowedFolders[folder] {
		utils.Fail(c, utils.InvalidArgument("invalid folder; allowed values are 'listings' and 'market'"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Fail(c, utils.InvalidArgument("file not provided"))
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.Fail(c, utils.Internal(err))
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.Svc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		utils.Fail(c, utils.Internal(err))
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"url": url})
}

// Delete removes a previously uploaded image by its public id, e.g. after a
// listing is deleted or a market image is replaced.
func (h *StorageHandler) Delete(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.Fail(c, utils.InvalidArgument("publicId is required"))
		return
	}

	if err := h.Svc.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.Fail(c, utils.Internal(err))
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}
