package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/nutrivision/backend/utils"

	"github.com/gin-gonic/gin"
)

// Meal photos may reach a few MB from phone cameras.
const maxImageBytes = 10 << 20

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadMealImage accepts a multipart "image" field, stores it as a
// write-once public blob and returns its URL.
func (uc *UploadController) UploadMealImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := utils.UploadMealImage(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		if errors.Is(err, utils.ErrStorageNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
			return
		}
		slog.Error("image upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
