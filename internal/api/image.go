package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
)

// ImageHandler accepts recipe image uploads.
type ImageHandler struct {
	images service.IImageService
}

// NewImageHandler creates a new image handler
func NewImageHandler(images service.IImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", middleware.RequireAuth(), h.UploadImage)
}

// UploadImage stores the multipart "image" field and returns its URL.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if header.Size > service.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrImageTooLarge.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.images.UploadRecipeImage(c.Request.Context(), file)
	if errors.Is(err, service.ErrUnsupportedImage) || errors.Is(err, service.ErrImageTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("image upload failed", "user_id", middleware.SessionFrom(c).UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
