package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/httpresp"
	"github.com/sharpfade/barber-booking/internal/middleware"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/storage"
)

// ======================================================
// HANDLER (galeria de cortes)
// ======================================================

type GalleryHandler struct {
	db      *gorm.DB
	storage *storage.GalleryStorage
	logger  *zap.Logger
}

func NewGalleryHandler(db *gorm.DB, gs *storage.GalleryStorage, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{db: db, storage: gs, logger: logger}
}

// ======================================================
// LIST (público)
// ======================================================

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.Order("created_at DESC").Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Failed to list gallery images.")
		return
	}

	httpresp.List(c, images)
}

// ======================================================
// UPLOAD (barbeiro): multipart "images", cada arquivo é
// normalizado para webp antes de subir pro bucket
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "Invalid upload.")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		httperr.BadRequest(c, "no_images", "No images in upload.")
		return
	}

	var created []models.GalleryImage
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "unreadable_file", "Could not read "+fh.Filename+".")
			return
		}

		key, url, err := h.storage.Upload(c.Request.Context(), f)
		f.Close()
		if err != nil {
			h.logger.Warn("gallery upload failed",
				zap.String("filename", fh.Filename),
				zap.Error(err),
			)
			httperr.Internal(c, "upload_failed", "Failed to upload "+fh.Filename+".")
			return
		}

		img := models.GalleryImage{
			BarberID:  barberID,
			ObjectKey: key,
			URL:       url,
		}
		if err := h.db.Create(&img).Error; err != nil {
			httperr.Internal(c, "failed_to_save_image", "Failed to save image record.")
			return
		}

		created = append(created, img)
	}

	c.JSON(http.StatusCreated, gin.H{"images": created})
}

// ======================================================
// DELETE (barbeiro)
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_image_id", "Invalid image id.")
		return
	}

	var img models.GalleryImage
	if err := h.db.
		Where("id = ? AND barber_id = ?", imageID, barberID).
		First(&img).Error; err != nil {
		httperr.NotFound(c, "image_not_found", "Image not found.")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), img.ObjectKey); err != nil {
		h.logger.Warn("gallery delete failed",
			zap.String("object_key", img.ObjectKey),
			zap.Error(err),
		)
		httperr.Internal(c, "delete_failed", "Failed to delete image.")
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Failed to delete image record.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
