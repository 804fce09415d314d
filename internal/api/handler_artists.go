package api

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"artist-booking-backend/internal/model"
	"artist-booking-backend/internal/storage"
	"artist-booking-backend/internal/store"
)

// errUploadsDisabled is returned when a file is posted but no bucket is configured.
var errUploadsDisabled = errors.New("media uploads are not configured")

type artistForm struct {
	Name            string `json:"name" form:"name"`
	Description     string `json:"description" form:"description"`
	ImageURL        string `json:"imageUrl" form:"imageUrl"`
	BookingImageURL string `json:"bookingImageUrl" form:"bookingImageUrl"`
	HoverVideoURL   string `json:"hoverVideoUrl" form:"hoverVideoUrl"`
}

// ListArtists handles GET /api/artists.
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.store.ListArtists(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// GetArtist handles GET /api/artists/:id.
func (h *Handler) GetArtist(c *gin.Context) {
	artist, err := h.store.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// CreateArtist handles POST /api/admin/artists.
func (h *Handler) CreateArtist(c *gin.Context) {
	artist, ok := h.bindArtist(c)
	if !ok {
		return
	}

	if err := h.store.CreateArtist(c.Request.Context(), artist); err != nil {
		h.respondError(c, err)
		return
	}
	h.invalidateCatalog()
	c.JSON(http.StatusCreated, artist)
}

// UpdateArtist handles PUT /api/admin/artists/:id.
func (h *Handler) UpdateArtist(c *gin.Context) {
	artist, ok := h.bindArtist(c)
	if !ok {
		return
	}
	artist.ID = c.Param("id")

	if err := h.store.UpdateArtist(c.Request.Context(), artist); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	h.invalidateCatalog()

	updated, err := h.store.GetArtist(c.Request.Context(), artist.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ReorderArtists handles PUT /api/admin/artists/order.
func (h *Handler) ReorderArtists(c *gin.Context) {
	var items []store.ArtistOrder
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	for _, item := range items {
		if item.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every item needs an id"})
			return
		}
	}

	if err := h.store.ReorderArtists(c.Request.Context(), items); err != nil {
		h.respondError(c, err)
		return
	}
	h.invalidateCatalog()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bindArtist reads the artist form (multipart or JSON) and uploads any
// attached media. It writes the error response itself when it fails.
func (h *Handler) bindArtist(c *gin.Context) (*model.Artist, bool) {
	var form artistForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return nil, false
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	var missing []string
	if form.Name == "" {
		missing = append(missing, "name")
	}
	if form.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": missing})
		return nil, false
	}

	uploads := []struct {
		field  string
		folder string
		dst    *string
	}{
		{"imageFile", storage.FolderArtists, &form.ImageURL},
		{"bookingImageFile", storage.FolderArtists, &form.BookingImageURL},
		{"hoverVideoFile", storage.FolderVideos, &form.HoverVideoURL},
	}
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		for _, u := range uploads {
			fh, err := c.FormFile(u.field)
			if err != nil || fh.Size == 0 {
				continue
			}
			url, err := h.upload(c.Request.Context(), u.folder, fh)
			if err != nil {
				if errors.Is(err, errUploadsDisabled) {
					c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				} else {
					h.respondError(c, err)
				}
				return nil, false
			}
			*u.dst = url
		}
	}

	return &model.Artist{
		Name:            form.Name,
		Description:     form.Description,
		ImageURL:        optionalString(form.ImageURL),
		BookingImageURL: optionalString(form.BookingImageURL),
		HoverVideoURL:   optionalString(form.HoverVideoURL),
	}, true
}

func (h *Handler) upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if h.uploader == nil {
		return "", errUploadsDisabled
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	return h.uploader.Upload(ctx, folder, fh.Filename, fh.Header.Get("Content-Type"), f)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
