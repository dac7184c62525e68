package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
)

// GalleryHandler : gestion des images et vidéos de la galerie.
type GalleryHandler struct {
	Gallery store.GalleryStore
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	images, err := h.Gallery.Images(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture galerie"})
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var input struct {
		ImageURL string `json:"image_url"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "L'URL de l'image est obligatoire"})
		return
	}
	if !models.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	img := models.GalleryImage{
		ID:        gocql.TimeUUID(),
		ImageURL:  input.ImageURL,
		Category:  input.Category,
		CreatedAt: time.Now(),
	}

	if err := h.Gallery.InsertImage(c.Request.Context(), &img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID d'image invalide"})
		return
	}

	if err := h.Gallery.DeleteImage(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image supprimée"})
}

func (h *GalleryHandler) ListVideos(c *gin.Context) {
	videos, err := h.Gallery.Videos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture galerie"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *GalleryHandler) CreateVideo(c *gin.Context) {
	var input struct {
		VideoURL string `json:"video_url"`
		Title    string `json:"title"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VideoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "L'URL de la vidéo est obligatoire"})
		return
	}

	v := models.GalleryVideo{
		ID:        gocql.TimeUUID(),
		VideoURL:  input.VideoURL,
		Title:     input.Title,
		CreatedAt: time.Now(),
	}

	if err := h.Gallery.InsertVideo(c.Request.Context(), &v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout vidéo"})
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *GalleryHandler) DeleteVideo(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de vidéo invalide"})
		return
	}

	if err := h.Gallery.DeleteVideo(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression vidéo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vidéo supprimée"})
}
