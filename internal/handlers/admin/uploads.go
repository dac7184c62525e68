package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/services"
)

// UploadHandler : dépôt des médias (photos produits, galerie) dans
// MinIO depuis les formulaires d'admin.
type UploadHandler struct {
	Media services.Uploader
}

var allowedFolders = map[string]bool{
	"products": true,
	"gallery":  true,
}

// Upload reçoit un fichier multipart, le stocke et retourne l'URL à
// coller dans le formulaire produit ou galerie.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "gallery"
	}
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dossier inconnu"})
		return
	}

	url, err := h.Media.Upload(c.Request.Context(), file, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// SignedURL génère une URL signée temporaire pour un objet du bucket
// (utile quand le bucket n'est pas public).
func (h *UploadHandler) SignedURL(c *gin.Context) {
	object := c.Query("object")
	if object == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'object' manquant"})
		return
	}

	hours := 24
	if v, err := strconv.Atoi(c.Query("hours")); err == nil && v > 0 {
		hours = v
	}

	url, err := h.Media.SignedURL(c.Request.Context(), object, time.Duration(hours)*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération URL signée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
