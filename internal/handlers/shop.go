package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

// ShopHandler : pages publiques de la boutique (infos, à propos,
// galerie).
type ShopHandler struct {
	Shop    store.ShopStore
	About   store.AboutStore
	Gallery store.GalleryStore
}

// GetShop retourne les infos boutique et le lien Google Maps calculé
// (coordonnées prioritaires sur l'adresse).
func (h *ShopHandler) GetShop(c *gin.Context) {
	details, err := h.Shop.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture infos boutique"})
		return
	}
	if details == nil {
		c.JSON(http.StatusOK, gin.H{"shop": nil, "map_url": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop":    details,
		"map_url": utils.MapURL(details.Address, details.Latitude, details.Longitude),
	})
}

// MapQR sert le QR code PNG du lien Maps, pour l'affichette comptoir.
func (h *ShopHandler) MapQR(c *gin.Context) {
	details, err := h.Shop.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture infos boutique"})
		return
	}

	mapURL := ""
	if details != nil {
		mapURL = utils.MapURL(details.Address, details.Latitude, details.Longitude)
	}
	if mapURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune localisation renseignée"})
		return
	}

	png, err := qrcode.Encode(mapURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetAbout retourne le contenu "à propos" (null si jamais renseigné).
func (h *ShopHandler) GetAbout(c *gin.Context) {
	about, err := h.About.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture à propos"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// Images liste les images de la galerie, filtrables par catégorie
// (banner alimente le bandeau de la page d'accueil).
func (h *ShopHandler) Images(c *gin.Context) {
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

// Videos liste les vidéos de la galerie.
func (h *ShopHandler) Videos(c *gin.Context) {
	videos, err := h.Gallery.Videos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture galerie"})
		return
	}
	c.JSON(http.StatusOK, videos)
}
