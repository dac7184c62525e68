package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
)

// ShopHandler : les deux panneaux singleton du back-office (infos
// boutique et "à propos"). Upsert : insertion à la première
// sauvegarde, mise à jour par identifiant ensuite.
type ShopHandler struct {
	Shop  store.ShopStore
	About store.AboutStore
}

func (h *ShopHandler) GetShop(c *gin.Context) {
	details, err := h.Shop.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture infos boutique"})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ShopHandler) UpsertShop(c *gin.Context) {
	var input struct {
		Address   string   `json:"address"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	existing, err := h.Shop.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture infos boutique"})
		return
	}

	details := models.ShopDetails{
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		UpdatedAt: time.Now(),
	}

	if existing == nil {
		details.ID = gocql.TimeUUID()
		err = h.Shop.Insert(ctx, &details)
	} else {
		details.ID = existing.ID
		err = h.Shop.Update(ctx, &details)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde infos boutique"})
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *ShopHandler) GetAbout(c *gin.Context) {
	about, err := h.About.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture à propos"})
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *ShopHandler) UpsertAbout(c *gin.Context) {
	var input struct {
		Description    string `json:"description"`
		Experience     string `json:"experience"`
		ContactPhone   string `json:"contact_phone"`
		ContactEmail   string `json:"contact_email"`
		ContactAddress string `json:"contact_address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	existing, err := h.About.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture à propos"})
		return
	}

	about := models.AboutUs{
		Description:    input.Description,
		Experience:     input.Experience,
		ContactPhone:   input.ContactPhone,
		ContactEmail:   input.ContactEmail,
		ContactAddress: input.ContactAddress,
		UpdatedAt:      time.Now(),
	}

	if existing == nil {
		about.ID = gocql.TimeUUID()
		err = h.About.Insert(ctx, &about)
	} else {
		about.ID = existing.ID
		err = h.About.Update(ctx, &about)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde à propos"})
		return
	}

	c.JSON(http.StatusOK, about)
}
