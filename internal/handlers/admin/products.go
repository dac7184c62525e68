package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/services"
	"menuiserie_back_end/internal/store"
)

// ProductHandler : CRUD produits du back-office. Chaque mutation
// invalide le cache de liste et resynchronise l'index Elasticsearch.
type ProductHandler struct {
	Products store.ProductStore
	Cache    cache.Cache
	Search   services.ProductSearch
}

type productInput struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (in *productInput) validate() string {
	if in.Name == "" {
		return "Le nom du produit est obligatoire"
	}
	if in.Price < 0 {
		return "Le prix ne peut pas être négatif"
	}
	return ""
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Products.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Products.Insert(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	go h.Search.Index(product)
	h.Cache.Del(c.Request.Context(), cache.ProductListKey)

	c.JSON(http.StatusCreated, product)
}

// Update réécrit la ligne avec tous les champs du formulaire
// (pas de patch partiel).
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de produit invalide"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ctx := c.Request.Context()

	existing, err := h.Products.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	product := models.Product{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Images:      input.Images,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := h.Products.Update(ctx, &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	go h.Search.Index(product)
	h.Cache.Del(ctx, cache.ProductListKey)

	c.JSON(http.StatusOK, product)
}

// Delete supprime un produit. Les commandes existantes gardent leur
// instantané produit et restent lisibles.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de produit invalide"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Products.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	go h.Search.Remove(id.String())
	h.Cache.Del(ctx, cache.ProductListKey)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
