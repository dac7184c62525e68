package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/services"
	"menuiserie_back_end/internal/store"
)

// CatalogHandler : vitrine publique du catalogue, indépendante de
// l'identité.
type CatalogHandler struct {
	Products store.ProductStore
	Cache    cache.Cache
	Search   services.ProductSearch
}

// List retourne tous les produits, du plus récent au plus ancien,
// avec cache Redis devant ScyllaDB.
func (h *CatalogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if val, ok := h.Cache.Get(ctx, cache.ProductListKey); ok {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, err := h.Products.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	if data, err := json.Marshal(products); err == nil {
		h.Cache.Set(ctx, cache.ProductListKey, data, cache.ProductCacheTTL)
	}

	c.JSON(http.StatusOK, products)
}

// Get retourne un produit avec sa liste ordonnée d'images. Le
// défilement cyclique des images est l'affaire du client.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de produit invalide"})
		return
	}

	product, err := h.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// SearchProducts cherche dans Elasticsearch en priorité, puis retombe
// sur un filtre en mémoire (sous-chaîne insensible à la casse sur nom
// et description) au-dessus du scan ScyllaDB.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	results, err := h.Search.Search(query)
	if err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	// Repli ScyllaDB : scan complet filtré en mémoire
	products, err := h.Products.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	matches := []models.Product{}
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) {
			matches = append(matches, p)
		}
	}

	c.JSON(http.StatusOK, matches)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
