package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandler : gestion des commandes côté back-office. Les
// commandes ne sont jamais supprimées ni éditées, seul le statut
// change.
type OrderHandler struct {
	Orders store.OrderStore
}

// filteredOrders applique le filtre ?status= de la vue courante.
func (h *OrderHandler) filteredOrders(c *gin.Context) ([]models.Order, bool) {
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return nil, false
	}

	orders, err := h.Orders.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return nil, false
	}

	if status == "" {
		return orders, true
	}

	filtered := []models.Order{}
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, true
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, ok := h.filteredOrders(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus change le statut d'une commande vers l'une des quatre
// valeurs connues. Aucune contrainte de transition : n'importe quel
// statut peut suivre n'importe quel autre.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de commande invalide"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut invalide"})
		return
	}

	ctx := c.Request.Context()

	order, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if err := h.Orders.UpdateStatus(ctx, id, input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "status": input.Status})
}

// Export produit le classeur xlsx de la vue filtrée courante.
func (h *OrderHandler) Export(c *gin.Context) {
	orders, ok := h.filteredOrders(c)
	if !ok {
		return
	}

	f, err := utils.BuildOrdersWorkbook(orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+utils.OrdersFileName(time.Now())+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
