package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/shopspring/decimal"

	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandler : prise de commande côté client et export d'une
// commande seule.
type OrderHandler struct {
	Products  store.ProductStore
	Orders    store.OrderStore
	Customers store.CustomerStore
	// Notify est appelé en goroutine après une création réussie
	// (notification email du propriétaire). Nil dans les tests.
	Notify func(models.Order)
}

// Place crée une commande : quantité ≥ 1, adresse de livraison
// obligatoire, total recalculé côté serveur, instantané client et
// produit figés à la soumission, statut pending.
func (h *OrderHandler) Place(c *gin.Context) {
	role := c.GetString("role")
	if role != utils.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Connectez-vous comme client pour commander"})
		return
	}

	var input struct {
		ProductID       string `json:"product_id"`
		Quantity        int    `json:"quantity"`
		DeliveryAddress string `json:"delivery_address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La quantité doit être au moins 1"})
		return
	}
	if input.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "L'adresse de livraison est obligatoire"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de produit invalide"})
		return
	}

	ctx := c.Request.Context()

	product, err := h.Products.GetByID(ctx, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	customerID, err := gocql.ParseUUID(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiant invalide"})
		return
	}
	customer, err := h.Customers.GetByID(ctx, customerID)
	if err != nil || customer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Client introuvable"})
		return
	}

	// total = prix x quantité, en décimal pour éviter les dérives
	// flottantes sur les montants
	total := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(input.Quantity)))

	order := models.Order{
		ID:              gocql.TimeUUID(),
		CustomerID:      customer.ID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductPrice:    product.Price,
		Quantity:        input.Quantity,
		TotalAmount:     total.InexactFloat64(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerMobile:  customer.Mobile,
		DeliveryAddress: input.DeliveryAddress,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := h.Orders.Insert(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	if h.Notify != nil {
		go h.Notify(order)
	}

	c.JSON(http.StatusCreated, order)
}

// MyOrders retourne les commandes du client connecté, de la plus
// récente à la plus ancienne.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	customerID, err := gocql.ParseUUID(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiant invalide"})
		return
	}

	orders, err := h.Orders.ByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ExportOne produit le classeur xlsx d'une commande. Le client ne
// peut exporter que ses propres commandes, le propriétaire toutes.
func (h *OrderHandler) ExportOne(c *gin.Context) {
	orderID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de commande invalide"})
		return
	}

	order, err := h.Orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if c.GetString("role") != utils.RoleOwner && order.CustomerID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cette commande ne vous appartient pas"})
		return
	}

	f, err := utils.BuildOrderWorkbook(*order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	fileName := utils.OrderFileName(order.ID.String(), time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
