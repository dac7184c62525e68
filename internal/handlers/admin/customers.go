package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

// CustomerHandler : liste et export des clients. Pas de création ni
// de suppression côté admin, les clients naissent à leur première
// connexion.
type CustomerHandler struct {
	Customers store.CustomerStore
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Customers.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération clients"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Export(c *gin.Context) {
	customers, err := h.Customers.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération clients"})
		return
	}

	f, err := utils.BuildCustomersWorkbook(customers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+utils.CustomersFileName(time.Now())+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
