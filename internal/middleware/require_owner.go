package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/utils"
)

// RequireOwner vérifie que l'utilisateur a le rôle "owner". Posé une
// seule fois à l'entrée du groupe /admin : les handlers n'ont pas à
// re-vérifier le rôle.
func RequireOwner(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != utils.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé au propriétaire"})
		c.Abort()
		return
	}
	c.Next()
}
