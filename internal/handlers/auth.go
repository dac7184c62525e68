package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

// AuthHandler : connexion propriétaire, connexion client
// (lookup-or-create), profil courant et déconnexion.
type AuthHandler struct {
	Owners    store.OwnerStore
	Customers store.CustomerStore
	Sessions  cache.SessionStore
}

// OwnerLogin authentifie le propriétaire par email exact + mot de
// passe Argon2id. Entrée manquante et identifiants incorrects sont
// distingués (400 vs 401).
func (h *AuthHandler) OwnerLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	owner, err := h.Owners.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	if owner == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, owner.PasswordHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := h.openSession(c, owner.ID.String(), owner.Email, utils.RoleOwner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  utils.RoleOwner,
		"user":  owner,
	})
}

// CustomerLogin identifie un client par email ou mobile — la présence
// d'un '@' décide de la colonne. Si aucune ligne n'existe, elle est
// créée avec l'identifiant fourni et le nom optionnel : la connexion
// ne peut échouer que si l'écriture échoue.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier"`
		Name       string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email ou numéro de mobile requis"})
		return
	}

	ctx := c.Request.Context()
	isEmail := strings.Contains(input.Identifier, "@")

	var customer *models.Customer
	var err error
	if isEmail {
		customer, err = h.Customers.GetByEmail(ctx, input.Identifier)
	} else {
		customer, err = h.Customers.GetByMobile(ctx, input.Identifier)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if customer == nil {
		customer = &models.Customer{
			ID:        gocql.TimeUUID(),
			Name:      input.Name,
			CreatedAt: time.Now(),
		}
		if isEmail {
			customer.Email = input.Identifier
		} else {
			customer.Mobile = input.Identifier
		}

		if err := h.Customers.Insert(ctx, customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création client"})
			return
		}
	}

	token, err := h.openSession(c, customer.ID.String(), customer.Email, utils.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  utils.RoleCustomer,
		"user":  customer,
	})
}

// openSession émet le jeton et enregistre l'entrée de session Redis
// qui le rend révocable.
func (h *AuthHandler) openSession(c *gin.Context, userID, email, role string) (string, error) {
	jti := uuid.NewString()
	token, err := utils.GenerateToken(userID, email, role, jti)
	if err != nil {
		return "", err
	}
	if err := h.Sessions.Create(c.Request.Context(), jti, userID, utils.TokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Me retourne l'identité courante, relue depuis la base.
func (h *AuthHandler) Me(c *gin.Context) {
	role := c.GetString("role")
	ctx := c.Request.Context()

	switch role {
	case utils.RoleOwner:
		owner, err := h.Owners.GetByEmail(ctx, c.GetString("email"))
		if err != nil || owner == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propriétaire introuvable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": owner})

	case utils.RoleCustomer:
		id, err := gocql.ParseUUID(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiant invalide"})
			return
		}
		customer, err := h.Customers.GetByID(ctx, id)
		if err != nil || customer == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": customer})

	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Rôle inconnu"})
	}
}

// Logout supprime l'entrée de session : le jeton devient inutilisable
// immédiatement, redémarrage compris.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	if err := h.Sessions.Delete(c.Request.Context(), jti); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur déconnexion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
