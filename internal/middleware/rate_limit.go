package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/database"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par identifiant.
// Compteur Redis incrémenté à chaque 401, purgé à la première
// connexion réussie ; au-delà du seuil l'identifiant passe en
// cooldown.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email      string `json:"email"`
			Identifier string `json:"identifier"`
		}

		if err := json.Unmarshal(bodyBytes, &input); err != nil {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		who := input.Email
		if who == "" {
			who = input.Identifier
		}
		if who == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		key := "login_attempts:" + who
		cooldownKey := "login_cooldown:" + who

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Compte bloqué pendant %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, LoginCooldown)
		case http.StatusOK:
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}
