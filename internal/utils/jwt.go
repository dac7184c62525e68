package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL : durée de vie des jetons et des entrées de session Redis
// associées.
const TokenTTL = 24 * time.Hour

// RoleOwner / RoleCustomer : les deux seuls rôles connus. Un jeton
// sans rôle valide est refusé par le middleware.
const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// GenerateToken émet un JWT HS256 pour une identité. Le jti sert de
// clé à l'entrée de session Redis : la déconnexion la supprime.
func GenerateToken(userID, email, role, jti string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"jti":     jti,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
