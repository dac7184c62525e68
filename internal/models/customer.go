package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Customer : un visiteur identifié par son email OU son mobile
// (jamais les deux obligatoires). Créé automatiquement à la
// première connexion.
type Customer struct {
	ID        gocql.UUID `json:"id" db:"customer_id"`
	Email     string     `json:"email,omitempty" db:"email"`
	Mobile    string     `json:"mobile,omitempty" db:"mobile"`
	Name      string     `json:"name,omitempty" db:"name"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
