package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Owner : l'unique compte administrateur de la boutique.
// Une seule ligne attendue dans la table.
type Owner struct {
	ID           gocql.UUID `json:"id" db:"owner_id"`
	Email        string     `json:"email" db:"email"`
	Mobile       string     `json:"mobile" db:"mobile"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
