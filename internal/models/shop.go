package models

import (
	"time"

	"github.com/gocql/gocql"
)

// ShopDetails : adresse et position de la boutique. Une seule ligne
// attendue. Latitude/longitude optionnelles (nil = non renseigné).
type ShopDetails struct {
	ID        gocql.UUID `json:"id" db:"shop_id"`
	Address   string     `json:"address,omitempty" db:"address"`
	Latitude  *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64   `json:"longitude,omitempty" db:"longitude"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// AboutUs : contenu de la page "à propos". Une seule ligne attendue.
type AboutUs struct {
	ID             gocql.UUID `json:"id" db:"about_id"`
	Description    string     `json:"description,omitempty" db:"description"`
	Experience     string     `json:"experience,omitempty" db:"experience"`
	ContactPhone   string     `json:"contact_phone,omitempty" db:"contact_phone"`
	ContactEmail   string     `json:"contact_email,omitempty" db:"contact_email"`
	ContactAddress string     `json:"contact_address,omitempty" db:"contact_address"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
