package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Price       float64    `json:"price" db:"price"`
	Description string     `json:"description" db:"description"`
	Images      []string   `json:"images" db:"images"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
