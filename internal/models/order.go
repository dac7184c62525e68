package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts possibles d'une commande. Aucune contrainte de transition
// entre eux : n'importe quel statut peut suivre n'importe quel autre
// (comportement volontairement conservé, voir DESIGN.md).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Order : instantané immuable d'une intention d'achat. Les champs
// produit et client sont dénormalisés à la création pour que la
// commande reste lisible même si le produit ou le client est modifié
// ou supprimé ensuite.
type Order struct {
	ID              gocql.UUID `json:"id" db:"order_id"`
	CustomerID      gocql.UUID `json:"customer_id" db:"customer_id"`
	ProductID       gocql.UUID `json:"product_id" db:"product_id"`
	ProductName     string     `json:"product_name" db:"product_name"`
	ProductPrice    float64    `json:"product_price" db:"product_price"`
	Quantity        int        `json:"quantity" db:"quantity"`
	TotalAmount     float64    `json:"total_amount" db:"total_amount"`
	CustomerName    string     `json:"customer_name" db:"customer_name"`
	CustomerEmail   string     `json:"customer_email,omitempty" db:"customer_email"`
	CustomerMobile  string     `json:"customer_mobile,omitempty" db:"customer_mobile"`
	DeliveryAddress string     `json:"delivery_address" db:"delivery_address"`
	Status          string     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// IsValidStatus vérifie que le statut fait partie des quatre valeurs
// connues.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
