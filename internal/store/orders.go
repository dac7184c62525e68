package store

import (
	"context"
	"errors"
	"sort"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

type scyllaOrders struct {
	session *gocql.Session
}

const orderColumns = `order_id, customer_id, product_id, product_name, product_price, quantity, total_amount, customer_name, customer_email, customer_mobile, delivery_address, status, created_at`

func (s *scyllaOrders) scanAll(iter *gocql.Iter) ([]models.Order, error) {
	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.ProductName, &o.ProductPrice,
		&o.Quantity, &o.TotalAmount, &o.CustomerName, &o.CustomerEmail, &o.CustomerMobile,
		&o.DeliveryAddress, &o.Status, &o.CreatedAt) {
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *scyllaOrders) All(ctx context.Context) ([]models.Order, error) {
	iter := s.session.Query(`SELECT ` + orderColumns + ` FROM orders`).WithContext(ctx).Iter()
	return s.scanAll(iter)
}

func (s *scyllaOrders) ByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error) {
	iter := s.session.Query(
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = ? ALLOW FILTERING`, customerID,
	).WithContext(ctx).Iter()
	return s.scanAll(iter)
}

func (s *scyllaOrders) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	var o models.Order
	err := s.session.Query(
		`SELECT `+orderColumns+` FROM orders WHERE order_id = ?`, id,
	).WithContext(ctx).Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.ProductName, &o.ProductPrice,
		&o.Quantity, &o.TotalAmount, &o.CustomerName, &o.CustomerEmail, &o.CustomerMobile,
		&o.DeliveryAddress, &o.Status, &o.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *scyllaOrders) Insert(ctx context.Context, o *models.Order) error {
	return s.session.Query(
		`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.CustomerID, o.ProductID, o.ProductName, o.ProductPrice,
		o.Quantity, o.TotalAmount, o.CustomerName, o.CustomerEmail, o.CustomerMobile,
		o.DeliveryAddress, o.Status, o.CreatedAt,
	).WithContext(ctx).Exec()
}

// UpdateStatus ne touche qu'au champ statut : une commande n'est
// jamais modifiée ni supprimée par ailleurs.
func (s *scyllaOrders) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	return s.session.Query(
		`UPDATE orders SET status = ? WHERE order_id = ?`, status, id,
	).WithContext(ctx).Exec()
}
