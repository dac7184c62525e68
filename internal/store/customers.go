package store

import (
	"context"
	"errors"
	"sort"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

type scyllaCustomers struct {
	session *gocql.Session
}

const customerColumns = `customer_id, email, mobile, name, created_at`

func (s *scyllaCustomers) GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error) {
	var c models.Customer
	err := s.session.Query(
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = ?`, id,
	).WithContext(ctx).Scan(&c.ID, &c.Email, &c.Mobile, &c.Name, &c.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *scyllaCustomers) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.getByColumn(ctx, "email", email)
}

func (s *scyllaCustomers) GetByMobile(ctx context.Context, mobile string) (*models.Customer, error) {
	return s.getByColumn(ctx, "mobile", mobile)
}

func (s *scyllaCustomers) getByColumn(ctx context.Context, column, value string) (*models.Customer, error) {
	var c models.Customer
	err := s.session.Query(
		`SELECT `+customerColumns+` FROM customers WHERE `+column+` = ? ALLOW FILTERING`, value,
	).WithContext(ctx).Scan(&c.ID, &c.Email, &c.Mobile, &c.Name, &c.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *scyllaCustomers) Insert(ctx context.Context, c *models.Customer) error {
	return s.session.Query(
		`INSERT INTO customers (customer_id, email, mobile, name, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Email, c.Mobile, c.Name, c.CreatedAt,
	).WithContext(ctx).Exec()
}

// All retourne tous les clients, du plus récent au plus ancien.
// Le tri se fait en mémoire : ScyllaDB ne trie pas un scan complet.
func (s *scyllaCustomers) All(ctx context.Context) ([]models.Customer, error) {
	iter := s.session.Query(
		`SELECT ` + customerColumns + ` FROM customers`,
	).WithContext(ctx).Iter()

	var customers []models.Customer
	var c models.Customer
	for iter.Scan(&c.ID, &c.Email, &c.Mobile, &c.Name, &c.CreatedAt) {
		customers = append(customers, c)
		c = models.Customer{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}
