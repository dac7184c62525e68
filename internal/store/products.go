package store

import (
	"context"
	"errors"
	"sort"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

type scyllaProducts struct {
	session *gocql.Session
}

const productColumns = `product_id, name, price, description, images, created_at, updated_at`

func (s *scyllaProducts) All(ctx context.Context) ([]models.Product, error) {
	iter := s.session.Query(
		`SELECT ` + productColumns + ` FROM products`,
	).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Images, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *scyllaProducts) GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	var p models.Product
	err := s.session.Query(
		`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id,
	).WithContext(ctx).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Images, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *scyllaProducts) Insert(ctx context.Context, p *models.Product) error {
	return s.session.Query(
		`INSERT INTO products (product_id, name, price, description, images, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Description, p.Images, p.CreatedAt, p.UpdatedAt,
	).WithContext(ctx).Exec()
}

// Update réécrit la ligne entière : pas de patch partiel, le
// formulaire d'admin renvoie toujours tous les champs.
func (s *scyllaProducts) Update(ctx context.Context, p *models.Product) error {
	return s.session.Query(
		`UPDATE products SET name = ?, price = ?, description = ?, images = ?, updated_at = ? WHERE product_id = ?`,
		p.Name, p.Price, p.Description, p.Images, p.UpdatedAt, p.ID,
	).WithContext(ctx).Exec()
}

func (s *scyllaProducts) Delete(ctx context.Context, id gocql.UUID) error {
	return s.session.Query(
		`DELETE FROM products WHERE product_id = ?`, id,
	).WithContext(ctx).Exec()
}
