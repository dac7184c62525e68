package store

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

// Les tables shop_details et about_us contiennent au plus une ligne :
// Get lit la première ligne trouvée, Insert/Update servent à l'upsert
// du panneau d'admin.

type scyllaShop struct {
	session *gocql.Session
}

func (s *scyllaShop) Get(ctx context.Context) (*models.ShopDetails, error) {
	var d models.ShopDetails
	err := s.session.Query(
		`SELECT shop_id, address, latitude, longitude, updated_at FROM shop_details LIMIT 1`,
	).WithContext(ctx).Scan(&d.ID, &d.Address, &d.Latitude, &d.Longitude, &d.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *scyllaShop) Insert(ctx context.Context, d *models.ShopDetails) error {
	return s.session.Query(
		`INSERT INTO shop_details (shop_id, address, latitude, longitude, updated_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Address, d.Latitude, d.Longitude, d.UpdatedAt,
	).WithContext(ctx).Exec()
}

func (s *scyllaShop) Update(ctx context.Context, d *models.ShopDetails) error {
	return s.session.Query(
		`UPDATE shop_details SET address = ?, latitude = ?, longitude = ?, updated_at = ? WHERE shop_id = ?`,
		d.Address, d.Latitude, d.Longitude, d.UpdatedAt, d.ID,
	).WithContext(ctx).Exec()
}

type scyllaAbout struct {
	session *gocql.Session
}

func (s *scyllaAbout) Get(ctx context.Context) (*models.AboutUs, error) {
	var a models.AboutUs
	err := s.session.Query(
		`SELECT about_id, description, experience, contact_phone, contact_email, contact_address, updated_at FROM about_us LIMIT 1`,
	).WithContext(ctx).Scan(&a.ID, &a.Description, &a.Experience, &a.ContactPhone, &a.ContactEmail, &a.ContactAddress, &a.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *scyllaAbout) Insert(ctx context.Context, a *models.AboutUs) error {
	return s.session.Query(
		`INSERT INTO about_us (about_id, description, experience, contact_phone, contact_email, contact_address, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Description, a.Experience, a.ContactPhone, a.ContactEmail, a.ContactAddress, a.UpdatedAt,
	).WithContext(ctx).Exec()
}

func (s *scyllaAbout) Update(ctx context.Context, a *models.AboutUs) error {
	return s.session.Query(
		`UPDATE about_us SET description = ?, experience = ?, contact_phone = ?, contact_email = ?, contact_address = ?, updated_at = ? WHERE about_id = ?`,
		a.Description, a.Experience, a.ContactPhone, a.ContactEmail, a.ContactAddress, a.UpdatedAt, a.ID,
	).WithContext(ctx).Exec()
}
