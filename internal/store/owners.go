package store

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

type scyllaOwners struct {
	session *gocql.Session
}

// GetByEmail retourne le propriétaire par email exact, ou nil si
// aucune ligne ne correspond.
func (s *scyllaOwners) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	var o models.Owner
	err := s.session.Query(
		`SELECT owner_id, email, mobile, password_hash, created_at FROM owner WHERE email = ? ALLOW FILTERING`,
		email,
	).WithContext(ctx).Scan(&o.ID, &o.Email, &o.Mobile, &o.PasswordHash, &o.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
