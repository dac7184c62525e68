package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore garde la trace des sessions actives côté serveur.
// Une entrée par jeton émis, clé = jti du JWT. La déconnexion
// supprime l'entrée : le jeton devient inutilisable même s'il n'a
// pas expiré.
type SessionStore interface {
	Create(ctx context.Context, jti, userID string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}

type redisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) SessionStore {
	return &redisSessions{client: client}
}

func (s *redisSessions) Create(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, "session:"+jti, userID, ttl).Err()
}

func (s *redisSessions) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, "session:"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessions) Delete(ctx context.Context, jti string) error {
	return s.client.Del(ctx, "session:"+jti).Err()
}
