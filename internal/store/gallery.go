package store

import (
	"context"
	"sort"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

type scyllaGallery struct {
	session *gocql.Session
}

// Images retourne les images de la galerie, filtrées par catégorie si
// elle est fournie, du plus récent au plus ancien.
func (s *scyllaGallery) Images(ctx context.Context, category string) ([]models.GalleryImage, error) {
	query := `SELECT image_id, image_url, category, created_at FROM gallery_images`
	var iter *gocql.Iter
	if category != "" {
		iter = s.session.Query(query+` WHERE category = ? ALLOW FILTERING`, category).WithContext(ctx).Iter()
	} else {
		iter = s.session.Query(query).WithContext(ctx).Iter()
	}

	var images []models.GalleryImage
	var img models.GalleryImage
	for iter.Scan(&img.ID, &img.ImageURL, &img.Category, &img.CreatedAt) {
		images = append(images, img)
		img = models.GalleryImage{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].CreatedAt.After(images[j].CreatedAt)
	})
	return images, nil
}

func (s *scyllaGallery) InsertImage(ctx context.Context, img *models.GalleryImage) error {
	return s.session.Query(
		`INSERT INTO gallery_images (image_id, image_url, category, created_at) VALUES (?, ?, ?, ?)`,
		img.ID, img.ImageURL, img.Category, img.CreatedAt,
	).WithContext(ctx).Exec()
}

func (s *scyllaGallery) DeleteImage(ctx context.Context, id gocql.UUID) error {
	return s.session.Query(`DELETE FROM gallery_images WHERE image_id = ?`, id).WithContext(ctx).Exec()
}

func (s *scyllaGallery) Videos(ctx context.Context) ([]models.GalleryVideo, error) {
	iter := s.session.Query(
		`SELECT video_id, video_url, title, created_at FROM gallery_videos`,
	).WithContext(ctx).Iter()

	var videos []models.GalleryVideo
	var v models.GalleryVideo
	for iter.Scan(&v.ID, &v.VideoURL, &v.Title, &v.CreatedAt) {
		videos = append(videos, v)
		v = models.GalleryVideo{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}

func (s *scyllaGallery) InsertVideo(ctx context.Context, v *models.GalleryVideo) error {
	return s.session.Query(
		`INSERT INTO gallery_videos (video_id, video_url, title, created_at) VALUES (?, ?, ?, ?)`,
		v.ID, v.VideoURL, v.Title, v.CreatedAt,
	).WithContext(ctx).Exec()
}

func (s *scyllaGallery) DeleteVideo(ctx context.Context, id gocql.UUID) error {
	return s.session.Query(`DELETE FROM gallery_videos WHERE video_id = ?`, id).WithContext(ctx).Exec()
}
