package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"

	"menuiserie_back_end/internal/database"
)

// Uploader : stockage des médias (photos produits, galerie) et
// génération d'URLs signées.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	SignedURL(ctx context.Context, objectURL string, duration time.Duration) (string, error)
}

type minioUploader struct{}

func NewMinioUploader() Uploader {
	return &minioUploader{}
}

// Upload pousse un fichier multipart dans le bucket, sous un nom
// unique préfixé par le dossier (products/, gallery/...), et retourne
// l'URL publique de l'objet.
func (u *minioUploader) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("%s/%s%s", folder, gocql.TimeUUID().String(), path.Ext(file.Filename))

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// SignedURL génère une URL signée à expiration pour un objet du
// bucket, à partir de son URL publique.
func (u *minioUploader) SignedURL(ctx context.Context, objectURL string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	prefix := fmt.Sprintf("%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)

	key := objectURL
	if idx := strings.Index(objectURL, prefix); idx >= 0 {
		key = objectURL[idx+len(prefix):]
	}

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, make(url.Values))
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
