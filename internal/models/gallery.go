package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Catégories d'images de la galerie : banner (bandeau défilant de la
// page d'accueil), shop (photos de la boutique), work (réalisations).
const (
	CategoryBanner = "banner"
	CategoryShop   = "shop"
	CategoryWork   = "work"
)

type GalleryImage struct {
	ID        gocql.UUID `json:"id" db:"image_id"`
	ImageURL  string     `json:"image_url" db:"image_url"`
	Category  string     `json:"category" db:"category"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type GalleryVideo struct {
	ID        gocql.UUID `json:"id" db:"video_id"`
	VideoURL  string     `json:"video_url" db:"video_url"`
	Title     string     `json:"title,omitempty" db:"title"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// IsValidCategory vérifie qu'une catégorie de galerie est connue.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryBanner, CategoryShop, CategoryWork:
		return true
	}
	return false
}
