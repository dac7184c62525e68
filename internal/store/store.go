package store

import (
	"context"

	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/models"
)

// Interfaces fines au-dessus des tables ScyllaDB. Les handlers ne
// voient que ces contrats ; les tests les remplacent par des
// implémentations en mémoire.

type OwnerStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)
}

type CustomerStore interface {
	GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByMobile(ctx context.Context, mobile string) (*models.Customer, error)
	Insert(ctx context.Context, c *models.Customer) error
	All(ctx context.Context) ([]models.Customer, error)
}

type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id gocql.UUID) error
}

type OrderStore interface {
	All(ctx context.Context) ([]models.Order, error)
	ByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error)
	GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error)
	Insert(ctx context.Context, o *models.Order) error
	UpdateStatus(ctx context.Context, id gocql.UUID, status string) error
}

type ShopStore interface {
	Get(ctx context.Context) (*models.ShopDetails, error)
	Insert(ctx context.Context, s *models.ShopDetails) error
	Update(ctx context.Context, s *models.ShopDetails) error
}

type AboutStore interface {
	Get(ctx context.Context) (*models.AboutUs, error)
	Insert(ctx context.Context, a *models.AboutUs) error
	Update(ctx context.Context, a *models.AboutUs) error
}

type GalleryStore interface {
	Images(ctx context.Context, category string) ([]models.GalleryImage, error)
	InsertImage(ctx context.Context, img *models.GalleryImage) error
	DeleteImage(ctx context.Context, id gocql.UUID) error
	Videos(ctx context.Context) ([]models.GalleryVideo, error)
	InsertVideo(ctx context.Context, v *models.GalleryVideo) error
	DeleteVideo(ctx context.Context, id gocql.UUID) error
}

// Stores regroupe tous les accès tables pour le câblage des routes.
type Stores struct {
	Owners    OwnerStore
	Customers CustomerStore
	Products  ProductStore
	Orders    OrderStore
	Shop      ShopStore
	About     AboutStore
	Gallery   GalleryStore
}

// NewScyllaStores construit les implémentations ScyllaDB au-dessus
// d'une session partagée.
func NewScyllaStores(session *gocql.Session) *Stores {
	return &Stores{
		Owners:    &scyllaOwners{session: session},
		Customers: &scyllaCustomers{session: session},
		Products:  &scyllaProducts{session: session},
		Orders:    &scyllaOrders{session: session},
		Shop:      &scyllaShop{session: session},
		About:     &scyllaAbout{session: session},
		Gallery:   &scyllaGallery{session: session},
	}
}
