package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/middleware"
	"menuiserie_back_end/internal/models"
)

// ===== STORES EN MÉMOIRE =====

type memProducts struct {
	rows []models.Product
}

func (m *memProducts) All(ctx context.Context) ([]models.Product, error) {
	out := append([]models.Product(nil), m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memProducts) GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			p := m.rows[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Insert(ctx context.Context, p *models.Product) error {
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memProducts) Update(ctx context.Context, p *models.Product) error {
	for i := range m.rows {
		if m.rows[i].ID == p.ID {
			m.rows[i] = *p
			return nil
		}
	}
	return errors.New("produit inconnu")
}

func (m *memProducts) Delete(ctx context.Context, id gocql.UUID) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type memOrders struct {
	rows []models.Order
}

func (m *memOrders) All(ctx context.Context) ([]models.Order, error) {
	out := append([]models.Order(nil), m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memOrders) ByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.rows {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			o := m.rows[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memOrders) Insert(ctx context.Context, o *models.Order) error {
	m.rows = append(m.rows, *o)
	return nil
}

func (m *memOrders) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = status
			return nil
		}
	}
	return errors.New("commande inconnue")
}

type memCustomers struct {
	rows []models.Customer
}

func (m *memCustomers) GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			c := m.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for i := range m.rows {
		if m.rows[i].Email != "" && m.rows[i].Email == email {
			c := m.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) GetByMobile(ctx context.Context, mobile string) (*models.Customer, error) {
	for i := range m.rows {
		if m.rows[i].Mobile != "" && m.rows[i].Mobile == mobile {
			c := m.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) Insert(ctx context.Context, c *models.Customer) error {
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memCustomers) All(ctx context.Context) ([]models.Customer, error) {
	out := append([]models.Customer(nil), m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memShop struct {
	row     *models.ShopDetails
	inserts int
	updates int
}

func (m *memShop) Get(ctx context.Context) (*models.ShopDetails, error) {
	if m.row == nil {
		return nil, nil
	}
	d := *m.row
	return &d, nil
}

func (m *memShop) Insert(ctx context.Context, d *models.ShopDetails) error {
	m.row = d
	m.inserts++
	return nil
}

func (m *memShop) Update(ctx context.Context, d *models.ShopDetails) error {
	m.row = d
	m.updates++
	return nil
}

type memAbout struct {
	row     *models.AboutUs
	inserts int
	updates int
}

func (m *memAbout) Get(ctx context.Context) (*models.AboutUs, error) {
	if m.row == nil {
		return nil, nil
	}
	a := *m.row
	return &a, nil
}

func (m *memAbout) Insert(ctx context.Context, a *models.AboutUs) error {
	m.row = a
	m.inserts++
	return nil
}

func (m *memAbout) Update(ctx context.Context, a *models.AboutUs) error {
	m.row = a
	m.updates++
	return nil
}

type memGallery struct {
	images []models.GalleryImage
	videos []models.GalleryVideo
}

func (m *memGallery) Images(ctx context.Context, category string) ([]models.GalleryImage, error) {
	var out []models.GalleryImage
	for _, img := range m.images {
		if category == "" || img.Category == category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (m *memGallery) InsertImage(ctx context.Context, img *models.GalleryImage) error {
	m.images = append(m.images, *img)
	return nil
}

func (m *memGallery) DeleteImage(ctx context.Context, id gocql.UUID) error {
	for i := range m.images {
		if m.images[i].ID == id {
			m.images = append(m.images[:i], m.images[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memGallery) Videos(ctx context.Context) ([]models.GalleryVideo, error) {
	return append([]models.GalleryVideo(nil), m.videos...), nil
}

func (m *memGallery) InsertVideo(ctx context.Context, v *models.GalleryVideo) error {
	m.videos = append(m.videos, *v)
	return nil
}

func (m *memGallery) DeleteVideo(ctx context.Context, id gocql.UUID) error {
	for i := range m.videos {
		if m.videos[i].ID == id {
			m.videos = append(m.videos[:i], m.videos[i+1:]...)
			return nil
		}
	}
	return nil
}

// noopSearch absorbe les resynchronisations d'index déclenchées par le
// CRUD produit.
type noopSearch struct{}

func (noopSearch) Index(p models.Product) {}
func (noopSearch) Remove(id string)       {}

func (noopSearch) Search(query string) ([]models.Product, error) {
	return nil, errors.New("recherche indisponible")
}

// ===== ENVIRONNEMENT DE TEST =====

type adminEnv struct {
	products  *memProducts
	orders    *memOrders
	customers *memCustomers
	shop      *memShop
	about     *memAbout
	gallery   *memGallery
	router    *gin.Engine
}

// newAdminEnv monte le groupe /api/admin avec une identité simulée
// (le rôle est posé directement dans le contexte) devant RequireOwner.
func newAdminEnv(role string) *adminEnv {
	gin.SetMode(gin.TestMode)

	env := &adminEnv{
		products:  &memProducts{},
		orders:    &memOrders{},
		customers: &memCustomers{},
		shop:      &memShop{},
		about:     &memAbout{},
		gallery:   &memGallery{},
	}

	productH := &ProductHandler{Products: env.products, Cache: cache.NoopCache{}, Search: noopSearch{}}
	orderH := &OrderHandler{Orders: env.orders}
	customerH := &CustomerHandler{Customers: env.customers}
	shopH := &ShopHandler{Shop: env.shop, About: env.about}
	galleryH := &GalleryHandler{Gallery: env.gallery}

	r := gin.New()
	adm := r.Group("/api/admin", func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}, middleware.RequireOwner)

	adm.GET("/products", productH.List)
	adm.POST("/products", productH.Create)
	adm.PUT("/products/:id", productH.Update)
	adm.DELETE("/products/:id", productH.Delete)

	adm.GET("/orders", orderH.List)
	adm.GET("/orders/export", orderH.Export)
	adm.PATCH("/orders/:id/status", orderH.UpdateStatus)

	adm.GET("/customers", customerH.List)
	adm.GET("/customers/export", customerH.Export)

	adm.GET("/shop", shopH.GetShop)
	adm.PUT("/shop", shopH.UpsertShop)
	adm.GET("/about", shopH.GetAbout)
	adm.PUT("/about", shopH.UpsertAbout)

	adm.GET("/gallery/images", galleryH.ListImages)
	adm.POST("/gallery/images", galleryH.CreateImage)
	adm.DELETE("/gallery/images/:id", galleryH.DeleteImage)
	adm.GET("/gallery/videos", galleryH.ListVideos)
	adm.POST("/gallery/videos", galleryH.CreateVideo)
	adm.DELETE("/gallery/videos/:id", galleryH.DeleteVideo)

	env.router = r
	return env
}

func (env *adminEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
