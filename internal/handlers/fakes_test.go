package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/middleware"
	"menuiserie_back_end/internal/models"
	"menuiserie_back_end/internal/utils"
)

// ===== STORES EN MÉMOIRE (implémentent les interfaces de store) =====

type fakeOwners struct {
	rows []models.Owner
}

func (f *fakeOwners) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			o := f.rows[i]
			return &o, nil
		}
	}
	return nil, nil
}

type fakeCustomers struct {
	rows      []models.Customer
	insertErr error
}

func (f *fakeCustomers) GetByID(ctx context.Context, id gocql.UUID) (*models.Customer, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for i := range f.rows {
		if f.rows[i].Email != "" && f.rows[i].Email == email {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) GetByMobile(ctx context.Context, mobile string) (*models.Customer, error) {
	for i := range f.rows {
		if f.rows[i].Mobile != "" && f.rows[i].Mobile == mobile {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) Insert(ctx context.Context, c *models.Customer) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCustomers) All(ctx context.Context) ([]models.Customer, error) {
	out := append([]models.Customer(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeProducts struct {
	rows []models.Product
}

func (f *fakeProducts) All(ctx context.Context) ([]models.Product, error) {
	out := append([]models.Product(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			p := f.rows[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Insert(ctx context.Context, p *models.Product) error {
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakeProducts) Update(ctx context.Context, p *models.Product) error {
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = *p
			return nil
		}
	}
	return errors.New("produit inconnu")
}

func (f *fakeProducts) Delete(ctx context.Context, id gocql.UUID) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrders struct {
	rows []models.Order
}

func (f *fakeOrders) All(ctx context.Context) ([]models.Order, error) {
	out := append([]models.Order(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrders) ByCustomer(ctx context.Context, customerID gocql.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.rows {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrders) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			o := f.rows[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) Insert(ctx context.Context, o *models.Order) error {
	f.rows = append(f.rows, *o)
	return nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
			return nil
		}
	}
	return errors.New("commande inconnue")
}

type fakeShop struct {
	row *models.ShopDetails
}

func (f *fakeShop) Get(ctx context.Context) (*models.ShopDetails, error) {
	if f.row == nil {
		return nil, nil
	}
	d := *f.row
	return &d, nil
}

func (f *fakeShop) Insert(ctx context.Context, d *models.ShopDetails) error {
	f.row = d
	return nil
}

func (f *fakeShop) Update(ctx context.Context, d *models.ShopDetails) error {
	f.row = d
	return nil
}

type fakeAbout struct {
	row *models.AboutUs
}

func (f *fakeAbout) Get(ctx context.Context) (*models.AboutUs, error) {
	if f.row == nil {
		return nil, nil
	}
	a := *f.row
	return &a, nil
}

func (f *fakeAbout) Insert(ctx context.Context, a *models.AboutUs) error {
	f.row = a
	return nil
}

func (f *fakeAbout) Update(ctx context.Context, a *models.AboutUs) error {
	f.row = a
	return nil
}

type fakeGallery struct {
	images []models.GalleryImage
	videos []models.GalleryVideo
}

func (f *fakeGallery) Images(ctx context.Context, category string) ([]models.GalleryImage, error) {
	var out []models.GalleryImage
	for _, img := range f.images {
		if category == "" || img.Category == category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeGallery) InsertImage(ctx context.Context, img *models.GalleryImage) error {
	f.images = append(f.images, *img)
	return nil
}

func (f *fakeGallery) DeleteImage(ctx context.Context, id gocql.UUID) error {
	for i := range f.images {
		if f.images[i].ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeGallery) Videos(ctx context.Context) ([]models.GalleryVideo, error) {
	return append([]models.GalleryVideo(nil), f.videos...), nil
}

func (f *fakeGallery) InsertVideo(ctx context.Context, v *models.GalleryVideo) error {
	f.videos = append(f.videos, *v)
	return nil
}

func (f *fakeGallery) DeleteVideo(ctx context.Context, id gocql.UUID) error {
	for i := range f.videos {
		if f.videos[i].ID == id {
			f.videos = append(f.videos[:i], f.videos[i+1:]...)
			return nil
		}
	}
	return nil
}

// ===== SESSIONS EN MÉMOIRE =====

type fakeSessions struct {
	entries map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{entries: make(map[string]string)}
}

func (f *fakeSessions) Create(ctx context.Context, jti, userID string, ttl time.Duration) error {
	f.entries[jti] = userID
	return nil
}

func (f *fakeSessions) Exists(ctx context.Context, jti string) (bool, error) {
	_, ok := f.entries[jti]
	return ok, nil
}

func (f *fakeSessions) Delete(ctx context.Context, jti string) error {
	delete(f.entries, jti)
	return nil
}

// ===== RECHERCHE FACTICE =====

// fakeSearch renvoie une erreur par défaut pour forcer le repli
// ScyllaDB des handlers.
type fakeSearch struct {
	results []models.Product
	err     error
}

func (f *fakeSearch) Index(p models.Product) {}
func (f *fakeSearch) Remove(id string)       {}

func (f *fakeSearch) Search(query string) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

// ===== ENVIRONNEMENT DE TEST =====

type testEnv struct {
	owners    *fakeOwners
	customers *fakeCustomers
	products  *fakeProducts
	orders    *fakeOrders
	shop      *fakeShop
	about     *fakeAbout
	gallery   *fakeGallery
	sessions  *fakeSessions
	search    *fakeSearch
	router    *gin.Engine
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		owners:    &fakeOwners{},
		customers: &fakeCustomers{},
		products:  &fakeProducts{},
		orders:    &fakeOrders{},
		shop:      &fakeShop{},
		about:     &fakeAbout{},
		gallery:   &fakeGallery{},
		sessions:  newFakeSessions(),
		search:    &fakeSearch{err: errors.New("recherche indisponible")},
	}

	authH := &AuthHandler{Owners: env.owners, Customers: env.customers, Sessions: env.sessions}
	catalogH := &CatalogHandler{Products: env.products, Cache: cache.NoopCache{}, Search: env.search}
	orderH := &OrderHandler{Products: env.products, Orders: env.orders, Customers: env.customers}
	shopH := &ShopHandler{Shop: env.shop, About: env.about, Gallery: env.gallery}

	authRequired := middleware.AuthRequired(env.sessions)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/owner/login", authH.OwnerLogin)
	auth.POST("/customer/login", authH.CustomerLogin)
	auth.GET("/me", authRequired, authH.Me)
	auth.POST("/logout", authRequired, authH.Logout)

	api.GET("/products", catalogH.List)
	api.GET("/products/search", catalogH.SearchProducts)
	api.GET("/products/:id", catalogH.Get)
	api.GET("/shop", shopH.GetShop)
	api.GET("/shop/qr", shopH.MapQR)
	api.GET("/about", shopH.GetAbout)
	api.GET("/gallery/images", shopH.Images)
	api.GET("/gallery/videos", shopH.Videos)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderH.Place)
	orders.GET("/my", orderH.MyOrders)
	orders.GET("/:id/export", orderH.ExportOne)

	env.router = r
	return env
}

func (env *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// seedOwner insère un propriétaire avec mot de passe hashé.
func (env *testEnv) seedOwner(t *testing.T, email, password string) models.Owner {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	owner := models.Owner{
		ID:           gocql.TimeUUID(),
		Email:        email,
		Mobile:       "0612345678",
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	env.owners.rows = append(env.owners.rows, owner)
	return owner
}

func (env *testEnv) seedProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	now := time.Now()
	p := models.Product{
		ID:          gocql.TimeUUID(),
		Name:        name,
		Price:       price,
		Description: "description de " + name,
		Images:      []string{"http://minio/menuiserie/products/" + name + ".jpg"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	env.products.rows = append(env.products.rows, p)
	return p
}

// customerToken connecte un client (créé au besoin) et retourne le
// jeton émis.
func (env *testEnv) customerToken(t *testing.T, identifier, name string) string {
	t.Helper()
	w := env.do(http.MethodPost, "/api/auth/customer/login", "", gin.H{
		"identifier": identifier,
		"name":       name,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (env *testEnv) ownerToken(t *testing.T, email, password string) string {
	t.Helper()
	w := env.do(http.MethodPost, "/api/auth/owner/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}
