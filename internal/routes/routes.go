package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/cache"
	"menuiserie_back_end/internal/database"
	"menuiserie_back_end/internal/handlers"
	"menuiserie_back_end/internal/handlers/admin"
	"menuiserie_back_end/internal/middleware"
	"menuiserie_back_end/internal/services"
	"menuiserie_back_end/internal/store"
	"menuiserie_back_end/internal/utils"
)

// RegisterRoutes câble les stores ScyllaDB, les services et les
// handlers sur le routeur gin. Surface publique d'un côté, groupe
// /api/admin verrouillé par AuthRequired + RequireOwner de l'autre.
func RegisterRoutes(r *gin.Engine) {
	stores := store.NewScyllaStores(database.Scylla)
	sessions := cache.NewRedisSessions(database.Redis)
	listCache := cache.NewRedisCache(database.Redis)
	search := services.NewElasticSearch()
	uploader := services.NewMinioUploader()

	authH := &handlers.AuthHandler{Owners: stores.Owners, Customers: stores.Customers, Sessions: sessions}
	catalogH := &handlers.CatalogHandler{Products: stores.Products, Cache: listCache, Search: search}
	orderH := &handlers.OrderHandler{
		Products:  stores.Products,
		Orders:    stores.Orders,
		Customers: stores.Customers,
		Notify:    utils.NotifyOwnerOrder,
	}
	shopH := &handlers.ShopHandler{Shop: stores.Shop, About: stores.About, Gallery: stores.Gallery}

	adminProductH := &admin.ProductHandler{Products: stores.Products, Cache: listCache, Search: search}
	adminOrderH := &admin.OrderHandler{Orders: stores.Orders}
	adminCustomerH := &admin.CustomerHandler{Customers: stores.Customers}
	adminShopH := &admin.ShopHandler{Shop: stores.Shop, About: stores.About}
	adminGalleryH := &admin.GalleryHandler{Gallery: stores.Gallery}
	uploadH := &admin.UploadHandler{Media: uploader}

	r.Use(cors.New(corsConfig()))

	authRequired := middleware.AuthRequired(sessions)

	api := r.Group("/api")

	// --- Authentification ---
	auth := api.Group("/auth")
	auth.POST("/owner/login", middleware.LoginRateLimit(), authH.OwnerLogin)
	auth.POST("/customer/login", middleware.LoginRateLimit(), authH.CustomerLogin)
	auth.GET("/me", authRequired, authH.Me)
	auth.POST("/logout", authRequired, authH.Logout)

	// --- Vitrine publique ---
	api.GET("/products", catalogH.List)
	api.GET("/products/search", catalogH.SearchProducts)
	api.GET("/products/:id", catalogH.Get)
	api.GET("/shop", shopH.GetShop)
	api.GET("/shop/qr", shopH.MapQR)
	api.GET("/about", shopH.GetAbout)
	api.GET("/gallery/images", shopH.Images)
	api.GET("/gallery/videos", shopH.Videos)

	// --- Commandes (authentifié) ---
	orders := api.Group("/orders", authRequired)
	orders.POST("", orderH.Place)
	orders.GET("/my", orderH.MyOrders)
	orders.GET("/:id/export", orderH.ExportOne)

	// --- Back-office propriétaire ---
	adm := api.Group("/admin", authRequired, middleware.RequireOwner)
	adm.GET("/products", adminProductH.List)
	adm.POST("/products", adminProductH.Create)
	adm.PUT("/products/:id", adminProductH.Update)
	adm.DELETE("/products/:id", adminProductH.Delete)

	adm.GET("/orders", adminOrderH.List)
	adm.GET("/orders/export", adminOrderH.Export)
	adm.PATCH("/orders/:id/status", adminOrderH.UpdateStatus)

	adm.GET("/customers", adminCustomerH.List)
	adm.GET("/customers/export", adminCustomerH.Export)

	adm.GET("/shop", adminShopH.GetShop)
	adm.PUT("/shop", adminShopH.UpsertShop)
	adm.GET("/about", adminShopH.GetAbout)
	adm.PUT("/about", adminShopH.UpsertAbout)

	adm.GET("/gallery/images", adminGalleryH.ListImages)
	adm.POST("/gallery/images", adminGalleryH.CreateImage)
	adm.DELETE("/gallery/images/:id", adminGalleryH.DeleteImage)
	adm.GET("/gallery/videos", adminGalleryH.ListVideos)
	adm.POST("/gallery/videos", adminGalleryH.CreateVideo)
	adm.DELETE("/gallery/videos/:id", adminGalleryH.DeleteVideo)

	adm.POST("/uploads", uploadH.Upload)
	adm.GET("/uploads/signed", uploadH.SignedURL)
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if env := os.Getenv("FRONTEND_URL"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
