package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"menuiserie_back_end/internal/config"
	"menuiserie_back_end/internal/database"
	"menuiserie_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Serveur %s lancé sur le port %s", config.ShopName(), port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}
