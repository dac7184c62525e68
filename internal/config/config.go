package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env puis vérifie la présence des variables
// obligatoires. Les coordonnées ScyllaDB sont indispensables : sans
// elles le serveur ne peut rien faire, on s'arrête immédiatement.
func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	for _, key := range []string{"SCYLLA_HOSTS", "SCYLLA_KEYSPACE"} {
		if os.Getenv(key) == "" {
			log.Fatalf("❌ Variable d'environnement obligatoire manquante : %s", key)
		}
	}
}

// ShopName retourne le nom affiché de la boutique.
func ShopName() string {
	if name := os.Getenv("SHOP_NAME"); name != "" {
		return name
	}
	return "Menuiserie Quincaillerie Dubois"
}
