package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Clients globaux ---
var (
	Scylla  *gocql.Session
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// ConnectDatabases initialise toutes les connexions externes.
// ScyllaDB et Redis sont obligatoires (fatal si indisponibles),
// Elasticsearch et MinIO sont optionnels : les services concernés
// vérifient que le client n'est pas nil avant de s'en servir.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectScylla()
	connectRedis(ctx)
	connectElastic()
	connectMinIO(ctx)

	log.Println("✅ Connexions externes initialisées")
}

// =============================================
// SCYLLA DB
// =============================================

func connectScylla() {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.ReconnectInterval = 1 * time.Second

	if username := os.Getenv("SCYLLA_USERNAME"); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	// Note : les tables doivent être créées via scripts/scylladb_init.cql
	session, err := cluster.CreateSession()
	if err != nil {
		log.Fatalf("❌ Échec connexion ScyllaDB (%s): %v", keyspace, err)
	}

	Scylla = session
	log.Printf("✅ Connecté à ScyllaDB, keyspace '%s'", keyspace)
}

// CloseScylla ferme la session ScyllaDB.
func CloseScylla() {
	if Scylla != nil {
		Scylla.Close()
		log.Println("🔌 Session ScyllaDB fermée")
	}
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// ELASTICSEARCH (optionnel)
// =============================================

func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ ELASTIC_URL absent — recherche Elasticsearch désactivée")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Erreur création client Elasticsearch:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Elasticsearch injoignable — recherche en repli ScyllaDB:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connecté à Elasticsearch")
}

// =============================================
// MINIO (optionnel)
// =============================================

func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent — upload de médias désactivé")
		return
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Println("⚠️ Erreur connexion MinIO:", err)
		return
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Println("⚠️ Erreur vérification bucket MinIO:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO:", err)
			return
		}
		log.Println("🪣 Bucket créé :", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", bucketName)
	}

	MinIO = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}
