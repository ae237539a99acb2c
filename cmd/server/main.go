package main

import (
	"context"
	"database/sql"
	"fleet-savings-service/internal/adapters/cache"
	"fleet-savings-service/internal/adapters/geocode"
	"fleet-savings-service/internal/adapters/repositories"
	"fleet-savings-service/internal/api"
	"fleet-savings-service/internal/platform/db"
	"fleet-savings-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres storage, optional Redis
// geocode cache, Nominatim geocoding) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/addresses.json")
	depot := getEnv("DEPOT_ADDRESS", "1901 W Madison St, Phoenix, AZ 85009")
	port := getEnv("PORT", "8080")
	userAgent := getEnv("NOMINATIM_USER_AGENT", "fleet-savings-service")

	databaseURL := os.Getenv("DATABASE_URL")
	redisAddr := os.Getenv("REDIS_ADDR")

	var (
		repo         ports.AddressRepository
		geocodeCache geocode.Cache
	)

	if databaseURL != "" {
		// Postgres deployment: address book and geocode cache share the
		// pool; schema is managed by dbtool.
		pgdb, err := db.Open(context.Background(), databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgdb.Close()

		repo = repositories.NewPGAddressRepository(pgdb)
		geocodeCache = cache.NewSQLGeocodeCache(pgdb)
	} else {
		sqldb, err := openDB(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer sqldb.Close()

		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(sqldb, seedPath); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewSqliteAddressRepository(sqldb)
		geocodeCache = cache.NewSqliteGeocodeCache(sqldb)
	}

	// A shared Redis cache takes precedence when several instances run
	// behind one geocoding quota.
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		geocodeCache = cache.NewRedisGeocodeCache(client)
	}

	geocoder, err := geocode.NewNominatimGeocoder(userAgent, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo, geocoder, depot)

	// Timeouts are tuned for cold-cache runs (rate-limited geocoding of a
	// whole address batch can take a while).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
