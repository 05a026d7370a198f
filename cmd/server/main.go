package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/nominatim"
	"trip-planner-service/internal/adapters/overpass"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Nominatim, Overpass, Redis)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	baseURL := config.Get("BASE_URL", "http://localhost:"+port)
	radiusM := config.GetInt("SEARCH_RADIUS_M", services.DefaultSearchRadiusM)

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	osm := overpass.NewClient()

	// Optional Redis cache in front of Overpass; without it every
	// search hits the remote API.
	var spots ports.SpotSource = osm
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := time.Duration(config.GetInt("SPOT_CACHE_TTL_MIN", 360)) * time.Minute
		spots = cache.NewCachedSpotSource(osm, cache.NewRedisSpotCache(client, ttl))
		log.Printf("Spot cache enabled addr=%s ttl=%s", addr, ttl)
	}

	geocoder := nominatim.NewGeocoder(cache.NewSqliteGeocodeCache(db))

	router := api.NewRouter(api.RouterConfig{
		Repo:     repositories.NewSqliteTripRepository(db),
		Geocoder: geocoder,
		Spots:    spots,
		Shops:    osm,
		BaseURL:  baseURL,
		RadiusM:  radiusM,
	})

	// Timeouts are tuned for cold-cache spot searches (external API latency).
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
