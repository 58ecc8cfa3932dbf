package main

import (
	"fmt"
	"log"
	"net/http"
	"parking-search-service/internal/adapters/cache"
	"parking-search-service/internal/adapters/repositories"
	"parking-search-service/internal/api"
	"parking-search-service/internal/config"
	"parking-search-service/internal/platform/db"
	"parking-search-service/internal/ports"
	"parking-search-service/internal/services"
	"runtime"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or a JSON catalog file, optional
// Redis cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	repo, closeCatalog, err := openCatalog()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCatalog()

	repo = maybeCacheCatalog(repo)

	opts := services.SearchOptions{
		// 0 lifts the cap; the default keeps a worst-case group search in the
		// tens of milliseconds.
		MaxOrderings: config.GetInt("SEARCH_MAX_ORDERINGS", 250000),
		Parallelism:  config.GetInt("SEARCH_PARALLELISM", defaultParallelism()),
	}

	limiter := rate.NewLimiter(
		rate.Limit(config.GetInt("RATE_LIMIT_RPS", 10)),
		config.GetInt("RATE_LIMIT_BURST", 20),
	)

	router := api.NewRouter(repo, opts, limiter)

	// The write timeout leaves headroom for worst-case searches; the
	// orderings budget keeps those bounded.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCatalog picks the catalog source: Postgres when DATABASE_URL is set,
// otherwise a local JSON file.
func openCatalog() (ports.ListingRepository, func(), error) {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		path := config.Get("LISTINGS_PATH", "data/listings.json")
		log.Printf("Catalog source=file path=%s", path)
		return repositories.NewFileListingRepository(path), func() {}, nil
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}

	// Schema init is idempotent. Seeding on boot is for local runs; real
	// catalogs are loaded with dbtool.
	if err := repositories.InitSchema(pg); err != nil {
		pg.Close()
		return nil, nil, err
	}
	if seedPath := config.Get("SEED_PATH", ""); seedPath != "" {
		if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
			pg.Close()
			return nil, nil, err
		}
	}

	log.Println("Catalog source=postgres")
	return repositories.NewPostgresListingRepository(pg), func() { pg.Close() }, nil
}

// maybeCacheCatalog puts the Redis read-through cache in front of the
// repository when REDIS_URL is configured.
func maybeCacheCatalog(repo ports.ListingRepository) ports.ListingRepository {
	redisURL := config.Get("REDIS_URL", "")
	if redisURL == "" {
		return repo
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("parse REDIS_URL: %v", err)
	}

	ttl := config.GetDuration("CATALOG_CACHE_TTL", 5*time.Minute)
	log.Printf("Catalog cache enabled addr=%s ttl=%s", opt.Addr, ttl)
	return cache.NewRedisCatalogCache(redis.NewClient(opt), repo, "catalog:listings", ttl)
}

func defaultParallelism() int {
	n := runtime.GOMAXPROCS(0)
	if n > 8 {
		return 8
	}
	return n
}
