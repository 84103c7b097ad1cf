package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wichananm65/outfit-backend/internal/anchor"
	"github.com/wichananm65/outfit-backend/internal/auth"
	"github.com/wichananm65/outfit-backend/internal/catalog"
	"github.com/wichananm65/outfit-backend/internal/config"
	"github.com/wichananm65/outfit-backend/internal/outfit"
	"github.com/wichananm65/outfit-backend/internal/recommend"
)

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	catalogService, err := catalog.NewService(catalogRepository(cfg))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("catalog loaded: %d products", catalogService.Store().Len())

	engineClient := recommend.NewClient(cfg.EngineURL, cfg.EngineTimeout)

	catalogHandler := catalog.NewHandler(catalogService)
	anchorHandler := anchor.NewHandler(catalogService)
	recommendHandler := recommend.NewHandler()
	outfitHandler := outfit.NewHandler(catalogService, engineClient)
	authHandler := auth.NewHandler()

	catalogHandler.RegisterPublicRoutes(app)
	anchorHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)
	outfitHandler.RegisterPublicRoutes(app)
	authHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	catalogHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// catalogRepository picks the catalog source: Postgres when DATABASE_URL is
// set, the exported products.json when present, otherwise the built-in seed.
func catalogRepository(cfg config.Config) catalog.Repository {
	if cfg.DatabaseURL != "" {
		return catalog.NewPostgresRepository(mustOpenDB(cfg.DatabaseURL))
	}
	if _, err := os.Stat(cfg.CatalogPath); err == nil {
		return catalog.NewFileRepository(cfg.CatalogPath)
	}
	log.Printf("no catalog source configured, using built-in seed")
	return catalog.NewStaticRepository(catalog.DefaultSeed())
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}
