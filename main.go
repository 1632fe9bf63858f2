package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"hindicartoon/backend/config"
	_ "hindicartoon/backend/docs"
	"hindicartoon/backend/handlers"
	"hindicartoon/backend/internal/face"
	"hindicartoon/backend/internal/ffmpeg"
	"hindicartoon/backend/internal/narrator"
	"hindicartoon/backend/middleware"
)

// @title Hindi Cartoon Video Generator API
// @version 1.0
// @description Generates short cartoon videos with Hindi narration from a list of scenes.
// @BasePath /
func main() {
	config.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The datastore only backs the diagnostic endpoint; generation runs
	// without it.
	if err := config.InitSupabase(); err != nil {
		config.Log.Warnf("Supabase client unavailable: %v", err)
	}

	h := handlers.NewApplicationHandler(
		face.NewRenderer(),
		narrator.New(cfg.TTSLanguage),
		ffmpeg.NewEditor(),
		config.Log,
		config.SupabaseClient,
		cfg.OutputDir,
	)

	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/", h.Root)
	app.Get("/api/hello", h.Hello)
	app.Get("/test", h.DatastoreDiagnostic)
	app.Post("/api/generate", h.GenerateVideo)

	// Generated videos are served straight from the asset directory.
	app.Static("/videos", cfg.OutputDir)

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	log.Printf("Starting Hindi Cartoon Video Generator backend on port %s (assets in %s)...", cfg.Port, cfg.OutputDir)
	log.Fatal(app.Listen(":" + cfg.Port))
}
