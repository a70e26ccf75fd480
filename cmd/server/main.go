package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devnolife/sakti-certify/internal/config"
	"github.com/devnolife/sakti-certify/internal/database"
	"github.com/devnolife/sakti-certify/internal/handler"
	"github.com/devnolife/sakti-certify/internal/render"
	"github.com/devnolife/sakti-certify/internal/repository"
	"github.com/devnolife/sakti-certify/internal/service"
	"github.com/devnolife/sakti-certify/internal/token"
	"github.com/devnolife/sakti-certify/internal/utils"
)

// @title           SAKTI Certify API
// @version         1.0
// @description     Backend server untuk portal dokumen dan sertifikat Fakultas Teknik.

// @contact.name   API Support
// @contact.email  dev@devnolife.site

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	cfg := config.Load()

	// ── Database ─────────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	log.Printf("Running migrations from: %s", migrationsPath)
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedDefaultTemplate(context.Background()); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Storage (MinIO) ──────────────────────────────────
	storage, err := utils.NewStorageService(&cfg.MinIO)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	log.Println("MinIO connected successfully")

	// ── Token cipher & renderer ──────────────────────────
	cipher, err := token.NewCipher(cfg.Token.Secret)
	if err != nil {
		log.Fatalf("Invalid token secret: %v", err)
	}
	theme := render.NewSeededTheme(time.Now().UnixNano())
	renderer := render.NewRenderer(cfg.Render, cfg.App.BaseURL, cipher, theme)

	// ── Repositories ─────────────────────────────────────
	templateRepo := repository.NewTemplateRepository(db)

	// ── Services ─────────────────────────────────────────
	templateService := service.NewTemplateService(templateRepo, storage)
	certificateService := service.NewCertificateService(renderer, cipher)

	// ── Handlers ─────────────────────────────────────────
	templateHandler := handler.NewTemplateHandler(templateService)
	certificateHandler := handler.NewCertificateHandler(certificateService)

	// ── Router ───────────────────────────────────────────
	router := handler.NewRouter(templateHandler, certificateHandler)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Server berjalan di port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
