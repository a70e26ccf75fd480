package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/devnolife/sakti-certify/docs" // Import generated docs
	"github.com/devnolife/sakti-certify/internal/response"
)

type Router struct {
	templateHandler    *TemplateHandler
	certificateHandler *CertificateHandler
}

func NewRouter(
	templateHandler *TemplateHandler,
	certificateHandler *CertificateHandler,
) *Router {
	return &Router{
		templateHandler:    templateHandler,
		certificateHandler: certificateHandler,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Server berjalan dengan baik", map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {

		// ── Public: verifikasi QR ─────────────────────────
		r.Get("/verify/signature/{token}", ro.certificateHandler.VerifySignature)
		r.Get("/verify/{token}", ro.certificateHandler.Verify)

		// ── Templates ─────────────────────────────────────
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", ro.templateHandler.GetAll)
			r.Post("/", ro.templateHandler.Upload)
			r.Get("/{id}", ro.templateHandler.GetByID)
			r.Get("/{id}/variables", ro.templateHandler.GetMapping)
			r.Put("/{id}/variables", ro.templateHandler.SaveMapping)
			r.Get("/{id}/download", ro.templateHandler.Download)
			r.Get("/{id}/export/{format}", ro.templateHandler.Export)
		})

		// ── Certificates ──────────────────────────────────
		r.Route("/certificates", func(r chi.Router) {
			r.Post("/upload", ro.certificateHandler.UploadBatch)
			r.Get("/batch", ro.certificateHandler.CurrentBatch)
			r.Get("/pages", ro.certificateHandler.Pages)
			r.Post("/navigate", ro.certificateHandler.Navigate)
			r.Get("/preview", ro.certificateHandler.Preview)
			r.Get("/print", ro.certificateHandler.Print)
		})
	})

	return r
}
