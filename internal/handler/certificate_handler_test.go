package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devnolife/sakti-certify/internal/config"
	"github.com/devnolife/sakti-certify/internal/render"
	"github.com/devnolife/sakti-certify/internal/service"
	"github.com/devnolife/sakti-certify/internal/token"
	"github.com/go-chi/chi/v5"
)

func newVerifyRouter(t *testing.T) (http.Handler, *token.Cipher) {
	t.Helper()

	cipher, err := token.NewCipher("rahasia-handler-test")
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	renderer := render.NewRenderer(
		config.RenderConfig{OrganizationName: "Fakultas Teknik"},
		"https://certify.test",
		cipher,
		render.NewSeededTheme(1),
	)
	h := NewCertificateHandler(service.NewCertificateService(renderer, cipher))

	r := chi.NewRouter()
	r.Get("/verify/signature/{token}", h.VerifySignature)
	r.Get("/verify/{token}", h.Verify)
	return r, cipher
}

func TestVerifyEndpointValidToken(t *testing.T) {
	router, cipher := newVerifyRouter(t)

	tok, err := cipher.Encrypt(token.Payload{
		Name:             "Jane Doe",
		OrganizationName: "Fakultas Teknik",
		CertificateID:    "CERT-20250117-AL-A1B2",
	})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify/"+tok, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Jane Doe") {
		t.Errorf("body tidak memuat nama pemegang: %s", rec.Body.String())
	}
}

func TestVerifyEndpointInvalidTokenIs422(t *testing.T) {
	router, _ := newVerifyRouter(t)

	for _, path := range []string{
		"/verify/token-sampah",
		"/verify/signature/token-sampah",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"success":false`) {
			t.Errorf("%s: envelope harus success=false: %s", path, rec.Body.String())
		}
	}
}
