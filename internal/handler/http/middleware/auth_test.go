package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendhq/rules-engine-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(svc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	router := authTestRouter(svc)

	// No token.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A minted service token passes.
	token, _, err := svc.GenerateServiceToken("dashboard")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RejectsNonServiceToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService("test-secret", "1h")
	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{"type": "user"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
