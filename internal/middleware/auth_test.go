package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars!!"

func init() { gin.SetMode(gin.TestMode) }

const testUserID = "5f0c6a1e-3b1a-4d3c-9a53-6b1d2f7c8e90"

type stubRevocados struct {
	ids  map[string]bool
	gens map[string]int64
	err  error
}

func (s *stubRevocados) Revocado(_ context.Context, jti string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.ids[jti], nil
}

func (s *stubRevocados) Generacion(_ context.Context, userID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.gens[userID], nil
}

func signToken(t *testing.T, secret, username, jti string, exp time.Time) string {
	return signTokenGen(t, secret, username, jti, 0, exp)
}

func signTokenGen(t *testing.T, secret, username, jti string, gen int64, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  testUserID,
		"username": username,
		"gen":      gen,
		"jti":      jti,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func protegido(revocados Revocados, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuth(testSecret, revocados)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetClaims(c).Username})
	})
	r.GET("/x", chain...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	rev := &stubRevocados{ids: map[string]bool{"revocado": true}}
	r := protegido(rev)
	hora := time.Now().Add(time.Hour)

	casos := []struct {
		nombre string
		token  string
		status int
	}{
		{"sin token", "", http.StatusUnauthorized},
		{"firma ajena", signToken(t, "otro-secreto", "op", "a", hora), http.StatusUnauthorized},
		{"expirado", signToken(t, testSecret, "op", "a", time.Now().Add(-time.Minute)), http.StatusUnauthorized},
		{"revocado", signToken(t, testSecret, "op", "revocado", hora), http.StatusUnauthorized},
		{"valido", signToken(t, testSecret, "op", "vigente", hora), http.StatusOK},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			w := get(r, c.token)
			assert.Equal(t, c.status, w.Code, w.Body.String())
		})
	}
}

func TestJWTAuth_GeneracionDeUsuario(t *testing.T) {
	r := protegido(&stubRevocados{gens: map[string]int64{testUserID: 2}})
	hora := time.Now().Add(time.Hour)

	assert.Equal(t, http.StatusUnauthorized, get(r, signTokenGen(t, testSecret, "op", "a", 0, hora)).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, signTokenGen(t, testSecret, "op", "b", 1, hora)).Code)
	assert.Equal(t, http.StatusOK, get(r, signTokenGen(t, testSecret, "op", "c", 2, hora)).Code)
}

func TestJWTAuth_DenylistCaida(t *testing.T) {
	r := protegido(&stubRevocados{err: errors.New("redis: connection refused")})
	w := get(r, signToken(t, testSecret, "op", "a", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestJWTAuth_EsquemaIncorrecto(t *testing.T) {
	r := protegido(nil)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := protegido(nil, RequireAdmin("admin"))
	hora := time.Now().Add(time.Hour)

	assert.Equal(t, http.StatusForbidden, get(r, signToken(t, testSecret, "operador", "a", hora)).Code)
	assert.Equal(t, http.StatusOK, get(r, signToken(t, testSecret, "admin", "b", hora)).Code)
}

func TestGetClaims_SinClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}
