package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"aratrack/internal/config"
	"aratrack/internal/model"
	"aratrack/internal/repository"
	"aratrack/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminUser = "admin"
	adminPass = "admin123"
)

type testEnv struct {
	server *httptest.Server
	token  string
	cfg    *config.Config
	dsn    string
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:                "test",
		JWTSecret:          "e2e-test-secret-at-least-32-chars!!",
		JWTExpirationHours: 8,
		AdminUsername:      adminUser,
		AdminPassword:      adminPass,
		SMTPPort:           587,
		PDFStoragePath:     t.TempDir(),
		ExcelStoragePath:   t.TempDir(),
	}
}

// setupTestEnv seeds the administrator, starts the full router and logs in.
func setupTestEnv(t *testing.T, db *gorm.DB, rdb *redis.Client) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repository.NewUsuarioRepository(db).Create(context.Background(), &model.Usuario{
		Username: adminUser, PasswordHash: string(hash), NombreCompleto: "Administrador", Activo: true,
	}))

	r, err := router.New(cfg, db, rdb)
	require.NoError(t, err)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, cfg: cfg}
	env.token = login(t, srv, adminUser, adminPass)
	return env
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	resp := do(t, srv, http.MethodPost, "/v1/auth/login", jsonBody(t, map[string]string{
		"username": username, "password": password,
	}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	return body["access_token"].(string)
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body io.Reader, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func viajeBody(numero, centro string) map[string]interface{} {
	return map[string]interface{}{
		"numero_viaje":    numero,
		"centro_costo":    centro,
		"casino":          "spence",
		"fecha":           "2024-03-10",
		"conductor":       "juan perez",
		"patente_camion":  "ab1234",
		"pallets":         "4",
		"check_congelado": true,
		"guias":           []string{"g1", "g2"},
		"sellos_salida":   []string{"s1"},
		"comidas": []map[string]interface{}{
			{"guia_comida": "g1", "descripcion": "pollo", "kilo": "12,5", "bultos": 2, "proveedor": "agro"},
			{"guia_comida": "", "descripcion": "", "kilo": "", "bultos": ""},
		},
	}
}

// flujoCompleto runs the main dispatch workflow against a live server.
func flujoCompleto(t *testing.T, env *testEnv) {
	srv, tok := env.server, env.token

	resp := do(t, srv, http.MethodPost, "/v1/centros-costo", jsonBody(t, map[string]string{
		"codigo": "cc1", "casino": "spence", "ruta": "norte",
	}), tok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for _, centro := range []string{"CC1", "CC2"} {
		resp = do(t, srv, http.MethodPost, "/v1/viajes", jsonBody(t, viajeBody("v100", centro)), tok)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = do(t, srv, http.MethodPost, "/v1/viajes", jsonBody(t, viajeBody("V100", "cc1")), tok)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var apiErr map[string]string
	decodeJSON(t, resp, &apiErr)
	require.Contains(t, apiErr["detail"], "CC1")

	resp = do(t, srv, http.MethodGet, "/v1/viajes/V100/centros/CC1", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var viaje map[string]interface{}
	decodeJSON(t, resp, &viaje)
	require.Equal(t, "SPENCE", viaje["casino"])
	require.Equal(t, "X", viaje["check_congelado"])
	require.EqualValues(t, 4, viaje["pallets"])
	require.Len(t, viaje["comidas"], 1)

	resp = do(t, srv, http.MethodGet, "/v1/viajes/V100/centros", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var centros []map[string]string
	decodeJSON(t, resp, &centros)
	require.Len(t, centros, 2)
	require.Equal(t, "SPENCE", centros[0]["casino"])
	require.Equal(t, "Sin casino", centros[1]["casino"])

	upd := viajeBody("ignorado", "ignorado")
	upd["conductor"] = "pedro soto"
	upd["comidas"] = []map[string]interface{}{}
	resp = do(t, srv, http.MethodPut, "/v1/viajes/V100/centros/CC2", jsonBody(t, upd), tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &viaje)
	require.Equal(t, "PEDRO SOTO", viaje["conductor"])
	require.Equal(t, "CC2", viaje["centro_costo"])
	require.Len(t, viaje["comidas"], 0)

	resp = do(t, srv, http.MethodPost, "/v1/viajes/V100/pdf", nil, tok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var archivo map[string]interface{}
	decodeJSON(t, resp, &archivo)
	require.EqualValues(t, 2, archivo["paginas"])

	resp = do(t, srv, http.MethodGet, archivo["url"].(string), nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pdf, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	resp = do(t, srv, http.MethodPost, "/v1/viajes/V100/pdf/enviar", nil, tok)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "no destination configured")
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/reportes/viajes?fecha=2024-03-10", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "reporte_viajes_2024-03-10_2024-03-10")
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/reportes/viajes?fecha_fin=2024-03-10", nil, tok)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/viajes/estadisticas", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]int
	decodeJSON(t, resp, &stats)
	require.Equal(t, map[string]int{"total_registros": 2, "viajes_unicos": 1, "viajes_multi_centro": 1}, stats)

	resp = do(t, srv, http.MethodDelete, "/v1/viajes/V100/centros/CC2", nil, tok)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/viajes/V100/centros/CC2", nil, tok)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// flujoSesion checks admin-only routes and that logout and password changes
// revoke tokens.
func flujoSesion(t *testing.T, env *testEnv) {
	srv := env.server

	resp := do(t, srv, http.MethodPost, "/v1/usuarios", jsonBody(t, map[string]string{
		"username": "operador", "password": "clave1",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var creado struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &creado)

	anterior := login(t, srv, "operador", "clave1")
	resp = do(t, srv, http.MethodPut, "/v1/usuarios/"+creado.ID+"/password", jsonBody(t, map[string]string{
		"password": "clave2",
	}), env.token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/auth/me", nil, anterior)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "a password change ends earlier sessions")
	resp.Body.Close()

	tok := login(t, srv, "operador", "clave2")

	resp = do(t, srv, http.MethodGet, "/v1/usuarios", nil, tok)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/auth/me", nil, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPost, "/v1/auth/logout", nil, tok)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/v1/auth/me", nil, tok)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPost, "/v1/auth/login", jsonBody(t, map[string]string{
		"username": "operador", "password": "clave1",
	}), "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
