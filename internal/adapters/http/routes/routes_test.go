package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prenderia/internal/adapters/http/middleware"
	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/adapters/persistence/testdb"
	"prenderia/internal/config"
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	app *fiber.App
	svc *Services
}

func newTestServer(t *testing.T) *testServer {
	prev := password.SetCost(bcrypt.MinCost)
	t.Cleanup(func() { password.SetCost(prev) })

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "routes-secret", AccessTokenMins: 15},
	}
	log := zap.NewNop()
	svc := NewServices(testdb.New(t), cfg, log)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	Setup(app, svc, cfg, func() error { return nil })

	return &testServer{app: app, svc: svc}
}

func (s *testServer) usuario(t *testing.T, identificacion, rol string) *models.Usuario {
	u, err := s.svc.Usuario.Create(context.Background(), &services.CreateUsuarioInput{
		Nombres:        "Usuario " + identificacion,
		Identificacion: identificacion,
		Password:       "secreto123",
		Rol:            rol,
	})
	require.NoError(t, err)
	return u
}

func (s *testServer) login(t *testing.T, identificacion string) string {
	res, body := s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": identificacion, "password": "secreto123"})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func (s *testServer) do(t *testing.T, method, path, token string, payload interface{}) (*http.Response, []byte) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := s.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, body
}

func errorMessage(t *testing.T, body []byte) string {
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Error
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.usuario(t, "1001", "ADMIN")

	s.login(t, "1001")

	res, body := s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "1001", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Credenciales inválidas", errorMessage(t, body))

	res, body = s.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "10a1", "password": "secreto123"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "La identificación debe contener solo números.", errorMessage(t, body))
}

func TestRoleGating(t *testing.T) {
	s := newTestServer(t)
	s.usuario(t, "1", "ADMIN")
	s.usuario(t, "2", "CLIENTE")
	admin := s.login(t, "1")
	cliente := s.login(t, "2")

	res, _ := s.do(t, http.MethodGet, "/api/usuarios", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = s.do(t, http.MethodGet, "/api/usuarios", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = s.do(t, http.MethodGet, "/api/usuarios", cliente, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := s.do(t, http.MethodGet, "/api/usuarios?page=1&limit=1", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "2", res.Header.Get("X-Total-Count"))
	assert.Equal(t, "2", res.Header.Get("X-Total-Pages"))
	var usuarios []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &usuarios))
	assert.Len(t, usuarios, 1)
	assert.NotContains(t, usuarios[0], "password")

	res, body = s.do(t, http.MethodGet, "/api/me", cliente, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"identificacion":"2"`)
	assert.Equal(t, "no-store, no-cache, must-revalidate", res.Header.Get("Cache-Control"))
}

func TestUsuarioEndpoints(t *testing.T) {
	s := newTestServer(t)
	adminUser := s.usuario(t, "1", "ADMIN")
	admin := s.login(t, "1")

	res, body := s.do(t, http.MethodPost, "/api/usuarios", admin, fiber.Map{
		"nombres": "Luis", "identificacion": "555", "password": "secreto123", "rol": "CLIENTE",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	var created models.Usuario
	require.NoError(t, json.Unmarshal(body, &created))

	res, _ = s.do(t, http.MethodPost, "/api/usuarios", admin, fiber.Map{
		"nombres": "Otro", "identificacion": "555", "password": "secreto123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", created.ID), admin, fiber.Map{"telefono": "321"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", adminUser.ID), admin, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", created.ID), admin, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = s.do(t, http.MethodPut, "/api/usuarios/abc", admin, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPrestamoLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.usuario(t, "1", "ADMIN")
	owner := s.usuario(t, "2", "CLIENTE")
	s.usuario(t, "3", "CLIENTE")
	admin := s.login(t, "1")
	cliente := s.login(t, "2")
	otro := s.login(t, "3")

	res, body := s.do(t, http.MethodPost, "/api/tipos-articulos", admin, fiber.Map{"nombre": "Joyería"})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	var tipo models.TipoArticulo
	require.NoError(t, json.Unmarshal(body, &tipo))

	res, body = s.do(t, http.MethodPost, "/api/empenos", admin, fiber.Map{
		"usuarioId":          owner.ID,
		"descripcion":        "cadena",
		"interes_porcentaje": 5,
		"meses":              2,
		"articulos":          []fiber.Map{{"descripcion": "cadena oro", "tipo_articulo_id": tipo.ID, "valor": 900}},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	var empeno models.Empeno
	require.NoError(t, json.Unmarshal(body, &empeno))

	res, body = s.do(t, http.MethodPost, "/api/prestamos", admin, fiber.Map{
		"empeno_id": empeno.ID, "valor": 1000, "estado": "ACTIVO", "fecha_prestamo": "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	var prestamo models.Prestamo
	require.NoError(t, json.Unmarshal(body, &prestamo))
	require.Len(t, prestamo.Intereses, 2)

	res, body = s.do(t, http.MethodGet, "/api/prestamos/mios", cliente, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var mine []models.Prestamo
	require.NoError(t, json.Unmarshal(body, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, prestamo.ID, mine[0].ID)

	res, _ = s.do(t, http.MethodGet, "/api/prestamos", cliente, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	path := fmt.Sprintf("/api/intereses/prestamo/%d", prestamo.ID)
	res, _ = s.do(t, http.MethodGet, path, otro, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = s.do(t, http.MethodGet, path, cliente, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var intereses []models.Interes
	require.NoError(t, json.Unmarshal(body, &intereses))
	require.Len(t, intereses, 2)
	assert.Equal(t, 50.0, intereses[0].Valor)
	assert.Equal(t, "PENDIENTE", intereses[0].Estado)

	res, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/intereses/%d/estado", intereses[0].ID), cliente, fiber.Map{"estado": "PAGADO"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/intereses/%d/estado", intereses[0].ID), admin, fiber.Map{"estado": "LISTO"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	for _, i := range intereses {
		res, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/intereses/%d/estado", i.ID), admin, fiber.Map{"estado": "PAGADO"})
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	estado := fmt.Sprintf("/api/prestamos/%d/estado", prestamo.ID)
	res, _ = s.do(t, http.MethodPut, estado, admin, fiber.Map{"estado": "PAGADO"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = s.do(t, http.MethodPut, estado, admin, fiber.Map{"estado": "ACTIVO"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Cambio de estado no permitido", errorMessage(t, body))

	res, body = s.do(t, http.MethodGet, "/api/stats-resumen", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"totalPrestamosActivos":0`)

	res, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/historial-empenos?usuario_id=%d", owner.ID), admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"estado_prestamo":"PAGADO"`)

	res, _ = s.do(t, http.MethodGet, "/api/prestamos/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPrestamoCreate_BadDate(t *testing.T) {
	s := newTestServer(t)
	s.usuario(t, "1", "ADMIN")
	admin := s.login(t, "1")

	res, body := s.do(t, http.MethodPost, "/api/prestamos", admin, fiber.Map{"empeno_id": 1, "valor": 10, "fecha_prestamo": "15/01/2024"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Fecha de préstamo inválida", errorMessage(t, body))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	res, body := s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"database":"healthy"`)
}
