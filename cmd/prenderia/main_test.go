package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prenderia/internal/adapters/http/middleware"
	"prenderia/internal/adapters/http/routes"
	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/adapters/persistence/testdb"
	"prenderia/internal/config"
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type cliEnv struct {
	url       string
	tokenFile string
	svc       *routes.Services
	prestamo  *models.Prestamo
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	prev := password.SetCost(bcrypt.MinCost)
	t.Cleanup(func() { password.SetCost(prev) })

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "cli-secret", AccessTokenMins: 15},
	}
	log := zap.NewNop()
	db := testdb.New(t)
	require.NoError(t, config.NewSeeder(db, config.SeedConfig{
		AdminIdentificacion: "1000",
		AdminNombres:        "Administrador",
		AdminPassword:       "admin12345",
	}, log).Run())

	svc := routes.NewServices(db, cfg, log)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	routes.Setup(app, svc, cfg, func() error { return nil })

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	cliente, err := svc.Usuario.Create(ctx, &services.CreateUsuarioInput{
		Nombres:        "Ana Pérez",
		Identificacion: "2000",
		Password:       "cliente123",
		Rol:            "CLIENTE",
	})
	require.NoError(t, err)

	tipos, err := svc.Empeno.ListTipos(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, tipos)

	empeno, err := svc.Empeno.CreateEmpeno(ctx, &services.EmpenoInput{
		UsuarioID:         cliente.ID,
		Descripcion:       "Anillo de oro",
		InteresPorcentaje: 5,
		Meses:             2,
		Articulos: []services.ArticuloInput{
			{Descripcion: "Anillo", TipoArticuloID: tipos[0].ID, Valor: 2000},
		},
	})
	require.NoError(t, err)

	prestamo, err := svc.Prestamo.Create(ctx, &services.CreatePrestamoInput{
		EmpenoID:      empeno.ID,
		Valor:         1000,
		Estado:        "ACTIVO",
		FechaPrestamo: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, prestamo.Intereses, 2)

	tokenFile := filepath.Join(t.TempDir(), "token")
	t.Setenv("PRENDERIA_TOKEN_FILE", tokenFile)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_MODE", "dev")

	return &cliEnv{url: srv.URL + "/api", tokenFile: tokenFile, svc: svc, prestamo: prestamo}
}

func (e *cliEnv) run(args ...string) (string, error) {
	cmd := BuildRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--base-url", e.url, "--token-file", e.tokenFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func id(n uint) string {
	return fmt.Sprint(n)
}

func TestCLI_RequiresSession(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("prestamos", "list")
	assert.ErrorIs(t, err, errNoSession)
	_, err = env.run("whoami")
	assert.ErrorIs(t, err, errNoSession)
}

func TestCLI_LoginPersistsAcrossInvocations(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("login", "-u", "1000", "-p", "admin12345")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión iniciada: Administrador (ADMIN)")

	raw, err := os.ReadFile(env.tokenFile)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	out, err = env.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Administrador")
	assert.Contains(t, out, "1000")

	// a rejected login leaves the session in place
	_, err = env.run("login", "-u", "1000", "-p", "incorrecta")
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", err.Error())

	_, err = env.run("login", "-u", "admin", "-p", "x")
	require.Error(t, err)
	assert.Equal(t, "La identificación debe contener solo números.", err.Error())

	out, err = env.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Administrador")

	out, err = env.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")

	_, err = env.run("whoami")
	assert.ErrorIs(t, err, errNoSession)
}

func TestCLI_UnauthorizedEndsSession(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.tokenFile, []byte("not-a-token"), 0o600))

	_, err := env.run("prestamos", "list")
	require.Error(t, err)

	raw, err := os.ReadFile(env.tokenFile)
	if err == nil {
		assert.Empty(t, raw)
	} else {
		assert.True(t, os.IsNotExist(err))
	}

	_, err = env.run("prestamos", "list")
	assert.ErrorIs(t, err, errNoSession)
}

func TestCLI_SettleLoan(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("login", "-u", "1000", "-p", "admin12345")
	require.NoError(t, err)

	loanID := id(env.prestamo.ID)
	first := id(env.prestamo.Intereses[0].ID)
	second := id(env.prestamo.Intereses[1].ID)

	out, err := env.run("intereses", "list", loanID)
	require.NoError(t, err)
	assert.Contains(t, out, "PENDIENTE")
	assert.Contains(t, out, "2 cuotas pendientes")

	out, err = env.run("intereses", "pagar", loanID, first)
	require.NoError(t, err)
	assert.Contains(t, out, "Cuota "+first+" pagada")
	assert.Contains(t, out, "1 cuotas pendientes")

	out, err = env.run("intereses", "pagar", loanID, second)
	require.NoError(t, err)
	assert.Contains(t, out, "Cuota "+second+" pagada")
	assert.Contains(t, out, "saldado: PAGADO")

	_, err = env.run("intereses", "pagar", loanID, second)
	require.Error(t, err)

	out, err = env.run("prestamos", "show", loanID)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Pérez")
	assert.Contains(t, out, "PAGADO")

	out, err = env.run("prestamos", "list", "--estado", "pagado")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Pérez")
}

func TestCLI_ClienteSeesOwnLoans(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("login", "-u", "2000", "-p", "cliente123")
	require.NoError(t, err)

	out, err := env.run("prestamos", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1000.00")

	_, err = env.run("usuarios", "list")
	require.Error(t, err)

	out, err = env.run("me", "actualizar", "--telefono", "3001234567")
	require.NoError(t, err)
	assert.Contains(t, out, "3001234567")
}

func TestCLI_ReportCSV(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("login", "-u", "1000", "-p", "admin12345")
	require.NoError(t, err)

	out, err := env.run("reportes", "--csv", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Cliente,Identificación,Valor Préstamo,Estado,Artículos", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Ana Pérez,2000,1000,ACTIVO,"), lines[1])

	out, err = env.run("reportes")
	require.NoError(t, err)
	assert.Contains(t, out, "Préstamos activos:")
	assert.Contains(t, out, "Historial de empeños")
}

func TestParseArticulo(t *testing.T) {
	art, err := parseArticulo("3:1500.5:Reloj: acero")
	require.NoError(t, err)
	assert.Equal(t, uint(3), art.TipoArticuloID)
	assert.Equal(t, 1500.5, art.Valor)
	assert.Equal(t, "Reloj: acero", art.Descripcion)

	_, err = parseArticulo("3:abc:Reloj")
	assert.Error(t, err)
	_, err = parseArticulo("Reloj")
	assert.Error(t, err)
}
