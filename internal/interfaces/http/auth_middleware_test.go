package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ErnestoSESB/E-commerce/internal/interfaces/http"
	pkgjwt "github.com/ErnestoSESB/E-commerce/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "ecommerce-backoffice-test"
	testExpMin    = 60
)

// buildStaffApp construye una app Fiber mínima con una ruta restringida a staff.
func buildStaffApp() *fiber.App {
	app := fiber.New()
	app.Get("/staff-only",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireStaff(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": string(apphttp.GetRole(c))})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireStaff
// ──────────────────────────────────────────────────────────────────────────────

// Cualquier rol staff (employee, manager, admin) pasa; client recibe 403.
func TestRequireStaff_JerarquiaDeRoles(t *testing.T) {
	app := buildStaffApp()

	for _, role := range []string{"employee", "manager", "admin"} {
		resp := doRequest(t, app, "/staff-only", tokenForRole(t, role))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "el rol %s es staff", role)
		resp.Body.Close()
	}

	resp := doRequest(t, app, "/staff-only", tokenForRole(t, "client"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "client no es staff")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Token con rol vacío (legacy) → 401 MISSING_ROLE.
func TestRequireStaff_TokenSinRol_Retorna401(t *testing.T) {
	app := buildStaffApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/staff-only", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Sin header o con token malformado → 401.
func TestAuthMiddleware_TokenAusenteOInvalido(t *testing.T) {
	app := buildStaffApp()

	resp := doRequest(t, app, "/staff-only", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/staff-only", "Bearer token.invalido.aqui")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/staff-only", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_SoloAdmin(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)

	resp := doRequest(t, app, "/admin-only", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Manager es staff pero no admin.
	resp = doRequest(t, app, "/admin-only", tokenForRole(t, "manager"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAuth — rutas públicas con elevación por token
// ──────────────────────────────────────────────────────────────────────────────

func TestOptionalAuth_SinTokenPasaComoAnonimo(t *testing.T) {
	app := fiber.New()
	app.Get("/public", apphttp.OptionalAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": string(apphttp.GetRole(c))})
	})

	resp := doRequest(t, app, "/public", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body["role"])
}

func TestOptionalAuth_ConTokenCargaRol(t *testing.T) {
	app := fiber.New()
	app.Get("/public", apphttp.OptionalAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": string(apphttp.GetRole(c)), "user_id": apphttp.GetUserID(c)})
	})

	resp := doRequest(t, app, "/public", tokenForRole(t, "manager"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "manager", body["role"])
	assert.Equal(t, testUserID, body["user_id"])
}

// Un token inválido en ruta pública no corta la petición: se ignora.
func TestOptionalAuth_TokenInvalidoSeIgnora(t *testing.T) {
	app := fiber.New()
	app.Get("/public", apphttp.OptionalAuth(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": string(apphttp.GetRole(c))})
	})

	resp := doRequest(t, app, "/public", "Bearer basura")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "employee", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "employee", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
