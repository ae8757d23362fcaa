package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestoSESB/E-commerce/pkg/logger"
)

// Sin el artefacto generado la app debe arrancar igual: /docs queda
// deshabilitado pero el resto de rutas siguen vivas.
func TestMountSwagger_SinArtefactoNoRompeLaApp(t *testing.T) {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	mountSwagger(app, log, filepath.Join(t.TempDir(), "swagger.json"))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestMountSwagger_ConArtefactoSirveLaUI(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	minimal := `{"swagger":"2.0","info":{"title":"test","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(spec, []byte(minimal), 0o644))

	app := fiber.New()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	mountSwagger(app, log, spec)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
