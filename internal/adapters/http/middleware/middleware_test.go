package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db down") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "té") })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/boom", http.StatusInternalServerError, "Internal Server Error"},
		{"/teapot", http.StatusTeapot, "té"},
		{"/missing", http.StatusNotFound, "Cannot GET /missing"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.status, res.StatusCode)
			var body response.ErrorResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}
