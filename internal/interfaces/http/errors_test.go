package http_test

import (
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	apphttp "github.com/jhoicas/Gestion-api/internal/interfaces/http"
)

// appConError construye una app con una ruta que siempre falla con err,
// para verificar la traducción de sentinelas de dominio a HTTP.
func appConError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apphttp.RespondError(c, err)
	})
	return app
}

func estadoYCuerpo(t *testing.T, err error) (int, string) {
	t.Helper()
	app := appConError(err)
	req := httptest.NewRequest(nethttp.MethodGet, "/fail", nil)
	resp, reqErr := app.Test(req, -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRespondError_MapeaSentinelasDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, nethttp.StatusBadRequest, "VALIDATION"},
		{domain.ErrForeignKey, nethttp.StatusBadRequest, "INVALID_REFERENCE"},
		{domain.ErrNotFound, nethttp.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, nethttp.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, nethttp.StatusConflict, "EMAIL_EXISTS"},
		{domain.ErrUnauthorized, nethttp.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, nethttp.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidTransition, nethttp.StatusConflict, "INVALID_TRANSITION"},
		{domain.ErrAlreadyConverted, nethttp.StatusConflict, "ALREADY_CONVERTED"},
		{domain.ErrInvalidConversion, nethttp.StatusUnprocessableEntity, "INVALID_CONVERSION"},
		{domain.ErrConflict, nethttp.StatusConflict, "CONFLICT"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, body := estadoYCuerpo(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, tc.code)
		})
	}
}

// Los sentinelas envueltos con %w deben mapearse igual que el sentinela pelado.
func TestRespondError_SentinelaEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("transición inválida: %w", domain.ErrInvalidTransition)
	status, body := estadoYCuerpo(t, wrapped)
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Contains(t, body, "INVALID_TRANSITION")
}

func TestRespondError_ErrorDesconocidoEs500(t *testing.T) {
	status, body := estadoYCuerpo(t, errors.New("se cayó la base"))
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
}
