package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estagiohub/config"
	"estagiohub/internal/delivery/http/response"
	domainerrors "estagiohub/internal/domain/errors"
)

func newErrorMiddleware(t *testing.T, env string) *ErrorMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewErrorMiddleware(logger, cfg)
}

func handleError(t *testing.T, m *ErrorMiddleware, err error) (int, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internships", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec.Code, envelope
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newErrorMiddleware(t, "development")

	code, envelope := handleError(t, m, domainerrors.ErrInternshipNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusNotFound, envelope.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNSHIP_NOT_FOUND", envelope.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := newErrorMiddleware(t, "development")

	wrapped := errors.Wrap(domainerrors.ErrConflict, "update internship")
	code, envelope := handleError(t, m, wrapped)

	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware(t, "development")

	code, envelope := handleError(t, m, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "HTTP_ERROR", envelope.Error.Code)
}

func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	t.Run("development exposes details", func(t *testing.T) {
		m := newErrorMiddleware(t, "development")

		code, envelope := handleError(t, m, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
		assert.Contains(t, envelope.Error.Details, "connection refused")
	})

	t.Run("production redacts details", func(t *testing.T) {
		m := newErrorMiddleware(t, "production")

		code, envelope := handleError(t, m, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, unexpectedErrorMessage, envelope.Message)
		require.NotNil(t, envelope.Error)
		assert.Empty(t, envelope.Error.Details)
	})
}
