package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketfront/internal/delivery/http/response"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	m := NewErrorMiddleware(discardLogger())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestHandleAppError(t *testing.T) {
	rec, envelope := runErrorHandler(t, errors.WithStack(domainerrors.ErrVendorNotApproved))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VENDOR_NOT_APPROVED", envelope.Error.Code)
	assert.Equal(t, "Your store must be approved before you can manage products", envelope.Message)
}

func TestHandleBackendError(t *testing.T) {
	rec, envelope := runErrorHandler(t, domainerrors.NewBackendError(http.StatusBadRequest, "Description is required", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Description is required", envelope.Message)
}

func TestHandleGatewaySentinels(t *testing.T) {
	rec, envelope := runErrorHandler(t, errors.Wrap(gateway.ErrUnauthorized, "load cart"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)

	rec, envelope = runErrorHandler(t, errors.Wrap(gateway.ErrNotFound, "load product"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestHandleUnknownError(t *testing.T) {
	rec, envelope := runErrorHandler(t, errors.New("database on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", envelope.Message)
	// Internals never leak to the client.
	assert.NotContains(t, rec.Body.String(), "database on fire")
}
