package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"required value", errs.NewValueIsRequiredError("code"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("sort"), http.StatusBadRequest},
		{"forbidden", errs.NewForbiddenError("only the assignee may modify this order"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("order code already exists"), http.StatusConflict},
		{"precondition", errs.NewPreconditionFailedError("courier is not checked in"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestWriteError_UpstreamRelaysPayload(t *testing.T) {
	payload := []byte(`{"code":"NoRoute","message":"no route"}`)

	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(ctx, errs.NewUpstreamError("routing service could not compute a route", payload)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, string(payload), rec.Body.String())
}

func TestPrincipalMiddleware_ValidHeaders(t *testing.T) {
	userID := kernel.NewUUID()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, userID.String())
	req.Header.Set(HeaderUsername, "courier.one")
	req.Header.Set(HeaderUserAdmin, "false")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var captured kernel.Principal
	next := func(c echo.Context) error {
		captured = principalFrom(c)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, PrincipalMiddleware()(next)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, captured.Validate())
	assert.True(t, captured.ID().IsEqual(userID))
	assert.Equal(t, "courier.one", captured.Username())
	assert.False(t, captured.IsAdmin())
}

func TestPrincipalMiddleware_AdminFlag(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, kernel.NewUUID().String())
	req.Header.Set(HeaderUsername, "dispatch.admin")
	req.Header.Set(HeaderUserAdmin, "true")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		assert.True(t, principalFrom(c).IsAdmin())
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, PrincipalMiddleware()(next)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalMiddleware_RejectsMissingOrBadID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no headers", nil},
		{"bad uuid", map[string]string{HeaderUserID: "not-a-uuid", HeaderUsername: "x"}},
		{"missing username", map[string]string{HeaderUserID: kernel.NewUUID().String()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				t.Fatal("next handler must not run")
				return nil
			}

			require.NoError(t, PrincipalMiddleware()(next)(ctx))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPointFromPair_HalfPairRejected(t *testing.T) {
	lat := 23.8103

	_, err := pointFromPair("pickup", &lat, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	point, err := pointFromPair("pickup", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, point)
}
