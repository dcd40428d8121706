package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"deliverysys/internal/core/domain/model/kernel"
)

// Identity headers set by the upstream authentication proxy. The service
// trusts them as-is; it never authenticates credentials itself.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUsername  = "X-Username"
	HeaderUserAdmin = "X-User-Admin"
)

const principalContextKey = "principal"

// PrincipalMiddleware extracts the authenticated principal from the identity
// headers. Requests without a valid user ID are rejected with 401.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := principalFromHeaders(ctx.Request().Header)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid identity headers",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func principalFromHeaders(header http.Header) (kernel.Principal, error) {
	id, err := kernel.UUIDFromString(header.Get(HeaderUserID))
	if err != nil {
		return kernel.Principal{}, err
	}

	isAdmin, _ := strconv.ParseBool(header.Get(HeaderUserAdmin))

	return kernel.NewPrincipal(id, header.Get(HeaderUsername), isAdmin)
}

func principalFrom(ctx echo.Context) kernel.Principal {
	principal, _ := ctx.Get(principalContextKey).(kernel.Principal)
	return principal
}
