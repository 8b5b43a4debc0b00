package http

import (
	"net/http"

	"fooddelivery/internal/adapters/in/auth"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const ctxActorKey = "actor"

// TokenVerifier turns a bearer token into the calling actor.
type TokenVerifier interface {
	Verify(raw string) (kernel.Actor, error)
}

// AuthJWT rejects requests without a valid bearer token and stores the actor
// in the echo context.
func AuthJWT(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, newErrorResponse(CodeUnauthorized, "missing bearer token"))
			}

			actor, err := verifier.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, newErrorResponse(CodeUnauthorized, "invalid bearer token"))
			}

			c.Set(ctxActorKey, actor)
			return next(c)
		}
	}
}

// RequireRole lets only the given roles through. It must run after AuthJWT.
func RequireRole(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, newErrorResponse(CodeUnauthorized, "unauthorized"))
			}
			for _, role := range roles {
				if actor.Role() == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, newErrorResponse(CodeUnauthorized, string(actor.Role())+" is not allowed here"))
		}
	}
}

func actorFrom(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(ctxActorKey).(kernel.Actor)
	if !ok || actor.Validate() != nil {
		return kernel.Actor{}, false
	}
	return actor, true
}
