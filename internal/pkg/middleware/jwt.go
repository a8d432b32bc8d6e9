package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/chadpay/internal/pkg/jwt"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware authenticates the bearer token and stores the actor in
// the echo context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actor, err := claims.Actor()
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: "+err.Error())
			}

			c.Set(actorContextKey, actor)
			c.Set("user_id", actor.ID)
			c.Set("user_role", string(actor.Role))

			return next(c)
		}
	}
}

// RequireRoles rejects actors whose role is not listed. It must run after
// JWTAuthMiddleware.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "")
		}
	}
}

// ActorFromContext returns the authenticated actor, if any
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(models.Actor)
	return actor, ok
}

// SetActor stores actor in the echo context
func SetActor(c echo.Context, actor models.Actor) {
	c.Set(actorContextKey, actor)
	c.Set("user_id", actor.ID)
}
