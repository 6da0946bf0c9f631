package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/user"
)

// actorContextKey is where the middleware stores the authenticated actor on
// the echo context.
const actorContextKey = "actor"

var errActorMissing = errors.New("no authenticated actor on request context")

// ActorMiddleware authenticates requests from a bearer JWT and attaches the
// resulting actor to the context. The token carries the trusted
// (sub, role, scope) tuple; authentication itself happens upstream, this
// layer only verifies the signature and shapes the claims into a domain
// actor.
func ActorMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid actor claims")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFrom extracts the authenticated actor attached by ActorMiddleware.
func ActorFrom(c echo.Context) (user.Actor, error) {
	actor, ok := c.Get(actorContextKey).(user.Actor)
	if !ok {
		return user.Actor{}, errActorMissing
	}
	return actor, nil
}

func actorFromClaims(claims jwt.MapClaims) (user.Actor, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return user.Actor{}, errors.New("sub claim missing")
	}

	actorID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return user.Actor{}, err
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return user.Actor{}, errors.New("role claim missing")
	}

	role, err := user.RoleFromString(roleClaim)
	if err != nil {
		return user.Actor{}, err
	}

	scope := user.ScopeUnknown
	if scopeClaim, hasScope := claims["scope"].(string); hasScope && scopeClaim != "" {
		scope, err = user.VendorScopeFromString(scopeClaim)
		if err != nil {
			return user.Actor{}, err
		}
	}

	return user.NewActor(actorID, role, scope)
}

// IssueActorToken mints a signed bearer token for the given account. Used by
// the seed tooling and tests; production deployments mint tokens in the
// identity service.
func IssueActorToken(jwtSecret string, u *user.User, ttl time.Duration) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":  u.ID().String(),
		"role": u.Role().String(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	if u.Scope() != user.ScopeUnknown {
		claims["scope"] = u.Scope().String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
