package http

import (
	"net/http"
	"strings"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// IdentityClaims carries the authenticated identity inside a bearer token.
// The subject is the actor's UUID; role and email come from custom claims.
type IdentityClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Authorization bearer token and stores the
// resolved actor on the request context. Requests without a valid token
// are rejected with 401 before reaching any handler.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims := &IdentityClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, isHMAC := token.Method.(*jwt.SigningMethodHMAC); !isHMAC {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			requester, err := actorFromClaims(claims)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid identity claims",
				})
			}

			ctx.Set(actorContextKey, requester)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims *IdentityClaims) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role, claims.Email)
}

// actorFromContext retrieves the authenticated actor stored by AuthMiddleware.
func actorFromContext(ctx echo.Context) (actor.Actor, bool) {
	requester, ok := ctx.Get(actorContextKey).(actor.Actor)
	return requester, ok
}
