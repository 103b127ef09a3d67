package httpapi

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
)

const contextActorKey = "actor"

// Claims are the identity claims carried by a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// GenerateToken signs an HS256 token for actor, valid for ttl.
func GenerateToken(secret []byte, actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TenantID: actor.TenantID,
		Role:     string(actor.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// authMiddleware resolves the bearer token into a domain.Actor stored on the context.
func authMiddleware(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return domain.ErrUnauthenticated
			}
			claims := &Claims{}
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, keyFunc); err != nil {
				return domain.ErrUnauthenticated.WithDetail(err.Error())
			}
			actor, err := domain.NewActor(claims.Subject, claims.TenantID, claims.Role)
			if err != nil {
				return err
			}
			c.Set(contextActorKey, actor)
			return next(c)
		}
	}
}

func contextActor(c echo.Context) (domain.Actor, error) {
	if actor, ok := c.Get(contextActorKey).(domain.Actor); ok {
		return actor, nil
	}
	return domain.Actor{}, domain.ErrUnauthenticated
}
