package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"autonews/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	adminContextKey contextKey = "autonewsAdmin"
	roleAdmin                  = "admin"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid bearer token")
	errInvalidClaims = errors.New("invalid claims")
	errInvalidIssuer = errors.New("invalid issuer")
	errNotAdmin      = errors.New("admin role required")
)

// AdminClaims represents the JWT claims accepted on the admin API.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminContext holds the authenticated operator identity.
type AdminContext struct {
	Subject string
	Role    string
}

// JWTAuthMiddleware validates bearer tokens on the admin API group.
type JWTAuthMiddleware struct {
	logger *slog.Logger
	secret []byte
	issuer string
}

// NewJWTAuthMiddleware creates a new JWT authentication middleware.
func NewJWTAuthMiddleware(logger *slog.Logger, cfg *config.AuthConfig) *JWTAuthMiddleware {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("AUTH_JWT_SECRET not set, admin API will deny all requests")
	}

	return &JWTAuthMiddleware{
		logger: logger,
		secret: secret,
		issuer: cfg.Issuer,
	}
}

// RequireAdmin ensures a valid admin token is present before the request
// proceeds.
func (m *JWTAuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adminCtx, err := m.validateToken(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errNotAdmin):
					return echo.NewHTTPError(http.StatusForbidden, "admin role required")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims), errors.Is(err, errInvalidIssuer):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
				default:
					if m.logger != nil {
						m.logger.Error("JWT validation error", "error", err)
					}

					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := context.WithValue(c.Request().Context(), adminContextKey, adminCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *JWTAuthMiddleware) validateToken(c echo.Context) (*AdminContext, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*AdminClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	if claims.Role != roleAdmin {
		return nil, errNotAdmin
	}

	return &AdminContext{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}

// GetAdminContext extracts the authenticated operator from the request
// context.
func GetAdminContext(c echo.Context) (*AdminContext, bool) {
	adminCtx, ok := c.Request().Context().Value(adminContextKey).(*AdminContext)
	return adminCtx, ok
}
