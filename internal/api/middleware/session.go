package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
)

// SessionCookie is the cookie carrying the session token for browser clients.
const SessionCookie = "session"

var errMissingEmail = errors.New("session token has no email claim")

// SessionClaims is the payload of an identity-provider session token.
type SessionClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate verifies the session token (Authorization bearer header, or
// the session cookie) and threads the resulting domain.Identity through the
// request context. Requests without a valid token continue with no identity;
// protected routes reject them in RequireSession.
func Authenticate(secret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionToken(c)
			if raw == "" {
				return next(c)
			}

			id, err := ParseSession(raw, secret)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("ignoring invalid session token")
				return next(c)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

// ParseSession validates an HS256 session token and returns its identity.
func ParseSession(raw, secret string) (domain.Identity, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, err
	}
	if !tkn.Valid {
		return domain.Identity{}, jwt.ErrTokenSignatureInvalid
	}
	if domain.NormalizeEmail(claims.Email) == "" {
		return domain.Identity{}, errMissingEmail
	}

	return domain.Identity{
		Email:     claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.Picture,
	}, nil
}

func sessionToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
