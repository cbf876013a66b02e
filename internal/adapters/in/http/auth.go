package http

import (
	"errors"
	"net/http"
	"strings"

	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	callerContextKey = "fastfeet.caller"
	claimsContextKey = "fastfeet.claims"
	bearerPrefix     = "bearer "
)

type tokenVerifier interface {
	Verify(accessToken string) (ports.SessionClaims, error)
}

// Authenticator turns a bearer token into the caller a use case acts for. The role is
// read from the store on every request, so role changes and deletions apply to
// tokens issued earlier.
type Authenticator struct {
	tokens    tokenVerifier
	revoker   ports.TokenRevoker
	resolver  ResultHandler[queries.ResolveCallerQuery, access.Caller]
	onFailure func()
}

func NewAuthenticator(
	tokens tokenVerifier,
	revoker ports.TokenRevoker,
	resolver ResultHandler[queries.ResolveCallerQuery, access.Caller],
	onFailure func(),
) *Authenticator {
	if onFailure == nil {
		onFailure = func() {}
	}
	return &Authenticator{
		tokens:    tokens,
		revoker:   revoker,
		resolver:  resolver,
		onFailure: onFailure,
	}
}

// Middleware guards every API route except session creation. Routes outside
// /api are left alone.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !requiresAuthentication(c) {
				return next(c)
			}

			ctx := c.Request().Context()

			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return a.reject("missing bearer token")
			}

			claims, err := a.tokens.Verify(token)
			if err != nil {
				var notAuthorized *errs.NotAuthorizedError
				if errors.As(err, &notAuthorized) {
					return a.reject(notAuthorized.Reason)
				}
				return a.reject("invalid token")
			}

			revoked, err := a.revoker.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				return err
			}
			if revoked {
				return a.reject("token has been revoked")
			}

			query, err := queries.NewResolveCallerQuery(claims.UserID)
			if err != nil {
				return a.reject("invalid token")
			}
			caller, err := a.resolver.Handle(ctx, query)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return a.reject("account no longer exists")
				}
				return err
			}

			c.Set(callerContextKey, caller)
			c.Set(claimsContextKey, claims)

			return next(c)
		}
	}
}

func (a *Authenticator) reject(reason string) error {
	a.onFailure()
	return echo.NewHTTPError(http.StatusUnauthorized, reason)
}

func requiresAuthentication(c echo.Context) bool {
	path := c.Path()
	if !strings.HasPrefix(path, "/api/") {
		return false
	}
	return !(path == "/api/v1/sessions" && c.Request().Method == http.MethodPost)
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// CallerFrom returns the caller resolved by the Authenticator, or the zero Caller
// which every use case rejects.
func CallerFrom(c echo.Context) access.Caller {
	caller, _ := c.Get(callerContextKey).(access.Caller)
	return caller
}

func claimsFrom(c echo.Context) (ports.SessionClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(ports.SessionClaims)
	return claims, ok
}
