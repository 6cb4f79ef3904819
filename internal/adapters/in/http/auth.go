package http

import (
	"fmt"
	"net/http"
	"strings"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalContextKey stores the resolved principal in the echo context.
const principalContextKey = "travelorder/principal"

// healthPath is served without authentication.
const healthPath = "/health"

// principalClaims is the JWT payload the service trusts: the subject is the
// principal's identifier, plus a display name and the administrator flag.
type principalClaims struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// PrincipalResolver authenticates requests by verifying bearer JWTs and
// exposing the result as an auth.Principal. Token issuance is out of scope;
// the service only verifies tokens minted elsewhere with the shared secret.
type PrincipalResolver struct {
	secret []byte
}

// NewPrincipalResolver creates a resolver verifying HS256 tokens with the given secret.
func NewPrincipalResolver(secret string) *PrincipalResolver {
	return &PrincipalResolver{secret: []byte(secret)}
}

// Middleware returns the echo middleware resolving the request principal.
// Requests without a valid token are rejected with 401 before reaching any
// handler; the health endpoint stays open.
func (r *PrincipalResolver) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Path() == healthPath {
				return next(ctx)
			}

			principal, err := r.resolve(ctx.Request())
			if err != nil {
				return errorResponse(ctx, err)
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// resolve extracts and verifies the bearer token of the request.
func (r *PrincipalResolver) resolve(req *http.Request) (auth.Principal, error) {
	const bearerPrefix = "Bearer "

	header := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return auth.Principal{}, errs.NewUnauthenticatedError()
	}

	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(header, bearerPrefix),
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return r.secret, nil
		},
	)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause(err)
	}
	if !token.Valid {
		return auth.Principal{}, errs.NewUnauthenticatedError()
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	principal, err := auth.NewPrincipal(id, claims.Name, claims.Admin)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	return principal, nil
}

// PrincipalFromContext returns the principal resolved by the middleware.
// Returns an error unwrapping errs.ErrUnauthenticated when no principal was
// stored, which handlers translate to a 401 response.
func PrincipalFromContext(ctx echo.Context) (auth.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, errs.NewUnauthenticatedError()
	}
	return principal, nil
}
