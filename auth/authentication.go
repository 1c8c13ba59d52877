package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/config"
)

const (
	AdminRole = "admin"

	AuthorizationHeaderKey = "Authorization"
	bearerPrefix           = "Bearer "
)

var (
	ErrUnauthenticated = fmt.Errorf("bearer token is invalid")
	AuthContextKey     = AuthKey("auth")
)

type AuthKey string

// Auth is the identity of the caller as asserted by a verified bearer token
type Auth struct {
	SubjectId string   `json:"subjectId" structs:"subjectId"`
	Roles     []string `json:"roles" structs:"roles"`
}

type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type Authenticator interface {
	Authenticate(token string) (*Auth, error)
}

type JWTAuthenticator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

var _ Authenticator = &JWTAuthenticator{}

func NewAuthenticator(cfg *config.Config) (Authenticator, error) {
	if cfg.AuthTokenSecret == "" {
		return nil, fmt.Errorf("auth token secret is missing")
	}

	return &JWTAuthenticator{
		secret: []byte(cfg.AuthTokenSecret),
		issuer: cfg.AuthTokenIssuer,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

func (j *JWTAuthenticator) Authenticate(token string) (*Auth, error) {
	claims := &Claims{}
	_, err := j.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject is missing", ErrUnauthenticated)
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrUnauthenticated, claims.Issuer)
	}

	return &Auth{
		SubjectId: claims.Subject,
		Roles:     claims.Roles,
	}, nil
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
	Logger  *zap.SugaredLogger
}

// NewAuthMiddleware stores the identity of the caller in the request context. Requests
// without a valid bearer token are passed through without auth data and are denied
// by the authorizer.
func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			token := GetBearerToken(c.Request().Header.Get(AuthorizationHeaderKey))
			if token == "" {
				return next(c)
			}

			auth, err := authenticator.Authenticate(token)
			if err != nil {
				if opts.Logger != nil {
					opts.Logger.Debugw("unable to authenticate request", "path", c.Path(), zap.Error(err))
				}
				return next(c)
			}

			SetAuthData(c, auth)
			return next(c)
		}
	}
}

func GetBearerToken(header string) string {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}
