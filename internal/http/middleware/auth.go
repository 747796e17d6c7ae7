package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hackfest/internal/http/api"
	"hackfest/internal/lib/sl"
	"hackfest/internal/models"
	repo "hackfest/internal/repository"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const identityKey ctxKey = 1

var ErrNoSubject = errors.New("token has no subject")

// Identity is the caller as asserted by the identity provider's session token.
type Identity struct {
	UserID  string
	Email   string
	Name    string
	IsAdmin bool
}

type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// IssueToken signs an HS256 session token for id.
func IssueToken(secret string, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:   id.Email,
		Name:    id.Name,
		IsAdmin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return t.SignedString([]byte(secret))
}

// Auth rejects requests without a valid session token. The token is taken
// from the Authorization header or, failing that, from the session cookie.
func Auth(secret, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r, cookieName)
			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
				return
			}

			id, err := parseToken(tokenString, secret)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

// AdminOnly lets through callers whose stored user record is an admin.
// The is_admin claim is not trusted, so revoking admin takes effect on the
// next request rather than when the token expires.
func AdminOnly(log *slog.Logger, users UserGetter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
				return
			}

			user, err := users.GetById(r.Context(), id.UserID)
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				log.Error("failed to load caller", slog.String("user_id", id.UserID), sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, api.InternalError())
				return
			}

			if user == nil || !user.IsAdmin {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, api.Error(api.ErrCodeForbidden, "admin access required"))
				return
			}

			id.IsAdmin = true
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		token, _ := strings.CutPrefix(header, "Bearer ")
		return strings.TrimSpace(token)
	}

	if cookieName == "" {
		return ""
	}

	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return c.Value
}

func parseToken(tokenString, secret string) (Identity, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, err
	}

	if claims.Subject == "" {
		return Identity{}, ErrNoSubject
	}

	return Identity{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}, nil
}
