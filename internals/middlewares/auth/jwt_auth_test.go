package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "scholartrack_backend/internals/helpers"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Get("/me", AuthJWT(opts), func(c *fiber.Ctx) error {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.SendString(id.String())
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	uid := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		header string
		cookie string
		opts   AuthJWTOpts
		status int
	}{
		{
			name:   "valid sub claim",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": uid.String(), "exp": exp}),
			status: fiber.StatusOK,
		},
		{
			name:   "id claim preferred",
			header: "bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": uid.String(), "sub": "nope", "exp": exp}),
			status: fiber.StatusOK,
		},
		{
			name:   "missing header",
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "wrong secret",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": uid.String(), "exp": exp}),
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": uid.String(), "exp": time.Now().Add(-time.Minute).Unix()}),
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "non uuid subject",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "alice", "exp": exp}),
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "alg none rejected",
			header: "Bearer " + sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": uid.String()}),
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "cookie fallback",
			cookie: sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": uid.String(), "exp": exp}),
			opts:   AuthJWTOpts{AllowCookieFallback: true},
			status: fiber.StatusOK,
		},
		{
			name:   "blacklisted",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": uid.String(), "exp": exp}),
			opts:   AuthJWTOpts{BlacklistChecker: func(string) (bool, error) { return true, nil }},
			status: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Secret = secret
			app := newApp(opts)

			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set(fiber.HeaderCookie, "access_token="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAuthJWT_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}

func TestRedisBlacklist_KeyIsHashed(t *testing.T) {
	b := NewRedisBlacklist(nil, secret)
	k1 := b.key("token-a")
	assert.Equal(t, k1, b.key(" token-a "))
	assert.NotEqual(t, k1, b.key("token-b"))
	assert.NotContains(t, k1, "token-a")
	assert.Len(t, k1, len("jwt:blacklist:")+64)
}
