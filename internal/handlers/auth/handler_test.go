package auth_test

import (
	"airline/config"
	otelMocks "airline/infras/otel/mocks"
	"airline/internal/domains/auth/mocks"
	"airline/internal/domains/auth/model/dto"
	"airline/internal/handlers/auth"
	"airline/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockAuth, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.CookieName = "access_token"

	svc := mocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, cfg, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "access_token" {
			return cookie
		}
	}

	return nil
}

func TestRegister(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{Email: "a@b.co", Password: "password123"}).Return(nil)

		rec := do(router, http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"password123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid email never reaches the service", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/auth/register", `{"email":"nope","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))

		rec := do(router, http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"password123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "a@b.co", Password: "password123"}).
			Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)

		rec := do(router, http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"password123"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "access", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 900, cookie.MaxAge)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.BadRequestFromString("invalid email or password"))

		rec := do(router, http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"wrong"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, sessionCookie(rec))
	})
}

func TestLogout(t *testing.T) {
	_, router := setup(t)

	rec := do(router, http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Me(gomock.Any()).Return(dto.ProfileResponse{ID: "u-1", Email: "a@b.co", Role: "user"}, nil)

		rec := do(router, http.MethodGet, "/auth/me", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"a@b.co"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Me(gomock.Any()).Return(dto.ProfileResponse{}, failure.UnauthenticatedError)

		rec := do(router, http.MethodGet, "/auth/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
