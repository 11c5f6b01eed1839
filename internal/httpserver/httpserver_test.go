package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/config"
	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
	"github.com/liveaevi/skincare-api/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := repo.New(db)

	e := echo.New()
	Register(e, &Deps{
		JWTSecret:  testSecret,
		Auth:       &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: testSecret}},
		Catalog:    &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}},
		Engagement: &EngagementHTTP{Svc: &service.EngagementService{Repo: gormRepo}},
		Cart:       &CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) do(method, path string, body interface{}, headers ...http.Header) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, h := range headers {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	env.T.Helper()
	var out map[string]interface{}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (env *testEnv) createProduct(p models.Product) models.Product {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

// signupAndLogin registers a user through the API and returns its bearer
// token and user id.
func (env *testEnv) signupAndLogin(username, email string) (string, uint) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": "password",
	})
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "password",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.AccessToken)
	return resp.AccessToken, resp.User.ID
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set(echo.HeaderAuthorization, "Bearer "+token)
	return h
}

func itoa(v uint) string { return strconv.FormatUint(uint64(v), 10) }
