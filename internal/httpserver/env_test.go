package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/events"
	appmw "github.com/hyeonbin/boardhub/internal/middleware"
	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/internal/repo"
	"github.com/hyeonbin/boardhub/internal/service"
	pkghash "github.com/hyeonbin/boardhub/pkg/hash"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
	Auth *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Board{}, &models.Article{}))

	gormRepo := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{
		Directory: gormRepo,
		JWTSecret: testSecret,
		TokenTTL:  15 * time.Minute,
	}

	e := echo.New()
	Register(e, &Deps{
		Auth:           appmw.NewAuth(gormRepo, testSecret),
		AuthHandler:    &AuthHTTP{Svc: authSvc, Producer: events.NopPublisher{}},
		BoardHandler:   &BoardHTTP{Svc: &service.BoardService{Repo: gormRepo}, Producer: events.NopPublisher{}},
		ArticleHandler: &ArticleHTTP{Svc: &service.ArticleService{Repo: gormRepo}, Producer: events.NopPublisher{}},
		BlogHandler:    &BlogHTTP{Svc: &service.BlogService{Repo: repo.NewBlogStore()}},
		SearchHandler:  &SearchHTTP{Svc: nil},
	})

	return &testEnv{T: t, E: e, DB: db, Repo: gormRepo, Auth: authSvc}
}

// do runs a request through the full router so middleware chains apply.
func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) signUp(username, password, email string) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username, "password": password, "email": email,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code, rec.Body.String())
}

func (env *testEnv) signIn(email, password string) string {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/auth/signin", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.AccessToken)
	return resp.AccessToken
}

// createAdmin writes an admin straight into the table; there is no signup
// path that yields one.
func (env *testEnv) createAdmin(email, password string) {
	env.T.Helper()

	pwHash, err := pkghash.HashPassword(password)
	require.NoError(env.T, err)
	require.NoError(env.T, env.DB.Create(&models.User{
		Username:     "admin",
		Email:        email,
		PasswordHash: pwHash,
		Role:         domain.RoleAdmin,
	}).Error)
}
