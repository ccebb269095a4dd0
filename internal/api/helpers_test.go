package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testutil"
	"github.com/pageza/recipe-share/backend/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv is a router backed by real services over an in-memory database.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func newTestRouter(t *testing.T, validator middleware.TokenValidator, deps Dependencies) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Sessions(validator))
	RegisterRoutes(r, deps)
	return r
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	recipes := service.NewRecipeService(db)
	auth := service.NewAuthService(db, "api-test-secret-value", time.Hour)

	return &testEnv{
		router: newTestRouter(t, auth, Dependencies{
			DB:         db,
			Recipes:    recipes,
			Favorites:  recipes,
			Auth:       auth,
			SessionTTL: time.Hour,
		}),
		db:   db,
		auth: auth,
	}
}

// userWithID inserts a user with a fixed primary key.
func (e *testEnv) userWithID(t *testing.T, id uint, name string) *model.User {
	t.Helper()
	user := &model.User{ID: id, Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// do sends a JSON request; a non-empty token is sent as the session cookie.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	return send(t, e.router, method, path, body, token)
}

func send(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
