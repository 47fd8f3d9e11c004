package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apphttp "storefront/internal/http"
	"storefront/internal/repository/sqlite"
	"storefront/internal/service"
	"storefront/internal/session"
)

const cookieName = "storefront_session"

type testServer struct {
	router http.Handler
	store  *sqlite.Store
}

func newTestServer(t *testing.T, staticDir string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := sqlite.NewStore(db)
	t.Cleanup(func() { store.Close() })

	if _, err := store.Init(context.Background(), sqlite.DefaultAdmin{
		Username: "admin",
		Password: "admin123",
		Email:    "admin@project.com",
	}); err != nil {
		t.Fatalf("init store: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := apphttp.NewHandler(
		service.NewUserService(store.Users),
		service.NewProductService(store.Products),
		service.NewAdminService(store.Admins, session.NewMemoryStore(time.Hour)),
		apphttp.Options{
			CookieName:  cookieName,
			SessionTTL:  time.Hour,
			CORSOrigins: []string{"http://localhost:3000"},
			StaticDir:   staticDir,
			Logger:      logger,
		},
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return &testServer{router: router, store: store}
}

type envelope struct {
	Success  bool                      `json:"success"`
	Error    string                    `json:"error"`
	Message  string                    `json:"message"`
	LoggedIn bool                      `json:"logged_in"`
	User     *apphttp.UserResponse     `json:"user"`
	Users    []apphttp.UserResponse    `json:"users"`
	Product  *apphttp.ProductResponse  `json:"product"`
	Products []apphttp.ProductResponse `json:"products"`
	Admin    *apphttp.AdminResponse    `json:"admin"`
	Admins   []apphttp.AdminResponse   `json:"admins"`
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func (s *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func (s *testServer) countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := s.store.DB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
