package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymfit_backend/internal/app"
	"gymfit_backend/internal/config"
	"gymfit_backend/internal/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AdminEmail and AdminPassword are the seeded admin credentials every test
// server starts with.
const (
	AdminEmail    = "admin@gymfit.test"
	AdminPassword = "Adm1n!Pass"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer boots the full router over a private in-memory database, with
// the schema migrated and the first admin seeded. Each test gets its own
// server and store, so tests never need to clean up after each other.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	logger.Init("test")

	cfg := testConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// A single connection keeps every session on the same in-memory store,
	// and the pragma arms the restrict foreign keys.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := app.SeedFirstAdmin(db, cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	router, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("set up router: %v", err)
	}

	server := httptest.NewServer(router)
	ts := &TestServer{Server: server, DB: db, Config: cfg}
	t.Cleanup(ts.Close)
	return ts
}

func testConfig() *config.Config {
	var cfg config.Config
	cfg.Server.Env = "test"
	cfg.Database.DSN = ":memory:"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.Issuer = "gymfit-test"
	cfg.JWT.Audience = "gymfit-spa"
	cfg.JWT.ExpireMinutes = 60
	cfg.Admin.Name = "Site Admin"
	cfg.Admin.Email = AdminEmail
	cfg.Admin.Password = AdminPassword
	return &cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body read to a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	return res, string(resBody)
}
