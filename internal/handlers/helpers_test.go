package handlers_test

import (
	"UserCRUD/internal/config"
	"UserCRUD/internal/handlers"
	"UserCRUD/internal/middleware"
	"UserCRUD/internal/repo"
	"UserCRUD/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newTestRouter поднимает полный роутер поверх in-memory SQLite.
func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	userSvc := service.NewUserService(repo.NewUserRepository(db))
	docSvc := service.NewDocumentService(repo.NewDocumentRepository(db), logger)
	h := handlers.NewHandler(userSvc, docSvc, logger, cfg)
	return h.Router, cfg
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := middleware.SetLoginCookie(rr, userID, secret); err != nil {
		t.Fatalf("set cookie: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос от имени userID (0 — без авторизации).
func do(t *testing.T, router http.Handler, cfg *config.Config, userID int64, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		addAuth(t, req, userID, cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
