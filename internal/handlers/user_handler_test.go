package handlers_test

import (
	"UserCRUD/internal/middleware"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authCookie(rr interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestUser_RegisterLoginStatus(t *testing.T) {
	router, cfg := newTestRouter(t)
	creds := map[string]string{"login": "john", "password": "secret"}

	rr := do(t, router, cfg, 0, http.MethodPost, "/api/user/register", creds)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, authCookie(rr))

	// повторная регистрация — конфликт
	rr = do(t, router, cfg, 0, http.MethodPost, "/api/user/register", creds)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, router, cfg, 0, http.MethodPost, "/api/user/login", creds)
	require.Equal(t, http.StatusOK, rr.Code)
	c := authCookie(rr)
	require.NotNil(t, c)

	uid, err := middleware.ParseToken(c.Value, cfg.AuthSecret)
	require.NoError(t, err)
	assert.NotZero(t, uid)

	rr = do(t, router, cfg, uid, http.MethodGet, "/api/user/status", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user_id"`)
}

func TestUser_LoginAndRegisterErrors(t *testing.T) {
	router, cfg := newTestRouter(t)

	rr := do(t, router, cfg, 0, http.MethodPost, "/api/user/register", `{"login":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, cfg, 0, http.MethodPost, "/api/user/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, cfg, 0, http.MethodPost, "/api/user/login", map[string]string{"login": "ghost", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, router, cfg, 0, http.MethodGet, "/api/user/status", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
