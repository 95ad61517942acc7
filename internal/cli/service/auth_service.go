package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"UserCRUD/internal/cli/api"
	"UserCRUD/internal/cli/repo"
	fsrepo "UserCRUD/internal/cli/repo/fs"
)

var (
	ErrLoginTaken         = errors.New("login already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register создаёт учётную запись и сразу сохраняет токен.
	Register(ctx context.Context, login, password string) error

	// Login логирование пользователя.
	Login(ctx context.Context, login, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает логин текущего пользователя, если он установлен.
	CurrentUser() (string, error)

	// Token возвращает сохранённый токен.
	Token() (string, error)
}

// HTTPAuthService ходит на /api/user/* и хранит результат в AuthFSStore.
type HTTPAuthService struct {
	ServerURL string
	Store     repo.AuthStore
}

func NewAuthService(serverURL string) *HTTPAuthService {
	return &HTTPAuthService{ServerURL: strings.TrimRight(serverURL, "/"), Store: fsrepo.AuthFSStore{}}
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *HTTPAuthService) authenticate(ctx context.Context, path, login, password string) (int, error) {
	resp, body, err := api.PostJSON(ctx, s.ServerURL+path, credentials{Login: login, Password: password}, "")
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("server error %d: %s", resp.StatusCode, body)
	}
	if err := api.PersistAuthFromResponse(resp); err != nil {
		return resp.StatusCode, fmt.Errorf("saving auth: %w", err)
	}
	if err := s.Store.SaveLogin(login); err != nil {
		return resp.StatusCode, fmt.Errorf("saving login: %w", err)
	}
	return resp.StatusCode, nil
}

func (s *HTTPAuthService) Register(ctx context.Context, login, password string) error {
	code, err := s.authenticate(ctx, "/api/user/register", login, password)
	if code == http.StatusConflict {
		return ErrLoginTaken
	}
	return err
}

func (s *HTTPAuthService) Login(ctx context.Context, login, password string) error {
	code, err := s.authenticate(ctx, "/api/user/login", login, password)
	if code == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	return err
}

func (s *HTTPAuthService) Logout() error {
	return s.Store.Clear()
}

func (s *HTTPAuthService) CurrentUser() (string, error) {
	return s.Store.LoadLogin()
}

func (s *HTTPAuthService) Token() (string, error) {
	return s.Store.Load()
}
