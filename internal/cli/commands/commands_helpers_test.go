package commands

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"UserCRUD/internal/config"
	"UserCRUD/internal/handlers"
	"UserCRUD/internal/repo"
	"UserCRUD/internal/service"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// withStdoutCapture перехватывает Out на время теста.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// newTestServer поднимает настоящий сервер документов на in-memory SQLite.
func newTestServer(t *testing.T) *config.Config {
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
	srvCfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(
		service.NewUserService(repo.NewUserRepository(db)),
		service.NewDocumentService(repo.NewDocumentRepository(db), logger),
		logger, srvCfg,
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return &config.Config{ServerURL: ts.URL, Collection: "users", RequestTimeout: 5 * time.Second}
}

// scriptedReader отдаёт заранее заданные строки; после них — io.EOF.
type scriptedReader struct {
	lines     []string
	prompts   []string
	passwords int
	history   []string
	closed    bool
}

func (r *scriptedReader) next(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	l := r.lines[0]
	r.lines = r.lines[1:]
	return l, nil
}

func (r *scriptedReader) Prompt(prompt string) (string, error) { return r.next(prompt) }

func (r *scriptedReader) PasswordPrompt(prompt string) (string, error) {
	r.passwords++
	return r.next(prompt)
}

func (r *scriptedReader) AppendHistory(item string) { r.history = append(r.history, item) }

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

// withLineReader подставляет scriptedReader в shell.
func withLineReader(t *testing.T, lines ...string) *scriptedReader {
	t.Helper()
	r := &scriptedReader{lines: lines}
	old := newLineReader
	newLineReader = func() LineReader { return r }
	t.Cleanup(func() { newLineReader = old })
	return r
}
