package commands

import (
	"fmt"

	"go.uber.org/zap"

	"UserCRUD/internal/cli/docstore"
	fsrepo "UserCRUD/internal/cli/repo/fs"
	"UserCRUD/internal/cli/service"
	"UserCRUD/internal/config"
	"UserCRUD/internal/crud"
	"UserCRUD/internal/ui"
)

// logger — диагностический канал команд (ошибки удалённых вызовов).
var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для команд.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

func authService(cfg *config.Config) service.AuthService {
	return service.NewAuthService(cfg.ServerURL)
}

// alerter печатает блокирующее сообщение формы в Out.
var alerter = crud.AlertFunc(func(msg string) {
	fmt.Fprintln(Out, ui.DefaultStyles().Alert.Render("! "+msg))
})

// openView создаёт представление коллекции с токеном текущего пользователя.
func openView(cfg *config.Config) (*crud.View, error) {
	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return nil, err
	}
	store := docstore.New(cfg.ServerURL, token, cfg.RequestTimeout)
	return crud.NewView(store, cfg.Collection, alerter, logger), nil
}
