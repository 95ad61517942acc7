package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"UserCRUD/internal/cli/api"
	fsrepo "UserCRUD/internal/cli/repo/fs"
	"UserCRUD/internal/config"
)

type statusResponse struct {
	UserID int64 `json:"user_id"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check that the stored token is accepted" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store := fsrepo.AuthFSStore{}
	token, _ := store.Load()
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/status"
	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		fmt.Fprintln(Out, "Status: not logged in")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, body)
	}
	var sr statusResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	login, _ := store.LoadLogin()
	fmt.Fprintf(Out, "Status: authorized as %q (user_id %d), collection %q\n", login, sr.UserID, cfg.Collection)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
