package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"UserCRUD/internal/config"
	"UserCRUD/internal/crud"
)

// ErrNoSuchRow — ссылка на строку не найдена в загруженном списке.
var ErrNoSuchRow = errors.New("no such user")

// resolveRow находит запись по id или по номеру строки "#n" (с 1).
func resolveRow(v *crud.View, ref string) (crud.Record, error) {
	if n, ok := strings.CutPrefix(ref, "#"); ok {
		i, err := strconv.Atoi(n)
		recs := v.Records()
		if err != nil || i < 1 || i > len(recs) {
			return crud.Record{}, fmt.Errorf("%w: row %s", ErrNoSuchRow, ref)
		}
		return recs[i-1], nil
	}
	if r, ok := v.Find(ref); ok {
		return r, nil
	}
	return crud.Record{}, fmt.Errorf("%w: %s", ErrNoSuchRow, ref)
}

// loadedView открывает представление и загружает коллекцию.
func loadedView(ctx context.Context, cfg *config.Config) (*crud.View, error) {
	v, err := openView(cfg)
	if err != nil {
		return nil, err
	}
	if err := v.Load(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// fillDraft заполняет форму; пустые значения оставляет Submit на проверку.
func fillDraft(v *crud.View, email, password string) error {
	if err := v.Change(crud.FieldEmail, email); err != nil {
		return err
	}
	return v.Change(crud.FieldPassword, password)
}

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "Show users of the collection" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, err := loadedView(ctx, cfg)
	if err != nil {
		return err
	}
	return v.RenderTable(Out)
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Add a user record" }
func (userAddCmd) Usage() string       { return "user-add <email> <password>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	v, err := loadedView(ctx, cfg)
	if err != nil {
		return err
	}
	if err := fillDraft(v, args[0], args[1]); err != nil {
		return err
	}
	if err := v.Submit(ctx); err != nil {
		return err
	}
	recs := v.Records()
	fmt.Fprintf(Out, "User added: %s\n", recs[len(recs)-1].ID)
	return v.RenderTable(Out)
}

type userEditCmd struct{}

func (userEditCmd) Name() string        { return "user-edit" }
func (userEditCmd) Description() string { return "Replace email and password of a user record" }
func (userEditCmd) Usage() string       { return "user-edit <id|#n> <email> <password>" }

func (userEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	v, err := loadedView(ctx, cfg)
	if err != nil {
		return err
	}
	r, err := resolveRow(v, args[0])
	if err != nil {
		return err
	}
	v.EditRow(r)
	if err := fillDraft(v, args[1], args[2]); err != nil {
		return err
	}
	if err := v.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User updated: %s\n", r.ID)
	return v.RenderTable(Out)
}

type userDeleteCmd struct{}

func (userDeleteCmd) Name() string        { return "user-delete" }
func (userDeleteCmd) Description() string { return "Delete a user record" }
func (userDeleteCmd) Usage() string       { return "user-delete <id|#n>" }

func (userDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	v, err := openView(cfg)
	if err != nil {
		return err
	}
	id := args[0]
	if strings.HasPrefix(id, "#") {
		if err := v.Load(ctx); err != nil {
			return err
		}
		r, err := resolveRow(v, id)
		if err != nil {
			return err
		}
		id = r.ID
	}
	if err := v.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User deleted: %s\n", id)
	return nil
}

func init() {
	RegisterCmd(usersCmd{})
	RegisterCmd(userAddCmd{})
	RegisterCmd(userEditCmd{})
	RegisterCmd(userDeleteCmd{})
}
