package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"UserCRUD/internal/config"
	"UserCRUD/internal/crud"
)

// LineReader — источник ввода интерактивной сессии. *liner.State ему удовлетворяет.
type LineReader interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

var shellCommands = []string{"email", "password", "submit", "edit", "delete", "reset", "list", "reload", "help", "quit"}

// newLineReader подменяется в тестах.
var newLineReader = func() LineReader {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	l.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range shellCommands {
			if strings.HasPrefix(c, strings.ToLower(line)) {
				out = append(out, c)
			}
		}
		return out
	})
	return l
}

const shellHelp = `Commands:
  email [value]        set email (prompts if value omitted)
  password             set password (masked prompt)
  submit               add user, or update the one being edited
  edit <id|#n>         load a row into the form
  delete <id|#n>       delete a row
  reset                clear the form, back to "Add User"
  list                 show form and users
  reload               fetch users from the server again
  help                 show this help
  quit                 exit
`

type shellCmd struct{}

func (shellCmd) Name() string        { return "shell" }
func (shellCmd) Description() string { return "Interactive add/edit/delete session" }
func (shellCmd) Usage() string       { return "shell" }

func (shellCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, err := openView(cfg)
	if err != nil {
		return err
	}
	in := newLineReader()
	defer in.Close()

	s := &shellSession{view: v, in: in}
	return s.run(ctx)
}

type shellSession struct {
	view *crud.View
	in   LineReader
}

func (s *shellSession) run(ctx context.Context) error {
	// ошибка первичной загрузки уже залогирована, список остаётся пустым
	if err := s.view.Load(ctx); err != nil {
		fmt.Fprintf(Out, "error: %v\n", err)
	}
	s.render()
	fmt.Fprintln(Out, "Type 'help' for available commands.")

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := s.in.Prompt(promptFor(s.view.Mode()))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(Out, "Bye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.in.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, rest := strings.ToLower(parts[0]), parts[1:]
		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			fmt.Fprintln(Out, "Bye!")
			return nil
		}
		if err := s.exec(ctx, cmd, rest); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(Out, "Bye!")
				return nil
			}
			fmt.Fprintf(Out, "error: %v\n", err)
		}
	}
}

func promptFor(m crud.Mode) string {
	return fmt.Sprintf("users[%s]> ", m)
}

func (s *shellSession) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		fmt.Fprint(Out, shellHelp)
	case "email":
		value := strings.Join(args, " ")
		if value == "" {
			var err error
			if value, err = s.in.Prompt("Email: "); err != nil {
				return err
			}
		}
		return s.view.Change(crud.FieldEmail, strings.TrimSpace(value))
	case "password":
		value, err := s.in.PasswordPrompt("Password: ")
		if err != nil {
			return err
		}
		return s.view.Change(crud.FieldPassword, value)
	case "submit":
		err := s.view.Submit(ctx)
		if errors.Is(err, crud.ErrMissingFields) {
			return nil // alert уже показан
		}
		if err != nil {
			return err
		}
		s.render()
	case "edit":
		if len(args) != 1 {
			return errors.New("usage: edit <id|#n>")
		}
		r, err := resolveRow(s.view, args[0])
		if err != nil {
			return err
		}
		s.view.EditRow(r)
		s.render()
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete <id|#n>")
		}
		id := args[0]
		if strings.HasPrefix(id, "#") {
			r, err := resolveRow(s.view, id)
			if err != nil {
				return err
			}
			id = r.ID
		}
		if err := s.view.Delete(ctx, id); err != nil {
			return err
		}
		s.render()
	case "reset":
		s.view.Reset()
		s.render()
	case "list":
		s.render()
	case "reload":
		if err := s.view.Load(ctx); err != nil {
			return err
		}
		s.render()
	default:
		fmt.Fprintf(Out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return nil
}

func (s *shellSession) render() {
	if err := s.view.Render(Out); err != nil {
		logger.Warnw("render failed", "error", err)
	}
	fmt.Fprintln(Out)
}

func init() { RegisterCmd(shellCmd{}) }
