package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"UserCRUD/internal/config"
)

// Exit codes of Dispatch.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Dispatch выполняет команду из args (уже без глобальных флагов) и возвращает код выхода.
// Справка и сообщения об ошибках печатаются в Out.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help": // ucrud help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprint(Out, formatCommandUsage(c))
			return ExitOK
		}
		return unknown(args[1])
	}

	c, ok := Get(name)
	if !ok {
		return unknown(name)
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	default:
		logger.Debugw("command failed", "command", name, "error", err)
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}

func unknown(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n", name)
	var similar []string
	for _, c := range List() {
		if strings.HasPrefix(c.Name(), name) || strings.HasPrefix(name, c.Name()) {
			similar = append(similar, c.Name())
		}
	}
	if len(similar) > 0 {
		fmt.Fprintf(Out, "Did you mean: %s?\n", strings.Join(similar, ", "))
	}
	fmt.Fprintln(Out)
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}
