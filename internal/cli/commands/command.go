package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"UserCRUD/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах: диспетчер печатает Usage.
var ErrUsage = errors.New("usage")

// Command — подкоманда CLI.
type Command interface {
	// Name — имя, которое набирает пользователь, например "user-add".
	Name() string
	// Description — короткое описание для общей справки.
	Description() string
	// Usage — точная строка использования, например "user-add <email> <password>".
	Usage() string
	// Run выполняет команду; args без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр; вызывается из init() каждой команды.
// Повторная регистрация имени заменяет команду.
func RegisterCmd(cmd Command) {
	registry[strings.ToLower(cmd.Name())] = cmd
}

// Get ищет команду по имени без учёта регистра.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List возвращает команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b Command) int { return strings.Compare(a.Name(), b.Name()) })
	return list
}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	var sb strings.Builder
	sb.WriteString("UserCRUD CLI\n\n")
	sb.WriteString("Usage:\n  ucrud [--base-url <host:port>] [--collection <name>] <command> [args]\n\n")
	sb.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&sb, "  %-36s %s\n", c.Usage(), c.Description())
	}
	sb.WriteString("\nRows can be referenced by id or by 1-based number from `users`, e.g. #2.\n")
	return sb.String()
}

// formatCommandUsage — справка по одной команде.
func formatCommandUsage(c Command) string {
	return fmt.Sprintf("Usage: %s\n  %s\n", c.Usage(), c.Description())
}
