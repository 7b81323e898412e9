package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const commandsHelp = `create <url> [--limit N] [--ttl-hours H]
open <id>
list
delete <id>
set-limit <id> <N>
set-ttl <id> <hours>
exit`

// errExit сигнализирует о завершении цикла команд
var errExit = errors.New("exit")

// Usecase определяет операции над ссылками, доступные из командной строки
type Usecase interface {
	CreateLinkFromString(owner uuid.UUID, rawURL string, limit *int, ttl *time.Duration) (model.Link, error)
	OpenLink(code model.Code) model.OpenResult
	ListLinks(owner uuid.UUID) []model.Link
	DeleteLink(owner uuid.UUID, code model.Code) error
	SetLimit(owner uuid.UUID, code model.Code, maxClicks int) error
	SetTTL(owner uuid.UUID, code model.Code, hours int) error
	ShortURL(code model.Code) string
}

// Shell интерактивный цикл команд одного пользователя
type Shell struct {
	usecase Usecase
	owner   uuid.UUID
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
}

// New создает Shell, читающий команды из in и пишущий ответы в out
func New(usecase Usecase, owner uuid.UUID, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	return &Shell{
		usecase: usecase,
		owner:   owner,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run печатает приглашение и выполняет команды до exit, конца ввода или отмены ctx.
// Ошибка команды печатается как "Error: <сообщение>" и не прерывает цикл.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	fmt.Fprintf(s.out, "Your UUID: %s\n", s.owner)
	fmt.Fprintln(s.out, "Commands: create <url> [--limit N] [--ttl-hours H], open <id>, list, delete <id>, set-limit <id> <N>, set-ttl <id> <hours>, help, exit")

	for {
		fmt.Fprint(s.out, "> ")

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		err := s.Execute(line)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			s.logger.Debug("command failed", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(s.out, "Error: %s\n", err)
		}
	}
}

// Execute выполняет одну строку команды
func (s *Shell) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "help":
		fmt.Fprintln(s.out, commandsHelp)
		return nil
	case "exit":
		return errExit
	case "create":
		return s.create(args)
	case "open":
		return s.open(args)
	case "list":
		return s.list()
	case "delete":
		return s.delete(args)
	case "set-limit":
		return s.setLimit(args)
	case "set-ttl":
		return s.setTTL(args)
	default:
		fmt.Fprintln(s.out, "Unknown command. Type 'help'.")
		return nil
	}
}

func (s *Shell) printLink(link model.Link) {
	maxClicks := "∞"
	if link.MaxClicks > 0 {
		maxClicks = fmt.Sprint(link.MaxClicks)
	}

	fmt.Fprintf(s.out, "%s | %s | clicks %d/%s | exp %s | active=%t\n",
		s.usecase.ShortURL(link.ID),
		link.Target,
		link.Clicks,
		maxClicks,
		link.ExpiresAt.Format(time.RFC3339),
		link.Active,
	)
}
