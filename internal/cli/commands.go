package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/usecase"
)

func usageError(usage string) error {
	return fmt.Errorf("%w: usage: %s", usecase.ErrInvalidInput, usage)
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, value)
	}
	return n, nil
}

func (s *Shell) create(args []string) error {
	const usage = "create <url> [--limit N] [--ttl-hours H]"
	if len(args) < 1 {
		return usageError(usage)
	}

	var (
		limit *int
		ttl   *time.Duration
	)

	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Func("limit", "click limit, 0 means unlimited", func(v string) error {
		n, err := parseInt("limit", v)
		if err != nil {
			return err
		}
		limit = &n
		return nil
	})
	fs.Func("ttl-hours", "link lifetime in hours", func(v string) error {
		n, err := parseInt("ttl-hours", v)
		if err != nil {
			return err
		}
		d, err := usecase.TTLFromHours(n)
		if err != nil {
			return err
		}
		ttl = &d
		return nil
	})

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	if fs.NArg() > 0 {
		return usageError(usage)
	}

	link, err := s.usecase.CreateLinkFromString(s.owner, args[0], limit, ttl)
	if err != nil {
		return err
	}

	s.printLink(link)
	return nil
}

func (s *Shell) open(args []string) error {
	if len(args) != 1 {
		return usageError("open <id>")
	}

	switch s.usecase.OpenLink(model.Code(args[0])) {
	case model.OpenOK:
		fmt.Fprintln(s.out, "Opened in browser")
	case model.OpenNotFound:
		fmt.Fprintln(s.out, "Link not found")
	case model.OpenExpired:
		fmt.Fprintln(s.out, "Link expired: access blocked")
	case model.OpenLimitExceeded:
		fmt.Fprintln(s.out, "Click limit exceeded: access blocked")
	case model.OpenInactive:
		fmt.Fprintln(s.out, "Link inactive")
	}

	return nil
}

func (s *Shell) list() error {
	for _, link := range s.usecase.ListLinks(s.owner) {
		s.printLink(link)
	}
	return nil
}

func (s *Shell) delete(args []string) error {
	if len(args) != 1 {
		return usageError("delete <id>")
	}

	if err := s.usecase.DeleteLink(s.owner, model.Code(args[0])); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Deleted")
	return nil
}

func (s *Shell) setLimit(args []string) error {
	if len(args) != 2 {
		return usageError("set-limit <id> <N>")
	}

	n, err := parseInt("limit", args[1])
	if err != nil {
		return err
	}

	if err := s.usecase.SetLimit(s.owner, model.Code(args[0]), n); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Updated limit")
	return nil
}

func (s *Shell) setTTL(args []string) error {
	if len(args) != 2 {
		return usageError("set-ttl <id> <hours>")
	}

	hours, err := parseInt("hours", args[1])
	if err != nil {
		return err
	}

	if err := s.usecase.SetTTL(s.owner, model.Code(args[0]), hours); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Updated TTL")
	return nil
}
