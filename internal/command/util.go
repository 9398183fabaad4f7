package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stolasapp/syllabus/internal/config"
	"github.com/stolasapp/syllabus/internal/storage"
)

type configKey struct{}

// session holds what commands working against the database need.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  storage.Store
}

// withSession opens the configured store for the duration of fn.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s session) error) (err error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return errors.New("config file resolution failed")
	}
	logger := slog.Default()
	store, err := storage.NewDB(ctx, cfg.DBFilepath, logger)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, store.Close()) }()

	return fn(ctx, session{cfg: cfg, logger: logger, store: store})
}

// console reads operator input. Prompts are only shown on a terminal so that
// piped input stays quiet.
type console struct {
	in  *os.File
	out io.Writer
}

func stdConsole() console {
	return console{in: os.Stdin, out: os.Stderr}
}

func (c console) interactive() bool {
	return term.IsTerminal(int(c.in.Fd()))
}

func (c console) show(prompt string) error {
	if !c.interactive() {
		return nil
	}
	_, err := io.WriteString(c.out, prompt)
	return err
}

func (c console) ask(prompt string) (string, error) {
	if err := c.show(prompt); err != nil {
		return "", err
	}
	line, err := readLine(c.in)
	return string(line), err
}

// askSecret reads a line without echoing it when on a terminal.
func (c console) askSecret(prompt string) ([]byte, error) {
	if err := c.show(prompt); err != nil {
		return nil, err
	}
	if !c.interactive() {
		return readLine(c.in)
	}
	secret, err := term.ReadPassword(int(c.in.Fd()))
	if _, nlErr := io.WriteString(c.out, "\n"); err == nil {
		err = nlErr
	}
	return secret, err
}

// confirm reports whether the operator answered yes. No input at all is a no.
func (c console) confirm(prompt string) (bool, error) {
	answer, err := c.ask(prompt + " [y|N] ")
	if errors.Is(err, io.EOF) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// readLine reads up to the next newline one byte at a time, leaving the rest
// of r for later prompts. A trailing carriage return is dropped and backspaces
// erase. io.EOF is only returned when nothing was read.
func readLine(r io.Reader) ([]byte, error) {
	var (
		line []byte
		buf  [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			switch b := buf[0]; b {
			case '\n':
				return trimCR(line), nil
			case '\b':
				if len(line) > 0 {
					line = line[:len(line)-1]
				}
			default:
				line = append(line, b)
			}
			continue
		}
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return trimCR(line), nil
		} else if err != nil {
			return trimCR(line), err
		}
	}
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// version prefers the module version and falls back to the VCS revision.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	rev, ok := settings["vcs.revision"]
	if !ok {
		return "unknown"
	}
	if settings["vcs.modified"] == "true" {
		rev += "-dev"
	}
	return rev
}
