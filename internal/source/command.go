package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/logger"
	apperrors "github.com/alexisbeaulieu97/combobox/pkg/errors"
)

// QueryEnv is the environment variable holding the current query.
const QueryEnv = "COMBOBOX_QUERY"

const queryPlaceholder = "{query}"

// Command runs a shell command per query and parses one option per output
// line as "value", "value<TAB>label" or "value<TAB>label<TAB>group".
//
// The query never appears in the command text. {query} in the template is
// replaced by a reference to QueryEnv, so shell metacharacters typed by the
// user are not interpreted.
type Command struct {
	template string
	shell    string
	timeout  time.Duration
	log      *logger.Logger
}

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithShell runs the template with shell instead of the detected one.
func WithShell(shell string) CommandOption {
	return func(c *Command) { c.shell = shell }
}

// WithTimeout bounds each run. Zero disables the bound.
func WithTimeout(timeout time.Duration) CommandOption {
	return func(c *Command) { c.timeout = timeout }
}

// WithLogger attaches a logger for per-run diagnostics.
func WithLogger(log *logger.Logger) CommandOption {
	return func(c *Command) { c.log = log.For("source") }
}

// NewCommand creates a command provider for template.
func NewCommand(template string, opts ...CommandOption) *Command {
	c := &Command{template: template, timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies the provider in logs and errors.
func (c *Command) Name() string {
	return "command"
}

// Script returns the shell text that will run, with the placeholder rewritten
// to an environment reference.
func (c *Command) Script() string {
	ref := `"$` + QueryEnv + `"`
	if runtime.GOOS == "windows" && c.shell == "" {
		ref = "%" + QueryEnv + "%"
	}
	return strings.ReplaceAll(c.template, queryPlaceholder, ref)
}

// Fetch runs the command for query and parses its output.
func (c *Command) Fetch(ctx context.Context, query string) ([]combobox.Option, error) {
	if strings.TrimSpace(c.template) == "" {
		return nil, apperrors.NewSourceError(c.Name(), query, errors.New("command template is empty"))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	shell, shellArgs, err := determineShell(c.shell)
	if err != nil {
		return nil, apperrors.NewSourceError(c.Name(), query, err)
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, shell, append(shellArgs, c.Script())...)
	cmd.Env = append(os.Environ(), QueryEnv+"="+query)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apperrors.NewSourceError(c.Name(), query, ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, apperrors.NewSourceError(c.Name(), query, err)
	}

	options, err := ParseLines(&stdout)
	if err != nil {
		return nil, apperrors.NewSourceError(c.Name(), query, err)
	}

	c.log.WithFields(map[string]any{
		"query":    query,
		"options":  len(options),
		"duration": time.Since(start).String(),
	}).Debug("command source completed")

	return options, nil
}

// ParseLines reads one option per non-blank line. Fields are tab-separated:
// value, then optional label (defaulting to the value) and group.
func ParseLines(r io.Reader) ([]combobox.Option, error) {
	var options []combobox.Option
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 3)
		opt := combobox.Option{Value: strings.TrimSpace(fields[0])}
		opt.Label = opt.Value
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			opt.Label = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			opt.Group = strings.TrimSpace(fields[2])
		}
		options = append(options, opt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

func determineShell(explicit string) (string, []string, error) {
	if explicit != "" {
		return explicit, []string{"-c"}, nil
	}

	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}, nil
	}

	if path, err := exec.LookPath("sh"); err == nil {
		return path, []string{"-c"}, nil
	}

	if path, err := exec.LookPath("bash"); err == nil {
		return path, []string{"-c"}, nil
	}

	return "", nil, fmt.Errorf("no suitable shell found")
}
