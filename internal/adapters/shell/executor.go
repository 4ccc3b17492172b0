// Package shell provides the executor running external tools.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs cmd and waits for it to complete. With cmd.TTY set the process
// is attached to a pseudo-terminal whose output is copied to stdout.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	c, err := e.prepare(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.TTY {
		err = runPTY(c, stdout)
	} else {
		c.Stdout = stdout
		c.Stderr = stderr
		err = c.Run()
	}

	if err != nil {
		return commandError(err, cmd)
	}
	return nil
}

// Attach runs cmd in the foreground with inherited stdio and returns its exit status.
func (e *Executor) Attach(ctx context.Context, cmd *domain.Command) (int, error) {
	c, err := e.prepare(ctx, cmd)
	if err != nil {
		return -1, err
	}

	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err = c.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, commandError(err, cmd)
	}
}

func (e *Executor) prepare(ctx context.Context, cmd *domain.Command) (*exec.Cmd, error) {
	if len(cmd.Args) == 0 || cmd.Args[0] == "" {
		return nil, domain.ErrEmptyCommand
	}

	name := cmd.Args[0]
	env := resolveEnvironment(os.Environ(), cmd.Env)

	// Bare names are looked up on the merged PATH so that the overlay wins.
	executable := name
	if !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // configured command
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = env

	e.logger.Debug("exec: " + cmd.String())
	return c, nil
}

func runPTY(c *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}
	defer func() { _ = ptmx.Close() }()

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, ptmx)
		// Reading the master fails with EIO once the child side is closed.
		if errors.Is(err, syscall.EIO) {
			return nil
		}
		return err
	})

	waitErr := c.Wait()
	copyErr := g.Wait()
	if waitErr != nil {
		return waitErr
	}
	return copyErr
}

func commandError(err error, cmd *domain.Command) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", cmd.String())
	return zerr.With(wrapped, "exit_code", exitCode)
}

// resolveEnvironment overlays env on the inherited environment. PATH is
// prepended to the inherited PATH rather than replacing it.
func resolveEnvironment(sysEnv []string, overlay map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range overlay {
		if k == domain.EnvPath {
			if sysPath := envMap[k]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
