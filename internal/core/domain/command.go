package domain

import "strings"

// Command is one external process invocation.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is overlaid on the inherited environment. PATH is prepended, not replaced.
	Env map[string]string
	// TTY attaches the process to a pseudo-terminal instead of pipes.
	TTY bool
}

// NewCommand returns a command running args in dir.
func NewCommand(dir string, args ...string) *Command {
	return &Command{Args: args, Dir: dir}
}

// WithEnv returns the command with env as its overlay.
func (c *Command) WithEnv(env map[string]string) *Command {
	c.Env = env
	return c
}

// Program returns the executable name.
func (c *Command) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

func (c *Command) String() string {
	return strings.Join(c.Args, " ")
}
