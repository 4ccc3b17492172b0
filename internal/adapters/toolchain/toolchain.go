// Package toolchain implements the Toolchain port by introspecting the system compiler.
package toolchain

import (
	"bytes"
	"context"
	"regexp"

	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports"
	"go.trai.ch/zerr"
)

var prefixPattern = regexp.MustCompile(`--prefix=(\S+)`)

// Probe implements ports.Toolchain by running the compiler in verbose mode.
type Probe struct {
	executor ports.Executor
}

// NewProbe creates a new Probe.
func NewProbe(executor ports.Executor) *Probe {
	return &Probe{executor: executor}
}

// Prefix runs "{compiler} -v" and returns the configured --prefix.
func (p *Probe) Prefix(ctx context.Context, compiler string) (string, error) {
	var out bytes.Buffer
	cmd := domain.NewCommand("", compiler, "-v")
	if err := p.executor.Execute(ctx, cmd, &out, &out); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrToolchainNotFound.Error()), "compiler", compiler)
	}

	prefix := ParsePrefix(out.String())
	if prefix == "" {
		return "", zerr.With(domain.ErrToolchainNotFound, "compiler", compiler)
	}
	return prefix, nil
}

// ParsePrefix extracts the first --prefix= value from compiler verbose output.
// It returns an empty string when none is present.
func ParsePrefix(output string) string {
	m := prefixPattern.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}
