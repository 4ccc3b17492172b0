package app

import (
	"context"
	"fmt"
)

// Versions writes one "version arch" line per configured pair to stdout.
func (a *App) Versions(_ context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	for pair := range cfg.Pairs() {
		if _, err := fmt.Fprintln(a.stdout, pair.String()); err != nil {
			return err
		}
	}
	return nil
}
