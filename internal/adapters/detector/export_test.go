package detector

// NewTerminalWith returns a Terminal with injected probes.
func NewTerminalWith(isTerminal func(int) bool, getenv func(string) string) *Terminal {
	return &Terminal{isTerminal: isTerminal, getenv: getenv}
}
