package ports

// Terminal reports on the attached standard streams.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type Terminal interface {
	// StdinIsTerminal reports whether standard input is an interactive terminal.
	StdinIsTerminal() bool
	// UsePTY reports whether child processes should get a pseudo-terminal.
	UsePTY() bool
}
