package domain

import "go.trai.ch/zerr"

var (
	// ErrNoVersions is returned when the configuration lists no runtime versions.
	ErrNoVersions = zerr.New("no versions configured")

	// ErrNoArches is returned when the configuration lists no architectures.
	ErrNoArches = zerr.New("no architectures configured")

	// ErrDuplicateVersion is returned when a version is listed more than once.
	ErrDuplicateVersion = zerr.New("duplicate version")

	// ErrDuplicateArch is returned when an architecture is listed more than once.
	ErrDuplicateArch = zerr.New("duplicate architecture")

	// ErrMissingPlatform is returned when the platform identifier is empty.
	ErrMissingPlatform = zerr.New("platform must not be empty")

	// ErrMissingBaseURL is returned when the distribution base URL is empty.
	ErrMissingBaseURL = zerr.New("base URL must not be empty")

	// ErrEmptyCommand is returned when a configured command has no program.
	ErrEmptyCommand = zerr.New("command must not be empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrRootResolveFailed is returned when the tool root directory cannot be determined.
	ErrRootResolveFailed = zerr.New("failed to resolve root directory")

	// ErrUnknownVersion is returned when a requested version is not configured.
	ErrUnknownVersion = zerr.New("unknown version")

	// ErrUnknownArch is returned when a requested architecture is not configured.
	ErrUnknownArch = zerr.New("unknown architecture")

	// ErrNotInstalled is returned when an installation directory or executable is missing.
	ErrNotInstalled = zerr.New("installation not found")

	// ErrTargetDirMissing is returned when the target directory has not been created yet.
	ErrTargetDirMissing = zerr.New("target directory not found")

	// ErrToolchainNotFound is returned when the compiler prefix cannot be determined.
	ErrToolchainNotFound = zerr.New("toolchain prefix not found")

	// ErrDownloadFailed is returned when a distribution archive cannot be fetched.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrChecksumMismatch is returned when a downloaded archive does not match its published digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrChecksumNotFound is returned when the checksum list has no entry for an archive.
	ErrChecksumNotFound = zerr.New("checksum not published")

	// ErrExtractFailed is returned when an archive cannot be extracted.
	ErrExtractFailed = zerr.New("extraction failed")

	// ErrUnsafeArchivePath is returned when an archive entry would escape the destination.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes destination")

	// ErrProjectReadFailed is returned when the project descriptor cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project descriptor")

	// ErrMissingEntryPoint is returned when the project descriptor has no main field.
	ErrMissingEntryPoint = zerr.New("project descriptor has no main entry")

	// ErrCleanStepBroken is returned when the artifact survives the clean command.
	ErrCleanStepBroken = zerr.New("artifact still present after clean")

	// ErrBuildStepBroken is returned when the build command does not produce the artifact.
	ErrBuildStepBroken = zerr.New("artifact missing after build")

	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrRelocateFailed is returned when the artifact cannot be moved into the installation.
	ErrRelocateFailed = zerr.New("failed to relocate artifact")

	// ErrUsage is returned for invalid command line usage.
	ErrUsage = zerr.New("invalid usage")
)
