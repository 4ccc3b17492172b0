package domain

const (
	// ConfigFileName is the name of the configuration file looked up in the root.
	ConfigFileName = "multinode.yaml"

	// DefaultTargetDirName is the directory below the root holding all installations.
	DefaultTargetDirName = "node"

	// BinDirName is the executable directory inside an installation.
	BinDirName = "bin"

	// LibDirName is the library directory inside an installation.
	LibDirName = "lib"

	// ExecutableName is the runtime binary inside BinDirName.
	ExecutableName = "node"

	// ArchiveExt is the extension of distribution archives.
	ArchiveExt = ".tar.gz"

	// AddonExt is the extension of native addons.
	AddonExt = ".node"

	// ChecksumsFileName is the digest list published next to each release.
	ChecksumsFileName = "SHASUMS256.txt"

	// RCFilePattern is the temp file pattern of generated shell rc files.
	RCFilePattern = "multinode-rc-*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
