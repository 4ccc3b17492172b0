package config

// File represents the structure of the multinode.yaml configuration file.
type File struct {
	Versions  []string     `yaml:"versions"`
	Arches    []string     `yaml:"arches"`
	Platform  string       `yaml:"platform"`
	BaseURL   string       `yaml:"baseURL"`
	TargetDir string       `yaml:"targetDir"`
	Verify    bool         `yaml:"verify"`
	Project   string       `yaml:"project"`
	Shell     string       `yaml:"shell"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Test      TestDTO      `yaml:"test"`
	Build     BuildDTO     `yaml:"build"`
}

// ToolchainDTO represents the toolchain section.
type ToolchainDTO struct {
	Compiler string `yaml:"compiler"`
	Lib      string `yaml:"lib"`
	Lib64    string `yaml:"lib64"`
}

// TestDTO represents the test section.
type TestDTO struct {
	Cmd   []string `yaml:"cmd"`
	Files string   `yaml:"files"`
}

// BuildDTO represents the build section.
type BuildDTO struct {
	Clean []string `yaml:"clean"`
	Cmd   []string `yaml:"cmd"`
}
