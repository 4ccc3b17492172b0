package config_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multinode/internal/adapters/config"
	"go.trai.ch/multinode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	mem := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(mem, name, []byte(content), 0o644))
	}
	return config.NewLoader(log, mem)
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("MIRROR", "file:///mirror")

	loader := newLoader(t, map[string]string{
		"/r/multinode.yaml": `
versions: ["0.10.48", "1.0.0"]
arches: [x64, x86]
platform: linux
baseURL: ${MIRROR}/dist
targetDir: runtimes
verify: true
toolchain:
  compiler: cc
test:
  cmd: [npm, test, --]
  files: spec/*.js
build:
  clean: [node-gyp, clean]
  cmd: [node-gyp, rebuild]
`,
	})

	cfg, err := loader.Load("/r", "")
	require.NoError(t, err)

	assert.Equal(t, "/r", cfg.Root)
	assert.Equal(t, []string{"0.10.48", "1.0.0"}, cfg.Versions)
	assert.Equal(t, []string{"x64", "x86"}, cfg.Arches)
	assert.Equal(t, "linux", cfg.Platform)
	assert.Equal(t, "file:///mirror/dist", cfg.BaseURL)
	assert.Equal(t, "/r/runtimes", cfg.TargetDir)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "/r/package.json", cfg.Project)
	assert.Equal(t, "bash", cfg.Shell)
	assert.Equal(t, "cc", cfg.Toolchain.Compiler)
	assert.Equal(t, "lib", cfg.Toolchain.Lib)
	assert.Equal(t, "lib/amd64", cfg.Toolchain.Lib64)
	assert.Equal(t, []string{"npm", "test", "--"}, cfg.Test.Command)
	assert.Equal(t, "spec/*.js", cfg.Test.Files)
	assert.Equal(t, []string{"node-gyp", "clean"}, cfg.Build.Clean)
	assert.Equal(t, []string{"node-gyp", "rebuild"}, cfg.Build.Command)
}

func TestLoader_Defaults(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"/r/multinode.yaml": "versions: [1.0.0]\narches: [x64]\n",
	})

	cfg, err := loader.Load("/r", "")
	require.NoError(t, err)

	assert.Equal(t, "sunos", cfg.Platform)
	assert.Equal(t, "https://nodejs.org/dist", cfg.BaseURL)
	assert.Equal(t, "/r/node", cfg.TargetDir)
	assert.False(t, cfg.Verify)
	assert.Equal(t, []string{"node_modules/.bin/mocha"}, cfg.Test.Command)
	assert.Equal(t, "test/*.test.js", cfg.Test.Files)
	assert.Equal(t, []string{"make", "clean"}, cfg.Build.Clean)
	assert.Equal(t, []string{"make"}, cfg.Build.Command)
}

func TestLoader_ExplicitPath(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"/etc/mn.yaml": "versions: [1.0.0]\narches: [x64]\ntargetDir: /opt/node\n",
	})

	cfg, err := loader.Load("/r", "/etc/mn.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/node", cfg.TargetDir)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		path        string
		errContains string
	}{
		{
			name:        "missing default file has no versions",
			files:       map[string]string{},
			errContains: "no versions configured",
		},
		{
			name:        "explicit file must exist",
			files:       map[string]string{},
			path:        "/etc/missing.yaml",
			errContains: "config file not found",
		},
		{
			name:        "invalid yaml",
			files:       map[string]string{"/r/multinode.yaml": "versions: [1.0.0\n"},
			errContains: "failed to parse config file",
		},
		{
			name:        "duplicate arch",
			files:       map[string]string{"/r/multinode.yaml": "versions: [1.0.0]\narches: [x64, x64]\n"},
			errContains: "duplicate architecture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t, tt.files)
			_, err := loader.Load("/r", tt.path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
