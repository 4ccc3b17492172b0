package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multinode/internal/app"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	executor  *mocks.MockExecutor
	logger    *mocks.MockLogger
	fetcher   *mocks.MockFetcher
	extractor *mocks.MockExtractor
	toolchain *mocks.MockToolchain
	project   *mocks.MockProjectReader
	terminal  *mocks.MockTerminal
	fs        billy.Filesystem
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

var testOpts = app.Options{Root: "/r"}

// setupApp creates an App over an in-memory filesystem. The loader returns cfg.
func setupApp(t *testing.T, cfg *domain.Config) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		fetcher:   mocks.NewMockFetcher(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		project:   mocks.NewMockProjectReader(ctrl),
		terminal:  mocks.NewMockTerminal(ctrl),
		fs:        memfs.New(),
		stdout:    new(bytes.Buffer),
		stderr:    new(bytes.Buffer),
	}

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.loader.EXPECT().Load("/r", "").Return(cfg, nil).AnyTimes()

	a := app.New(m.loader, m.executor, m.logger, m.fetcher, m.extractor,
		m.toolchain, m.project, m.terminal, m.fs).
		WithOutput(m.stdout, m.stderr)
	return a, m
}

func testConfig() *domain.Config {
	cfg := domain.DefaultConfig("/r")
	cfg.Versions = []string{"1.0.0"}
	cfg.Arches = []string{"x64", "x86"}
	return cfg
}

func install(t *testing.T, fsys billy.Filesystem, inst domain.Installation) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, inst.Executable(), []byte("#!/bin/sh\n"), 0o755))
}

func pair(cfg *domain.Config, version, arch string) domain.Installation {
	return cfg.Installation(domain.Pair{Version: version, Arch: arch})
}

func exists(fsys billy.Filesystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

func TestApp_Versions(t *testing.T) {
	cfg := testConfig()
	cfg.Versions = []string{"0.10.48", "1.0.0"}
	a, m := setupApp(t, cfg)

	require.NoError(t, a.Versions(context.Background(), testOpts))
	assert.Equal(t, "0.10.48 x64\n0.10.48 x86\n1.0.0 x64\n1.0.0 x86\n", m.stdout.String())
}

func TestApp_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	loader.EXPECT().Load("/r", "/r/other.yaml").Return(nil, domain.ErrConfigNotFound)

	a := app.New(loader, nil, log, nil, nil, nil, nil, nil, memfs.New())
	err := a.Versions(context.Background(), app.Options{Root: "/r", ConfigPath: "/r/other.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_ResolveRoot(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "realDir")
	require.NoError(t, os.MkdirAll(realDir, 0o750))
	exe := filepath.Join(realDir, "multinode")
	require.NoError(t, os.WriteFile(exe, []byte(""), 0o755))
	link := filepath.Join(dir, "multinode")
	require.NoError(t, os.Symlink(exe, link))

	a := app.New(nil, nil, nil, nil, nil, nil, nil, nil, memfs.New()).
		WithExecutable(func() (string, error) { return link, nil })

	root, err := a.ResolveRoot("")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(realDir)
	require.NoError(t, err)
	assert.Equal(t, want, root)

	root, err = a.ResolveRoot("/some/root")
	require.NoError(t, err)
	assert.Equal(t, "/some/root", root)
}

func TestApp_ResolveRootMissingExecutable(t *testing.T) {
	a := app.New(nil, nil, nil, nil, nil, nil, nil, nil, memfs.New()).
		WithExecutable(func() (string, error) { return "/does/not/exist/multinode", nil })

	_, err := a.ResolveRoot("")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to resolve root directory")
}
