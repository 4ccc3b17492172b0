package app_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multinode/internal/core/domain"
	"go.uber.org/mock/gomock"
)

const payload = "archive-bytes"

func archives(t *testing.T, m *appMocks) []string {
	t.Helper()
	found, err := util.Glob(m.fs, "/r/node/.download-*")
	require.NoError(t, err)
	return found
}

func TestApp_SetupSkipsInstalled(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)

	x64 := pair(cfg, "1.0.0", "x64")
	x86 := pair(cfg, "1.0.0", "x86")
	install(t, m.fs, x64)

	m.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://nodejs.org/dist/v1.0.0/node-v1.0.0-sunos-x86.tar.gz", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
			_, err := io.WriteString(w, payload)
			return err
		})

	var extracted string
	m.extractor.EXPECT().
		Extract(gomock.Any(), gomock.Any(), "/r/node").
		DoAndReturn(func(_ context.Context, archive, _ string) error {
			extracted = archive
			data, err := util.ReadFile(m.fs, archive)
			require.NoError(t, err)
			assert.Equal(t, payload, string(data))
			install(t, m.fs, x86)
			return nil
		})

	require.NoError(t, a.Setup(context.Background(), testOpts))

	assert.True(t, strings.HasPrefix(extracted, "/r/node/.download-"))
	assert.True(t, strings.HasSuffix(extracted, ".tar.gz"))
	assert.Empty(t, archives(t, m), "archive must be removed after extraction")
	assert.True(t, exists(m.fs, x86.Executable()))
}

func TestApp_SetupIdempotent(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)
	install(t, m.fs, pair(cfg, "1.0.0", "x64"))
	install(t, m.fs, pair(cfg, "1.0.0", "x86"))

	// No fetcher or extractor calls are expected.
	require.NoError(t, a.Setup(context.Background(), testOpts))
}

func TestApp_SetupAbortsOnDownloadFailure(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)

	m.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://nodejs.org/dist/v1.0.0/node-v1.0.0-sunos-x64.tar.gz", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return domain.ErrDownloadFailed
		})

	err := a.Setup(context.Background(), testOpts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "download failed")
	assert.Empty(t, archives(t, m), "partial archive must be removed")
	assert.False(t, exists(m.fs, pair(cfg, "1.0.0", "x86").Dir()))
}

func TestApp_SetupAbortsOnExtractFailure(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)

	x64 := pair(cfg, "1.0.0", "x64")
	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), "/r/node").
		DoAndReturn(func(context.Context, string, string) error {
			require.NoError(t, util.WriteFile(m.fs, x64.LibDir()+"/partial", []byte("x"), 0o644))
			return errors.New("extraction failed")
		})

	err := a.Setup(context.Background(), testOpts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "extraction failed")
	assert.Empty(t, archives(t, m))
	assert.False(t, exists(m.fs, x64.Dir()), "partial installation must be removed")
}

func TestApp_SetupArchiveWithoutInstallation(t *testing.T) {
	cfg := testConfig()
	cfg.Arches = []string{"x64"}
	a, m := setupApp(t, cfg)

	x64 := pair(cfg, "1.0.0", "x64")
	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), "/r/node").
		DoAndReturn(func(context.Context, string, string) error {
			return m.fs.MkdirAll(x64.LibDir(), 0o755)
		})

	err := a.Setup(context.Background(), testOpts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "extraction failed")
	assert.False(t, exists(m.fs, x64.Dir()))
}

func TestApp_SetupWarnsOnIncompleteInstallation(t *testing.T) {
	cfg := testConfig()
	cfg.Arches = []string{"x64"}
	a, m := setupApp(t, cfg)

	x64 := pair(cfg, "1.0.0", "x64")
	require.NoError(t, m.fs.MkdirAll(x64.Dir(), 0o755))

	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, x64.Executable())
	})

	// The directory is the registry, so it is still skipped.
	require.NoError(t, a.Setup(context.Background(), testOpts))
	assert.True(t, exists(m.fs, x64.Dir()))
}

func TestApp_SetupVerify(t *testing.T) {
	sum := sha256.Sum256([]byte(payload))
	digest := hex.EncodeToString(sum[:])

	tests := []struct {
		name        string
		checksums   string
		errContains string
	}{
		{
			name:      "matching digest",
			checksums: digest + "  node-v1.0.0-sunos-x64.tar.gz\n",
		},
		{
			name:        "mismatching digest",
			checksums:   strings.Repeat("0", 64) + "  node-v1.0.0-sunos-x64.tar.gz\n",
			errContains: "checksum mismatch",
		},
		{
			name:        "unpublished archive",
			checksums:   digest + "  node-v1.0.0-linux-x64.tar.gz\n",
			errContains: "checksum not published",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Arches = []string{"x64"}
			cfg.Verify = true
			a, m := setupApp(t, cfg)
			inst := pair(cfg, "1.0.0", "x64")

			m.fetcher.EXPECT().
				Fetch(gomock.Any(), inst.URL(cfg.BaseURL), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
					_, err := io.WriteString(w, payload)
					return err
				})
			m.fetcher.EXPECT().
				Fetch(gomock.Any(), "https://nodejs.org/dist/v1.0.0/SHASUMS256.txt", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
					_, err := io.WriteString(w, tt.checksums)
					return err
				})

			if tt.errContains == "" {
				m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), "/r/node").
					DoAndReturn(func(context.Context, string, string) error {
						install(t, m.fs, inst)
						return nil
					})
			}

			err := a.Setup(context.Background(), testOpts)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				assert.Empty(t, archives(t, m))
				return
			}
			require.NoError(t, err)
		})
	}
}
