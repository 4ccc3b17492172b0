package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/multinode/internal/app"
	"go.trai.ch/multinode/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_TestRequiresTargetDir(t *testing.T) {
	a, _ := setupApp(t, testConfig())

	_, err := a.Test(context.Background(), testOpts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "target directory not found")
}

func TestApp_TestContinuesAfterFailure(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)
	x64 := pair(cfg, "1.0.0", "x64")
	x86 := pair(cfg, "1.0.0", "x86")
	install(t, m.fs, x64)
	install(t, m.fs, x86)
	require.NoError(t, util.WriteFile(m.fs, "/r/test/b.test.js", nil, 0o644))
	require.NoError(t, util.WriteFile(m.fs, "/r/test/a.test.js", nil, 0o644))
	require.NoError(t, util.WriteFile(m.fs, "/r/test/helper.js", nil, 0o644))

	m.terminal.EXPECT().UsePTY().Return(false)
	m.toolchain.EXPECT().Prefix(gomock.Any(), "gcc").Return("/usr", nil).Times(2)
	m.logger.EXPECT().Warn(gomock.Any()).Times(1)

	var cmds []*domain.Command
	gomock.InOrder(
		m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), m.stdout, m.stderr).
			DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
				cmds = append(cmds, cmd)
				return errors.New("command failed")
			}),
		m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), m.stdout, m.stderr).
			DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
				cmds = append(cmds, cmd)
				return nil
			}),
	)

	report, err := a.Test(context.Background(), testOpts)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, 1, report.Failures)
	assert.Equal(t, domain.OutcomeFail, report.Results[0].Outcome)
	assert.Equal(t, "x64", report.Results[0].Arch)
	assert.Equal(t, domain.OutcomeSuccess, report.Results[1].Outcome)
	assert.Equal(t, "sunos", report.Results[1].Platform)

	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"node_modules/.bin/mocha", "test/a.test.js", "test/b.test.js"}, cmds[0].Args)
	assert.Equal(t, "/r", cmds[0].Dir)
	assert.False(t, cmds[0].TTY)
	assert.Equal(t, domain.RuntimeEnv(cfg, x64, "/usr"), cmds[0].Env)
	assert.Equal(t, domain.RuntimeEnv(cfg, x86, "/usr"), cmds[1].Env)

	assert.Contains(t, m.stdout.String(), "1 passed, 1 failed")
}

func TestApp_TestLiteralPatternAndPTY(t *testing.T) {
	cfg := testConfig()
	cfg.Arches = []string{"x64"}
	a, m := setupApp(t, cfg)
	install(t, m.fs, pair(cfg, "1.0.0", "x64"))

	m.terminal.EXPECT().UsePTY().Return(false)
	m.toolchain.EXPECT().Prefix(gomock.Any(), "gcc").Return("/usr", nil)

	var got *domain.Command
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
			got = cmd
			return nil
		})

	opts := testOpts
	opts.PTY = "always"
	report, err := a.Test(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, report.Passed())

	require.NotNil(t, got)
	assert.Equal(t, []string{"node_modules/.bin/mocha", "test/*.test.js"}, got.Args)
	assert.True(t, got.TTY)
}

func TestApp_TestAbortsWhenNotInstalled(t *testing.T) {
	cfg := testConfig()
	a, m := setupApp(t, cfg)
	install(t, m.fs, pair(cfg, "1.0.0", "x64"))

	m.terminal.EXPECT().UsePTY().Return(true)
	m.toolchain.EXPECT().Prefix(gomock.Any(), "gcc").Return("/usr", nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report, err := a.Test(context.Background(), app.Options{Root: "/r", PTY: "never"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "installation not found")
	require.NotNil(t, report)
	assert.Len(t, report.Results, 1)
	assert.NotContains(t, m.stdout.String(), "passed")
}
