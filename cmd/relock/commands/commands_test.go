package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/cmd/relock/commands"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
	"go.trai.ch/relock/internal/core/domain"
)

// fakeApp records the dispatched operation and options.
type fakeApp struct {
	verifyCalls  []app.RunOptions
	upgradeCalls []app.RunOptions
	err          error
}

func (f *fakeApp) Verify(_ context.Context, opts app.RunOptions) error {
	f.verifyCalls = append(f.verifyCalls, opts)
	return f.err
}

func (f *fakeApp) Upgrade(_ context.Context, opts app.RunOptions) error {
	f.upgradeCalls = append(f.upgradeCalls, opts)
	return f.err
}

func TestVerify_Dispatch(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"verify"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, fake.verifyCalls, 1)
	require.Empty(t, fake.verifyCalls[0].Platforms)
	require.False(t, fake.verifyCalls[0].All)
}

func TestVerify_PlatformFlags(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"verify", "-p", "linux", "-p", "windows"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, fake.verifyCalls, 1)
	require.Equal(t, []domain.PlatformID{domain.PlatformLinux, domain.PlatformWindows}, fake.verifyCalls[0].Platforms)
}

func TestVerify_AllFlag(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"verify", "--all"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, fake.verifyCalls, 1)
	require.True(t, fake.verifyCalls[0].All)
}

func TestVerify_InvalidPlatform(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"verify", "-p", "solaris"})
	cli.SetOutput(&strings.Builder{}, &strings.Builder{})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
	require.Empty(t, fake.verifyCalls)
}

func TestVerify_PropagatesDriftError(t *testing.T) {
	fake := &fakeApp{err: domain.ErrPinsOutOfDate}
	cli := commands.New(fake)
	cli.SetArgs([]string{"verify"})
	cli.SetOutput(&strings.Builder{}, &strings.Builder{})

	err := cli.Execute(context.Background())
	require.True(t, errors.Is(err, domain.ErrPinsOutOfDate))
}

func TestUpgrade_Dispatch(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"upgrade", "--all"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Len(t, fake.upgradeCalls, 1)
	require.True(t, fake.upgradeCalls[0].All)
	require.Empty(t, fake.verifyCalls)
}

func TestVersion_Command(t *testing.T) {
	var out strings.Builder
	cli := commands.New(&fakeApp{})
	cli.SetArgs([]string{"version"})
	cli.SetOutput(&out, &strings.Builder{})

	require.NoError(t, cli.Execute(context.Background()))
	require.Contains(t, out.String(), build.Version)
}

func TestRoot_Help(t *testing.T) {
	var out strings.Builder
	cli := commands.New(&fakeApp{})
	cli.SetArgs([]string{"--help"})
	cli.SetOutput(&out, &strings.Builder{})

	require.NoError(t, cli.Execute(context.Background()))
	require.Contains(t, out.String(), "verify")
	require.Contains(t, out.String(), "upgrade")
}

func TestConfigHook(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)

	var got string
	cli.SetConfigHook(func(path string) {
		got = path
	})

	cli.SetArgs([]string{"verify", "-c", "custom.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
	require.Equal(t, "custom.yaml", got)
}

func TestGetConfigPath_Default(t *testing.T) {
	cli := commands.New(&fakeApp{})
	require.Equal(t, "relock.yaml", cli.GetConfigPath())
}
