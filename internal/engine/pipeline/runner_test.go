package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/telemetry"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type runnerMocks struct {
	compiler *mocks.MockPinCompiler
	hasher   *mocks.MockHasher
	opener   *mocks.MockStateStoreOpener
	store    *mocks.MockStateStore
	logger   *mocks.MockLogger
}

// expectOpen wires the opener to hand out the store mock for the
// state file runnerConfig names, resolved against the run root.
func (m runnerMocks) expectOpen() {
	m.opener.EXPECT().
		Open(filepath.Join("/repo", ".relock", "state.json")).
		Return(m.store, nil)
}

func newRunner(t *testing.T) (*pipeline.Runner, runnerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerMocks{
		compiler: mocks.NewMockPinCompiler(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		opener:   mocks.NewMockStateStoreOpener(ctrl),
		store:    mocks.NewMockStateStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	runner := pipeline.NewRunner(m.compiler, m.hasher, m.opener, telemetry.NewNoop(), m.logger)
	return runner, m
}

func runnerConfig() *domain.Config {
	return &domain.Config{
		ProjectFile: "pyproject.toml",
		DevSpecFile: filepath.Join("requirements", "dev.in"),
		OutputDir:   "requirements",
		StateFile:   filepath.Join(".relock", "state.json"),
		Resolver: domain.ResolverSpec{
			Command:     []string{"uv", "pip", "compile"},
			UpgradeFlag: "--upgrade",
		},
		Platforms: domain.AllPlatforms(),
	}
}

// passIs matches a compile request by pass and upgrade flag.
type passIs struct {
	pass    domain.Pass
	upgrade bool
}

func (p passIs) Matches(x any) bool {
	req, ok := x.(domain.CompileRequest)
	return ok && req.Pass == p.pass && req.Upgrade == p.upgrade
}

func (p passIs) String() string {
	return fmt.Sprintf("compile request for pass %q with upgrade=%v", p.pass, p.upgrade)
}

func TestRunner_ResolvesRuntimeBeforeDev(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil)
	m.store.EXPECT().Get(domain.PlatformLinux).Return(nil, nil)

	gomock.InOrder(
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassRuntime, false}, gomock.Any(), gomock.Any()).Return(nil),
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassDev, false}, gomock.Any(), gomock.Any()).Return(nil),
	)

	outputs := []string{
		filepath.Join("requirements", "linux.txt"),
		filepath.Join("requirements", "linux-dev.txt"),
	}
	m.hasher.EXPECT().ComputeOutputHash(outputs, "/repo").Return("2222222222222222", nil)

	m.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(record domain.ResolutionRecord) error {
		require.Equal(t, domain.PlatformLinux, record.Platform)
		require.Equal(t, "1111111111111111", record.InputHash)
		require.Equal(t, "2222222222222222", record.OutputHash)
		require.False(t, record.Timestamp.IsZero())
		return nil
	})

	results, err := runner.Run(context.Background(), cfg, []domain.PlatformID{domain.PlatformLinux}, pipeline.Options{Root: "/repo"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, domain.PlatformLinux, results[0].Platform)
	require.Equal(t, domain.VertexStatusCompleted, results[0].Status)
}

func TestRunner_SkipsFreshPlatform(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil)
	m.store.EXPECT().Get(domain.PlatformDarwin).Return(&domain.ResolutionRecord{
		Platform:   domain.PlatformDarwin,
		InputHash:  "1111111111111111",
		OutputHash: "2222222222222222",
	}, nil)
	m.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/repo").Return("2222222222222222", nil)
	m.logger.EXPECT().Info(gomock.Any())

	// No Compile and no Put: the resolver must not run.

	results, err := runner.Run(context.Background(), cfg, []domain.PlatformID{domain.PlatformDarwin}, pipeline.Options{Root: "/repo"})
	require.NoError(t, err)
	require.Equal(t, domain.VertexStatusCached, results[0].Status)
}

func TestRunner_StaleOutputsDefeatCache(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil)
	m.store.EXPECT().Get(domain.PlatformLinux).Return(&domain.ResolutionRecord{
		Platform:   domain.PlatformLinux,
		InputHash:  "1111111111111111",
		OutputHash: "2222222222222222",
	}, nil)

	// Someone edited the pinned files since the record was written.
	gomock.InOrder(
		m.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/repo").Return("3333333333333333", nil),
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassRuntime, false}, gomock.Any(), gomock.Any()).Return(nil),
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassDev, false}, gomock.Any(), gomock.Any()).Return(nil),
		m.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/repo").Return("4444444444444444", nil),
	)
	m.store.EXPECT().Put(gomock.Any()).Return(nil)

	results, err := runner.Run(context.Background(), cfg, []domain.PlatformID{domain.PlatformLinux}, pipeline.Options{Root: "/repo"})
	require.NoError(t, err)
	require.Equal(t, domain.VertexStatusCompleted, results[0].Status)
}

func TestRunner_UpgradeBypassesCache(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil)

	// Upgrade must not consult the stored fingerprints.
	gomock.InOrder(
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassRuntime, true}, gomock.Any(), gomock.Any()).Return(nil),
		m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassDev, true}, gomock.Any(), gomock.Any()).Return(nil),
	)
	m.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/repo").Return("5555555555555555", nil)
	m.store.EXPECT().Put(gomock.Any()).Return(nil)

	results, err := runner.Run(context.Background(), cfg, []domain.PlatformID{domain.PlatformLinux}, pipeline.Options{Upgrade: true, Root: "/repo"})
	require.NoError(t, err)
	require.Equal(t, domain.VertexStatusCompleted, results[0].Status)
}

func TestRunner_NoPlatforms(t *testing.T) {
	runner, _ := newRunner(t)

	_, err := runner.Run(context.Background(), runnerConfig(), nil, pipeline.Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrNoPlatformsSelected))
}

func TestRunner_StoreOpenFailure(t *testing.T) {
	runner, m := newRunner(t)

	openErr := errors.New("state file is not valid JSON")
	m.opener.EXPECT().
		Open(filepath.Join("/repo", ".relock", "state.json")).
		Return(nil, openErr)

	_, err := runner.Run(context.Background(), runnerConfig(), []domain.PlatformID{domain.PlatformLinux}, pipeline.Options{Root: "/repo"})
	require.Error(t, err)
	require.True(t, errors.Is(err, openErr))
}

func TestRunner_UnknownPlatform(t *testing.T) {
	runner, m := newRunner(t)
	m.opener.EXPECT().Open(filepath.Join(".relock", "state.json")).Return(m.store, nil)

	results, err := runner.Run(context.Background(), runnerConfig(), []domain.PlatformID{"solaris"}, pipeline.Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
	require.Equal(t, domain.VertexStatusFailed, results[0].Status)
}

func TestRunner_CompileFailureStopsPlatform(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil)
	m.store.EXPECT().Get(domain.PlatformLinux).Return(nil, nil)

	compileErr := errors.New("resolver exited with status 2")
	m.compiler.EXPECT().Compile(gomock.Any(), passIs{domain.PassRuntime, false}, gomock.Any(), gomock.Any()).Return(compileErr)

	// The dev pass must not run and no record may be written.

	results, err := runner.Run(context.Background(), cfg, []domain.PlatformID{domain.PlatformLinux}, pipeline.Options{Root: "/repo"})
	require.Error(t, err)
	require.True(t, errors.Is(err, compileErr))
	require.Equal(t, domain.VertexStatusFailed, results[0].Status)
}

func TestRunner_MultiplePlatforms(t *testing.T) {
	runner, m := newRunner(t)
	cfg := runnerConfig()
	m.expectOpen()
	platforms := []domain.PlatformID{domain.PlatformLinux, domain.PlatformDarwin, domain.PlatformWindows}

	m.hasher.EXPECT().ComputeInputHash(cfg, gomock.Any(), "/repo").Return("1111111111111111", nil).Times(3)
	m.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(3)
	m.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)
	m.hasher.EXPECT().ComputeOutputHash(gomock.Any(), "/repo").Return("2222222222222222", nil).Times(3)
	m.store.EXPECT().Put(gomock.Any()).Return(nil).Times(3)

	results, err := runner.Run(context.Background(), cfg, platforms, pipeline.Options{Root: "/repo", Parallelism: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, id := range platforms {
		require.Equal(t, id, results[i].Platform)
		require.Equal(t, domain.VertexStatusCompleted, results[i].Status)
	}
}
