package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/inject/internal/adapters/config"
	"go.trai.ch/inject/internal/adapters/procenv"
	"go.trai.ch/inject/internal/app"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/inject/internal/core/ports/mocks"
	"go.trai.ch/inject/internal/engine/injector"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	manager  *mocks.MockEnvironmentManager
	detector *mocks.MockInterpreterDetector
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		manager:  mocks.NewMockEnvironmentManager(ctrl),
		detector: mocks.NewMockInterpreterDetector(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	settings := config.DefaultSettings()
	inj := injector.New(m.manager, procenv.NewMemory("/usr/bin"), m.logger)
	application := app.New(inj, mocks.NewMockSpecLoader(ctrl), m.detector, m.executor, m.logger, &settings)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, m.logger, &settings), func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "inject version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that failures are logged and mapped to exit code 1.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newProvider(t)

	m.manager.EXPECT().List(gomock.Any(), domain.Mamba).Return(nil, domain.ErrManagerInvocationFailed)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrManagerInvocationFailed)
	})

	exitCode := run(context.Background(), []string{"list"}, io.Discard, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ChildExitCode verifies that a failing child command's exit status is forwarded.
func TestRun_ChildExitCode(t *testing.T) {
	provider, m := newProvider(t)

	prepared, err := domain.Prepare(
		&domain.EnvironmentSpec{Channels: []string{}, Dependencies: []string{}},
		domain.Interpreter{Name: "python", Version: "3.12"},
		nil,
	)
	assert.NoError(t, err)

	m.manager.EXPECT().List(gomock.Any(), domain.Mamba).Return(map[string]domain.ManagedEnvironment{
		prepared.Name: domain.NewManagedEnvironment("/envs/" + prepared.Name),
	}, nil)
	m.executor.EXPECT().Execute(gomock.Any(), []string{"false"}, gomock.Any(), gomock.Any()).
		Return(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "exit status 7"), "exit_code", 7))
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(
		context.Background(),
		[]string{"run", "--python-version", "3.12", "--", "false"},
		io.Discard,
		io.Discard,
		provider,
	)
	assert.Equal(t, 7, exitCode)
}
