package cmd

import (
	"bytes"
	"os"
	"testing"

	"solid-example/config"
	"solid-example/domain/shared"
	"solid-example/infrastructure/persistence/mocks"
	"solid-example/infrastructure/persistence/mysql"
	apperrors "solid-example/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Log(message string) error {
	l.messages = append(l.messages, message)
	return nil
}

// run executes the CLI from an empty working directory so no config file is picked up.
func run(t *testing.T, configure func(*AppBuilder), args ...string) (string, error) {
	t.Helper()
	testChdir(t, t.TempDir())

	root := newRootCommand(func(cfg *config.Config) *AppBuilder {
		b := NewBuilder(cfg).SkipLoggerInit()
		if configure != nil {
			configure(b)
		}
		return b
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAreaCommand(t *testing.T) {
	out, err := run(t, nil, "area")
	require.NoError(t, err)
	assert.Equal(t, "56\n", out)

	out, err = run(t, nil, "area", "--square", "--width", "4", "--height", "4")
	require.NoError(t, err)
	assert.Equal(t, "16\n", out)

	_, err = run(t, nil, "area", "--square")
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
	assert.Equal(t, 2, apperrors.MapDomainError(err).ExitCode())
}

func TestSingletonCommand(t *testing.T) {
	out, err := run(t, nil, "singleton")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestSaveCommandSwallowsAndLogs(t *testing.T) {
	rec := &recordingLogger{}
	out, err := run(t, func(b *AppBuilder) { b.WithLogger(rec) }, "save", "--payload", "alice", "--fail", "disk full")

	require.NoError(t, err)
	assert.Contains(t, out, "save attempted on employees (injected manager)")
	assert.Equal(t, []string{"disk full"}, rec.messages)
}

func TestSaveCommandPersistsToStore(t *testing.T) {
	store := mocks.NewMockStore()
	rec := &recordingLogger{}
	_, err := run(t, func(b *AppBuilder) { b.WithStore(store).WithLogger(rec) }, "save", "--payload", "bob")

	require.NoError(t, err)
	assert.Empty(t, rec.messages)
	require.Len(t, store.Records(), 1)
	assert.Equal(t, "bob", store.Records()[0].Payload)
	assert.True(t, store.Connected())
}

func TestSaveCommandVariantsWriteLogFile(t *testing.T) {
	for _, variant := range []string{"injected", "coupled", "inline"} {
		t.Run(variant, func(t *testing.T) {
			_, err := run(t, nil, "save", "--variant", variant, "--fail", "lock wait timeout")
			require.NoError(t, err)

			data, err := os.ReadFile("logFile.txt")
			require.NoError(t, err)
			assert.Equal(t, "lock wait timeout", string(data))
		})
	}
}

func TestSaveCommandUnknownVariant(t *testing.T) {
	_, err := run(t, nil, "save", "--variant", "bogus")
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
}

func TestPayCommand(t *testing.T) {
	out, err := run(t, nil, "pay", "--kind", "contractor", "--amount", "50", "--hours", "2")
	require.NoError(t, err)
	assert.Equal(t, "100.00 USD\n", out)

	_, err = run(t, nil, "pay", "--kind", "volunteer")
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidArgument))
}

func TestFinancesCommand(t *testing.T) {
	out, err := run(t, nil, "finances", "--id", "3", "--hours", "10")
	require.NoError(t, err)
	assert.Equal(t, "pay=250.00 rewards=25.00\n", out)

	_, err = run(t, nil, "finances", "--id", "-1")
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestRobotCommand(t *testing.T) {
	out, err := run(t, nil, "robot", "--number", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "robot 9 worked")
	assert.Contains(t, out, "robot 9: robots don't eat")
}

func TestBadConfigMapsToConfigError(t *testing.T) {
	t.Setenv("SOLID_LOGGER_TYPE", "carrier-pigeon")

	_, err := run(t, nil, "singleton")
	require.Error(t, err)
	assert.Equal(t, 78, apperrors.MapDomainError(err).ExitCode())
}

func TestBuilderSelectsImplementations(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Payroll.Currency = "usd"
	cfg.Database.Type = "mysql"
	cfg.Database.Name = "employees"
	cfg.Logger.Type = "rotating"
	cfg.Logger.FilePath = t.TempDir() + "/db.log"

	app, err := NewBuilder(cfg).SkipLoggerInit().Build()
	require.NoError(t, err)

	assert.IsType(t, &mysql.Store{}, app.store)
	assert.Equal(t, "USD", app.PayCalculator().Currency())
	assert.Equal(t, "employees", app.Manager().DatabaseName())
	assert.Same(t, cfg, app.Config())
	assert.NoError(t, app.Close())
}

func TestBuilderRejectsUnknownStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Payroll.Currency = "USD"
	cfg.Database.Type = "cassandra"

	_, err := NewBuilder(cfg).SkipLoggerInit().Build()
	assert.Error(t, err)
}
