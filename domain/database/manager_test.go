package database_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"solid-example/domain/database"
	"solid-example/domain/shared"
	"solid-example/infrastructure/logging"
	"solid-example/infrastructure/persistence/mocks"
	"solid-example/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

type recordingLogger struct {
	messages []string
	err      error
}

func (l *recordingLogger) Log(message string) error {
	l.messages = append(l.messages, message)
	return l.err
}

func TestSaveFailureIsLoggedOnceAndSwallowed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msg := rapid.StringMatching(`[a-z ]{1,40}`).Draw(rt, "message")
		store := mocks.NewMockStore().FailSaveWith(errors.New(msg))
		rec := &recordingLogger{}

		database.NewManager("employees", store, rec).SaveDataToDatabase(context.Background(), "payload")

		if len(rec.messages) != 1 || rec.messages[0] != msg {
			rt.Fatalf("logger got %q, want exactly [%q]", rec.messages, msg)
		}
	})
}

func TestSaveSuccessDoesNotLog(t *testing.T) {
	store := mocks.NewMockStore()
	rec := &recordingLogger{}
	m := database.NewManager("employees", store, rec)

	m.SaveDataToDatabase(context.Background(), "alice")

	assert.Empty(t, rec.messages)
	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "employees", records[0].Database)
	assert.Equal(t, "alice", records[0].Payload)
	assert.NotEmpty(t, records[0].ID)
	assert.Equal(t, "employees", m.DatabaseName())
}

func TestLoggerFailureIsReportedToProcessLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logger.Replace(zap.New(core))()

	store := mocks.NewMockStore().FailSaveWith(errors.New("disk full"))
	rec := &recordingLogger{err: errors.New("read-only fs")}

	database.NewManager("employees", store, rec).SaveDataToDatabase(context.Background(), "x")

	assert.Equal(t, []string{"disk full"}, rec.messages)
	entries := logs.FilterMessage("failed to log database error").All()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ContextMap()["operation_id"])
}

func TestConnectFailureIsLoggedAndReturned(t *testing.T) {
	boom := errors.New("connection refused")
	store := mocks.NewMockStore().FailConnectWith(boom)
	rec := &recordingLogger{}

	err := database.NewManager("employees", store, rec).ConnectToDatabase(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"connection refused"}, rec.messages)
	assert.False(t, store.Connected())
}

func TestConnectSuccess(t *testing.T) {
	store := mocks.NewMockStore()
	require.NoError(t, database.NewManager("employees", store, &recordingLogger{}).ConnectToDatabase(context.Background()))
	assert.True(t, store.Connected())
}

func TestInjectedFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.log")
	store := mocks.NewMockStore().FailSaveWith(errors.New("duplicate key"))

	database.NewManager("employees", store, logging.NewFileLogger(path)).SaveDataToDatabase(context.Background(), "x")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "duplicate key", string(data))
}

func TestLegacyManagersWriteDefaultLogFile(t *testing.T) {
	type saver interface {
		ConnectToDatabase(ctx context.Context) error
		SaveDataToDatabase(ctx context.Context, payload string)
	}

	cases := map[string]func(database.Store) saver{
		"inline":  func(s database.Store) saver { return database.NewInlineLoggingManager("employees", s) },
		"coupled": func(s database.Store) saver { return database.NewCoupledManager("employees", s) },
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			testChdir(t, t.TempDir())
			store := mocks.NewMockStore().FailSaveWith(errors.New("lock wait timeout"))
			m := build(store)

			require.NoError(t, m.ConnectToDatabase(context.Background()))
			m.SaveDataToDatabase(context.Background(), "x")

			data, err := os.ReadFile(database.DefaultLogFile)
			require.NoError(t, err)
			assert.Equal(t, "lock wait timeout", string(data))
			assert.Equal(t, 1, store.SaveCalls())
		})
	}
}

func TestLegacyManagersSucceedWithoutLogFile(t *testing.T) {
	testChdir(t, t.TempDir())
	store := mocks.NewMockStore()

	database.NewCoupledManager("employees", store).SaveDataToDatabase(context.Background(), "x")
	database.NewInlineLoggingManager("employees", store).SaveDataToDatabase(context.Background(), "y")

	_, err := os.Stat(database.DefaultLogFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, store.Records(), 2)
}

var _ shared.Logger = (*recordingLogger)(nil)
