package fsm_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minifsm/pkg/fsm"
	"github.com/dmitrymomot/minifsm/pkg/logger"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		records = append(records, entry)
	}
	require.NoError(t, scanner.Err())
	return records
}

func findRecord(records []map[string]any, msg string) map[string]any {
	for _, r := range records {
		if r["msg"] == msg {
			return r
		}
	}
	return nil
}

func TestMachineLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	m := fsm.MustNew(Idle,
		fsm.WithID("m-1"),
		fsm.WithLogger(log),
		fsm.WithTransition("start", []fsm.State{Idle}, Running),
	)
	m.OnFunc(Running, func(*fsm.Machine, fsm.State, fsm.State) {})

	require.NoError(t, m.Move("start"))
	require.Error(t, m.Move("start"))
	require.Error(t, m.Move("missing"))

	records := decodeRecords(t, buf)
	for _, r := range records {
		assert.Equal(t, "m-1", r["machine_id"])
		assert.Equal(t, "DEBUG", r["level"])
	}

	registered := findRecord(records, "transition registered")
	require.NotNil(t, registered)
	group, ok := registered["transition"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "start", group["name"])
	assert.Equal(t, "running", group["to"])

	executed := findRecord(records, "transition executed")
	require.NotNil(t, executed)
	assert.Equal(t, "start", executed["transition"])
	assert.Equal(t, "idle", executed["from"])
	assert.Equal(t, "running", executed["to"])

	dispatched := findRecord(records, "dispatching listeners")
	require.NotNil(t, dispatched)
	assert.Equal(t, float64(1), dispatched["listeners"])

	rejected := findRecord(records, "move rejected")
	require.NotNil(t, rejected)
	assert.Equal(t, "running", rejected["state"])
	assert.Contains(t, rejected["error"], "not permitted")
}

func TestMachineLoggingRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	m := fsm.MustNew(Idle,
		fsm.WithLogger(logger.New(logger.WithOutput(buf))),
		fsm.WithTransition("start", []fsm.State{Idle}, Running),
	)
	require.NoError(t, m.Move("start"))
	assert.Empty(t, buf.String())
}
