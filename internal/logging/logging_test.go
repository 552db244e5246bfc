package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failingHandler) WithGroup(string) slog.Handler           { return h }

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMultiHandler(failingHandler{}, slog.NewJSONHandler(&buf, nil)))

	logger.Info("hello", "k", "v")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestContextHandlerAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newContextHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "handled")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := dbtest.New(t)
	h := NewDBHandler(db)
	logger := slog.New(h).With("operation", "getUser")

	logger.Info("ignored")
	logger.Error("lookup failed",
		"request_id", "req-9",
		"user_id", "u-1",
		"error", "boom",
		"latency_ms", 12.4,
		"attempt", 3,
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "lookup failed", entry.Message)
	assert.Equal(t, "req-9", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.Equal(t, "getUser", entry.Operation)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 12, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.EqualValues(t, 3, extra["attempt"])
}

func TestDBHandlerStopIsIdempotent(t *testing.T) {
	h := NewDBHandler(dbtest.New(t))
	h.Stop()
	h.Stop()
}

func TestPurgeBefore(t *testing.T) {
	db := dbtest.New(t)
	now := time.Now()
	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now.Add(-time.Hour), Level: "ERROR", Message: "fresh"},
	}).Error)

	deleted := PurgeBefore(db, now.AddDate(0, 0, -30))
	assert.EqualValues(t, 1, deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Message)
}
