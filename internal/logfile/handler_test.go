package logfile

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(level slog.Level, msg string) slog.Record {
	ts := time.Date(2011, 6, 8, 15, 0, 0, 0, time.UTC)
	return slog.NewRecord(ts, level, msg, 0)
}

func TestHandlerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelDebug)

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelError, "could not fetch item detail")))

	assert.Equal(t, "[2011-06-08T15:00:00]\tError\t\tcould not fetch item detail\n", buf.String())
}

func TestHandlerLevelNames(t *testing.T) {
	cases := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "Debug"},
		{slog.LevelInfo, "Info"},
		{LevelNotice, "Notice"},
		{slog.LevelWarn, "Warning"},
		{slog.LevelError, "Error"},
		{LevelCritical, "Critical"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&buf, slog.LevelDebug)

			require.NoError(t, h.Handle(context.Background(), record(tc.level, "msg")))

			parts := strings.Split(buf.String(), "\t")
			require.GreaterOrEqual(t, len(parts), 2)
			assert.Equal(t, tc.want, parts[1])
		})
	}
}

func TestHandlerAppendsAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug).WithAttrs([]slog.Attr{slog.String("component", "importer")}))

	logger.Info("importing new post", "title", "Big Storm Hits")

	line := buf.String()
	assert.Contains(t, line, "component=importer")
	assert.Contains(t, line, "title=Big Storm Hits")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), LevelCritical))
}

func TestFanoutDeliversToAllHandlers(t *testing.T) {
	var first, second bytes.Buffer
	fanout := NewFanout(
		NewHandler(&first, slog.LevelDebug),
		NewHandler(&second, slog.LevelError),
	)
	logger := slog.New(fanout)

	logger.Info("only the first")
	logger.Error("both")

	assert.Contains(t, first.String(), "only the first")
	assert.Contains(t, first.String(), "both")
	assert.NotContains(t, second.String(), "only the first")
	assert.Contains(t, second.String(), "both")
}
