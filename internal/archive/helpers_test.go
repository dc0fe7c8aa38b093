package archive_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testLogger buffers log output and only prints it when the test fails.
func testLogger(t *testing.T) *slog.Logger {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	t.Cleanup(func() {
		if t.Failed() {
			os.Stdout.Write(buf.Bytes()) //nolint:errcheck
		}
	})

	return logger
}

func stamp(year int) time.Time {
	return time.Date(year, time.August, 2, 15, 4, 5, 0, time.UTC)
}
