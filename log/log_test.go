package log

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " WARN ", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "info", LevelInfo.String())
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core).With(String("file", "r.0.0.mca"))

	l.Warn("chunk failed", Int("x", 3), Uint32("version", 1451), Error(errors.New("boom")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "chunk failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "r.0.0.mca", fields["file"])
	assert.Equal(t, int64(3), fields["x"])
	assert.Equal(t, uint32(1451), fields["version"])
	assert.Equal(t, "boom", fields["error"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info("nothing", Bool("ok", true))
	})
}

func TestProvideConcurrent(t *testing.T) {
	const n = 8
	got := make([]*Logger, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Provide()
		}()
	}
	wg.Wait()
	for _, l := range got {
		assert.NotNil(t, l)
		assert.Same(t, got[0], l)
	}
	assert.Same(t, got[0], Provide())
}
