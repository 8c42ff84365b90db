package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/sfluorine/textscroller/internal/engine"
	"github.com/sfluorine/textscroller/internal/locale"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App with debug logging whose frames and logs are
// captured in separate buffers. A non-nil sleep replaces the frame timer.
func SetupAppTest(t *testing.T, cfg *Config, loc locale.Locale, sleep engine.SleepFunc) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(out, logs, cfg, loc)
	testApp.sleep = sleep

	t.Cleanup(func() {
		if os.Getenv("TEXTSCROLLER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
