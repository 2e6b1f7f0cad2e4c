package enum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/betterenum/enum"
	"github.com/zjrosen/betterenum/log"
)

type color struct {
	enum.Enum
	hex string
}

func newColor(hex string) *color { return &color{hex: hex} }

type shape struct {
	enum.Enum
	sides int
}

// byValue embeds a pointer, so the value type satisfies enum.Member without
// being a pointer type.
type byValue struct {
	*enum.Enum
}

// capturedLogs collects the entries a registry's logger publishes.
type capturedLogs struct {
	lis     *log.Listener
	entries []log.Entry
}

// Find returns the first entry logged at level with message msg.
func (c *capturedLogs) Find(level log.Level, msg string) (log.Entry, bool) {
	for _, ev := range c.lis.Drain() {
		c.entries = append(c.entries, ev.Payload)
	}
	for _, e := range c.entries {
		if e.Level == level && e.Message == msg {
			return e, true
		}
	}
	return log.Entry{}, false
}

// Has reports whether an entry was logged at level with message msg.
func (c *capturedLogs) Has(level log.Level, msg string) bool {
	_, ok := c.Find(level, msg)
	return ok
}

// newRegistry returns an isolated registry whose log entries are captured.
func newRegistry(t *testing.T) (*enum.Registry, *capturedLogs) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := log.New(nil)
	logger.SetMinLevel(log.LevelDebug)
	logs := &capturedLogs{lis: logger.Listen(ctx)}
	return enum.NewRegistry(enum.WithName(t.Name()), enum.WithLogger(logger)), logs
}

// requirePanicsIs asserts that fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		rec := recover()
		require.NotNil(t, rec, "expected panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// quietRegistry returns an isolated registry that discards its log output.
func quietRegistry() *enum.Registry {
	return enum.NewRegistry(enum.WithLogger(log.New(nil)))
}
