package logger

import (
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// NoopLogger drops every entry but still tracks its level, so code that branches on
// GetLevel behaves the same under test
type NoopLogger struct {
	level core.LogLevel
}

func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (*NoopLogger) Debug(string, map[string]any) {}
func (*NoopLogger) Info(string, map[string]any)  {}
func (*NoopLogger) Warn(string, map[string]any)  {}
func (*NoopLogger) Error(string, map[string]any) {}

func (*NoopLogger) Flush() error { return nil }
