// Package logging builds named zap loggers sharing one console encoding.
// The default level comes from GZ302_LOG_LEVEL; individual loggers can be
// re-leveled at runtime through SetLevel.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfg = zap.Config{
	Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
	Encoding: "console",
	EncoderConfig: zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	},
	OutputPaths:      []string{"stderr"},
	ErrorOutputPaths: []string{"stderr"},
}

var registry = struct {
	mu     sync.Mutex
	levels map[string]zap.AtomicLevel
}{levels: make(map[string]zap.AtomicLevel)}

func defaultLevel() zapcore.Level {
	var l zapcore.Level
	if err := l.Set(os.Getenv("GZ302_LOG_LEVEL")); err != nil {
		return zap.InfoLevel
	}
	return l
}

func level(name string) zap.AtomicLevel {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if l, ok := registry.levels[name]; ok {
		return l
	}
	l := zap.NewAtomicLevelAt(defaultLevel())
	registry.levels[name] = l
	return l
}

// SetLevel re-levels the named logger (and any future logger of that name).
func SetLevel(name string, l zapcore.Level) {
	level(name).SetLevel(l)
}

// New returns a named sugared logger.
func New(name string) *zap.SugaredLogger {
	c := cfg
	c.Level = level(name)
	return zap.Must(c.Build(zap.AddStacktrace(zapcore.PanicLevel))).Named(name).Sugar()
}
