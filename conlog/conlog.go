// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the console log. Console style printf messages and
// structured fields both end up in one zap logger.
package conlog

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = zap.NewNop()
	sugar  = logger.Sugar()
)

// Init installs a console encoded logger writing to stderr.
func Init(debug bool) error {
	SetDeveloper(debug)
	config := zap.Config{
		Level:            level,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := config.Build()
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the backing logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	sugar = l.Sugar()
}

// Logger returns the backing logger for callers that want structured fields.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetDeveloper toggles debug output, see DPrintf.
func SetDeveloper(on bool) {
	if on {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Developer reports whether debug output is enabled.
func Developer() bool {
	return level.Enabled(zapcore.DebugLevel)
}

func s() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func msg(format string, v []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}

func Printf(format string, v ...interface{}) {
	s().Info(msg(format, v))
}

// SafePrintf prints without going through the notify path. Used for long
// listings.
func SafePrintf(format string, v ...interface{}) {
	s().Info(msg(format, v))
}

// DPrintf only prints in developer mode.
func DPrintf(format string, v ...interface{}) {
	if !Developer() {
		return
	}
	s().Debug(msg(format, v))
}

func Warnf(format string, v ...interface{}) {
	s().Warn(msg(format, v))
}
