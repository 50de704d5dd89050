package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	coreerrors "github.com/davidahmann/paramdump/core/errors"
	"github.com/davidahmann/paramdump/core/param"
	"github.com/davidahmann/paramdump/core/report"
)

// version is stamped at release time via ldflags; default stays dev for local builds.
var version = "0.0.0-dev"

// defaultParamPath is resolved against the working directory.
const defaultParamPath = "param.json"

func main() {
	logger := newLogger()
	exitCode := run(afero.NewOsFs(), os.Stdout, os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(exitCode)
}

// run loads param.json from fs and prints its report. Nothing reaches stdout
// unless both decoding and rendering succeed.
func run(fs afero.Fs, stdout, stderr io.Writer, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("paramdump start", zap.String("version", version), zap.String("path", defaultParamPath))

	descriptor, err := param.Load(fs, defaultParamPath, logger)
	if err != nil {
		return writeError(stderr, err)
	}

	var buffer bytes.Buffer
	if err := report.Render(&buffer, descriptor, report.WithLogger(logger)); err != nil {
		return writeError(stderr, err)
	}
	if _, err := buffer.WriteTo(stdout); err != nil {
		return writeError(stderr, coreerrors.Wrap(
			fmt.Errorf("write report: %w", err),
			coreerrors.CategoryIOFailure, coreerrors.CodeWriteFailed,
		))
	}
	return exitOK
}

// newLogger logs to stderr at warn level so ordinary runs stay silent there.
func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableCaller = true
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
