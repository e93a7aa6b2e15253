// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the diagnostic logger on dst (stderr in the binary).
// quiet silences it entirely; verbose forces debug regardless of level.
func NewLogger(dst io.Writer, level string, verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	lvl := zapcore.DebugLevel
	if !verbose {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(dst), lvl)
	return zap.New(core), nil
}
