package logging

import "go.uber.org/zap"

// New builds the process logger. State-store write failures are warned here
// and swallowed; the CLI itself prints results to stdout, never through zap.
func New(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
