package config

import (
	"go.uber.org/zap"
)

// Log and SLog are the process-wide loggers, set once by InitLogger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

func init() {
	// Tests and tools that never call InitLogger still get a working logger.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}
