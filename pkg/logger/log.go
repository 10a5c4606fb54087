package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger пишет в stdout и, если задан файл, дублирует туда же.
func NewLogger(level string, logFile string) *zap.Logger {
	atomicLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		atomicLevel = zap.NewAtomicLevelAt(lvl)
	}

	outputs := []string{"stdout"}
	if logFile != "" {
		outputs = append(outputs, logFile)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig,
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}
